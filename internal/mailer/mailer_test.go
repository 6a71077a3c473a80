package mailer

import "testing"

func TestNewSMTPMailerDisabledWhenUnconfigured(t *testing.T) {
	m, err := NewSMTPMailer(SMTPConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Fatalf("expected nil mailer when host is unset")
	}

	m, err = NewSMTPMailer(SMTPConfig{Host: "smtp.example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Fatalf("expected nil mailer when recipient is unset")
	}
}

func TestNewSMTPMailerRejectsBadPort(t *testing.T) {
	_, err := NewSMTPMailer(SMTPConfig{
		Host: "smtp.example.com",
		Port: "not-a-port",
		To:   "artist@example.com",
	})
	if err == nil {
		t.Fatalf("expected error for invalid port")
	}
}

func TestNewSMTPMailerConfigured(t *testing.T) {
	m, err := NewSMTPMailer(SMTPConfig{
		Host: "smtp.example.com",
		Port: "587",
		From: "site@example.com",
		To:   "artist@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatalf("expected configured mailer")
	}
}
