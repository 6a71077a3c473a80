package mailer

import (
	"fmt"
	"strconv"
	"strings"

	gomail "github.com/wneessen/go-mail"
)

// Mailer sends the contact-form notification. Failures never block the
// request that triggered them.
type Mailer interface {
	SendContactNotification(name, email, message string) error
}

// SMTPConfig carries the SMTP client settings.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
	To       string
}

// SMTPMailer sends notifications through an authenticated SMTP relay.
type SMTPMailer struct {
	cfg  SMTPConfig
	port int
}

// NewSMTPMailer builds an SMTPMailer, or returns nil when the relay is not
// configured so callers can treat notifications as disabled.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if strings.TrimSpace(cfg.Host) == "" || strings.TrimSpace(cfg.To) == "" {
		return nil, nil
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid smtp port %q: %w", cfg.Port, err)
	}

	return &SMTPMailer{cfg: cfg, port: port}, nil
}

// SendContactNotification mails the message to the configured recipient.
func (m *SMTPMailer) SendContactNotification(name, email, message string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	if err := msg.ReplyTo(email); err != nil {
		return fmt.Errorf("set reply-to: %w", err)
	}

	msg.Subject(fmt.Sprintf("Nouveau message de %s", name))
	msg.SetBodyString(gomail.TypeTextPlain,
		fmt.Sprintf("De: %s <%s>\n\n%s\n", name, email, message))

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.User),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
