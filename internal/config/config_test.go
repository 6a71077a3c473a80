package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("ADMIN_USERNAME", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected listen addr :8080, got %s", cfg.ListenAddr)
	}
	if cfg.AdminUsername != "admin" {
		t.Fatalf("expected default admin username, got %s", cfg.AdminUsername)
	}
}

func TestSplitOrigins(t *testing.T) {
	origins := splitOrigins(" https://galerie.example.com , ,https://admin.example.com")
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins, got %#v", origins)
	}
	if origins[0] != "https://galerie.example.com" || origins[1] != "https://admin.example.com" {
		t.Fatalf("unexpected origins: %#v", origins)
	}
}
