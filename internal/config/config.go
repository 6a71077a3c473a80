package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig gathers everything the server needs at boot.
type AppConfig struct {
	ListenAddr    string
	Port          string
	GinMode       string
	DatabaseURL   string
	DatabasePath  string
	SessionSecret string
	AdminUsername string
	AdminPassword string
	AllowOrigins  []string

	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	ContactEmail string
}

// Load reads the application config from the environment, with safe defaults
// for everything that is optional. A .env file is honored when present.
func Load() AppConfig {
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "galerie.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "galerie-dev-secret"
	}

	adminUsername := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	if adminUsername == "" {
		adminUsername = "admin"
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		GinMode:       ginMode,
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DatabasePath:  databasePath,
		SessionSecret: sessionSecret,
		AdminUsername: adminUsername,
		AdminPassword: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		AllowOrigins:  splitOrigins(os.Getenv("ALLOW_ORIGINS")),

		S3Endpoint:      strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3Region:        defaultString(os.Getenv("S3_REGION"), "eu-west-3"),
		S3Bucket:        strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3AccessKey:     strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey:     strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		S3PublicBaseURL: strings.TrimSpace(os.Getenv("S3_PUBLIC_BASE_URL")),

		SMTPHost:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:     defaultString(os.Getenv("SMTP_PORT"), "587"),
		SMTPUser:     strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPassword: strings.TrimSpace(os.Getenv("SMTP_PASSWORD")),
		SMTPFrom:     strings.TrimSpace(os.Getenv("SMTP_FROM")),
		ContactEmail: strings.TrimSpace(os.Getenv("CONTACT_EMAIL")),
	}
}

func defaultString(raw, fallback string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
