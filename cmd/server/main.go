package main

import (
	"context"
	"log"

	"github.com/galerie/internal/config"
	"github.com/galerie/internal/db"
	"github.com/galerie/internal/handler"
	"github.com/galerie/internal/mailer"
	"github.com/galerie/internal/router"
	"github.com/galerie/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabaseURL, cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureAdmin(db.DB, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	var store storage.ObjectStore
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), storage.S3Config{
			Endpoint:      cfg.S3Endpoint,
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
		store = s3Store
	} else {
		log.Printf("object storage not configured, uploads disabled")
	}

	smtpMailer, err := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		To:       cfg.ContactEmail,
	})
	if err != nil {
		log.Fatalf("failed to initialize mailer: %v", err)
	}

	var notifier mailer.Mailer
	if smtpMailer != nil {
		notifier = smtpMailer
	}

	api := handler.NewAPI(db.DB, store, notifier, cfg.AdminUsername)
	r := router.SetupRouter(api, cfg.SessionSecret, cfg.AllowOrigins)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
