package service

import (
	"errors"
	"log"
	"strings"

	"github.com/galerie/internal/db"
	"github.com/galerie/internal/mailer"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// ErrContactInvalid marks a malformed contact submission.
var ErrContactInvalid = errors.New("contact fields are invalid")

// ContactService persists visitor messages and fires the best-effort email
// notification.
type ContactService struct {
	db       *gorm.DB
	mailer   mailer.Mailer
	sanitize *bluemonday.Policy
}

// ContactInput represents an inbound contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// NewContactService creates a ContactService. mailer may be nil when
// notifications are disabled.
func NewContactService(gdb *gorm.DB, m mailer.Mailer) *ContactService {
	return &ContactService{
		db:       gdb,
		mailer:   m,
		sanitize: bluemonday.StrictPolicy(),
	}
}

// Create stores the message and then attempts the notification. The message
// is persisted regardless of the email outcome.
func (s *ContactService) Create(input ContactInput) (*db.ContactMessage, error) {
	name := strings.TrimSpace(s.sanitize.Sanitize(input.Name))
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(s.sanitize.Sanitize(input.Message))

	if name == "" || message == "" || !strings.Contains(email, "@") {
		return nil, ErrContactInvalid
	}

	item := db.ContactMessage{Name: name, Email: email, Message: message}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendContactNotification(name, email, message); err != nil {
			log.Printf("contact notification failed: %v", err)
		}
	}

	return &item, nil
}

// List returns all messages, newest first.
func (s *ContactService) List() ([]db.ContactMessage, error) {
	var items []db.ContactMessage
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
