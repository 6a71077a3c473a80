package handler

import (
	"github.com/galerie/internal/mailer"
	"github.com/galerie/internal/service"
	"github.com/galerie/internal/storage"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	artworks    *service.ArtworkService
	exhibitions *service.ExhibitionService
	contacts    *service.ContactService
	settings    *service.SettingsService
	store       storage.ObjectStore
	adminUser   string
}

// NewAPI constructs a handler set with shared services. store and m may be
// nil in tests.
func NewAPI(gdb *gorm.DB, store storage.ObjectStore, m mailer.Mailer, adminUsername string) *API {
	return &API{
		db:          gdb,
		artworks:    service.NewArtworkService(gdb, store),
		exhibitions: service.NewExhibitionService(gdb, store),
		contacts:    service.NewContactService(gdb, m),
		settings:    service.NewSettingsService(gdb),
		store:       store,
		adminUser:   adminUsername,
	}
}
