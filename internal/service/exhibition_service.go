package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/galerie/internal/db"
	"github.com/galerie/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrExhibitionNotFound = errors.New("exhibition not found")
	ErrExhibitionInvalid  = errors.New("exhibition fields are invalid")
)

// ExhibitionService owns exhibition CRUD, ordering and gallery blob hygiene.
type ExhibitionService struct {
	db    *gorm.DB
	store storage.ObjectStore
}

// ExhibitionInput represents fields accepted when creating an exhibition.
type ExhibitionInput struct {
	Title         string
	Location      string
	Year          string
	ImageURL      string
	Description   string
	Theme         string
	GalleryImages []db.GalleryItem
	VideoURL      string
}

// NewExhibitionService creates an ExhibitionService.
func NewExhibitionService(gdb *gorm.DB, store storage.ObjectStore) *ExhibitionService {
	return &ExhibitionService{db: gdb, store: store}
}

// ListAll returns all exhibitions in ascending presentation order.
func (s *ExhibitionService) ListAll() ([]db.Exhibition, error) {
	var items []db.Exhibition
	if err := s.db.Order("sort_order asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches an exhibition by id.
func (s *ExhibitionService) Get(id uint) (*db.Exhibition, error) {
	var item db.Exhibition
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExhibitionNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create persists a new exhibition. Title and the primary image are required.
func (s *ExhibitionService) Create(input ExhibitionInput) (*db.Exhibition, error) {
	title := strings.TrimSpace(input.Title)
	imageURL := strings.TrimSpace(input.ImageURL)
	if title == "" || imageURL == "" {
		return nil, ErrExhibitionInvalid
	}

	gallery := make(db.GalleryItemList, 0, len(input.GalleryImages))
	for _, item := range input.GalleryImages {
		url := strings.TrimSpace(item.URL)
		if url == "" {
			continue
		}
		gallery = append(gallery, db.GalleryItem{URL: url, Caption: strings.TrimSpace(item.Caption)})
	}

	item := db.Exhibition{
		Title:         title,
		Location:      strings.TrimSpace(input.Location),
		Year:          strings.TrimSpace(input.Year),
		ImageURL:      imageURL,
		Description:   strings.TrimSpace(input.Description),
		Theme:         strings.TrimSpace(input.Theme),
		GalleryImages: gallery,
		VideoURL:      strings.TrimSpace(input.VideoURL),
		SortOrder:     0,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateGallery replaces the gallery image list. Blobs referenced by the old
// list but absent from the new one are deleted best-effort.
func (s *ExhibitionService) UpdateGallery(ctx context.Context, id uint, images []db.GalleryItem) (*db.Exhibition, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	next := make(db.GalleryItemList, 0, len(images))
	kept := make(map[string]bool, len(images))
	for _, image := range images {
		url := strings.TrimSpace(image.URL)
		if url == "" {
			continue
		}
		kept[url] = true
		next = append(next, db.GalleryItem{URL: url, Caption: strings.TrimSpace(image.Caption)})
	}

	for _, old := range item.GalleryImages {
		if !kept[old.URL] {
			s.cleanupBlob(ctx, old.URL)
		}
	}

	item.GalleryImages = next
	if err := s.db.Model(item).Update("gallery_images", next).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Reorder applies a full (id, order) mapping in one transaction.
func (s *ExhibitionService) Reorder(updates []OrderUpdate) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			if err := tx.Model(&db.Exhibition{}).
				Where("id = ?", update.ID).
				Update("sort_order", update.SortOrder).Error; err != nil {
				return fmt.Errorf("reorder exhibition %d: %w", update.ID, err)
			}
		}
		return nil
	})
}

// Delete removes an exhibition after best-effort deletion of every gallery
// blob and the primary image.
func (s *ExhibitionService) Delete(ctx context.Context, id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}

	for _, image := range item.GalleryImages {
		s.cleanupBlob(ctx, image.URL)
	}
	s.cleanupBlob(ctx, item.ImageURL)

	return s.db.Delete(&db.Exhibition{}, id).Error
}

func (s *ExhibitionService) cleanupBlob(ctx context.Context, url string) {
	if url == "" || s.store == nil || !s.store.Owns(url) {
		return
	}
	if err := s.store.Delete(ctx, url); err != nil {
		log.Printf("orphaned blob %s: delete failed: %v", url, err)
	}
}
