package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/galerie/internal/db"
	"github.com/galerie/internal/imaging"
	"github.com/galerie/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrArtworkInvalid  = errors.New("artwork fields are invalid")
	ErrNoImages        = errors.New("at least one image is required")
	ErrTooManyImages   = errors.New("an artwork holds at most 3 additional images")
)

// MaxAdditionalImages caps the supplementary images per artwork.
const MaxAdditionalImages = 3

// DefaultCategory is assigned when no category is provided.
const DefaultCategory = "Autres"

// ArtworkService owns artwork CRUD, ordering and the image lifecycle tied to
// each record.
type ArtworkService struct {
	db    *gorm.DB
	store storage.ObjectStore
}

// ArtworkInput represents fields accepted when creating an artwork.
type ArtworkInput struct {
	Title       string
	Technique   string
	Year        string
	Dimensions  string
	Description string
	Category    string
	ImageURL    string
}

// OrderUpdate is one (id, order) pair of a full reorder submission.
type OrderUpdate struct {
	ID        uint `json:"id"`
	SortOrder int  `json:"order"`
}

// NewArtworkService creates an ArtworkService.
func NewArtworkService(gdb *gorm.DB, store storage.ObjectStore) *ArtworkService {
	return &ArtworkService{db: gdb, store: store}
}

// ListVisible returns visible artworks in ascending presentation order.
func (s *ArtworkService) ListVisible() ([]db.Artwork, error) {
	var items []db.Artwork
	if err := s.db.Where("is_visible = ?", true).Order("sort_order asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches an artwork by id.
func (s *ArtworkService) Get(id uint) (*db.Artwork, error) {
	var item db.Artwork
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create persists a new artwork. The primary image must already be uploaded;
// title, technique and year are required. A blank category falls back to
// DefaultCategory.
func (s *ArtworkService) Create(input ArtworkInput) (*db.Artwork, error) {
	title := strings.TrimSpace(input.Title)
	technique := strings.TrimSpace(input.Technique)
	year := strings.TrimSpace(input.Year)
	imageURL := strings.TrimSpace(input.ImageURL)
	if title == "" || technique == "" || year == "" || imageURL == "" {
		return nil, ErrArtworkInvalid
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = DefaultCategory
	}

	item := db.Artwork{
		Title:            title,
		Technique:        technique,
		Year:             year,
		Dimensions:       strings.TrimSpace(input.Dimensions),
		Description:      strings.TrimSpace(input.Description),
		Category:         category,
		ImageURL:         imageURL,
		AdditionalImages: db.StringList{},
		IsVisible:        true,
		ShowInSlider:     true,
		SortOrder:        0,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an artwork. Blobs in the managed store are deleted
// best-effort first: a failed blob delete is logged and the record is removed
// regardless.
func (s *ArtworkService) Delete(ctx context.Context, id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}

	s.cleanupBlob(ctx, item.ImageURL)
	for _, url := range item.AdditionalImages {
		s.cleanupBlob(ctx, url)
	}

	return s.db.Delete(&db.Artwork{}, id).Error
}

// Reorder applies a full (id, order) mapping in one transaction, so a partial
// failure never leaves the collection in a mixed order.
func (s *ArtworkService) Reorder(updates []OrderUpdate) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			if err := tx.Model(&db.Artwork{}).
				Where("id = ?", update.ID).
				Update("sort_order", update.SortOrder).Error; err != nil {
				return fmt.Errorf("reorder artwork %d: %w", update.ID, err)
			}
		}
		return nil
	})
}

// AppendAdditionalImages resizes each file to fit 1200x1200, uploads it and
// appends the resulting URLs to the artwork. The batch is atomic from the
// caller's perspective: any failure commits nothing, and blobs already
// uploaded for the failed batch are deleted best-effort. The total per
// artwork is capped at MaxAdditionalImages.
func (s *ArtworkService) AppendAdditionalImages(ctx context.Context, id uint, files [][]byte) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoImages
	}
	if len(files) > MaxAdditionalImages {
		return nil, ErrTooManyImages
	}

	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if len(item.AdditionalImages)+len(files) > MaxAdditionalImages {
		return nil, ErrTooManyImages
	}

	uploaded := make([]string, 0, len(files))
	for _, file := range files {
		resized, err := imaging.FitJPEG(file, imaging.AdditionalMaxDim, imaging.AdditionalQuality)
		if err != nil {
			s.abortBatch(ctx, uploaded)
			return nil, fmt.Errorf("%w: %s", ErrArtworkInvalid, err)
		}

		url, err := s.store.Upload(ctx, storage.NewKey(".jpg"), "image/jpeg", bytes.NewReader(resized))
		if err != nil {
			s.abortBatch(ctx, uploaded)
			return nil, fmt.Errorf("upload additional image: %w", err)
		}
		uploaded = append(uploaded, url)
	}

	item.AdditionalImages = append(item.AdditionalImages, uploaded...)
	if err := s.db.Model(item).Update("additional_images", item.AdditionalImages).Error; err != nil {
		s.abortBatch(ctx, uploaded)
		return nil, err
	}

	return item.AdditionalImages, nil
}

func (s *ArtworkService) abortBatch(ctx context.Context, uploaded []string) {
	for _, url := range uploaded {
		s.cleanupBlob(ctx, url)
	}
}

func (s *ArtworkService) cleanupBlob(ctx context.Context, url string) {
	if url == "" || s.store == nil || !s.store.Owns(url) {
		return
	}
	if err := s.store.Delete(ctx, url); err != nil {
		log.Printf("orphaned blob %s: delete failed: %v", url, err)
	}
}
