package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/galerie/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSlotsLength marks a slots payload that is not exactly three entries.
var ErrSlotsLength = errors.New("slots must hold exactly 3 entries")

// FeaturedWork is a free-standing promotional record, distinct from a catalog
// artwork.
type FeaturedWork struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// SettingsService reads and upserts the structured site settings stored in
// the key-value table.
type SettingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(gdb *gorm.DB) *SettingsService {
	return &SettingsService{db: gdb}
}

// GetSlots returns the three fixed artwork slots. Unset slots are nil.
func (s *SettingsService) GetSlots() ([]*uint, error) {
	slots := make([]*uint, 3)
	if err := s.get(db.SettingKeySlots, &slots); err != nil {
		return nil, err
	}
	if len(slots) != 3 {
		normalized := make([]*uint, 3)
		copy(normalized, slots)
		slots = normalized
	}
	return slots, nil
}

// SetSlots replaces the three fixed artwork slots.
func (s *SettingsService) SetSlots(slots []*uint) error {
	if len(slots) != 3 {
		return ErrSlotsLength
	}
	return s.set(db.SettingKeySlots, slots)
}

// GetFeatured returns the featured artwork ids.
func (s *SettingsService) GetFeatured() ([]uint, error) {
	ids := []uint{}
	if err := s.get(db.SettingKeyFeatured, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetFeatured replaces the featured artwork ids.
func (s *SettingsService) SetFeatured(ids []uint) error {
	if ids == nil {
		ids = []uint{}
	}
	return s.set(db.SettingKeyFeatured, ids)
}

// GetFeaturedWorks returns the free-standing featured works.
func (s *SettingsService) GetFeaturedWorks() ([]FeaturedWork, error) {
	works := []FeaturedWork{}
	if err := s.get(db.SettingKeyFeaturedWorks, &works); err != nil {
		return nil, err
	}
	return works, nil
}

// SetFeaturedWorks replaces the free-standing featured works.
func (s *SettingsService) SetFeaturedWorks(works []FeaturedWork) error {
	if works == nil {
		works = []FeaturedWork{}
	}
	return s.set(db.SettingKeyFeaturedWorks, works)
}

// GetFeaturedWorksOrder returns the featured works id order.
func (s *SettingsService) GetFeaturedWorksOrder() ([]uint, error) {
	ids := []uint{}
	if err := s.get(db.SettingKeyFeaturedWorksOrder, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetFeaturedWorksOrder replaces the featured works id order.
func (s *SettingsService) SetFeaturedWorksOrder(ids []uint) error {
	if ids == nil {
		ids = []uint{}
	}
	return s.set(db.SettingKeyFeaturedWorksOrder, ids)
}

// GetHours returns the opening-hours text lines.
func (s *SettingsService) GetHours() ([]string, error) {
	lines := []string{}
	if err := s.get(db.SettingKeyHours, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// SetHours replaces the opening-hours text lines.
func (s *SettingsService) SetHours(lines []string) error {
	if lines == nil {
		lines = []string{}
	}
	return s.set(db.SettingKeyHours, lines)
}

// get loads a setting into dst, leaving dst untouched when the key has never
// been written.
func (s *SettingsService) get(key string, dst interface{}) error {
	var record db.SiteSetting
	if err := s.db.Where("key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("load setting %s: %w", key, err)
	}
	if record.Value == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(record.Value), dst); err != nil {
		return fmt.Errorf("decode setting %s: %w", key, err)
	}
	return nil
}

// set upserts a setting keyed by its unique key.
func (s *SettingsService) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}

	setting := db.SiteSetting{Key: key, Value: string(data)}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      string(data),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}
