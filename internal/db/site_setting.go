package db

import "gorm.io/gorm"

// SiteSetting stores one cross-cutting setting as a JSON value under a
// unique key.
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName keeps the legacy table name.
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	// SettingKeySlots holds the three fixed artwork slots.
	SettingKeySlots = "slots"
	// SettingKeyFeatured holds the featured artwork id list.
	SettingKeyFeatured = "featured"
	// SettingKeyFeaturedWorks holds free-standing featured work records.
	SettingKeyFeaturedWorks = "featured_works"
	// SettingKeyFeaturedWorksOrder holds the featured works id order.
	SettingKeyFeaturedWorksOrder = "featured_works_order"
	// SettingKeyHours holds the opening-hours text lines.
	SettingKeyHours = "hours"
)
