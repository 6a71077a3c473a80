package db

import "time"

// Exhibition groups a show's metadata and its gallery images.
type Exhibition struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Title         string          `gorm:"size:255;not null" json:"title"`
	Location      string          `gorm:"size:255" json:"location"`
	Year          string          `gorm:"size:32" json:"year"`
	ImageURL      string          `gorm:"size:512" json:"imageUrl"`
	Description   string          `gorm:"type:text" json:"description"`
	Theme         string          `gorm:"size:255" json:"theme"`
	GalleryImages GalleryItemList `gorm:"type:text" json:"galleryImages"`
	VideoURL      string          `gorm:"size:512" json:"videoUrl"`
	SortOrder     int             `gorm:"default:0" json:"order"`
}
