package db

import "time"

// Artwork is a catalog piece shown on the public site.
type Artwork struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	Title            string     `gorm:"size:255;not null" json:"title"`
	Technique        string     `gorm:"size:255" json:"technique"`
	Year             string     `gorm:"size:32" json:"year"`
	Dimensions       string     `gorm:"size:255" json:"dimensions"`
	Description      string     `gorm:"type:text" json:"description"`
	Category         string     `gorm:"size:100;default:Autres" json:"category"`
	ImageURL         string     `gorm:"size:512" json:"imageUrl"`
	AdditionalImages StringList `gorm:"type:text" json:"additionalImages"`
	IsVisible        bool       `gorm:"default:true" json:"isVisible"`
	ShowInSlider     bool       `gorm:"default:true" json:"showInSlider"`
	SortOrder        int        `gorm:"default:0" json:"order"`
}
