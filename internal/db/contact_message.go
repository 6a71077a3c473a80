package db

import "time"

// ContactMessage is a visitor message. Write-once, never mutated.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
}
