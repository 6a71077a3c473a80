package db

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is the administrative identity. Exactly one account is expected.
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}

// EnsureAdmin seeds the single admin account on first boot: it creates a
// bcrypt-hashed user only when the table is empty and both credentials are
// provided. Subsequent boots are a no-op.
func EnsureAdmin(gdb *gorm.DB, username, password string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil
	}

	var count int64
	if err := gdb.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return gdb.Create(&User{Username: trimmedUser, Password: string(hashed)}).Error
}
