package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle.
var DB *gorm.DB

// Init opens the database and runs auto-migration. A non-empty databaseURL
// selects Postgres; otherwise a local sqlite file is used.
func Init(databaseURL, databasePath string) error {
	var err error
	if strings.TrimSpace(databaseURL) != "" {
		DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	} else {
		path := strings.TrimSpace(databasePath)
		if path == "" {
			path = "galerie.db"
		}
		if err := ensureParentDir(path); err != nil {
			return err
		}
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return err
	}

	return Migrate(DB)
}

// Migrate creates or updates the schema for all models.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&User{},
		&Artwork{},
		&Exhibition{},
		&ContactMessage{},
		&SiteSetting{},
	)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
