package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"io"
	"strings"
	"testing"

	"github.com/galerie/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

// fakeStore records uploads and deletions in memory.
type fakeStore struct {
	uploads   []string
	deleted   []string
	deleteErr error
	failAt    int // 1-based upload index that fails, 0 disables
}

const fakeStoreBase = "https://cdn.test"

func (f *fakeStore) Upload(_ context.Context, key, _ string, _ io.Reader) (string, error) {
	if f.failAt > 0 && len(f.uploads)+1 == f.failAt {
		return "", errors.New("upload failed")
	}
	url := fakeStoreBase + "/" + key
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakeStore) Delete(_ context.Context, publicURL string) error {
	f.deleted = append(f.deleted, publicURL)
	return f.deleteErr
}

func (f *fakeStore) Owns(publicURL string) bool {
	return strings.HasPrefix(publicURL, fakeStoreBase+"/")
}

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("failed to encode jpeg fixture: %v", err)
	}
	return buf.Bytes()
}
