package service

import (
	"context"
	"errors"
	"testing"

	"github.com/galerie/internal/db"
)

func createTestExhibition(t *testing.T, svc *ExhibitionService, title string, gallery []db.GalleryItem) *db.Exhibition {
	t.Helper()
	item, err := svc.Create(ExhibitionInput{
		Title:         title,
		Location:      "Paris",
		Year:          "2024",
		ImageURL:      fakeStoreBase + "/expo-" + title + ".jpg",
		GalleryImages: gallery,
	})
	if err != nil {
		t.Fatalf("failed to create exhibition: %v", err)
	}
	return item
}

func TestExhibitionCreateValidation(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewExhibitionService(gdb, &fakeStore{})
	if _, err := svc.Create(ExhibitionInput{Location: "Lyon"}); !errors.Is(err, ErrExhibitionInvalid) {
		t.Fatalf("expected ErrExhibitionInvalid, got %v", err)
	}
}

func TestExhibitionReorder(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewExhibitionService(gdb, &fakeStore{})
	a := createTestExhibition(t, svc, "a", nil)
	b := createTestExhibition(t, svc, "b", nil)

	if err := svc.Reorder([]OrderUpdate{
		{ID: a.ID, SortOrder: 1},
		{ID: b.ID, SortOrder: 0},
	}); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	items, err := svc.ListAll()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if items[0].ID != b.ID || items[1].ID != a.ID {
		t.Fatalf("unexpected order: %d, %d", items[0].ID, items[1].ID)
	}
}

func TestExhibitionGalleryUpdateCollectsRemovedBlobs(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	store := &fakeStore{}
	svc := NewExhibitionService(gdb, store)
	item := createTestExhibition(t, svc, "diff", []db.GalleryItem{
		{URL: fakeStoreBase + "/keep.jpg", Caption: "gardée"},
		{URL: fakeStoreBase + "/drop.jpg", Caption: "retirée"},
		{URL: "https://elsewhere.example.com/foreign.jpg"},
	})

	updated, err := svc.UpdateGallery(context.Background(), item.ID, []db.GalleryItem{
		{URL: fakeStoreBase + "/keep.jpg", Caption: "gardée"},
		{URL: fakeStoreBase + "/new.jpg", Caption: "ajoutée"},
	})
	if err != nil {
		t.Fatalf("update gallery failed: %v", err)
	}

	if len(updated.GalleryImages) != 2 {
		t.Fatalf("expected 2 gallery images, got %#v", updated.GalleryImages)
	}
	// Only the dropped managed blob is collected; the foreign URL is ignored.
	if len(store.deleted) != 1 || store.deleted[0] != fakeStoreBase+"/drop.jpg" {
		t.Fatalf("unexpected blob deletions: %#v", store.deleted)
	}
}

func TestExhibitionDeleteCascadesBlobCleanup(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	store := &fakeStore{}
	svc := NewExhibitionService(gdb, store)
	item := createTestExhibition(t, svc, "finale", []db.GalleryItem{
		{URL: fakeStoreBase + "/g1.jpg"},
		{URL: fakeStoreBase + "/g2.jpg"},
	})

	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if len(store.deleted) != 3 {
		t.Fatalf("expected gallery + primary blob deletions, got %#v", store.deleted)
	}
	if _, err := svc.Get(item.ID); !errors.Is(err, ErrExhibitionNotFound) {
		t.Fatalf("expected record to be removed, got %v", err)
	}
}

func TestExhibitionDeleteUnknownID(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewExhibitionService(gdb, &fakeStore{})
	if err := svc.Delete(context.Background(), 404); !errors.Is(err, ErrExhibitionNotFound) {
		t.Fatalf("expected ErrExhibitionNotFound, got %v", err)
	}
}
