package service

import (
	"errors"
	"testing"

	"github.com/galerie/internal/db"
)

func TestSlotsRoundTrip(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSettingsService(gdb)

	slots, err := svc.GetSlots()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(slots) != 3 || slots[0] != nil || slots[1] != nil || slots[2] != nil {
		t.Fatalf("expected three empty slots, got %#v", slots)
	}

	id := uint(7)
	if err := svc.SetSlots([]*uint{&id, nil, nil}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	slots, err = svc.GetSlots()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if slots[0] == nil || *slots[0] != 7 || slots[1] != nil || slots[2] != nil {
		t.Fatalf("unexpected slots: %#v", slots)
	}
}

func TestSlotsLengthCheck(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSettingsService(gdb)
	if err := svc.SetSlots([]*uint{nil, nil}); !errors.Is(err, ErrSlotsLength) {
		t.Fatalf("expected ErrSlotsLength, got %v", err)
	}
	if err := svc.SetSlots(make([]*uint, 4)); !errors.Is(err, ErrSlotsLength) {
		t.Fatalf("expected ErrSlotsLength, got %v", err)
	}
}

func TestSettingUpsertKeepsSingleRow(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSettingsService(gdb)
	if err := svc.SetHours([]string{"Lun-Ven 10h-18h"}); err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	if err := svc.SetHours([]string{"Lun-Sam 10h-19h", "Dim fermé"}); err != nil {
		t.Fatalf("second set failed: %v", err)
	}

	var count int64
	if err := gdb.Model(&db.SiteSetting{}).Where("key = ?", db.SettingKeyHours).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row per key, got %d", count)
	}

	lines, err := svc.GetHours()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(lines) != 2 || lines[1] != "Dim fermé" {
		t.Fatalf("unexpected hours: %#v", lines)
	}
}

func TestFeaturedWorksRoundTrip(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSettingsService(gdb)
	works := []FeaturedWork{
		{ID: 1, Title: "Nocturne", ImageURL: "https://cdn.test/n.jpg"},
		{ID: 2, Title: "Aube", ImageURL: "https://cdn.test/a.jpg", Description: "série matinale"},
	}
	if err := svc.SetFeaturedWorks(works); err != nil {
		t.Fatalf("set works failed: %v", err)
	}
	if err := svc.SetFeaturedWorksOrder([]uint{2, 1}); err != nil {
		t.Fatalf("set order failed: %v", err)
	}

	loaded, err := svc.GetFeaturedWorks()
	if err != nil {
		t.Fatalf("get works failed: %v", err)
	}
	if len(loaded) != 2 || loaded[1].Description != "série matinale" {
		t.Fatalf("unexpected works: %#v", loaded)
	}

	order, err := svc.GetFeaturedWorksOrder()
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if len(order) != 2 || order[0] != 2 {
		t.Fatalf("unexpected order: %#v", order)
	}
}

func TestFeaturedDefaultsEmpty(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSettingsService(gdb)
	ids, err := svc.GetFeatured()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty featured list, got %#v", ids)
	}
}
