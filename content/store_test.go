package content

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreBanner(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := store.Banner(ctx)
	if err != nil {
		t.Fatalf("Banner: %v", err)
	}
	if got != DefaultBanner() {
		t.Fatalf("empty store should serve the default banner, got %+v", got)
	}

	updated := Banner{Text: "Aniversario 30 años", Image: "https://cdn.example/hero.jpg", RadioURL: "https://stream.example/live"}
	if err := store.UpdateBanner(ctx, updated); err != nil {
		t.Fatalf("UpdateBanner: %v", err)
	}

	got, err = store.Banner(ctx)
	if err != nil {
		t.Fatalf("Banner after update: %v", err)
	}
	if got != updated {
		t.Fatalf("Banner = %+v, want %+v", got, updated)
	}
}

func TestMemoryStoreAds(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.AddAd(ctx, Ad{Company: "Ferretería Austral", URL: "https://ferreteria.example"})
	if err != nil {
		t.Fatalf("AddAd: %v", err)
	}
	second, err := store.AddAd(ctx, Ad{Company: "Panadería del Sur"})
	if err != nil {
		t.Fatalf("AddAd: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("IDs must be unique, both got %d", first.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Errorf("AddAd should stamp CreatedAt")
	}

	ads, err := store.Ads(ctx)
	if err != nil {
		t.Fatalf("Ads: %v", err)
	}
	if len(ads) != 2 || ads[0].ID != first.ID || ads[1].ID != second.ID {
		t.Fatalf("Ads should list in insertion order, got %+v", ads)
	}

	first.Text = "Nueva promoción"
	if err := store.UpdateAd(ctx, first); err != nil {
		t.Fatalf("UpdateAd: %v", err)
	}

	if err := store.DeleteAd(ctx, second.ID); err != nil {
		t.Fatalf("DeleteAd: %v", err)
	}
	if err := store.DeleteAd(ctx, second.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleting a missing ad should return ErrNotFound, got %v", err)
	}
	if err := store.UpdateAd(ctx, Ad{ID: 999}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("updating a missing ad should return ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreSchedule(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	item, err := store.AddScheduleItem(ctx, ScheduleItem{Day: "Lunes", Time: "08:00", Program: "El Matinal"})
	if err != nil {
		t.Fatalf("AddScheduleItem: %v", err)
	}

	item.Program = "El Matinal Austral"
	if err := store.UpdateScheduleItem(ctx, item); err != nil {
		t.Fatalf("UpdateScheduleItem: %v", err)
	}

	items, err := store.Schedule(ctx)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(items) != 1 || items[0].Program != "El Matinal Austral" {
		t.Fatalf("Schedule = %+v", items)
	}

	if err := store.DeleteScheduleItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteScheduleItem: %v", err)
	}
	if err := store.DeleteScheduleItem(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should return ErrNotFound, got %v", err)
	}
}
