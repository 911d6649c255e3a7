package application

import (
	"context"
	"errors"
	"testing"

	"github.com/Donovan7777/hotel/internal/persistence"
	"github.com/Donovan7777/hotel/internal/testfixtures"
)

func newRoomTypeService(store *storeStub) *RoomTypeService {
	ids := testfixtures.NewIDGenerator()
	return NewRoomTypeService(store, &txRunnerStub{}, ids.NextFunc(), nil)
}

func TestRoomTypeService_Create(t *testing.T) {
	t.Parallel()

	t.Run("persists a new type with a normalized ceiling price", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		svc := newRoomTypeService(store)

		view, err := svc.Create(context.Background(), RoomTypeInput{
			Name:         "Suite",
			FloorPrice:   150,
			CeilingPrice: strPtr("450,5"),
			Description:  strPtr("Top floor suite"),
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if view.CeilingPrice == nil {
			t.Fatal("expected a ceiling price on the view")
		}
		if got := *view.CeilingPrice; got != "450.5     " {
			t.Fatalf("expected the fixed-width ceiling text, got %q", got)
		}
		if len(*view.CeilingPrice) != 10 {
			t.Fatalf("expected 10 character ceiling text, got %d", len(*view.CeilingPrice))
		}
	})

	t.Run("returns the existing type instead of duplicating a name", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		svc := newRoomTypeService(store)

		first, err := svc.Create(context.Background(), RoomTypeInput{Name: "Double", FloorPrice: 80})
		if err != nil {
			t.Fatalf("first Create failed: %v", err)
		}

		second, err := svc.Create(context.Background(), RoomTypeInput{Name: "Double", FloorPrice: 999})
		if err != nil {
			t.Fatalf("second Create failed: %v", err)
		}

		if second.ID != first.ID {
			t.Fatalf("expected the existing type back, got %s and %s", first.ID, second.ID)
		}
		if second.FloorPrice != 80 {
			t.Fatalf("expected the stored floor price, got %v", second.FloorPrice)
		}
		if len(store.roomTypes) != 1 {
			t.Fatalf("expected a single stored type, got %d", len(store.roomTypes))
		}
	})

	t.Run("rejects invalid field values", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		svc := newRoomTypeService(store)

		longDescription := make([]byte, 201)
		for i := range longDescription {
			longDescription[i] = 'x'
		}

		_, err := svc.Create(context.Background(), RoomTypeInput{
			Name:        "",
			FloorPrice:  0,
			Description: strPtr(string(longDescription)),
		})

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected a ValidationError, got %v", err)
		}
		for _, field := range []string{"name", "floor_price", "description"} {
			if _, ok := vErr.FieldErrors[field]; !ok {
				t.Fatalf("expected a field error for %s, got %v", field, vErr.FieldErrors)
			}
		}
	})

	t.Run("rejects a ceiling below the floor", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		svc := newRoomTypeService(store)

		_, err := svc.Create(context.Background(), RoomTypeInput{
			Name:         "Suite",
			FloorPrice:   150,
			CeilingPrice: strPtr("100"),
		})
		if !errors.Is(err, ErrInvalidCeilingPrice) {
			t.Fatalf("expected ErrInvalidCeilingPrice, got %v", err)
		}
	})

	t.Run("rejects unparseable ceiling text", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		svc := newRoomTypeService(store)

		for _, raw := range []string{"abc", "12345678901", "1.2.3"} {
			_, err := svc.Create(context.Background(), RoomTypeInput{
				Name:         "Suite",
				FloorPrice:   150,
				CeilingPrice: strPtr(raw),
			})
			if !errors.Is(err, ErrInvalidCeilingPrice) {
				t.Fatalf("expected ErrInvalidCeilingPrice for %q, got %v", raw, err)
			}
		}
	})
}

func TestRoomTypeService_Update(t *testing.T) {
	t.Parallel()

	t.Run("validates the ceiling against the incoming floor", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		store.roomTypes["type-1"] = persistence.RoomType{ID: "type-1", Name: "Double", FloorPrice: 80}
		svc := newRoomTypeService(store)

		// New floor 200 with ceiling 150: both patched, ceiling checked
		// against the incoming floor.
		_, err := svc.Update(context.Background(), "type-1", RoomTypePatch{
			FloorPrice:   floatPtr(200),
			CeilingPrice: strPtr("150"),
		})
		if !errors.Is(err, ErrInvalidCeilingPrice) {
			t.Fatalf("expected ErrInvalidCeilingPrice, got %v", err)
		}
	})

	t.Run("validates a raised floor against the stored ceiling", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		store.roomTypes["type-1"] = persistence.RoomType{
			ID:           "type-1",
			Name:         "Double",
			FloorPrice:   80,
			CeilingPrice: strPtr("100       "),
		}
		svc := newRoomTypeService(store)

		_, err := svc.Update(context.Background(), "type-1", RoomTypePatch{FloorPrice: floatPtr(120)})
		if !errors.Is(err, ErrInvalidCeilingPrice) {
			t.Fatalf("expected ErrInvalidCeilingPrice, got %v", err)
		}
	})

	t.Run("applies a partial patch", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		store.roomTypes["type-1"] = persistence.RoomType{
			ID:          "type-1",
			Name:        "Double",
			FloorPrice:  80,
			Description: strPtr("two beds"),
		}
		svc := newRoomTypeService(store)

		view, err := svc.Update(context.Background(), "type-1", RoomTypePatch{Name: strPtr("Twin")})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if view.Name != "Twin" {
			t.Fatalf("expected patched name, got %s", view.Name)
		}
		if view.FloorPrice != 80 || view.Description == nil || *view.Description != "two beds" {
			t.Fatalf("expected untouched fields preserved, got %+v", view)
		}
	})

	t.Run("reports a missing type", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		svc := newRoomTypeService(store)

		_, err := svc.Update(context.Background(), "missing", RoomTypePatch{Name: strPtr("x")})
		if !errors.Is(err, ErrRoomTypeNotFound) {
			t.Fatalf("expected ErrRoomTypeNotFound, got %v", err)
		}
	})
}

func TestRoomTypeService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("blocks deletion while rooms reference the type", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		typeID := "type-1"
		store.roomTypes[typeID] = persistence.RoomType{ID: typeID, Name: "Double", FloorPrice: 80}
		store.rooms["room-1"] = persistence.Room{ID: "room-1", Number: 101, RoomTypeID: &typeID}
		svc := newRoomTypeService(store)

		_, err := svc.Delete(context.Background(), typeID)
		if !errors.Is(err, ErrDependencyExists) {
			t.Fatalf("expected ErrDependencyExists, got %v", err)
		}
		if _, ok := store.roomTypes[typeID]; !ok {
			t.Fatal("expected the type to survive the blocked delete")
		}
	})

	t.Run("is idempotent once unreferenced", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		store.roomTypes["type-1"] = persistence.RoomType{ID: "type-1", Name: "Double", FloorPrice: 80}
		svc := newRoomTypeService(store)

		deleted, err := svc.Delete(context.Background(), "type-1")
		if err != nil || !deleted {
			t.Fatalf("expected first delete to report true, got %v %v", deleted, err)
		}
		deleted, err = svc.Delete(context.Background(), "type-1")
		if err != nil || deleted {
			t.Fatalf("expected repeated delete to report false without error, got %v %v", deleted, err)
		}
	})
}

func TestRoomTypeService_ListAndSearch(t *testing.T) {
	t.Parallel()

	t.Run("lists types ordered by name", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		for _, seed := range []struct{ id, name string }{
			{"type-3", "Suite"},
			{"type-1", "Double"},
			{"type-2", "Single"},
		} {
			store.roomTypes[seed.id] = persistence.RoomType{ID: seed.id, Name: seed.name, FloorPrice: 50}
		}
		svc := newRoomTypeService(store)

		views, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		want := []string{"Double", "Single", "Suite"}
		for i := range want {
			if views[i].Name != want[i] {
				t.Fatalf("expected order %v, got %+v", want, views)
			}
		}
	})

	t.Run("search without an id matches nothing", func(t *testing.T) {
		t.Parallel()

		store := newStoreStub()
		store.roomTypes["type-1"] = persistence.RoomType{ID: "type-1", Name: "Double", FloorPrice: 80}
		svc := newRoomTypeService(store)

		views, err := svc.Search(context.Background(), "")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(views) != 0 {
			t.Fatalf("expected empty result, got %d", len(views))
		}

		views, err = svc.Search(context.Background(), "type-1")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(views) != 1 || views[0].ID != "type-1" {
			t.Fatalf("expected the single type, got %+v", views)
		}
	})
}
