package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/storage"
)

func stringPtr(s string) *string { return &s }

func TestCollection_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	store := &model.Store{
		Bookmarks: []model.Bookmark{
			{ID: "b2", Title: "Second", URL: "https://two.com", Domain: "two.com", Type: model.KindLink, Category: "Work", CreatedAt: created},
			{ID: "f1", Title: "Folder", Type: model.KindFolder, Category: "General", CreatedAt: created},
			{ID: "b1", Title: "Nested", URL: "https://one.com", Domain: "one.com", Type: model.KindLink, ParentID: stringPtr("f1"), Category: "General", CreatedAt: created},
		},
	}

	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			c := storage.NewCollection(kv, nil)
			if err := c.Save(ctx, store); err != nil {
				t.Fatalf("save: %v", err)
			}

			loaded, err := c.Load(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}

			if loaded.Len() != 3 {
				t.Fatalf("expected 3 records, got %d", loaded.Len())
			}
			// Flat order is the custom order and must survive.
			for i, want := range []string{"b2", "f1", "b1"} {
				if loaded.Bookmarks[i].ID != want {
					t.Errorf("order not preserved at %d: got %q, want %q", i, loaded.Bookmarks[i].ID, want)
				}
			}
			nested := loaded.Get("b1")
			if nested.ParentID == nil || *nested.ParentID != "f1" {
				t.Error("expected parent to be preserved")
			}
			if !nested.CreatedAt.Equal(created) {
				t.Errorf("createdAt: got %v, want %v", nested.CreatedAt, created)
			}
			if !loaded.Get("f1").IsFolder() {
				t.Error("expected folder type to be preserved")
			}
			if loaded.Get("b2").ParentID != nil {
				t.Error("expected nil parent for root record")
			}
		})
	}
}

func TestCollection_LoadEmpty(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store, err := storage.NewCollection(kv, nil).Load(context.Background())
			if err != nil {
				t.Fatalf("expected no error for missing collection, got: %v", err)
			}
			if store.Len() != 0 || store.Bookmarks == nil {
				t.Error("expected empty, non-nil store")
			}
		})
	}
}

func TestCollection_LoadCorrupt(t *testing.T) {
	ctx := context.Background()
	kv, err := storage.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Put(ctx, storage.BookmarksKey, []byte(`{"not":"an array"}`)); err != nil {
		t.Fatal(err)
	}

	if _, err := storage.NewCollection(kv, nil).Load(ctx); err == nil {
		t.Error("expected error for corrupt collection")
	}
}

func TestCollection_Preferences(t *testing.T) {
	ctx := context.Background()

	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			c := storage.NewCollection(kv, nil)

			prefs, err := c.LoadPreferences(ctx)
			if err != nil {
				t.Fatalf("load defaults: %v", err)
			}
			if prefs != storage.DefaultPreferences() {
				t.Errorf("expected defaults, got %+v", prefs)
			}

			want := storage.Preferences{Sort: "newest", Category: "Work", ConfirmDelete: false}
			if err := c.SavePreferences(ctx, want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := c.LoadPreferences(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestCollection_UnreadablePreferences(t *testing.T) {
	ctx := context.Background()
	kv, err := storage.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Put(ctx, storage.PreferencesKey, []byte(`not json`)); err != nil {
		t.Fatal(err)
	}

	prefs, err := storage.NewCollection(kv, nil).LoadPreferences(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs != storage.DefaultPreferences() {
		t.Errorf("expected defaults, got %+v", prefs)
	}
}
