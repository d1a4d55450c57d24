package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func setupTestRepo(t *testing.T) (*Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "forkful-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	db, err := InitDuckDB(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to init DB: %v", err)
	}

	repo := NewRepository(db, "bookmarks")

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return repo, cleanup
}

func TestLoadBookmarksEmpty(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	bookmarks, err := repo.LoadBookmarks()
	if err != nil {
		t.Fatalf("Failed to load bookmarks: %v", err)
	}
	if len(bookmarks) != 0 {
		t.Errorf("Expected 0 bookmarks, got %d", len(bookmarks))
	}
}

func TestSaveAndLoadBookmarks(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	q := 2.0
	bookmarks := []Recipe{
		{
			ID:          "r1",
			Title:       "Pizza Margherita",
			Publisher:   "Closet Cooking",
			SourceURL:   "https://example.com/pizza",
			CookingTime: 45,
			Servings:    4,
			Bookmarked:  true,
			Ingredients: []Ingredient{{Quantity: &q, Unit: "kg", Description: "flour"}},
		},
		{ID: "r2", Title: "Avocado Toast", Publisher: "101 Cookbooks", Bookmarked: true, UserKey: "user-key"},
	}

	if err := repo.SaveBookmarks(bookmarks); err != nil {
		t.Fatalf("Failed to save bookmarks: %v", err)
	}

	loaded, err := repo.LoadBookmarks()
	if err != nil {
		t.Fatalf("Failed to load bookmarks: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("Expected 2 bookmarks, got %d", len(loaded))
	}
	if loaded[0].ID != "r1" || loaded[1].ID != "r2" {
		t.Errorf("Expected insertion order preserved, got %s, %s", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].CookingTime != 45 {
		t.Errorf("Expected CookingTime 45, got %d", loaded[0].CookingTime)
	}
	if loaded[0].Ingredients[0].Quantity == nil || *loaded[0].Ingredients[0].Quantity != 2 {
		t.Error("Expected ingredient quantity to round-trip")
	}
	if loaded[1].UserKey != "user-key" {
		t.Errorf("Expected UserKey to round-trip, got %q", loaded[1].UserKey)
	}
}

func TestSaveBookmarksOverwritesWhole(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	if err := repo.SaveBookmarks([]Recipe{{ID: "r1"}, {ID: "r2"}}); err != nil {
		t.Fatalf("Failed to save bookmarks: %v", err)
	}
	if err := repo.SaveBookmarks([]Recipe{{ID: "r3"}}); err != nil {
		t.Fatalf("Failed to save bookmarks: %v", err)
	}

	loaded, err := repo.LoadBookmarks()
	if err != nil {
		t.Fatalf("Failed to load bookmarks: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "r3" {
		t.Errorf("Expected the saved list to replace the old one, got %v", loaded)
	}
}

func TestLoadBookmarksMalformed(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	if _, err := repo.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, "bookmarks", "{not json"); err != nil {
		t.Fatalf("Failed to plant malformed value: %v", err)
	}

	_, err := repo.LoadBookmarks()
	if err == nil {
		t.Fatal("Expected an error for malformed persisted data")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *ParseError, got %T: %v", err, err)
	}
	if parseErr.Key != "bookmarks" {
		t.Errorf("Expected key 'bookmarks', got %q", parseErr.Key)
	}
}
