package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/mbellini/forkful/pkg/data"
)

// mockSource implements forkify.Source for tests.
type mockSource struct {
	searchFunc func(ctx context.Context, query string) ([]data.SearchResult, error)
	getFunc    func(ctx context.Context, id string) (*data.Recipe, error)
	createFunc func(ctx context.Context, recipe *data.Recipe) (*data.Recipe, error)
}

func (m *mockSource) Search(ctx context.Context, query string) ([]data.SearchResult, error) {
	if m.searchFunc == nil {
		return nil, nil
	}
	return m.searchFunc(ctx, query)
}

func (m *mockSource) GetRecipe(ctx context.Context, id string) (*data.Recipe, error) {
	if m.getFunc == nil {
		return nil, fmt.Errorf("not implemented")
	}
	return m.getFunc(ctx, id)
}

func (m *mockSource) CreateRecipe(ctx context.Context, recipe *data.Recipe) (*data.Recipe, error) {
	if m.createFunc == nil {
		return nil, fmt.Errorf("not implemented")
	}
	return m.createFunc(ctx, recipe)
}

// memRepo is an in-memory BookmarkRepository recording every save.
type memRepo struct {
	initial []data.Recipe
	loadErr error
	saveErr error
	saves   [][]data.Recipe
}

func (r *memRepo) LoadBookmarks() ([]data.Recipe, error) {
	return r.initial, r.loadErr
}

func (r *memRepo) SaveBookmarks(bookmarks []data.Recipe) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	saved := make([]data.Recipe, len(bookmarks))
	copy(saved, bookmarks)
	r.saves = append(r.saves, saved)
	return nil
}

func (r *memRepo) lastSave() []data.Recipe {
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

func newTestStore(t *testing.T, source *mockSource, repo *memRepo) *Store {
	t.Helper()
	st, err := New(source, repo, 10)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return st
}

func summaries(n int) []data.SearchResult {
	out := make([]data.SearchResult, n)
	for i := range out {
		out[i] = data.SearchResult{
			ID:    fmt.Sprintf("r%d", i),
			Title: fmt.Sprintf("Recipe %d", i),
		}
	}
	return out
}

func TestRunSearchResetsPage(t *testing.T) {
	source := &mockSource{
		searchFunc: func(ctx context.Context, query string) ([]data.SearchResult, error) {
			return summaries(25), nil
		},
	}
	st := newTestStore(t, source, &memRepo{})

	if err := st.RunSearch(context.Background(), "pizza"); err != nil {
		t.Fatalf("RunSearch failed: %v", err)
	}
	st.Page(3)

	if err := st.RunSearch(context.Background(), "pasta"); err != nil {
		t.Fatalf("RunSearch failed: %v", err)
	}

	search := st.Search()
	if search.Query != "pasta" {
		t.Errorf("Expected query 'pasta', got %q", search.Query)
	}
	if search.Page != 1 {
		t.Errorf("Expected page reset to 1, got %d", search.Page)
	}
}

func TestRunSearchPropagatesError(t *testing.T) {
	source := &mockSource{
		searchFunc: func(ctx context.Context, query string) ([]data.SearchResult, error) {
			return nil, fmt.Errorf("boom")
		},
	}
	st := newTestStore(t, source, &memRepo{})

	if err := st.RunSearch(context.Background(), "pizza"); err == nil {
		t.Fatal("Expected search error to propagate")
	}
	if st.Search().Query != "" {
		t.Error("Expected no state mutation on search failure")
	}
}

func TestPageSlicing(t *testing.T) {
	source := &mockSource{
		searchFunc: func(ctx context.Context, query string) ([]data.SearchResult, error) {
			return summaries(25), nil
		},
	}
	st := newTestStore(t, source, &memRepo{})
	st.RunSearch(context.Background(), "pizza")

	t.Run("full page", func(t *testing.T) {
		page := st.Page(2)
		if len(page) != 10 {
			t.Fatalf("Expected 10 results, got %d", len(page))
		}
		if page[0].ID != "r10" || page[9].ID != "r19" {
			t.Errorf("Expected results [10,20), got %s..%s", page[0].ID, page[9].ID)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		page := st.Page(3)
		if len(page) != 5 {
			t.Fatalf("Expected 5 results, got %d", len(page))
		}
		if page[0].ID != "r20" {
			t.Errorf("Expected first result r20, got %s", page[0].ID)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		first := st.Page(2)
		second := st.Page(2)
		if len(first) != len(second) {
			t.Fatalf("Expected equal pages, got %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("Expected equal result at %d", i)
			}
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if page := st.Page(4); len(page) != 0 {
			t.Errorf("Expected empty page, got %d results", len(page))
		}
		if page := st.Page(0); len(page) != 0 {
			t.Errorf("Expected empty page for page 0, got %d results", len(page))
		}
	})

	t.Run("page argument is recorded", func(t *testing.T) {
		st.Page(2)
		if st.Search().Page != 2 {
			t.Errorf("Expected stored page 2, got %d", st.Search().Page)
		}
	})

	t.Run("total pages", func(t *testing.T) {
		if total := st.TotalPages(); total != 3 {
			t.Errorf("Expected 3 pages, got %d", total)
		}
	})
}

func TestFetchRecipeSetsBookmarkedFlag(t *testing.T) {
	source := &mockSource{
		getFunc: func(ctx context.Context, id string) (*data.Recipe, error) {
			return &data.Recipe{ID: id, Title: "Pizza", Servings: 4}, nil
		},
	}
	repo := &memRepo{initial: []data.Recipe{{ID: "r1", Title: "Pizza", Bookmarked: true}}}
	st := newTestStore(t, source, repo)

	if err := st.FetchRecipe(context.Background(), "r1"); err != nil {
		t.Fatalf("FetchRecipe failed: %v", err)
	}
	if !st.CurrentRecipe().Bookmarked {
		t.Error("Expected bookmarked flag set for a bookmarked id")
	}

	if err := st.FetchRecipe(context.Background(), "r2"); err != nil {
		t.Fatalf("FetchRecipe failed: %v", err)
	}
	if st.CurrentRecipe().Bookmarked {
		t.Error("Expected bookmarked flag clear for an unknown id")
	}
}

func TestFetchRecipeKeepsPreviousOnFailure(t *testing.T) {
	calls := 0
	source := &mockSource{
		getFunc: func(ctx context.Context, id string) (*data.Recipe, error) {
			calls++
			if calls > 1 {
				return nil, fmt.Errorf("boom")
			}
			return &data.Recipe{ID: id, Title: "Pizza"}, nil
		},
	}
	st := newTestStore(t, source, &memRepo{})

	if err := st.FetchRecipe(context.Background(), "r1"); err != nil {
		t.Fatalf("FetchRecipe failed: %v", err)
	}
	if err := st.FetchRecipe(context.Background(), "r2"); err == nil {
		t.Fatal("Expected fetch error to propagate")
	}
	if st.CurrentRecipe() == nil || st.CurrentRecipe().ID != "r1" {
		t.Error("Expected previous recipe to survive a failed fetch")
	}
}

func TestAddBookmarkIsIdempotent(t *testing.T) {
	repo := &memRepo{}
	st := newTestStore(t, &mockSource{}, repo)

	added, err := st.AddBookmark(data.Recipe{ID: "r1", Title: "Pizza"})
	if err != nil {
		t.Fatalf("AddBookmark failed: %v", err)
	}
	if !added {
		t.Error("Expected first add to insert")
	}

	added, err = st.AddBookmark(data.Recipe{ID: "r1", Title: "Pizza"})
	if err != nil {
		t.Fatalf("AddBookmark failed: %v", err)
	}
	if added {
		t.Error("Expected duplicate add to be a no-op")
	}

	if len(st.Bookmarks()) != 1 {
		t.Errorf("Expected 1 bookmark, got %d", len(st.Bookmarks()))
	}
	if len(repo.saves) != 1 {
		t.Errorf("Expected 1 persist, got %d", len(repo.saves))
	}
}

func TestAddThenDeleteRestoresState(t *testing.T) {
	source := &mockSource{
		getFunc: func(ctx context.Context, id string) (*data.Recipe, error) {
			return &data.Recipe{ID: id, Title: "Pizza", Servings: 4}, nil
		},
	}
	repo := &memRepo{initial: []data.Recipe{{ID: "r0", Title: "Toast", Bookmarked: true}}}
	st := newTestStore(t, source, repo)
	st.FetchRecipe(context.Background(), "r1")

	if _, err := st.AddBookmark(*st.CurrentRecipe()); err != nil {
		t.Fatalf("AddBookmark failed: %v", err)
	}
	if !st.CurrentRecipe().Bookmarked {
		t.Error("Expected current recipe flagged after bookmarking")
	}

	if err := st.DeleteBookmark("r1"); err != nil {
		t.Fatalf("DeleteBookmark failed: %v", err)
	}
	if st.CurrentRecipe().Bookmarked {
		t.Error("Expected flag cleared after deleting the bookmark")
	}

	bookmarks := st.Bookmarks()
	if len(bookmarks) != 1 || bookmarks[0].ID != "r0" {
		t.Errorf("Expected the prior bookmark list back, got %v", bookmarks)
	}
	if last := repo.lastSave(); len(last) != 1 || last[0].ID != "r0" {
		t.Errorf("Expected persisted list restored, got %v", last)
	}
}

func TestBookmarksReturnsCopy(t *testing.T) {
	repo := &memRepo{initial: []data.Recipe{{ID: "r1", Title: "Pizza"}}}
	st := newTestStore(t, &mockSource{}, repo)

	bookmarks := st.Bookmarks()
	bookmarks[0].Title = "Mangled"

	if st.Bookmarks()[0].Title != "Pizza" {
		t.Error("Expected callers to get a copy of the bookmark list")
	}
}

func TestDeleteBookmarkAbsentIsNoop(t *testing.T) {
	repo := &memRepo{initial: []data.Recipe{{ID: "r1"}}}
	st := newTestStore(t, &mockSource{}, repo)

	if err := st.DeleteBookmark("missing"); err != nil {
		t.Fatalf("DeleteBookmark failed: %v", err)
	}
	if len(st.Bookmarks()) != 1 {
		t.Errorf("Expected bookmark list untouched, got %d entries", len(st.Bookmarks()))
	}
	if len(repo.saves) != 0 {
		t.Error("Expected no persist for an absent id")
	}
}

func TestRescaleServingsWithoutRecipe(t *testing.T) {
	st := newTestStore(t, &mockSource{}, &memRepo{})

	if err := st.RescaleServings(4); err == nil {
		t.Fatal("Expected error when no recipe is loaded")
	}
}

func TestNewPropagatesLoadError(t *testing.T) {
	repo := &memRepo{loadErr: fmt.Errorf("corrupt")}

	if _, err := New(&mockSource{}, repo, 10); err == nil {
		t.Fatal("Expected load error to propagate")
	}
}
