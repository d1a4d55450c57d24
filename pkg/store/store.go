package store

import (
	"context"
	"fmt"

	"github.com/mbellini/forkful/pkg/data"
	"github.com/mbellini/forkful/pkg/forkify"
)

// SearchState holds the last executed query and its paged results.
type SearchState struct {
	Query    string
	Results  []data.SearchResult
	Page     int
	PageSize int
}

// BookmarkRepository is the durable half of the bookmark list.
type BookmarkRepository interface {
	LoadBookmarks() ([]data.Recipe, error)
	SaveBookmarks([]data.Recipe) error
}

// Store owns the application state: the current recipe, the search state
// and the bookmark list. It is single-writer; callers invoke operations
// sequentially and failures never leave partial mutations behind.
type Store struct {
	source forkify.Source
	repo   BookmarkRepository

	recipe    *data.Recipe
	search    SearchState
	bookmarks []data.Recipe
}

// New builds a store and loads the persisted bookmarks. A *data.ParseError
// from the repository is returned as-is so the caller can decide to start
// with an empty list.
func New(source forkify.Source, repo BookmarkRepository, pageSize int) (*Store, error) {
	bookmarks, err := repo.LoadBookmarks()
	if err != nil {
		return nil, err
	}
	return &Store{
		source:    source,
		repo:      repo,
		search:    SearchState{Page: 1, PageSize: pageSize},
		bookmarks: bookmarks,
	}, nil
}

// CurrentRecipe returns the recipe driving the detail view, or nil.
func (s *Store) CurrentRecipe() *data.Recipe { return s.recipe }

// Bookmarks returns a copy of the bookmark list in insertion order.
func (s *Store) Bookmarks() []data.Recipe {
	bookmarks := make([]data.Recipe, len(s.bookmarks))
	copy(bookmarks, s.bookmarks)
	return bookmarks
}

// Search returns a copy of the current search state.
func (s *Store) Search() SearchState { return s.search }

// IsBookmarked reports whether a recipe id is in the bookmark list.
func (s *Store) IsBookmarked(id string) bool {
	for _, b := range s.bookmarks {
		if b.ID == id {
			return true
		}
	}
	return false
}

// FetchRecipe loads a recipe by id and installs it as the current recipe.
// On failure the previous current recipe stays in place.
func (s *Store) FetchRecipe(ctx context.Context, id string) error {
	recipe, err := s.source.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	recipe.Bookmarked = s.IsBookmarked(recipe.ID)
	s.recipe = recipe
	return nil
}

// RunSearch executes a query and replaces the result list, resetting the
// current page to 1.
func (s *Store) RunSearch(ctx context.Context, query string) error {
	results, err := s.source.Search(ctx, query)
	if err != nil {
		return err
	}
	s.search.Query = query
	s.search.Results = results
	s.search.Page = 1
	return nil
}

// Page records the requested page as current and returns its slice of
// results. Out-of-range pages yield an empty slice.
func (s *Store) Page(page int) []data.SearchResult {
	s.search.Page = page

	start := (page - 1) * s.search.PageSize
	end := start + s.search.PageSize
	if start < 0 || start >= len(s.search.Results) {
		return nil
	}
	if end > len(s.search.Results) {
		end = len(s.search.Results)
	}
	return s.search.Results[start:end]
}

// CurrentPage returns the slice for the stored page number.
func (s *Store) CurrentPage() []data.SearchResult {
	return s.Page(s.search.Page)
}

// TotalPages reports how many pages the current result list spans.
func (s *Store) TotalPages() int {
	if len(s.search.Results) == 0 {
		return 0
	}
	return (len(s.search.Results) + s.search.PageSize - 1) / s.search.PageSize
}

// RescaleServings adjusts the current recipe's ingredient quantities for
// the new serving count.
func (s *Store) RescaleServings(servings int) error {
	if s.recipe == nil {
		return fmt.Errorf("no recipe loaded")
	}
	return s.recipe.Rescale(servings)
}

// AddBookmark appends a recipe to the bookmark list and persists the whole
// list. It is idempotent by id; the return value reports whether an insert
// happened.
func (s *Store) AddBookmark(recipe data.Recipe) (bool, error) {
	if s.IsBookmarked(recipe.ID) {
		return false, nil
	}

	recipe.Bookmarked = true
	s.bookmarks = append(s.bookmarks, recipe)
	if s.recipe != nil && s.recipe.ID == recipe.ID {
		s.recipe.Bookmarked = true
	}

	if err := s.repo.SaveBookmarks(s.bookmarks); err != nil {
		return true, err
	}
	return true, nil
}

// DeleteBookmark removes the first bookmark with the given id and persists
// the list. An absent id is a no-op.
func (s *Store) DeleteBookmark(id string) error {
	index := -1
	for i, b := range s.bookmarks {
		if b.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil
	}

	s.bookmarks = append(s.bookmarks[:index], s.bookmarks[index+1:]...)
	if s.recipe != nil && s.recipe.ID == id {
		s.recipe.Bookmarked = false
	}
	return s.repo.SaveBookmarks(s.bookmarks)
}
