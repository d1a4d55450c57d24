package data

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// ParseError reports persisted bookmark data that could not be decoded.
// It is recoverable: callers may treat the list as empty and overwrite it
// on the next mutation.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("stored value under %q is not valid JSON: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT)`); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Repository persists the bookmark list as a single JSON document in a
// key-value table. The whole list is rewritten on every mutation.
type Repository struct {
	db  *sql.DB
	key string
}

func NewRepository(db *sql.DB, key string) *Repository {
	return &Repository{db: db, key: key}
}

// LoadBookmarks reads the persisted bookmark list. A missing key yields an
// empty list; a present but malformed value yields a *ParseError.
func (r *Repository) LoadBookmarks() ([]Recipe, error) {
	var raw string
	err := r.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, r.key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmarks: %w", err)
	}

	var bookmarks []Recipe
	if err := json.Unmarshal([]byte(raw), &bookmarks); err != nil {
		return nil, &ParseError{Key: r.key, Err: err}
	}
	return bookmarks, nil
}

// SaveBookmarks overwrites the persisted list with the given one.
func (r *Repository) SaveBookmarks(bookmarks []Recipe) error {
	raw, err := json.Marshal(bookmarks)
	if err != nil {
		return fmt.Errorf("failed to encode bookmarks: %w", err)
	}
	if _, err := r.db.Exec(`DELETE FROM kv WHERE key = ?`, r.key); err != nil {
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}
	if _, err := r.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, r.key, string(raw)); err != nil {
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}
	return nil
}

func (r *Repository) Close() error { return r.db.Close() }
