package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	// BaseURL is the Forkify recipe API endpoint.
	BaseURL = "https://forkify-api.herokuapp.com/api/v2/recipes"

	// RequestTimeout bounds every API call.
	RequestTimeout = 10 * time.Second

	// PageSize is the number of search results shown per page.
	PageSize = 10

	// BookmarksKey is the storage key the bookmark list is persisted under.
	BookmarksKey = "bookmarks"
)

// APIKey returns the Forkify developer key, loading a .env file if one is
// present. An empty key still allows read-only browsing of public recipes.
func APIKey() string {
	godotenv.Load()
	return os.Getenv("FORKFUL_API_KEY")
}

// DBPath returns the path of the local bookmark database.
func DBPath() string {
	if p := os.Getenv("FORKFUL_DB"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "forkful.db"
	}
	return home + "/.forkful/forkful.db"
}
