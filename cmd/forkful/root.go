package cmd

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/mbellini/forkful/pkg/app"
	"github.com/mbellini/forkful/pkg/config"
	"github.com/mbellini/forkful/pkg/data"
	"github.com/mbellini/forkful/pkg/forkify"
	"github.com/mbellini/forkful/pkg/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forkful",
	Short: "A terminal recipe browser",
	Long:  "Search recipes, bookmark the good ones and build your own cookbook, all from the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		st, cleanup, err := newStore()
		cobra.CheckErr(err)
		defer cleanup()

		a := app.NewApp(st, exportDir())
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newStore wires the API client and the bookmark database into a state
// store. Corrupt persisted bookmarks are reset with a warning instead of
// aborting.
func newStore() (*store.Store, func(), error) {
	dbPath := config.DBPath()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, nil, err
	}

	db, err := data.InitDuckDB(dbPath)
	if err != nil {
		return nil, nil, err
	}
	repo := data.NewRepository(db, config.BookmarksKey)
	source := forkify.NewClient(config.BaseURL, config.APIKey(), config.RequestTimeout)

	st, err := store.New(source, repo, config.PageSize)
	if err != nil {
		var parseErr *data.ParseError
		if !errors.As(err, &parseErr) {
			db.Close()
			return nil, nil, err
		}
		log.Printf("Warning: resetting corrupt bookmark data: %v", parseErr)
		if err := repo.SaveBookmarks(nil); err != nil {
			db.Close()
			return nil, nil, err
		}
		if st, err = store.New(source, repo, config.PageSize); err != nil {
			db.Close()
			return nil, nil, err
		}
	}

	return st, func() { db.Close() }, nil
}

func exportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
