package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage bookmarked recipes",
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add [recipe-id]",
	Short: "Bookmark a recipe by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st, cleanup, err := newStore()
		cobra.CheckErr(err)
		defer cleanup()

		if err := st.FetchRecipe(context.Background(), args[0]); err != nil {
			cobra.CheckErr(fmt.Errorf("failed to fetch recipe: %w", err))
		}

		recipe := st.CurrentRecipe()
		added, err := st.AddBookmark(*recipe)
		cobra.CheckErr(err)

		if added {
			fmt.Printf("✅ Bookmarked '%s'\n", recipe.Title)
		} else {
			fmt.Printf("📖 '%s' is already bookmarked\n", recipe.Title)
		}
	},
}

var bookmarkRmCmd = &cobra.Command{
	Use:   "rm [recipe-id]",
	Short: "Remove a bookmark by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st, cleanup, err := newStore()
		cobra.CheckErr(err)
		defer cleanup()

		cobra.CheckErr(st.DeleteBookmark(args[0]))
		fmt.Printf("🗑  Removed bookmark %s\n", args[0])
	},
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarked recipes",
	Run: func(cmd *cobra.Command, args []string) {
		st, cleanup, err := newStore()
		cobra.CheckErr(err)
		defer cleanup()

		bookmarks := st.Bookmarks()
		if len(bookmarks) == 0 {
			fmt.Println("📖 No bookmarks yet. Use 'forkful search' to find recipes to save.")
			return
		}

		columns := []table.Column{
			{Title: "Title", Width: 40},
			{Title: "Publisher", Width: 20},
			{Title: "Servings", Width: 8},
			{Title: "ID", Width: 24},
		}

		rows := []table.Row{}
		for _, bookmark := range bookmarks {
			rows = append(rows, table.Row{
				truncateString(bookmark.Title, 38),
				truncateString(bookmark.Publisher, 18),
				fmt.Sprintf("%d", bookmark.Servings),
				bookmark.ID,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📖 Bookmarks (%d)\n\n", len(bookmarks))
		fmt.Println(t.View())
	},
}

func init() {
	bookmarkCmd.AddCommand(bookmarkAddCmd)
	bookmarkCmd.AddCommand(bookmarkRmCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)

	rootCmd.AddCommand(bookmarkCmd)
}
