package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for recipes",
	Long:  "Search the recipe catalog and display one page of results in a table",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		page, _ := cmd.Flags().GetInt("page")

		st, cleanup, err := newStore()
		cobra.CheckErr(err)
		defer cleanup()

		if err := st.RunSearch(context.Background(), query); err != nil {
			cobra.CheckErr(fmt.Errorf("search failed: %w", err))
		}

		results := st.Page(page)
		if len(results) == 0 {
			fmt.Println("No results found.")
			return
		}

		var (
			orange = lipgloss.Color("208")

			headerStyle = lipgloss.NewStyle().Foreground(orange).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(orange)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Title", "Publisher", "ID")

		offset := (page - 1) * st.Search().PageSize
		for i, result := range results {
			t.Row(
				fmt.Sprintf("%d", offset+i+1),
				truncateString(result.Title, 48),
				truncateString(result.Publisher, 20),
				result.ID,
			)
		}

		fmt.Println(t)
		fmt.Printf("Page %d of %d (%d results)\n", page, st.TotalPages(), len(st.Search().Results))
	},
}

func init() {
	searchCmd.Flags().IntP("page", "p", 1, "Result page to display")

	rootCmd.AddCommand(searchCmd)
}
