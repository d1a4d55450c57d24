package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mbellini/forkful/pkg/app/styles"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [recipe-id]",
	Short: "Show a recipe",
	Long:  "Fetch a recipe by id and print its ingredients, optionally rescaled for a different serving count",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		servings, _ := cmd.Flags().GetInt("servings")

		st, cleanup, err := newStore()
		cobra.CheckErr(err)
		defer cleanup()

		if err := st.FetchRecipe(context.Background(), args[0]); err != nil {
			cobra.CheckErr(fmt.Errorf("failed to fetch recipe: %w", err))
		}
		if servings > 0 {
			cobra.CheckErr(st.RescaleServings(servings))
		}

		recipe := st.CurrentRecipe()
		title := recipe.Title
		if recipe.Bookmarked {
			title += " 🔖"
		}

		fmt.Println(styles.TitleStyle.Render(title))
		fmt.Println(styles.MutedStyle.Render(fmt.Sprintf("by %s • %d minutes • serves %d",
			recipe.Publisher, recipe.CookingTime, recipe.Servings)))
		fmt.Println()

		var lines []string
		for _, ingredient := range recipe.Ingredients {
			lines = append(lines, "• "+ingredient.Label())
		}
		fmt.Println(lipgloss.JoinVertical(lipgloss.Left, lines...))
		fmt.Println()
		fmt.Println(styles.MutedStyle.Render("Directions: " + recipe.SourceURL))
	},
}

func init() {
	showCmd.Flags().IntP("servings", "s", 0, "Rescale ingredient quantities for this serving count")

	rootCmd.AddCommand(showCmd)
}
