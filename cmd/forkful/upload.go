package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload your own recipe",
	Long: `Upload a recipe to the catalog under your API key and bookmark it.

Ingredients use the format 'quantity,unit,description', e.g.:

  forkful upload --title "Pizza dough" --publisher "Me" \
    --source-url https://example.com/pizza --image https://example.com/pizza.jpg \
    --cooking-time 90 --servings 4 \
    --ingredient "500,g,flour" --ingredient "325,ml,water" --ingredient ",,salt"`,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		fields := map[string]string{}
		for flag, field := range map[string]string{
			"title":        "title",
			"publisher":    "publisher",
			"source-url":   "sourceUrl",
			"image":        "image",
			"cooking-time": "cookingTime",
			"servings":     "servings",
		} {
			fields[field], _ = flags.GetString(flag)
		}

		ingredients, _ := flags.GetStringArray("ingredient")
		for i, ingredient := range ingredients {
			fields[fmt.Sprintf("ingredient-%d", i+1)] = ingredient
		}

		st, cleanup, err := newStore()
		cobra.CheckErr(err)
		defer cleanup()

		if err := st.UploadRecipe(context.Background(), fields); err != nil {
			cobra.CheckErr(fmt.Errorf("upload failed: %w", err))
		}

		recipe := st.CurrentRecipe()
		fmt.Printf("✅ Uploaded '%s' (ID: %s) and bookmarked it\n", recipe.Title, recipe.ID)
	},
}

func init() {
	uploadCmd.Flags().String("title", "", "Recipe title")
	uploadCmd.Flags().String("publisher", "", "Publisher name")
	uploadCmd.Flags().String("source-url", "", "Link to the full directions")
	uploadCmd.Flags().String("image", "", "Cover image URL")
	uploadCmd.Flags().String("cooking-time", "", "Cooking time in minutes")
	uploadCmd.Flags().String("servings", "", "Serving count")
	uploadCmd.Flags().StringArray("ingredient", nil, "Ingredient as 'quantity,unit,description' (repeatable)")

	rootCmd.AddCommand(uploadCmd)
}
