package cmd

import (
	"fmt"

	"github.com/mbellini/forkful/pkg/integrations"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export bookmarks as an EPUB cookbook",
	Long:  "Compile every bookmarked recipe into a single EPUB cookbook",
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("out")
		title, _ := cmd.Flags().GetString("title")

		st, cleanup, err := newStore()
		cobra.CheckErr(err)
		defer cleanup()

		bookmarks := st.Bookmarks()
		if len(bookmarks) == 0 {
			fmt.Println("📖 No bookmarks to export.")
			return
		}

		fmt.Printf("📕 Compiling %d recipes...\n", len(bookmarks))
		builder := integrations.NewCookbookBuilder(out)
		path, err := builder.Build(title, bookmarks)
		cobra.CheckErr(err)

		fmt.Printf("✅ Cookbook written to %s\n", path)
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", exportDir(), "Output directory")
	exportCmd.Flags().StringP("title", "t", "My Cookbook", "Cookbook title")

	rootCmd.AddCommand(exportCmd)
}
