package cmd

import (
	"fmt"

	"github.com/cine-cli/cine/media"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(popularCmd)
	popularCmd.Flags().IntP("page", "p", 1, "Result page")
}

var popularCmd = &cobra.Command{
	Use:       "popular movie|tv",
	Short:     "Browse the popular movies or shows",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: media.Kinds(),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := media.ParseKind(args[0])
		handleErr(err)

		a := newApp()
		a.requireCatalog()

		items, err := a.catalog.Popular(cmd.Context(), kind, lo.Must(cmd.Flags().GetInt("page")))
		handleErr(err)
		if len(items) == 0 {
			fmt.Println("No results.")
			return
		}

		sel, ok, err := a.browse(cmd.Context(), "Popular", items)
		handleErr(err)
		if !ok {
			return
		}

		handleErr(a.act(cmd.Context(), sel, a.lastMethod(sel.item.Kind, sel.item.ID)))
	},
}
