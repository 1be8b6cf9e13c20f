package cmd

import (
	"fmt"
	"os"

	"github.com/cine-cli/cine/inline"
	"github.com/cine-cli/cine/media"
	"github.com/cine-cli/cine/provider"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(streamsCmd)
	addTargetFlags(streamsCmd)
	streamsCmd.Flags().StringSlice("source", nil, "Only query these sources")
	lo.Must0(streamsCmd.RegisterFlagCompletionFunc("source", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		direct := lo.Filter(provider.Builtins(), func(p *provider.Provider, _ int) bool {
			return p.Kind == provider.Direct
		})
		return lo.Map(direct, func(p *provider.Provider, _ int) string {
			return p.ID
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	streamsCmd.SetOut(os.Stdout)
}

var streamsCmd = &cobra.Command{
	Use:       "streams movie|tv TMDB_ID",
	Short:     "List direct links from the configured debrid and addon sources",
	Args:      cobra.ExactArgs(2),
	ValidArgs: media.Kinds(),
	Run: func(cmd *cobra.Command, args []string) {
		t := parseTarget(cmd, args)
		a := newApp()
		a.requireCatalog()

		sources := provider.Configured(a.settings, provider.Direct)
		if only := lo.Must(cmd.Flags().GetStringSlice("source")); len(only) > 0 {
			for _, id := range only {
				if p, ok := provider.Get(id); !ok || p.Kind != provider.Direct {
					exitUsage(cmd, fmt.Sprintf("Unknown direct-link source: %s", id))
				}
			}
			sources = lo.Filter(sources, func(p *provider.Provider, _ int) bool {
				return lo.Contains(only, p.ID)
			})
		}
		if len(sources) == 0 {
			cmd.Println("No direct-link source is configured. Set a TorBox key or an addon manifest with \"cine setup\".")
			return
		}

		sel := t.selection()
		id, ok, err := a.imdbID(cmd.Context(), sel)
		handleErr(err)
		if !ok {
			os.Exit(1)
		}

		results := provider.Gather(cmd.Context(), a.clients, sources, sel.target(id))
		for _, r := range results {
			if r.Err != nil {
				cmd.PrintErrf("%s: %v\n", r.Provider, r.Err)
			}
		}

		streams := provider.Flatten(results)
		if len(streams) == 0 {
			cmd.Println("No direct streams found.")
			return
		}

		first := lo.Must(cmd.Flags().GetBool("first"))
		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(inline.Write(cmd.OutOrStdout(), inline.Directs(streams), first))
			return
		}

		if first {
			streams = streams[:1]
		}
		for _, s := range streams {
			cmd.Printf("[%s] %s\n%s\n", s.Source, s.Display(), s.URL)
		}
	},
}
