package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cine-cli/cine/history"
	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/query"
	"github.com/cine-cli/cine/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// searchSource marks history lines written by a search pick.
const searchSource = "tmdb_search"

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:     "search [query]",
	Short:   "Search movies and shows on TMDB",
	Example: "  cine search the matrix",
	Args:    cobra.ArbitraryArgs,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp()
		a.requireCatalog()
		handleErr(a.fromSearch(cmd.Context(), strings.Join(args, " ")))
	},
}

// fromSearch asks for a query when q is empty, then walks the results down to an action.
func (a *app) fromSearch(ctx context.Context, q string) error {
	q = strings.TrimSpace(q)
	if q == "" {
		var err error
		if q, err = tui.Query("Search query"); err != nil {
			return err
		}
		q = strings.TrimSpace(q)
	}
	if q == "" {
		fmt.Println("No query provided.")
		return nil
	}

	if err := query.Remember(q, query.Searched); err != nil {
		log.Warnf("query: %v", err)
	}

	fmt.Fprintf(os.Stderr, "%s Searching TMDB for: %s ...\n", icon.Get(icon.Search), q)
	items, err := a.catalog.Search(ctx, q)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No results.")
		if err := query.Forget(q); err != nil {
			log.Warnf("query: %v", err)
		}
		if suggestion, ok := query.Suggest(q).Get(); ok {
			fmt.Printf("Did you mean %q?\n", suggestion)
		}
		return nil
	}

	sel, ok, err := a.browse(ctx, "Search: "+q, items)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Nothing selected.")
		return nil
	}

	if err := query.Remember(q, query.Picked); err != nil {
		log.Warnf("query: %v", err)
	}

	entry := sel.entry("", "")
	entry.Source = searchSource
	a.record(entry)

	printPick(sel)
	return a.act(ctx, sel, a.lastMethod(sel.item.Kind, sel.item.ID))
}

// printPick echoes the picked title as one JSON object.
func printPick(sel selection) {
	out := struct {
		ID      int                 `json:"id"`
		Kind    string              `json:"media_type"`
		Title   string              `json:"title"`
		Episode *history.EpisodeRef `json:"episode"`
	}{
		ID:    sel.item.ID,
		Kind:  sel.item.Kind.String(),
		Title: sel.item.Title,
	}
	if ref, ok := sel.episode.Get(); ok {
		out.Episode = &ref
	}

	data, err := json.Marshal(out)
	if err != nil {
		log.Warn(err)
		return
	}
	fmt.Println(string(data))
	if viper.GetBool(key.HistoryWrite) {
		fmt.Println("Saved to history.")
	}
}
