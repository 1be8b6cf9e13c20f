package cmd

import (
	"context"
	"fmt"

	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/media"
	"github.com/cine-cli/cine/tui"
	"github.com/spf13/cobra"
)

// historyDepth is how many log lines the dashboard folds into its history list.
const historyDepth = 300

type section int

const (
	sectionHistory section = iota
	sectionPopularMovies
	sectionPopularTV
	sectionSearch
)

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Browse history, popular titles and search",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(dashboard(cmd.Context(), newApp()))
	},
}

// dashboard loops over the sections until the user backs out of the top menu.
func dashboard(ctx context.Context, a *app) error {
	a.requireCatalog()

	options := []tui.Option{
		{Label: icon.Get(icon.History) + " History", Value: sectionHistory},
		{Label: icon.Get(icon.Movie) + " Popular Movies", Value: sectionPopularMovies},
		{Label: icon.Get(icon.TV) + " Popular TV", Value: sectionPopularTV},
		{Label: icon.Get(icon.Search) + " Search", Value: sectionSearch},
	}

	for {
		choice, ok, err := tui.PickValue[section]("Dashboard", options)
		if err != nil || !ok {
			return err
		}

		switch choice {
		case sectionHistory:
			err = a.fromHistory(ctx)
		case sectionPopularMovies:
			err = a.fromPopular(ctx, media.Movie)
		case sectionPopularTV:
			err = a.fromPopular(ctx, media.TV)
		case sectionSearch:
			err = a.fromSearch(ctx, "")
		}
		if err != nil {
			return err
		}
	}
}

func (a *app) fromHistory(ctx context.Context) error {
	summaries, err := a.history.Summarize(historyDepth)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	chosen, ok, err := pickSummary(summaries)
	if err != nil || !ok {
		return err
	}

	return a.act(ctx, selectionFromHistory(chosen), chosen.LastMethod)
}

func (a *app) fromPopular(ctx context.Context, kind media.Kind) error {
	items, err := a.catalog.Popular(ctx, kind, 1)
	if err != nil {
		return err
	}

	title := "Popular Movies"
	if kind == media.TV {
		title = "Popular TV"
	}
	if len(items) == 0 {
		fmt.Printf("No entries in %s.\n", title)
		return nil
	}

	sel, ok, err := a.browse(ctx, title, items)
	if err != nil || !ok {
		return err
	}

	return a.act(ctx, sel, a.lastMethod(sel.item.Kind, sel.item.ID))
}

// lastMethod is the method of the latest recorded play of a title, if any.
func (a *app) lastMethod(kind media.Kind, id int) string {
	summaries, err := a.history.Summarize(historyDepth)
	if err != nil {
		return ""
	}

	for _, s := range summaries {
		if s.Kind == kind && s.ID == id && s.LastMethod != "" {
			return s.LastMethod
		}
	}
	return ""
}
