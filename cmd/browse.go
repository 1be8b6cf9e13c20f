package cmd

import (
	"context"
	"fmt"

	"github.com/cine-cli/cine/history"
	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/media"
	"github.com/cine-cli/cine/provider/stremio"
	"github.com/cine-cli/cine/provider/vidsrc"
	"github.com/cine-cli/cine/tui"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// selection is what an action works on: a catalog item and, for shows, one episode.
type selection struct {
	item    media.Item
	episode mo.Option[history.EpisodeRef]
	// base carries artwork and rating into new history lines.
	base history.Entry
}

func newSelection(item media.Item) selection {
	return selection{item: item, base: history.NewEntry("", "", &item)}
}

func selectionFromHistory(s history.Summary) selection {
	return selection{item: s.Item(), episode: s.Episode, base: s.Entry}
}

func (s selection) entry(action, method string) history.Entry {
	e := s.base
	e.Action = action
	e.Method = method
	e.Episode = s.episode
	e.OutDir = ""
	e.Source = ""
	e.Timestamp = ""
	return e
}

func (s selection) withEpisode(season, episode int) selection {
	s.episode = mo.Some(history.EpisodeRef{Season: season, Episode: episode})
	return s
}

// displayTitle is the title handed to players, with the episode code for shows.
func (s selection) displayTitle() string {
	if ref, ok := s.episode.Get(); ok {
		return fmt.Sprintf("%s %s", s.item.Title, ref)
	}
	return s.item.Title
}

func (s selection) request() vidsrc.Request {
	if ref, ok := s.episode.Get(); ok {
		return vidsrc.Episode(s.item.ID, ref.Season, ref.Episode)
	}
	return vidsrc.Request{Kind: s.item.Kind, ID: s.item.ID}
}

func (s selection) target(imdbID string) stremio.Target {
	if ref, ok := s.episode.Get(); ok {
		return stremio.EpisodeTarget(imdbID, ref.Season, ref.Episode)
	}
	return stremio.Target{Kind: s.item.Kind, IMDbID: imdbID}
}

func kindIcon(kind media.Kind) string {
	if kind == media.TV {
		return icon.Get(icon.TV)
	}
	return icon.Get(icon.Movie)
}

// pickItem shows items with their details pane.
func pickItem(title string, items []media.Item) (media.Item, bool, error) {
	options := lo.Map(items, func(item media.Item, _ int) tui.Option {
		return tui.Option{
			Label:       kindIcon(item.Kind) + " " + item.Label(),
			Description: item.Overview,
			Preview:     item.Preview(),
			Value:       item,
		}
	})

	return tui.PickValue[media.Item](title, options)
}

// pickEpisode walks a show down to one episode.
func (a *app) pickEpisode(ctx context.Context, show media.Item) (history.EpisodeRef, bool, error) {
	details, err := a.catalog.Details(ctx, show.ID)
	if err != nil {
		return history.EpisodeRef{}, false, err
	}

	seasons := details.Playable()
	if len(seasons) == 0 {
		return history.EpisodeRef{}, false, fmt.Errorf("%s has no episodes", show.Title)
	}

	season, ok, err := tui.PickValue[media.Season]("Season", lo.Map(seasons, func(s media.Season, _ int) tui.Option {
		return tui.Option{Label: s.Label(), Value: s}
	}))
	if err != nil || !ok {
		return history.EpisodeRef{}, ok, err
	}

	episodes, err := a.catalog.Season(ctx, show.ID, season.Number)
	if err != nil {
		return history.EpisodeRef{}, false, err
	}

	episode, ok, err := tui.PickValue[media.Episode]("Episode", lo.Map(episodes, func(e media.Episode, _ int) tui.Option {
		return tui.Option{Label: e.Label(), Description: e.AirDate, Preview: e.Preview(show.Title), Value: e}
	}))
	if err != nil || !ok {
		return history.EpisodeRef{}, ok, err
	}

	return history.EpisodeRef{Season: episode.Season, Episode: episode.Number}, true, nil
}

// browse picks from items and, for shows, down to an episode. It returns false when the user backs out.
// items must not be empty.
func (a *app) browse(ctx context.Context, title string, items []media.Item) (selection, bool, error) {
	item, ok, err := pickItem(title, items)
	if err != nil || !ok {
		return selection{}, false, err
	}

	sel := newSelection(item)
	if item.Kind != media.TV {
		return sel, true, nil
	}

	ref, ok, err := a.pickEpisode(ctx, item)
	if err != nil || !ok {
		return selection{}, false, err
	}

	return sel.withEpisode(ref.Season, ref.Episode), true, nil
}
