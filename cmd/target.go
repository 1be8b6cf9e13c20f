package cmd

import (
	"strconv"

	"github.com/cine-cli/cine/media"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// mediaTarget is the "movie|tv TMDB_ID [-s N -e N]" shape shared by the lookup commands.
type mediaTarget struct {
	kind    media.Kind
	id      int
	season  mo.Option[int]
	episode mo.Option[int]
}

func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("season", "s", 0, "Season (tv)")
	cmd.Flags().IntP("episode", "e", 0, "Episode (tv)")
	cmd.Flags().Bool("json", false, "Print JSON instead of text")
	cmd.Flags().Bool("first", false, "Print only the first result")
}

// parseTarget reads the positional arguments and episode flags, exiting with status 2 on misuse.
func parseTarget(cmd *cobra.Command, args []string) mediaTarget {
	kind, err := media.ParseKind(args[0])
	if err != nil {
		exitUsage(cmd, "media_type must be 'movie' or 'tv'.")
	}

	id, err := strconv.Atoi(args[1])
	if err != nil || id <= 0 {
		exitUsage(cmd, "TMDB_ID must be a positive integer.")
	}

	t := mediaTarget{kind: kind, id: id}
	if kind == media.TV {
		season := lo.Must(cmd.Flags().GetInt("season"))
		episode := lo.Must(cmd.Flags().GetInt("episode"))
		if season <= 0 || episode <= 0 {
			exitUsage(cmd, "For tv, --season and --episode are required.")
		}
		t.season, t.episode = mo.Some(season), mo.Some(episode)
	}
	return t
}

func (t mediaTarget) selection() selection {
	sel := newSelection(media.Item{ID: t.id, Kind: t.kind})
	if season, ok := t.season.Get(); ok {
		sel = sel.withEpisode(season, t.episode.OrEmpty())
	}
	return sel
}
