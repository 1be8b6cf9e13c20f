package cmd

import (
	"testing"
	"time"

	"github.com/cine-cli/cine/config"
	"github.com/cine-cli/cine/history"
	"github.com/cine-cli/cine/media"
	"github.com/cine-cli/cine/provider/stremio"
	"github.com/cine-cli/cine/provider/vidsrc"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
)

func TestParseValue(t *testing.T) {
	Convey("Given config fields of each type", t, func() {
		Convey("Strings take the first value", func() {
			v, err := parseValue(config.Field{Key: "tmdb.language", Value: ""}, []string{"de-DE", "ignored"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "de-DE")
		})

		Convey("Integers are parsed", func() {
			v, err := parseValue(config.Field{Key: "resolver.max_hosts", Value: 3}, []string{"5"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 5)

			_, err = parseValue(config.Field{Key: "resolver.max_hosts", Value: 3}, []string{"five"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans are parsed", func() {
			v, err := parseValue(config.Field{Key: "history.write", Value: true}, []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			_, err = parseValue(config.Field{Key: "history.write", Value: true}, []string{"maybe"})
			So(err, ShouldNotBeNil)
		})

		Convey("Lists keep every value", func() {
			v, err := parseValue(config.Field{Key: "resolver.domains", Value: []string{}}, []string{"a.net", "b.net"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"a.net", "b.net"})
		})

		Convey("A missing value is an error", func() {
			_, err := parseValue(config.Field{Key: "tmdb.language", Value: ""}, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSelection(t *testing.T) {
	Convey("Given a selected show", t, func() {
		item := media.Item{ID: 1399, Kind: media.TV, Title: "Game of Thrones", VoteAverage: mo.Some(8.4)}
		sel := newSelection(item)

		Convey("Without an episode it requests the whole title", func() {
			So(sel.request(), ShouldResemble, vidsrc.Request{Kind: media.TV, ID: 1399})
			So(sel.displayTitle(), ShouldEqual, "Game of Thrones")
		})

		Convey("With an episode", func() {
			sel = sel.withEpisode(1, 2)

			Convey("The vidsrc request addresses it", func() {
				So(sel.request(), ShouldResemble, vidsrc.Episode(1399, 1, 2))
			})

			Convey("The addon target addresses it", func() {
				So(sel.target("tt0944947"), ShouldResemble, stremio.EpisodeTarget("tt0944947", 1, 2))
			})

			Convey("The player title carries the episode code", func() {
				So(sel.displayTitle(), ShouldEqual, "Game of Thrones S01E02")
			})

			Convey("History entries carry the episode and rating", func() {
				e := sel.entry(history.ActionPlay, "vidsrc")
				So(e.Action, ShouldEqual, history.ActionPlay)
				So(e.Method, ShouldEqual, "vidsrc")
				So(e.ID, ShouldEqual, 1399)
				So(e.Episode, ShouldResemble, mo.Some(history.EpisodeRef{Season: 1, Episode: 2}))
				So(e.VoteAverage, ShouldResemble, mo.Some(8.4))
			})
		})
	})

	Convey("Given a selection rebuilt from history", t, func() {
		base := history.NewEntry(history.ActionDownload, "torrentio", &media.Item{ID: 27205, Kind: media.Movie, Title: "Inception"})
		base.OutDir = "/tmp/movies"
		base.Timestamp = "2024-05-01T12:00:00.000000+00:00"
		sel := selectionFromHistory(history.Summary{Entry: base})

		Convey("New entries drop the old download directory and timestamp", func() {
			e := sel.entry(history.ActionPlay, "vidsrc")
			So(e.OutDir, ShouldBeEmpty)
			So(e.Timestamp, ShouldBeEmpty)
			So(e.Title, ShouldEqual, "Inception")
		})

		Convey("Movies target the title itself", func() {
			So(sel.target("tt1375666"), ShouldResemble, stremio.Target{Kind: media.Movie, IMDbID: "tt1375666"})
		})
	})
}

func TestHistoryLabel(t *testing.T) {
	Convey("Given a summarized episode", t, func() {
		e := history.NewEntry(history.ActionPlay, "vidsrc", &media.Item{
			ID:          1399,
			Kind:        media.TV,
			Title:       "Game of Thrones",
			ReleaseYear: mo.Some(2011),
		})
		s := history.Summary{Entry: e.WithEpisode(3, 9), LastMethod: "vidsrc"}

		Convey("The label lists title, year, episode and last method", func() {
			label := historyLabel(s)
			So(label, ShouldContainSubstring, "Game of Thrones (2011)")
			So(label, ShouldContainSubstring, "S03E09")
			So(label, ShouldContainSubstring, "[last: vidsrc]")
		})

		Convey("Untitled entries are labelled Unknown", func() {
			s.Title = ""
			So(historyLabel(s), ShouldContainSubstring, "Unknown")
		})
	})
}

func TestFindDependency(t *testing.T) {
	Convey("Known binaries have install hints", t, func() {
		d, ok := findDependency("webtorrent")
		So(ok, ShouldBeTrue)
		So(d.install, ShouldNotBeEmpty)

		_, ok = findDependency("ffmpeg")
		So(ok, ShouldBeFalse)
	})
}

func TestFlagLimits(t *testing.T) {
	Convey("Given non-default resolver settings", t, func() {
		settings := &config.Settings{Resolver: config.ResolverSettings{
			MaxHosts: 1,
			MaxPages: 5,
			Timeout:  2 * time.Second,
		}}
		cmd := &cobra.Command{Use: "vidsrc"}
		addLimitFlags(cmd)

		Convey("Flags left unset keep the configured caps", func() {
			So(flagLimits(cmd, resolverLimits(settings)), ShouldResemble, vidsrc.Limits{
				MaxHosts: 1,
				MaxPages: 5,
				Timeout:  2 * time.Second,
			})
		})

		Convey("Flags that are passed win", func() {
			So(cmd.Flags().Set("max-hosts", "4"), ShouldBeNil)
			So(cmd.Flags().Set("timeout", "12"), ShouldBeNil)

			limits := flagLimits(cmd, resolverLimits(settings))
			So(limits.MaxHosts, ShouldEqual, 4)
			So(limits.Timeout, ShouldEqual, 12*time.Second)
			So(limits.MaxPages, ShouldEqual, 5)
		})
	})
}
