package media

import (
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseKind(t *testing.T) {
	Convey("ParseKind", t, func() {
		k, err := ParseKind("Movie")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, Movie)

		k, err = ParseKind("series")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, TV)

		_, err = ParseKind("anime")
		So(err, ShouldNotBeNil)
	})
}

func TestItem(t *testing.T) {
	Convey("Given a catalog item", t, func() {
		item := Item{
			ID:          603,
			Kind:        Movie,
			Title:       "The Matrix",
			PosterPath:  "/p.jpg",
			VoteAverage: mo.Some(8.2),
			ReleaseYear: mo.Some(1999),
		}

		Convey("Label includes year, rating and id", func() {
			So(item.Label(), ShouldEqual, "The Matrix (1999) ★8.2 [id:603]")
		})

		Convey("Poster URL uses the w342 size", func() {
			So(item.PosterURL(), ShouldEqual, "https://image.tmdb.org/t/p/w342/p.jpg")
		})

		Convey("Missing backdrop yields an empty URL", func() {
			So(item.BackdropURL(), ShouldBeEmpty)
		})
	})
}

func TestEpisode(t *testing.T) {
	Convey("Episode rendering", t, func() {
		e := Episode{Season: 1, Number: 2, Name: "Pilot", Overview: strings.Repeat("x", 900)}
		So(e.Code(), ShouldEqual, "S01E02")
		So(e.Label(), ShouldEqual, "S01E02 - Pilot")

		preview := e.Preview("Show")
		So(preview, ShouldContainSubstring, "Air: -")
		So(strings.Count(preview, "x"), ShouldEqual, 800)
	})

	Convey("Season label", t, func() {
		So(Season{Number: 3, EpisodeCount: 8, Name: "Season 3"}.Label(), ShouldEqual, "S03  (8 eps) - Season 3")
	})
}
