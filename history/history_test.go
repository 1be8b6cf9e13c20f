package history

import (
	"os"
	"testing"
	"time"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/media"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func testLog(path string) *Log {
	_ = filesystem.API().Remove(path)

	l := Open(path)
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return l
}

func TestAddList(t *testing.T) {
	Convey("Given an empty log", t, func() {
		l := testLog("/data/history.jsonl")

		Convey("List returns nothing", func() {
			entries, err := l.List(50)
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})

		Convey("When entries are added", func() {
			item := &media.Item{ID: 603, Kind: media.Movie, Title: "The Matrix", PosterPath: "/m.jpg", ReleaseYear: mo.Some(1999)}
			So(l.Add(NewEntry(ActionPlay, "vidsrc", item)), ShouldBeNil)
			So(l.Add(NewEntry(ActionDownload, "torrentio", item)), ShouldBeNil)
			So(l.Add(NewEntry(ActionPlay, "torrentio", item)), ShouldBeNil)

			Convey("They are stamped in UTC", func() {
				entries, err := l.List(50)
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 3)
				So(entries[0].Timestamp, ShouldEqual, "2024-05-01T12:01:00.000000Z")
				So(entries[0].PosterURL, ShouldEqual, "https://image.tmdb.org/t/p/w342/m.jpg")
			})

			Convey("List keeps only the most recent ones", func() {
				entries, err := l.List(2)
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Action, ShouldEqual, ActionDownload)
			})

			Convey("Malformed lines are skipped", func() {
				f, err := filesystem.API().OpenFile("/data/history.jsonl", os.O_WRONLY|os.O_APPEND, 0o644)
				So(err, ShouldBeNil)
				_, _ = f.Write([]byte("{not json\n\n"))
				So(f.Close(), ShouldBeNil)

				entries, err := l.List(0)
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 3)
			})
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given plays of a movie and two episodes", t, func() {
		l := testLog("/data/summary.jsonl")
		movie := &media.Item{ID: 603, Kind: media.Movie, Title: "The Matrix"}
		show := &media.Item{ID: 1399, Kind: media.TV, Title: "Game of Thrones"}

		So(l.Add(NewEntry(ActionPlay, "vidsrc", movie)), ShouldBeNil)
		So(l.Add(NewEntry(ActionPlay, "vidsrc", show).WithEpisode(1, 1)), ShouldBeNil)
		So(l.Add(NewEntry(ActionPlay, "torrentio", show).WithEpisode(1, 2)), ShouldBeNil)
		So(l.Add(NewEntry(ActionDownload, "vidsrc", movie)), ShouldBeNil)
		So(l.Add(NewEntry(ActionPlay, "torrentio", movie)), ShouldBeNil)

		summaries, err := l.Summarize(300)
		So(err, ShouldBeNil)

		Convey("Each movie or episode appears once", func() {
			So(summaries, ShouldHaveLength, 3)
		})

		Convey("The most recently played comes first with its last method", func() {
			So(summaries[0].ID, ShouldEqual, 603)
			So(summaries[0].LastMethod, ShouldEqual, "torrentio")
			So(summaries[0].LastPlay, ShouldEqual, "2024-05-01T12:05:00.000000Z")
		})

		Convey("Episodes are kept apart", func() {
			So(summaries[1].Episode.MustGet().String(), ShouldEqual, "S01E02")
			So(summaries[2].Episode.MustGet().String(), ShouldEqual, "S01E01")
		})
	})

	Convey("Downloads alone order by their timestamp", t, func() {
		l := testLog("/data/downloads.jsonl")
		So(l.Add(NewEntry(ActionDownload, "torrentio", &media.Item{ID: 1, Kind: media.Movie, Title: "A"})), ShouldBeNil)
		So(l.Add(NewEntry(ActionDownload, "torrentio", &media.Item{ID: 2, Kind: media.Movie, Title: "B"})), ShouldBeNil)

		summaries, err := l.Summarize(10)
		So(err, ShouldBeNil)
		So(summaries[0].Title, ShouldEqual, "B")
		So(summaries[0].LastMethod, ShouldBeEmpty)
	})
}
