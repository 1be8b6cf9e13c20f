package torrentio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cine-cli/cine/media"
	"github.com/cine-cli/cine/provider/stremio"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const fixture = `{"streams":[
 {"name":"Torrentio\n4k","title":"Movie.2160p\n👤 10","infoHash":"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa","fileIdx":1,
  "behaviorHints":{"filename":"Movie.2160p.mkv"},"sources":["tracker:udp://tracker.example:1337/announce","dht:aaaa"]},
 {"infoHash":"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb","behaviorHints":{"filename":"Show.S01E02.mkv"}},
 {"name":"no hash"}
]}`

func TestStreams(t *testing.T) {
	Convey("Given a Torrentio server", t, func() {
		var path atomic.Value
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path.Store(r.URL.Path)
			fmt.Fprint(w, fixture)
		}))
		defer server.Close()

		client := New(stremio.Config{HTTPClient: server.Client()}, WithBaseURL(server.URL))

		Convey("Episodes use the series path", func() {
			_, err := client.Streams(context.Background(), stremio.EpisodeTarget("tt0944947", 1, 2))
			So(err, ShouldBeNil)
			So(path.Load(), ShouldEqual, "/stream/series/tt0944947:1:2.json")
		})

		Convey("Streams without hashes are dropped and the rest mapped", func() {
			streams, err := client.Streams(context.Background(), stremio.MovieTarget("tt0133093"))
			So(err, ShouldBeNil)
			So(streams, ShouldHaveLength, 2)
			So(streams[0].FileIdx.MustGet(), ShouldEqual, 1)
			So(streams[1].FileIdx.IsAbsent(), ShouldBeTrue)
		})

		Convey("Display joins name and title with the file index", func() {
			streams, _ := client.Streams(context.Background(), stremio.MovieTarget("tt0133093"))
			So(streams[0].Display(), ShouldEqual, "Torrentio 4k | Movie.2160p 👤 10  (idx=1)")
			So(streams[1].Display(), ShouldEqual, "Show.S01E02.mkv  (idx=?)")
		})

		Convey("TV targets without an episode are rejected", func() {
			_, err := client.Streams(context.Background(), stremio.Target{Kind: media.TV, IMDbID: "tt1"})
			So(errors.Is(err, ErrInvalidRequest), ShouldBeTrue)
		})
	})

	Convey("A forbidden answer is retried once with the alternate user agent", t, func() {
		var calls atomic.Int32
		var lastUA atomic.Value
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			lastUA.Store(r.Header.Get("User-Agent"))
			if r.Header.Get("User-Agent") != AltUserAgent {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			fmt.Fprint(w, fixture)
		}))
		defer server.Close()

		client := New(stremio.Config{HTTPClient: server.Client()}, WithBaseURL(server.URL))
		streams, err := client.Streams(context.Background(), stremio.MovieTarget("tt1"))
		So(err, ShouldBeNil)
		So(streams, ShouldHaveLength, 2)
		So(calls.Load(), ShouldEqual, 2)
		So(lastUA.Load(), ShouldEqual, AltUserAgent)
	})
}

func TestMagnet(t *testing.T) {
	Convey("Magnet", t, func() {
		Convey("Includes the encoded name and only tracker sources", func() {
			m := Magnet("abc", "My Movie (2020)", []string{"tracker:udp://t.example:80/announce", "dht:abc"})
			So(m, ShouldEqual, "magnet:?xt=urn:btih:abc&dn=My+Movie+%282020%29&tr=udp://t.example:80/announce")
		})

		Convey("Is the bare hash link without extras", func() {
			So(Magnet("abc", "", nil), ShouldEqual, "magnet:?xt=urn:btih:abc")
		})

		Convey("Streams build their own magnet", func() {
			s := Stream{InfoHash: "abc", Name: "N", Title: "Some Title", FileIdx: mo.Some(0)}
			So(s.Magnet(), ShouldEqual, "magnet:?xt=urn:btih:abc&dn=Some+Title")

			s.BehaviorHints = map[string]any{"filename": "file.mkv"}
			So(s.DisplayName(), ShouldEqual, "file.mkv")
		})
	})
}
