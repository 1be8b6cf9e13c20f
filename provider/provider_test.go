package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/cine-cli/cine/config"
	"github.com/cine-cli/cine/provider/stremio"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When getting vidsrc", t, func() {
		p, ok := Get("vidsrc")
		So(ok, ShouldBeTrue)
		So(p.Kind, ShouldEqual, Crawl)
		So(p.String(), ShouldEqual, "VidSrc")
	})
}

func TestConfigured(t *testing.T) {
	Convey("Given settings without keys or manifests", t, func() {
		settings := &config.Settings{}

		Convey("Only VidSrc and Torrentio are available", func() {
			ids := []string{}
			for _, p := range Configured(settings) {
				ids = append(ids, p.ID)
			}
			So(ids, ShouldResemble, []string{"vidsrc", "torrentio"})
		})
	})

	Convey("Given a TorBox key and a Comet manifest", t, func() {
		settings := &config.Settings{TorboxAPIKey: "k", CometManifest: "https://comet.example/manifest.json"}

		Convey("The direct providers follow registry order", func() {
			ids := []string{}
			for _, p := range Configured(settings, Direct) {
				ids = append(ids, p.ID)
			}
			So(ids, ShouldResemble, []string{"torbox", "torrentio+torbox", "comet"})
		})
	})
}

func TestGather(t *testing.T) {
	Convey("Gather keeps provider order and tags streams", t, func() {
		fail := errors.New("down")
		providers := []*Provider{
			{ID: "a", Name: "A", Kind: Direct, Streams: func(context.Context, *Clients, stremio.Target) ([]stremio.DirectStream, error) {
				return []stremio.DirectStream{{URL: "https://a/1"}}, nil
			}},
			{ID: "crawl", Name: "Crawl", Kind: Crawl},
			{ID: "b", Name: "B", Kind: Direct, Streams: func(context.Context, *Clients, stremio.Target) ([]stremio.DirectStream, error) {
				return nil, fail
			}},
			{ID: "c", Name: "C", Kind: Direct, Streams: func(context.Context, *Clients, stremio.Target) ([]stremio.DirectStream, error) {
				return []stremio.DirectStream{{URL: "https://c/1"}, {URL: "https://c/2"}}, nil
			}},
		}

		results := Gather(context.Background(), &Clients{}, providers, stremio.MovieTarget("tt1"))
		So(results, ShouldHaveLength, 3)
		So(results[0].Provider.ID, ShouldEqual, "a")
		So(results[1].Err, ShouldEqual, fail)
		So(results[2].Streams[1].Source, ShouldEqual, "C")

		streams := Flatten(results)
		So(streams, ShouldHaveLength, 3)
		So(streams[0].URL, ShouldEqual, "https://a/1")
		So(streams[2].URL, ShouldEqual, "https://c/2")
	})
}
