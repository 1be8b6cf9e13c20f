package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/where"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type payload struct {
	Title string
	Year  int
}

func TestCache(t *testing.T) {
	Convey("Given a cache entry", t, func() {
		key := GenerateKey("search/multi?query=The Matrix", "tmdb")
		So(Write(key, payload{Title: "The Matrix", Year: 1999}), ShouldBeNil)

		Convey("It can be read back while fresh", func() {
			var got payload
			So(Read(key, &got), ShouldBeTrue)
			So(got.Title, ShouldEqual, "The Matrix")
		})

		Convey("Expired entries are misses and are collected", func() {
			path := filepath.Join(where.Catalog(), key)
			old := time.Now().Add(-2 * TTL)
			So(filesystem.API().Chtimes(path, old, old), ShouldBeNil)

			var got payload
			So(Read(key, &got), ShouldBeFalse)

			CollectGarbage()
			exists, _ := filesystem.API().Exists(path)
			So(exists, ShouldBeFalse)
		})

		Convey("Clear removes every entry", func() {
			n, err := Clear()
			So(err, ShouldBeNil)
			So(n, ShouldBeGreaterThanOrEqualTo, 1)

			var got payload
			So(Read(key, &got), ShouldBeFalse)
		})
	})

	Convey("Keys ignore case and spaces but not namespaces", t, func() {
		So(GenerateKey("The Matrix", "tmdb"), ShouldEqual, GenerateKey("thematrix", "tmdb"))
		So(GenerateKey("The Matrix", "tmdb"), ShouldNotEqual, GenerateKey("The Matrix", "other"))
	})
}
