package util

import (
	"testing"

	"github.com/cine-cli/cine/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.lua"), ShouldEqual, "file_name_.lua")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("My Extractor: v2"), ShouldEqual, "My_Extractor_v2")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-vidsrc-mirror-"), ShouldEqual, "vidsrc-mirror")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "entry", "entries"), ShouldEqual, "1 entry")
		So(Quantify(0, "entry", "entries"), ShouldEqual, "0 entries")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history"), ShouldEqual, "History")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("extractors/mirror.lua"), ShouldEqual, "mirror")
		So(FileStem("mirror"), ShouldEqual, "mirror")
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max(-3, -1), ShouldEqual, -1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/cine/dumps", 0o755), ShouldBeNil)
		f, err := fs.Create("/tmp/cine/dumps/page.html")
		So(err, ShouldBeNil)
		So(f.Close(), ShouldBeNil)

		Convey("Delete removes it recursively", func() {
			So(Delete("/tmp/cine"), ShouldBeNil)
			_, err := fs.Stat("/tmp/cine/dumps/page.html")
			So(err, ShouldNotBeNil)
		})

		Convey("Deleting a missing path is an error", func() {
			So(Delete("/tmp/missing"), ShouldNotBeNil)
		})
	})
}
