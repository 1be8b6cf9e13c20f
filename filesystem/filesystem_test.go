package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory backend", t, func() {
		SetMemMapFs()
		So(API().MkdirAll("/data", 0o755), ShouldBeNil)

		Convey("WriteAtomic replaces the file and leaves no temp file", func() {
			So(WriteAtomic("/data/a.json", []byte("one"), 0o644), ShouldBeNil)
			So(WriteAtomic("/data/a.json", []byte("two"), 0o644), ShouldBeNil)

			got, err := API().ReadFile("/data/a.json")
			So(err, ShouldBeNil)
			So(string(got), ShouldEqual, "two")

			exists, err := API().Exists("/data/a.json.tmp")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
