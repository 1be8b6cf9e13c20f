package custom

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func TestStringsFrom(t *testing.T) {
	Convey("stringsFrom", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Keeps the string values of a list in order", func() {
			tbl := L.NewTable()
			tbl.Append(lua.LString("/a"))
			tbl.Append(lua.LNumber(3))
			tbl.Append(lua.LString(""))
			tbl.Append(lua.LString("//cdn.example.com/b"))

			refs, err := stringsFrom(tbl)
			So(err, ShouldBeNil)
			So(refs, ShouldResemble, []string{"/a", "//cdn.example.com/b"})
		})

		Convey("Splits a comma-separated string", func() {
			refs, err := stringsFrom(lua.LString("/a, /b,"))
			So(err, ShouldBeNil)
			So(refs, ShouldResemble, []string{"/a", "/b"})
		})

		Convey("Treats nil as nothing found", func() {
			refs, err := stringsFrom(lua.LNil)
			So(err, ShouldBeNil)
			So(refs, ShouldBeEmpty)
		})

		Convey("Rejects other values", func() {
			_, err := stringsFrom(lua.LNumber(1))
			So(err, ShouldNotBeNil)
		})
	})
}
