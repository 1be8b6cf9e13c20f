package query

import (
	"testing"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Given remembered terms", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)

		So(Remember("The Matrix", Searched), ShouldBeNil)
		So(Remember("  the   MATRIX reloaded ", Picked), ShouldBeNil)
		So(Remember("", Picked), ShouldBeNil)

		Convey("Suggestions are ranked", func() {
			s := SuggestMany("matrix")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
			So(s[0], ShouldEqual, "the matrix reloaded")
			So(Suggest("matrix").MustGet(), ShouldEqual, "the matrix reloaded")
		})

		Convey("Remembering again raises the rank", func() {
			So(Remember("the matrix", Picked*2), ShouldBeNil)
			So(Suggest("matrix").MustGet(), ShouldEqual, "the matrix")
		})

		Convey("Forgotten terms are not suggested", func() {
			So(Forget("THE MATRIX RELOADED"), ShouldBeNil)
			So(SuggestMany("reloaded"), ShouldBeEmpty)
		})

		Convey("Nothing is suggested when disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			So(SuggestMany("matrix"), ShouldBeEmpty)
			So(Suggest("matrix").IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("normalize collapses whitespace and case", t, func() {
		So(normalize("  Blade   RUNNER "), ShouldEqual, "blade runner")
	})
}
