package log

import (
	"testing"

	"github.com/cine-cli/cine/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestDisabled(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Emissions are dropped without panicking", func() {
			So(func() {
				Info("hello")
				Debugf("page %d", 1)
				WithFields(Fields{"url": "https://example.com"}).Debug("fetch")
			}, ShouldNotPanic)
		})
	})
}
