package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cine-cli/cine/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		for name, fn := range map[string]func() string{
			"Config":     Config,
			"Cache":      Cache,
			"Logs":       Logs,
			"Extractors": Extractors,
			"Dumps":      Dumps,
			"Catalog":    Catalog,
			"Data":       Data,
		} {
			Convey(name+"()", func() {
				path := fn()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}

		Convey("History() is a jsonl file inside Data()", func() {
			So(filepath.Dir(History()), ShouldEqual, Data())
			So(filepath.Ext(History()), ShouldEqual, ".jsonl")
		})

		Convey("CINE_CONFIG_PATH overrides the config directory", func() {
			custom := filepath.Join(os.TempDir(), "cine-where-test")
			So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)
			So(Logs(), ShouldEqual, filepath.Join(custom, "logs"))
		})
	})
}
