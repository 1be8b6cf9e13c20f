package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cine-cli/cine/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func init() {
	filesystem.SetMemMapFs()
}

const script = `answer = 6 * 7`

func TestPreCompileAndLoad(t *testing.T) {
	Convey("Given a script on disk", t, func() {
		So(filesystem.API().WriteFile("/extractors/answer.lua", []byte(script), 0o644), ShouldBeNil)

		Convey("It runs in the given state", func() {
			L := lua.NewState()
			defer L.Close()

			So(PreCompileAndLoad(L, "/extractors/answer.lua"), ShouldBeNil)
			So(L.GetGlobal("answer").String(), ShouldEqual, "42")
		})

		Convey("Syntax errors are reported", func() {
			So(filesystem.API().WriteFile("/extractors/broken.lua", []byte("function ("), 0o644), ShouldBeNil)

			L := lua.NewState()
			defer L.Close()
			So(PreCompileAndLoad(L, "/extractors/broken.lua"), ShouldNotBeNil)
		})
	})
}

func TestInstall(t *testing.T) {
	Convey("Given a server hosting a script", t, func() {
		body := script
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		}))
		defer server.Close()

		path := "/extractors/remote.lua"
		_ = filesystem.API().Remove(path)

		Convey("The first install writes the file and the second is a no-op", func() {
			changed, err := Install(context.Background(), server.Client(), server.URL, path)
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)

			changed, err = Install(context.Background(), server.Client(), server.URL, path)
			So(err, ShouldBeNil)
			So(changed, ShouldBeFalse)
		})

		Convey("Scripts that do not compile are rejected", func() {
			body = "local = ="
			_, err := Install(context.Background(), server.Client(), server.URL, path)
			So(err, ShouldNotBeNil)

			exists, _ := filesystem.API().Exists(path)
			So(exists, ShouldBeFalse)
		})
	})
}
