package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Versions compare component by component", t, func() {
		for _, tc := range []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.3.0", "0.10.0", -1},
			{"1.2", "1.2.0", 0},
			{"1.2.1-rc1", "1.2.1", 0},
		} {
			got, err := Compare(tc.a, tc.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, tc.want)
		}
	})

	Convey("Garbage is rejected", t, func() {
		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)

		_, err = Compare("1.0.0", "1.2.3.4")
		So(err, ShouldNotBeNil)
	})
}

func TestFetchLatest(t *testing.T) {
	Convey("Given a releases API", t, func() {
		tag := "v0.4.1"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/releases/latest" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte(`{"tag_name":"` + tag + `"}`))
		}))
		defer server.Close()

		prev := ReleasesAPI
		ReleasesAPI = server.URL
		defer func() { ReleasesAPI = prev }()

		Convey("The tag is returned without its prefix", func() {
			v, err := fetchLatest(context.Background(), server.Client())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.4.1")
		})

		Convey("An empty tag is an error", func() {
			tag = ""
			_, err := fetchLatest(context.Background(), server.Client())
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Release pages link to the tag", t, func() {
		So(ReleaseURL("0.4.1"), ShouldEqual, "https://github.com/cine-cli/cine/releases/tag/v0.4.1")
	})
}
