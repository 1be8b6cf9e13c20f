package vidsrc

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHiddenTokens(t *testing.T) {
	Convey("HiddenTokens", t, func() {
		Convey("Finds a double-quoted data-hash", func() {
			So(HiddenTokens(`<a data-hash="abc123def456">`), ShouldResemble, []string{"abc123def456"})
		})

		Convey("Reports double quotes, then single quotes, then long data-id values", func() {
			html := `<i data-id="0123456789abcdef0"></i><b data-hash='single'></b><a data-hash="double"></a>`
			So(HiddenTokens(html), ShouldResemble, []string{"double", "single", "0123456789abcdef0"})
		})

		Convey("Ignores short data-id values and removes duplicates", func() {
			html := `<i data-id="short"></i><a data-hash="x1"></a><a data-hash="x1"></a>`
			So(HiddenTokens(html), ShouldResemble, []string{"x1"})
		})

		Convey("Returns the same result on every call", func() {
			html := `<a data-hash="abc"></a><a data-hash='def'></a>`
			So(HiddenTokens(html), ShouldResemble, HiddenTokens(html))
		})

		Convey("Returns nothing on plain markup", func() {
			So(HiddenTokens("<p>nothing</p>"), ShouldBeEmpty)
		})
	})
}

func TestRelayHosts(t *testing.T) {
	Convey("RelayHosts", t, func() {
		html := `<script>var a = "https://Relay.Example.net/rcp/xyz"; var b = "http://cloudnestra.com/rcp/q"</script>`

		Convey("Appends the page host and the well-known relay after discovered hosts", func() {
			So(RelayHosts(html, "vidsrc.xyz", "cloudnestra.com"), ShouldResemble,
				[]string{"Relay.Example.net", "cloudnestra.com", "vidsrc.xyz"})
		})

		Convey("Falls back to the page host and the well-known relay", func() {
			So(RelayHosts("", "vidsrc.xyz", "cloudnestra.com"), ShouldResemble,
				[]string{"vidsrc.xyz", "cloudnestra.com"})
		})
	})
}

func TestNestedReference(t *testing.T) {
	Convey("NestedReference", t, func() {
		Convey("Prefers a single-quoted src field", func() {
			html := `<iframe src="/frame"></iframe><script>player({src: "/double"}); x({src: '/single'})</script>`
			So(NestedReference(html).MustGet(), ShouldEqual, "/single")
		})

		Convey("Falls back to a double-quoted src field", func() {
			html := `<iframe src="/frame"></iframe><script>x({src: "/double"})</script>`
			So(NestedReference(html).MustGet(), ShouldEqual, "/double")
		})

		Convey("Falls back to an iframe", func() {
			So(NestedReference(`<IFRAME width="1" SRC='//cdn.example.com/e'>`).MustGet(), ShouldEqual, "//cdn.example.com/e")
		})

		Convey("Is absent when nothing matches", func() {
			So(NestedReference("<div></div>").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestChildReferences(t *testing.T) {
	Convey("ChildReferences", t, func() {
		html := `
<iframe id="player" src="/prorcp/one"></iframe>
<script>
  load({src: '/single'});
  load({src: "/double"});
  jw({file: "https://cdn.example.com/list"});
</script>
<video><source type="video/mp4" src="/source.mp4"></video>
<div data-src="/lazy"></div>
<iframe src="/prorcp/one"></iframe>`

		Convey("Collects every pattern group in order without duplicates", func() {
			So(ChildReferences(html), ShouldResemble, []string{
				"/prorcp/one",
				"/single",
				"/double",
				"https://cdn.example.com/list",
				"/source.mp4",
				"/lazy",
			})
		})

		Convey("Custom extractors can be composed with Submatch", func() {
			extra := Submatch(regexp.MustCompile(`data-url="([^"]+)"`))
			So(extra(`<a data-url="/x"></a>`), ShouldResemble, []string{"/x"})
		})
	})
}

func TestDirectMedia(t *testing.T) {
	Convey("DirectMedia", t, func() {
		Convey("Classifies bare playlist and file URLs", func() {
			html := `<script>
var a = 'https://cdn.example.com/hls/master.m3u8?token=1';
var b = "https://cdn.example.com/movie.MP4";
</script>`
			So(DirectMedia(html), ShouldResemble, []Media{
				{URL: "https://cdn.example.com/hls/master.m3u8?token=1", Kind: KindM3U8},
				{URL: "https://cdn.example.com/movie.MP4", Kind: KindMP4},
			})
		})

		Convey("Classifies file fields by substring and dedups by url and kind", func() {
			html := `{"file": "https://cdn.example.com/v/index.m3u8"} {"file":"https://cdn.example.com/stream"}`
			So(DirectMedia(html), ShouldResemble, []Media{
				{URL: "https://cdn.example.com/v/index.m3u8", Kind: KindM3U8},
				{URL: "https://cdn.example.com/stream", Kind: KindOther},
			})
		})

		Convey("Finds nothing in plain markup", func() {
			So(DirectMedia("<html><body>hello</body></html>"), ShouldBeEmpty)
		})
	})
}

func TestAbsolutize(t *testing.T) {
	Convey("Absolutize", t, func() {
		cases := []struct{ ref, want string }{
			{"https://x.com/y", "https://x.com/y"},
			{"http://x.com/y", "http://x.com/y"},
			{"//cdn.example.com/a.m3u8", "https://cdn.example.com/a.m3u8"},
			{"/path/a.mp4", "https://example.com/path/a.mp4"},
			{"rel/a.mp4", "https://example.com/rel/a.mp4"},
		}

		for _, c := range cases {
			So(Absolutize("example.com", c.ref), ShouldEqual, c.want)
		}
	})
}
