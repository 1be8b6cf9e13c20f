package player

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func fakePath(bins ...string) func() {
	prev := lookPath
	lookPath = func(name string) (string, error) {
		if lo.Contains(bins, name) {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
	return func() { lookPath = prev }
}

func TestChoose(t *testing.T) {
	Convey("Given only vlc and clapper installed", t, func() {
		restore := fakePath(VLC, Clapper)
		defer restore()

		Convey("The preferred player wins", func() {
			p, err := Choose("Clapper")
			So(err, ShouldBeNil)
			So(p, ShouldEqual, Clapper)
		})

		Convey("A missing preference falls back", func() {
			p, err := Choose(MPV)
			So(err, ShouldBeNil)
			So(p, ShouldEqual, VLC)
		})
	})

	Convey("Given no player installed", t, func() {
		restore := fakePath()
		defer restore()

		_, err := Choose(MPV)
		So(errors.Is(err, ErrNoPlayer), ShouldBeTrue)
	})
}

func TestArgs(t *testing.T) {
	Convey("mpv receives the title and referrer", t, func() {
		name, args, err := Args(MPV, Target{
			URL:      "https://cdn.example/master.m3u8",
			Title:    "The Matrix\n(1999)",
			Referrer: "https://cloudnestra.com/prorcp/abc",
		})
		So(err, ShouldBeNil)
		So(name, ShouldEqual, "mpv")
		So(args, ShouldContain, "--force-media-title=The Matrix (1999)")
		So(args, ShouldContain, "--referrer=https://cloudnestra.com/prorcp/abc")
		So(args[len(args)-1], ShouldEqual, "https://cdn.example/master.m3u8")
	})

	Convey("clapper only receives the URL", t, func() {
		_, args, err := Args(Clapper, Target{URL: "https://cdn.example/a.mp4", Referrer: "https://x"})
		So(err, ShouldBeNil)
		So(args, ShouldResemble, []string{"https://cdn.example/a.mp4"})
	})

	Convey("Flag-like and foreign targets are rejected", t, func() {
		_, _, err := Args(MPV, Target{URL: "--script=evil.lua"})
		So(err, ShouldNotBeNil)

		_, _, err = Args(MPV, Target{URL: "file:///etc/passwd"})
		So(err, ShouldNotBeNil)

		_, _, err = Args("winamp", Target{URL: "https://a/b.mp4"})
		So(err, ShouldNotBeNil)
	})

	Convey("Play fails cleanly when the player is missing", t, func() {
		restore := fakePath()
		defer restore()

		_, err := Play(MPV, Target{URL: "https://cdn.example/a.mp4"})
		So(errors.Is(err, ErrMissingBinary), ShouldBeTrue)
	})
}

func TestTorrentArgs(t *testing.T) {
	magnet := "magnet:?xt=urn:btih:abc&dn=Movie"

	Convey("webtorrent streams a chosen file into the player", t, func() {
		args, err := WebtorrentArgs(magnet, MPV, mo.Some(3), "/tmp/wt")
		So(err, ShouldBeNil)
		So(args, ShouldResemble, []string{magnet, "--mpv", "--out", "/tmp/wt", "--select", "3"})
	})

	Convey("webtorrent asks for a file when the index is unknown", t, func() {
		args, err := WebtorrentArgs(magnet, VLC, mo.None[int](), "")
		So(err, ShouldBeNil)
		So(args, ShouldResemble, []string{magnet, "--vlc", "--interactive-select"})
	})

	Convey("torrent downloads go to the chosen directory", t, func() {
		args, err := DownloadTorrentArgs(magnet, "/media", mo.Some(0))
		So(err, ShouldBeNil)
		So(args, ShouldResemble, []string{magnet, "--out", "/media", "--select", "0"})
	})

	Convey("yt-dlp names files by title and sends the referrer", t, func() {
		args, err := DownloadDirectArgs("https://cdn.example/master.m3u8", "/media", "https://cloudnestra.com/rcp/x")
		So(err, ShouldBeNil)
		So(args, ShouldResemble, []string{
			"https://cdn.example/master.m3u8",
			"-o", "/media/%(title)s.%(ext)s",
			"--referer", "https://cloudnestra.com/rcp/x",
		})
	})

	Convey("Missing helpers are reported", t, func() {
		restore := fakePath()
		defer restore()

		So(errors.Is(DownloadDirect("https://a/b.mp4", "/tmp", ""), ErrMissingBinary), ShouldBeTrue)
		So(Installed(Webtorrent), ShouldBeFalse)
	})
}
