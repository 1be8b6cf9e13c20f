package config

import (
	"testing"
	"time"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("resolver.max_hosts"), ShouldEqual, "resolver_max_hosts")
		})

		Convey("Env names carry the application prefix", func() {
			f := Default[key.ResolverMaxHosts]
			So(f.Env(), ShouldEqual, "CINE_RESOLVER_MAX_HOSTS")
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given default configuration", t, func() {
		So(Setup(), ShouldBeNil)
		viper.Set(key.TMDBAPIKey, "")

		Convey("Load should succeed without an API key", func() {
			s, err := Load()
			So(err, ShouldBeNil)
			So(s.Resolver.MaxHosts, ShouldEqual, 3)
			So(s.Resolver.MaxPages, ShouldEqual, 20)
			So(s.Resolver.Timeout, ShouldEqual, 8*time.Second)
			So(s.Resolver.Domains, ShouldResemble, []string{"vidsrc.xyz"})
			So(s.WebtorrentTmpDir, ShouldNotBeEmpty)

			Convey("But catalog commands should be refused", func() {
				So(s.RequireCatalog(), ShouldEqual, ErrMissingAPIKey)
			})
		})

		Convey("A short API key should fail validation", func() {
			viper.Set(key.TMDBAPIKey, "short")
			_, err := Load()
			So(err, ShouldNotBeNil)
			viper.Set(key.TMDBAPIKey, "")
		})

		Convey("An unknown player should fail validation", func() {
			viper.Set(key.Player, "winamp")
			_, err := Load()
			So(err, ShouldNotBeNil)
			viper.Set(key.Player, "mpv")
		})

		Convey("A malformed manifest URL should fail validation", func() {
			viper.Set(key.CometManifest, "not a url")
			_, err := Load()
			So(err, ShouldNotBeNil)
			viper.Set(key.CometManifest, "")
		})
	})
}

func TestSecretFields(t *testing.T) {
	Convey("Given a stored TMDB key", t, func() {
		So(Setup(), ShouldBeNil)
		viper.Set(key.TMDBAPIKey, "0123456789abcdef")
		defer viper.Set(key.TMDBAPIKey, "")

		f := Default[key.TMDBAPIKey]
		So(f.Secret, ShouldBeTrue)

		Convey("Only its last four characters are shown", func() {
			So(f.Current(), ShouldEqual, "************cdef")
			So(f.Pretty(), ShouldNotContainSubstring, "0123456789")
		})

		Convey("Plain fields are shown as they are", func() {
			plain := Default[key.TMDBLanguage]
			So(plain.Secret, ShouldBeFalse)
			So(plain.Current(), ShouldEqual, "en-US")
		})
	})
}
