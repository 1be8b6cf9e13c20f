package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func TestKeyring(t *testing.T) {
	keyring.MockInit()

	Convey("Given an empty keyring", t, func() {
		_ = Delete(TMDB)

		Convey("Get should fail", func() {
			_, err := Get(TMDB)
			So(err, ShouldNotBeNil)
		})

		Convey("When a secret is stored", func() {
			So(Set(TMDB, "0123456789abcdef"), ShouldBeNil)

			Convey("Then it can be read back", func() {
				v, err := Get(TMDB)
				So(err, ShouldBeNil)
				So(v, ShouldEqual, "0123456789abcdef")
			})

			Convey("Then other secrets stay unset", func() {
				_, err := Get(Torbox)
				So(err, ShouldNotBeNil)
			})
		})
	})
}
