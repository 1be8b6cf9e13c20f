package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

func testPicker(preview bool) *picker {
	p := newPicker("Pick", []Option{
		{Label: "The Matrix (1999)", Preview: "A hacker learns the truth.", Value: 603},
		{Label: "Game of Thrones (2011)", Value: 1399},
	}, preview)
	p.resize(120, 40)
	return p
}

func press(p *picker, key tea.KeyType) {
	_, _ = p.Update(tea.KeyMsg{Type: key})
}

func TestPicker(t *testing.T) {
	Convey("Given a picker", t, func() {
		p := testPicker(true)

		Convey("Enter chooses the highlighted option", func() {
			press(p, tea.KeyDown)
			press(p, tea.KeyEnter)

			chosen, ok, err := p.result()
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(chosen.Value, ShouldEqual, 1399)
		})

		Convey("Esc backs out without a choice", func() {
			press(p, tea.KeyEsc)

			_, ok, err := p.result()
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
			So(p.quitting, ShouldBeTrue)
		})

		Convey("The preview pane is shown on wide terminals", func() {
			So(p.showPreview(), ShouldBeTrue)
			So(p.View(), ShouldContainSubstring, "A hacker learns the truth.")

			p.resize(40, 40)
			So(p.showPreview(), ShouldBeFalse)
		})
	})

	Convey("Previews stay hidden when disabled", t, func() {
		So(testPicker(false).showPreview(), ShouldBeFalse)
	})

	Convey("Pick refuses an empty list", t, func() {
		_, _, err := Pick("Nothing", nil)
		So(err, ShouldEqual, ErrNoOptions)
	})
}

func TestRenderPreview(t *testing.T) {
	Convey("Long text is wrapped and cut to the pane", t, func() {
		text := strings.Repeat("word ", 100)
		out := renderPreview(text, 20, 3)

		lines := strings.Split(out, "\n")
		So(lines, ShouldHaveLength, 3)
		for _, line := range lines {
			So(len([]rune(line)), ShouldBeLessThanOrEqualTo, 20)
		}
	})

	Convey("Empty previews say so", t, func() {
		So(renderPreview("  ", 20, 3), ShouldContainSubstring, "No details")
	})
}

func TestExpandHome(t *testing.T) {
	Convey("A leading tilde becomes the home directory", t, func() {
		home, err := os.UserHomeDir()
		So(err, ShouldBeNil)
		So(expandHome("~/Movies"), ShouldEqual, filepath.Join(home, "Movies"))
		So(expandHome("/srv/media"), ShouldEqual, "/srv/media")
	})
}
