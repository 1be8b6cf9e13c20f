package custom

import (
	"path/filepath"
	"testing"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

const dataURLExtractor = `
function ChildReferences(html)
  local refs = {}
  for ref in string.gmatch(html, 'data%-url="([^"]+)"') do
    table.insert(refs, ref)
  end
  return refs
end
`

func install(name, source string) string {
	path := filepath.Join(where.Extractors(), name+Extension)
	So(filesystem.API().WriteFile(path, []byte(source), 0o644), ShouldBeNil)
	return path
}

func TestLoad(t *testing.T) {
	Convey("Given an extractor script", t, func() {
		path := install("dataurl", dataURLExtractor)

		script, err := Load(path)
		So(err, ShouldBeNil)
		defer script.Close()

		Convey("Its name comes from the file", func() {
			So(script.Name(), ShouldEqual, "dataurl")
			So(script.ID(), ShouldEqual, "dataurl custom")
		})

		Convey("Extract returns what the script finds", func() {
			html := `<b data-url="/one"></b><b data-url="/two"></b>`
			So(script.Extract(html), ShouldResemble, []string{"/one", "/two"})
		})

		Convey("Extract finds nothing in unrelated markup", func() {
			So(script.Extract("<p></p>"), ShouldBeEmpty)
		})
	})

	Convey("Scripts without ChildReferences are rejected", t, func() {
		path := install("empty", `local x = 1`)
		_, err := Load(path)
		So(err, ShouldNotBeNil)
	})

	Convey("Runtime errors count as finding nothing", t, func() {
		path := install("failing", `function ChildReferences(html) error("boom") end`)
		script, err := Load(path)
		So(err, ShouldBeNil)
		defer script.Close()

		So(script.Extract("<p></p>"), ShouldBeEmpty)
	})
}

func TestExtractors(t *testing.T) {
	Convey("Only loadable scripts become extractors", t, func() {
		for _, p := range lo.Must(Paths()) {
			_ = filesystem.API().Remove(p)
		}
		install("dataurl", dataURLExtractor)
		install("broken", `function (`)

		So(Extractors(), ShouldHaveLength, 1)
	})
}
