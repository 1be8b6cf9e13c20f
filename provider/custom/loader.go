// Package custom loads user Lua scripts that teach the stream resolver new
// places to look for frame and player references.
package custom

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/cine-cli/cine/constant"
	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/internal/scraper"
	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/provider/vidsrc"
	"github.com/cine-cli/cine/util"
	"github.com/cine-cli/cine/where"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// Extension of extractor scripts.
const Extension = ".lua"

// IDfromName generates the identifier of the extractor stored under name.
func IDfromName(name string) string {
	return name + " custom"
}

// Load runs the script at path and checks that it defines the extractor function.
func Load(path string) (*Script, error) {
	state := lua.NewState()
	libs.Preload(state)

	if err := scraper.PreCompileAndLoad(state, path); err != nil {
		state.Close()
		return nil, err
	}

	name := util.FileStem(path)
	if state.GetGlobal(constant.ChildReferencesFn).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.ChildReferencesFn, name)
	}

	return newScript(name, state), nil
}

// Paths lists the installed extractor scripts, sorted by name.
func Paths() ([]string, error) {
	dir := where.Extractors()
	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != Extension {
			continue
		}
		paths = append(paths, filepath.Join(dir, f.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Extractors loads every installed script as a resolver extractor.
// Scripts that fail to load are skipped and logged.
func Extractors() []vidsrc.Extractor {
	paths, err := Paths()
	if err != nil {
		log.Warnf("extractors: %v", err)
		return nil
	}

	var extractors []vidsrc.Extractor
	for _, path := range paths {
		script, err := Load(path)
		if err != nil {
			log.Warnf("extractors: skipping %s: %v", path, err)
			continue
		}
		extractors = append(extractors, script.Extract)
	}
	return extractors
}
