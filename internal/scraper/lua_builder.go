// Package scraper compiles and installs the Lua scripts that extend the stream resolver.
package scraper

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/cine-cli/cine/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// compiled holds prototypes keyed by path and modification time,
// so an edited script is recompiled on its next load.
var compiled sync.Map

// PreCompileAndLoad runs the script at scriptPath in L, compiling it only once per revision.
func PreCompileAndLoad(L *lua.LState, scriptPath string) error {
	info, err := filesystem.API().Stat(scriptPath)
	if err != nil {
		return err
	}

	cacheKey := fmt.Sprintf("%s@%d", scriptPath, info.ModTime().UnixNano())
	if proto, ok := compiled.Load(cacheKey); ok {
		return run(L, proto.(*lua.FunctionProto))
	}

	source, err := filesystem.API().ReadFile(scriptPath)
	if err != nil {
		return err
	}

	proto, err := Compile(source, scriptPath)
	if err != nil {
		return err
	}

	compiled.Store(cacheKey, proto)
	return run(L, proto)
}

// Compile parses and compiles a script without running it.
func Compile(source []byte, name string) (*lua.FunctionProto, error) {
	chunk, err := parse.Parse(bytes.NewReader(source), name)
	if err != nil {
		return nil, err
	}
	return lua.Compile(chunk, name)
}

func run(L *lua.LState, proto *lua.FunctionProto) error {
	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}
