package custom

import (
	"sync"

	"github.com/cine-cli/cine/constant"
	"github.com/cine-cli/cine/log"
	lua "github.com/yuin/gopher-lua"
)

// Script is a loaded extractor. A Lua state is single-threaded, so calls are serialized.
type Script struct {
	name  string
	mu    sync.Mutex
	state *lua.LState
}

func newScript(name string, state *lua.LState) *Script {
	return &Script{name: name, state: state}
}

// Name returns the script name.
func (s *Script) Name() string {
	return s.name
}

// ID returns the extractor ID.
func (s *Script) ID() string {
	return IDfromName(s.name)
}

// Extract calls the script's ChildReferences(html).
// Script errors count as finding nothing.
func (s *Script) Extract(html string) []string {
	refs, err := s.call(constant.ChildReferencesFn, lua.LString(html))
	if err != nil {
		log.Debugf("extractor %s: %v", s.name, err)
		return nil
	}
	return refs
}

// Close releases the Lua state.
func (s *Script) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Close()
}

func (s *Script) call(fn string, args ...lua.LValue) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	luaFn := s.state.GetGlobal(fn)
	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, err
	}

	retval := s.state.Get(-1)
	s.state.Pop(1)

	return stringsFrom(retval)
}
