// Package luarules builds rule sets from Lua scripts.
//
// TOML rule files (package rulecfg) cover static styling; Lua scripts
// additionally express dynamic mutations as functions evaluated per
// match. A script returns an array of rule tables:
//
//	return {
//	  {
//	    pattern = [[^(#{1,6})\s.*$]],
//	    multiline = true,
//	    attrs = {
//	      { key = "bold", value = true },
//	      { key = "fontscale", fn = function(full, target)
//	          return 1.0 + 0.1 * (7 - #string.match(full, "^#+"))
//	        end },
//	    },
//	  },
//	}
//
// An attr carries either a static value or fn(full, target), which
// receives the whole matched text and the text of the targeted span
// and returns a boolean, number or string. A function that errors or
// returns nil omits the attribute for that match only.
//
// The Lua state lives as long as the Script and is not goroutine-safe;
// like the rest of the pipeline, a Script belongs to one event thread.
package luarules

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/rmarchant/highlite/highlight"
)

// ErrClosed is returned by dynamic mutations evaluated after the
// owning script was closed. The engine treats it like any other
// dynamic failure and omits the attribute.
var ErrClosed = errors.New("luarules: script closed")

// Script is a rule set backed by a Lua state. Close releases the state;
// rules with dynamic mutations stop producing values after that.
type Script struct {
	mu     sync.Mutex
	state  *lua.LState
	rules  highlight.RuleSet
	closed bool
}

// LoadFile runs the script at path and builds its rule set. Any error
// in the script or its patterns fails the load; rule scripts are static
// configuration.
func LoadFile(path string) (*Script, error) {
	s := newScript()
	if err := s.state.DoFile(path); err != nil {
		s.Close()
		return nil, fmt.Errorf("running rule script %s: %w", path, err)
	}
	if err := s.build(); err != nil {
		s.Close()
		return nil, fmt.Errorf("rule script %s: %w", path, err)
	}
	return s, nil
}

// LoadString runs an in-memory script and builds its rule set.
func LoadString(src string) (*Script, error) {
	s := newScript()
	if err := s.state.DoString(src); err != nil {
		s.Close()
		return nil, fmt.Errorf("running rule script: %w", err)
	}
	if err := s.build(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// newScript creates the Lua state with only safe libraries opened.
func newScript() *Script {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	return &Script{state: L}
}

// Rules returns the rule set the script defined.
func (s *Script) Rules() highlight.RuleSet {
	return s.rules
}

// Close shuts down the Lua state. Safe to call more than once.
func (s *Script) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.state.Close()
}

// build converts the script's return value into a rule set.
func (s *Script) build() error {
	ret := s.state.Get(-1)
	s.state.Pop(1)

	table, ok := ret.(*lua.LTable)
	if !ok {
		return fmt.Errorf("script must return a table of rules, got %s", ret.Type())
	}

	var rules highlight.RuleSet
	var buildErr error
	table.ForEach(func(idx, value lua.LValue) {
		if buildErr != nil {
			return
		}
		ruleTable, ok := value.(*lua.LTable)
		if !ok {
			buildErr = fmt.Errorf("rule %s: expected table, got %s", idx.String(), value.Type())
			return
		}
		rule, err := s.buildRule(ruleTable)
		if err != nil {
			buildErr = fmt.Errorf("rule %s: %w", idx.String(), err)
			return
		}
		rules = append(rules, rule)
	})
	if buildErr != nil {
		return buildErr
	}
	if len(rules) == 0 {
		return errors.New("script defines no rules")
	}

	s.rules = rules
	return nil
}

// buildRule converts one Lua rule table.
func (s *Script) buildRule(t *lua.LTable) (highlight.Rule, error) {
	expr, ok := t.RawGetString("pattern").(lua.LString)
	if !ok {
		return highlight.Rule{}, errors.New("missing pattern")
	}

	var flags highlight.MatchFlags
	if lua.LVAsBool(t.RawGetString("multiline")) {
		flags |= highlight.MatchMultiline
	}
	if lua.LVAsBool(t.RawGetString("dotall")) {
		flags |= highlight.MatchDotAll
	}
	if lua.LVAsBool(t.RawGetString("ignorecase")) {
		flags |= highlight.MatchIgnoreCase
	}

	pattern, err := highlight.CompilePattern(string(expr), flags)
	if err != nil {
		return highlight.Rule{}, err
	}

	attrsTable, ok := t.RawGetString("attrs").(*lua.LTable)
	if !ok {
		return highlight.Rule{}, errors.New("missing attrs")
	}

	var muts []highlight.Mutation
	var attrErr error
	attrsTable.ForEach(func(idx, value lua.LValue) {
		if attrErr != nil {
			return
		}
		attrTable, ok := value.(*lua.LTable)
		if !ok {
			attrErr = fmt.Errorf("attr %s: expected table, got %s", idx.String(), value.Type())
			return
		}
		mut, err := s.buildMutation(attrTable, pattern.Groups())
		if err != nil {
			attrErr = fmt.Errorf("attr %s: %w", idx.String(), err)
			return
		}
		muts = append(muts, mut)
	})
	if attrErr != nil {
		return highlight.Rule{}, attrErr
	}

	return highlight.NewRule(pattern, muts...), nil
}

// buildMutation converts one Lua attr table. maxGroup is the number of
// capture groups the rule's pattern defines.
func (s *Script) buildMutation(t *lua.LTable, maxGroup int) (highlight.Mutation, error) {
	key, ok := t.RawGetString("key").(lua.LString)
	if !ok {
		return highlight.Mutation{}, errors.New("missing key")
	}

	group := 0
	if g, ok := t.RawGetString("group").(lua.LNumber); ok {
		group = int(g)
		if group < 0 {
			return highlight.Mutation{}, errors.New("negative group")
		}
		if group > maxGroup {
			return highlight.Mutation{}, fmt.Errorf("group %d out of range, pattern has %d groups", group, maxGroup)
		}
	}

	if fn, ok := t.RawGetString("fn").(*lua.LFunction); ok {
		return highlight.Mutation{
			Key:     highlight.AttrKey(key),
			Dynamic: s.dynamic(fn),
			Group:   group,
		}, nil
	}

	value := t.RawGetString("value")
	goValue, err := valueOf(value)
	if err != nil {
		return highlight.Mutation{}, err
	}
	return highlight.Mutation{
		Key:   highlight.AttrKey(key),
		Value: goValue,
		Group: group,
	}, nil
}

// dynamic wraps a Lua function as a DynamicFunc.
func (s *Script) dynamic(fn *lua.LFunction) highlight.DynamicFunc {
	return func(m highlight.Match) (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return nil, ErrClosed
		}

		err := s.state.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, lua.LString(m.Full), lua.LString(m.Target))
		if err != nil {
			return nil, fmt.Errorf("rule function: %w", err)
		}

		ret := s.state.Get(-1)
		s.state.Pop(1)
		if ret == lua.LNil {
			return nil, errors.New("rule function returned nil")
		}
		return valueOf(ret)
	}
}

// valueOf converts a Lua value to a Go attribute value.
func valueOf(v lua.LValue) (any, error) {
	switch v := v.(type) {
	case lua.LBool:
		return bool(v), nil
	case lua.LNumber:
		return float64(v), nil
	case lua.LString:
		return string(v), nil
	default:
		return nil, fmt.Errorf("unsupported attribute value type %s", v.Type())
	}
}
