// Package rulecfg loads named rule sets from TOML files.
//
// Rule-set files are static configuration: any invalid pattern fails
// the entire load immediately rather than surfacing later during a
// highlighting pass. Files can only express static attribute values;
// content-dependent styling needs a Lua rule script (see the luarules
// package) or rules built in Go.
package rulecfg

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/rmarchant/highlite/highlight"
)

// ErrNoRuleSets indicates a file that defines no rule sets at all,
// which is almost always a schema mistake.
var ErrNoRuleSets = errors.New("rulecfg: file defines no rule sets")

// fileSchema is the TOML document layout.
type fileSchema struct {
	RuleSets []ruleSetSchema `toml:"ruleset"`
}

type ruleSetSchema struct {
	Name  string       `toml:"name"`
	Rules []ruleSchema `toml:"rule"`
}

type ruleSchema struct {
	Pattern    string       `toml:"pattern"`
	Multiline  bool         `toml:"multiline"`
	DotAll     bool         `toml:"dotall"`
	IgnoreCase bool         `toml:"ignorecase"`
	Attrs      []attrSchema `toml:"attr"`
}

type attrSchema struct {
	Key   string `toml:"key"`
	Value any    `toml:"value"`
	Group int    `toml:"group"`
}

// Load reads and parses a rule-set file.
func Load(path string) (map[string]highlight.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule file %s: %w", path, err)
	}
	sets, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rule file %s: %w", path, err)
	}
	return sets, nil
}

// Parse decodes TOML data into named rule sets. TOML integer values
// arrive as int64 and floats as float64; adapters comparing attribute
// values need to account for that.
func Parse(data []byte) (map[string]highlight.RuleSet, error) {
	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if len(file.RuleSets) == 0 {
		return nil, ErrNoRuleSets
	}

	sets := make(map[string]highlight.RuleSet, len(file.RuleSets))
	for i, rs := range file.RuleSets {
		if rs.Name == "" {
			return nil, fmt.Errorf("ruleset %d: missing name", i)
		}
		if _, dup := sets[rs.Name]; dup {
			return nil, fmt.Errorf("ruleset %q: defined twice", rs.Name)
		}
		built, err := buildRuleSet(rs)
		if err != nil {
			return nil, fmt.Errorf("ruleset %q: %w", rs.Name, err)
		}
		sets[rs.Name] = built
	}
	return sets, nil
}

// buildRuleSet converts one schema entry, compiling every pattern.
func buildRuleSet(rs ruleSetSchema) (highlight.RuleSet, error) {
	out := make(highlight.RuleSet, 0, len(rs.Rules))
	for i, r := range rs.Rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("rule %d: missing pattern", i)
		}

		var flags highlight.MatchFlags
		if r.Multiline {
			flags |= highlight.MatchMultiline
		}
		if r.DotAll {
			flags |= highlight.MatchDotAll
		}
		if r.IgnoreCase {
			flags |= highlight.MatchIgnoreCase
		}

		pattern, err := highlight.CompilePattern(r.Pattern, flags)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}

		muts := make([]highlight.Mutation, 0, len(r.Attrs))
		for j, a := range r.Attrs {
			if a.Key == "" {
				return nil, fmt.Errorf("rule %d attr %d: missing key", i, j)
			}
			if a.Value == nil {
				return nil, fmt.Errorf("rule %d attr %d (%s): missing value", i, j, a.Key)
			}
			if err := scalarValue(a.Value); err != nil {
				return nil, fmt.Errorf("rule %d attr %d (%s): %w", i, j, a.Key, err)
			}
			if a.Group < 0 {
				return nil, fmt.Errorf("rule %d attr %d (%s): negative group", i, j, a.Key)
			}
			if a.Group > pattern.Groups() {
				return nil, fmt.Errorf("rule %d attr %d (%s): group %d out of range, pattern has %d groups",
					i, j, a.Key, a.Group, pattern.Groups())
			}
			muts = append(muts, highlight.GroupAttr(highlight.AttrKey(a.Key), a.Value, a.Group))
		}

		out = append(out, highlight.NewRule(pattern, muts...))
	}
	return out, nil
}

// scalarValue checks that a decoded TOML value is a scalar. Arrays and
// tables cannot be attribute values: spans are merged by comparing
// values with ==, and an uncomparable value would turn a configuration
// mistake into a panic during a later highlighting pass.
func scalarValue(v any) error {
	switch v.(type) {
	case bool, int64, float64, string:
		return nil
	default:
		return fmt.Errorf("unsupported value type %T, want boolean, integer, float or string", v)
	}
}
