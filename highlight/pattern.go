package highlight

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchFlags control how a pattern is matched against text.
type MatchFlags uint8

// Matching options.
const (
	// MatchMultiline makes ^ and $ match at line boundaries instead of
	// only at the start and end of the text.
	MatchMultiline MatchFlags = 1 << iota

	// MatchDotAll makes . match newlines.
	MatchDotAll

	// MatchIgnoreCase makes matching case-insensitive.
	MatchIgnoreCase
)

// Has returns true if the flag set contains the given flag.
func (f MatchFlags) Has(flag MatchFlags) bool {
	return f&flag != 0
}

// prefix returns the inline regexp flag group for the flag set.
func (f MatchFlags) prefix() string {
	var b strings.Builder
	if f.Has(MatchMultiline) {
		b.WriteByte('m')
	}
	if f.Has(MatchDotAll) {
		b.WriteByte('s')
	}
	if f.Has(MatchIgnoreCase) {
		b.WriteByte('i')
	}
	if b.Len() == 0 {
		return ""
	}
	return "(?" + b.String() + ")"
}

// Pattern is a compiled regular expression plus its matching options.
// A Pattern is immutable once constructed.
type Pattern struct {
	re    *regexp.Regexp
	expr  string
	flags MatchFlags
}

// CompilePattern compiles expr with the given matching options. The
// expression uses RE2 syntax. Compilation failure is a configuration
// error: rule sets are static, so callers building presets should use
// MustPattern instead.
func CompilePattern(expr string, flags MatchFlags) (Pattern, error) {
	re, err := regexp.Compile(flags.prefix() + expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("compiling pattern %q: %w", expr, err)
	}
	return Pattern{re: re, expr: expr, flags: flags}, nil
}

// MustPattern compiles expr and panics on failure. Intended for static
// preset tables where a broken pattern is a programming error.
func MustPattern(expr string, flags MatchFlags) Pattern {
	p, err := CompilePattern(expr, flags)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source expression without inline flags.
func (p Pattern) String() string {
	return p.expr
}

// Flags returns the matching options the pattern was compiled with.
func (p Pattern) Flags() MatchFlags {
	return p.flags
}

// IsZero returns true for the zero Pattern, which matches nothing.
func (p Pattern) IsZero() bool {
	return p.re == nil
}

// Groups returns the number of capture groups in the pattern. Rule
// builders use it to reject group targets the pattern cannot produce.
func (p Pattern) Groups() int {
	if p.re == nil {
		return 0
	}
	return p.re.NumSubexp()
}

// findAll returns all leftmost, non-overlapping match index pairs, in
// the layout of regexp.FindAllStringSubmatchIndex.
func (p Pattern) findAll(text string) [][]int {
	if p.re == nil {
		return nil
	}
	return p.re.FindAllStringSubmatchIndex(text, -1)
}
