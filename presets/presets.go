// Package presets provides ready-made rule sets for common highlighting
// domains. Presets are pure data: ordered highlight.RuleSet values built
// from static pattern tables, composable with RuleSet.Append.
package presets

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rmarchant/highlite/highlight"
)

// Colors shared by the bundled presets. Values are hex strings; host
// adapters resolve them for their back end.
const (
	colorAccent  = "#569cd6"
	colorCode    = "#ce9178"
	colorQuote   = "#6a9955"
	colorSubtle  = "#808080"
	colorHeading = "#c586c0"
)

// headingScale maps a heading level (1-6) to a font size multiplier.
var headingScale = [6]float64{1.6, 1.45, 1.3, 1.2, 1.1, 1.05}

// scaleForHeading derives the size multiplier from the hash prefix of a
// heading match.
func scaleForHeading(m highlight.Match) (any, error) {
	level := 0
	for _, r := range m.Full {
		if r != '#' {
			break
		}
		level++
	}
	if level < 1 || level > len(headingScale) {
		return nil, fmt.Errorf("heading level %d out of range", level)
	}
	return headingScale[level-1], nil
}

// linkTarget validates and returns the URL inside a markdown link's
// destination group. A malformed destination omits the hyperlink
// attribute for that match; the visual link styling still applies.
func linkTarget(m highlight.Match) (any, error) {
	raw := strings.TrimSpace(m.Target)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing link target %q: %w", raw, err)
	}
	if u.Scheme == "" && u.Host == "" && u.Path == "" && u.Fragment == "" {
		return nil, fmt.Errorf("empty link target %q", raw)
	}
	return u.String(), nil
}
