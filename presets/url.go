package presets

import (
	"fmt"
	"net/url"

	"github.com/rmarchant/highlite/highlight"
)

// URL returns a rule set that detects bare http and https links in
// running text and attaches the parsed target as a hyperlink attribute.
// A candidate that fails to parse keeps the visual link styling but
// carries no hyperlink target.
func URL() highlight.RuleSet {
	return highlight.RuleSet{
		highlight.NewRule(
			highlight.MustPattern(`https?://[^\s<>()\[\]]+`, 0),
			highlight.Attr(highlight.KeyForeground, colorAccent),
			highlight.Attr(highlight.KeyUnderline, true),
			highlight.Dynamic(highlight.KeyHyperlink, bareURLTarget),
		),
	}
}

// bareURLTarget validates a bare URL match.
func bareURLTarget(m highlight.Match) (any, error) {
	u, err := url.Parse(m.Target)
	if err != nil {
		return nil, fmt.Errorf("parsing url %q: %w", m.Target, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url %q has no host", m.Target)
	}
	return u.String(), nil
}
