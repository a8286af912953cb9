package presets

import (
	"github.com/rmarchant/highlite/highlight"
)

// MarkdownPretty returns the decorated markdown variant. It diverges
// from Markdown() in several expressions — most visibly strikethrough,
// which requires double tildes (~~word~~) here but single tildes in the
// base table. The tables are intentionally maintained as independent,
// literal rule sets rather than reconciled; DESIGN.md records the
// divergence.
func MarkdownPretty() highlight.RuleSet {
	return highlight.RuleSet{
		// Headings: colored as well as bold in the pretty variant, and
		// the hash prefix itself is dimmed via group 1.
		highlight.NewRule(
			highlight.MustPattern(`^(#{1,6})\s.*$`, highlight.MatchMultiline),
			highlight.Attr(highlight.KeyBold, true),
			highlight.Attr(highlight.KeyForeground, colorHeading),
			highlight.Dynamic(highlight.KeyFontScale, scaleForHeading),
			highlight.GroupAttr(highlight.KeyForeground, colorSubtle, 1),
		),

		// Blockquotes, including the leading marker.
		highlight.NewRule(
			highlight.MustPattern(`^>\s?.*$`, highlight.MatchMultiline),
			highlight.Attr(highlight.KeyForeground, colorQuote),
			highlight.Attr(highlight.KeyItalic, true),
		),

		// List markers.
		highlight.NewRule(
			highlight.MustPattern(`^\s*([-*+]|\d+\.)\s`, highlight.MatchMultiline),
			highlight.GroupAttr(highlight.KeyBold, true, 1),
			highlight.GroupAttr(highlight.KeyForeground, colorAccent, 1),
		),

		// Horizontal rules: dashes only in this table.
		highlight.NewRule(
			highlight.MustPattern(`^-{3,}\s*$`, highlight.MatchMultiline),
			highlight.Attr(highlight.KeyForeground, colorSubtle),
		),

		// Bold: asterisks only in this table.
		highlight.NewRule(
			highlight.MustPattern(`\*\*[^*\n]+\*\*`, 0),
			highlight.Attr(highlight.KeyBold, true),
		),

		// Emphasis: underscores only in this table.
		highlight.NewRule(
			highlight.MustPattern(`_[^_\n]+_`, 0),
			highlight.Attr(highlight.KeyItalic, true),
		),

		// Strikethrough: double tildes in the pretty table.
		highlight.NewRule(
			highlight.MustPattern(`~~[^~\n]+~~`, 0),
			highlight.Attr(highlight.KeyStrikethrough, true),
		),

		// Links, with the destination group dimmed.
		highlight.NewRule(
			highlight.MustPattern(`\[([^\[\]\n]*)\]\(([^()\n]*)\)`, 0),
			highlight.Attr(highlight.KeyForeground, colorAccent),
			highlight.GroupAttr(highlight.KeyUnderline, true, 1),
			highlight.GroupAttr(highlight.KeyForeground, colorSubtle, 2),
			highlight.GroupDynamic(highlight.KeyHyperlink, linkTarget, 2),
		),

		// Inline code.
		highlight.NewRule(
			highlight.MustPattern("`[^`\n]+`", 0),
			highlight.Attr(highlight.KeyMonospace, true),
			highlight.Attr(highlight.KeyForeground, colorCode),
			highlight.Attr(highlight.KeyBackground, "#1e1e1e"),
		),

		// Fenced code blocks.
		highlight.NewRule(
			highlight.MustPattern("```.*?```", highlight.MatchDotAll),
			highlight.Attr(highlight.KeyMonospace, true),
			highlight.Attr(highlight.KeyForeground, colorCode),
			highlight.Attr(highlight.KeyBackground, "#1e1e1e"),
		),
	}
}
