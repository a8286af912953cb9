package presets

import (
	"github.com/rmarchant/highlite/highlight"
)

// Markdown returns the base markdown rule set.
//
// The rules do not parse markdown; each construct is matched with a
// standalone regular expression, and listing order resolves conflicts
// between constructs that overlap (code is listed last so code spans
// win over emphasis markers inside them).
//
// Note: this table matches strikethrough with single tildes (~word~),
// while MarkdownPretty matches double tildes. The two tables are kept
// as independent, literal variants; see DESIGN.md.
func Markdown() highlight.RuleSet {
	return highlight.RuleSet{
		// Headings: whole line styled, size derived from the hash count.
		highlight.NewRule(
			highlight.MustPattern(`^#{1,6}\s.*$`, highlight.MatchMultiline),
			highlight.Attr(highlight.KeyBold, true),
			highlight.Dynamic(highlight.KeyFontScale, scaleForHeading),
		),

		// Blockquotes.
		highlight.NewRule(
			highlight.MustPattern(`^>\s?.*$`, highlight.MatchMultiline),
			highlight.Attr(highlight.KeyForeground, colorQuote),
			highlight.Attr(highlight.KeyItalic, true),
		),

		// List markers: only the marker itself, via group 1.
		highlight.NewRule(
			highlight.MustPattern(`^\s*([-*+]|\d+\.)\s`, highlight.MatchMultiline),
			highlight.GroupAttr(highlight.KeyBold, true, 1),
			highlight.GroupAttr(highlight.KeyForeground, colorAccent, 1),
		),

		// Horizontal rules.
		highlight.NewRule(
			highlight.MustPattern(`^(?:-{3,}|\*{3,}|_{3,})\s*$`, highlight.MatchMultiline),
			highlight.Attr(highlight.KeyForeground, colorSubtle),
		),

		// Bold: asterisk or underscore doubles.
		highlight.NewRule(
			highlight.MustPattern(`\*\*[^*\n]+\*\*|__[^_\n]+__`, 0),
			highlight.Attr(highlight.KeyBold, true),
		),

		// Emphasis: asterisk or underscore singles.
		highlight.NewRule(
			highlight.MustPattern(`\*[^*\n]+\*|_[^_\n]+_`, 0),
			highlight.Attr(highlight.KeyItalic, true),
		),

		// Strikethrough: single tildes in the base table.
		highlight.NewRule(
			highlight.MustPattern(`~[^~\n]+~`, 0),
			highlight.Attr(highlight.KeyStrikethrough, true),
		),

		// Links: [text](destination). Group 1 is the visible text,
		// group 2 the destination.
		highlight.NewRule(
			highlight.MustPattern(`\[([^\[\]\n]*)\]\(([^()\n]*)\)`, 0),
			highlight.Attr(highlight.KeyForeground, colorAccent),
			highlight.GroupAttr(highlight.KeyUnderline, true, 1),
			highlight.GroupDynamic(highlight.KeyHyperlink, linkTarget, 2),
		),

		// Inline code, listed after emphasis so backtick spans win.
		highlight.NewRule(
			highlight.MustPattern("`[^`\n]+`", 0),
			highlight.Attr(highlight.KeyMonospace, true),
			highlight.Attr(highlight.KeyForeground, colorCode),
		),

		// Fenced code blocks.
		highlight.NewRule(
			highlight.MustPattern("```.*?```", highlight.MatchDotAll),
			highlight.Attr(highlight.KeyMonospace, true),
			highlight.Attr(highlight.KeyForeground, colorCode),
		),
	}
}
