// Package ansihost adapts the editor Surface contract to plain ANSI
// string rendering. It has no screen of its own: the embedder owns the
// presentation loop (a bubbletea model, a REPL, a pager) and calls
// Render whenever it wants the current styled text as an ANSI string.
//
// Because there is no toolkit event loop, posted work is queued and the
// embedder pumps it with Flush once per update turn.
package ansihost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rmarchant/highlite/editor"
	"github.com/rmarchant/highlite/highlight"
)

// Host implements editor.Surface for string-rendering embedders.
type Host struct {
	editor.Hub

	text      string
	selection []editor.Range
	typing    highlight.AttrSet
	styled    highlight.StyledText

	posted []func()
}

// New creates a host holding the given initial text.
func New(text string) *Host {
	return &Host{text: text, typing: highlight.AttrSet{}}
}

// Text returns the current text content.
func (h *Host) Text() string {
	return h.text
}

// SetText replaces the text content and notifies.
func (h *Host) SetText(text string) {
	h.text = text
	h.selection = editor.ClampRanges(h.selection, len(text))
	h.Publish(editor.Event{Kind: editor.EventTextChanged})
}

// SetStyled installs styled content.
func (h *Host) SetStyled(st highlight.StyledText) {
	h.styled = st
}

// Styled returns the most recently installed styled content.
func (h *Host) Styled() highlight.StyledText {
	return h.styled
}

// Selection returns the selection ranges.
func (h *Host) Selection() []editor.Range {
	out := make([]editor.Range, len(h.selection))
	copy(out, h.selection)
	return out
}

// SetSelection replaces the selection ranges and notifies.
func (h *Host) SetSelection(ranges []editor.Range) {
	h.selection = editor.ClampRanges(ranges, len(h.text))
	h.Publish(editor.Event{Kind: editor.EventSelectionChanged})
}

// TypingAttrs returns the attributes for text about to be typed.
func (h *Host) TypingAttrs() highlight.AttrSet {
	return h.typing.Clone()
}

// SetTypingAttrs replaces the typing attributes.
func (h *Host) SetTypingAttrs(attrs highlight.AttrSet) {
	h.typing = attrs.Clone()
}

// Post queues fn for the embedder's next Flush.
func (h *Host) Post(fn func()) {
	h.posted = append(h.posted, fn)
}

// Flush runs the work queued with Post, one turn's worth: work posted
// during Flush runs on the next call.
func (h *Host) Flush() {
	queued := h.posted
	h.posted = nil
	for _, fn := range queued {
		fn()
	}
}

// Native returns nil; this adapter has no toolkit object behind it.
func (h *Host) Native() any {
	return nil
}

// Render returns the styled text as one ANSI string.
func (h *Host) Render() string {
	var b strings.Builder
	text := h.styled.Text()
	for _, span := range h.styled.Spans() {
		b.WriteString(renderSpan(text[span.Start:span.End], span.Attrs))
	}
	return b.String()
}

// renderSpan styles one chunk. Newlines break lipgloss's inline
// rendering, so the chunk is styled line by line.
func renderSpan(chunk string, attrs highlight.AttrSet) string {
	style := styleFor(attrs)
	link, _ := attrs[highlight.KeyHyperlink].(string)

	var b strings.Builder
	for i, line := range strings.Split(chunk, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line == "" {
			continue
		}
		rendered := style.Render(line)
		if link != "" {
			rendered = termenv.Hyperlink(link, rendered)
		}
		b.WriteString(rendered)
	}
	return b.String()
}

// styleFor converts an attribute set to a lipgloss style. Keys without
// an ANSI equivalent (font scale, monospace) are ignored.
func styleFor(attrs highlight.AttrSet) lipgloss.Style {
	style := lipgloss.NewStyle()

	if v, ok := attrs[highlight.KeyForeground].(string); ok {
		style = style.Foreground(lipgloss.Color(v))
	}
	if v, ok := attrs[highlight.KeyBackground].(string); ok {
		style = style.Background(lipgloss.Color(v))
	}
	if attrs[highlight.KeyBold] == true {
		style = style.Bold(true)
	}
	if attrs[highlight.KeyItalic] == true {
		style = style.Italic(true)
	}
	if attrs[highlight.KeyUnderline] == true {
		style = style.Underline(true)
	}
	if attrs[highlight.KeyStrikethrough] == true {
		style = style.Strikethrough(true)
	}

	return style
}
