package editor

import (
	"github.com/rmarchant/highlite/highlight"
)

// fakeSurface is an in-memory Surface for tests. It mimics a host
// toolkit that fires notifications for programmatic changes too,
// including the selection churn caused by installing styled content —
// the worst-case behavior the binding has to mask.
type fakeSurface struct {
	Hub

	text      string
	selection []Range
	typing    highlight.AttrSet
	styled    highlight.StyledText

	// clearSelectionOnStyle simulates toolkits that reset the
	// selection whenever attributed content is replaced.
	clearSelectionOnStyle bool

	// publishWhileStyling, when non-nil, is invoked from inside
	// SetStyled to simulate a toolkit notifying mid-install.
	publishWhileStyling func()

	setStyledCalls int
	queue          []func()
}

func newFakeSurface(text string) *fakeSurface {
	return &fakeSurface{text: text, typing: highlight.AttrSet{}}
}

func (f *fakeSurface) Text() string { return f.text }

func (f *fakeSurface) SetText(text string) {
	f.text = text
	f.Publish(Event{Kind: EventTextChanged})
}

func (f *fakeSurface) SetStyled(st highlight.StyledText) {
	f.styled = st
	f.setStyledCalls++
	if f.clearSelectionOnStyle {
		f.selection = nil
		f.Publish(Event{Kind: EventSelectionChanged})
	}
	if f.publishWhileStyling != nil {
		f.publishWhileStyling()
	}
}

func (f *fakeSurface) Selection() []Range {
	out := make([]Range, len(f.selection))
	copy(out, f.selection)
	return out
}

func (f *fakeSurface) SetSelection(ranges []Range) {
	f.selection = ranges
	f.Publish(Event{Kind: EventSelectionChanged})
}

func (f *fakeSurface) TypingAttrs() highlight.AttrSet {
	return f.typing.Clone()
}

func (f *fakeSurface) SetTypingAttrs(attrs highlight.AttrSet) {
	f.typing = attrs
}

func (f *fakeSurface) Post(fn func()) {
	f.queue = append(f.queue, fn)
}

func (f *fakeSurface) Native() any { return f }

// flush runs everything queued with Post, like one event-loop turn.
// Work posted while flushing runs on the next call.
func (f *fakeSurface) flush() {
	queued := f.queue
	f.queue = nil
	for _, fn := range queued {
		fn()
	}
}

// userSelect simulates the user moving the cursor or selecting text.
func (f *fakeSurface) userSelect(ranges []Range) {
	f.SetSelection(ranges)
}

// userType simulates the user typing: text mutation followed by the
// toolkit's text-changed notification (via SetText).
func (f *fakeSurface) userType(text string) {
	f.SetText(text)
}
