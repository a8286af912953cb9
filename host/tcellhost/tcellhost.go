// Package tcellhost adapts a tcell terminal screen to the editor
// Surface contract. It provides a minimal editable text area: enough
// host behavior (text mutation, cursor movement, notifications) to
// drive a Binding end to end in a terminal.
package tcellhost

import (
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/rmarchant/highlite/editor"
	"github.com/rmarchant/highlite/highlight"
)

// Host implements editor.Surface over a tcell.Screen.
//
// All Surface methods must be called from the event thread (the
// goroutine running Run). Post is the one exception: it may be called
// from any goroutine and marshals work onto the event thread.
type Host struct {
	editor.Hub

	screen tcell.Screen
	owned  bool // whether Close should Fini the screen

	text      string
	cursor    int // byte offset into text
	selection []editor.Range
	typing    highlight.AttrSet
	styled    highlight.StyledText

	postMu sync.Mutex
	posted []func()

	quit bool
}

// New creates a host on a fresh terminal screen and initializes it.
func New() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Host{screen: screen, owned: true, typing: highlight.AttrSet{}}, nil
}

// NewWithScreen creates a host on an existing, initialized screen. The
// caller keeps ownership of the screen's lifecycle. Intended for tests
// with tcell's simulation screen.
func NewWithScreen(screen tcell.Screen) *Host {
	return &Host{screen: screen, typing: highlight.AttrSet{}}
}

// Close releases the terminal if the host owns it.
func (h *Host) Close() {
	if h.owned {
		h.screen.Fini()
	}
}

// Text returns the current text content.
func (h *Host) Text() string {
	return h.text
}

// SetText replaces the text content, clamps the cursor and notifies.
func (h *Host) SetText(text string) {
	h.text = text
	if h.cursor > len(text) {
		h.cursor = len(text)
	}
	h.selection = editor.ClampRanges(h.selection, len(text))
	h.Publish(editor.Event{Kind: editor.EventTextChanged})
}

// SetStyled installs styled content and redraws. The raw text is
// untouched: styling carries the same character content by contract.
func (h *Host) SetStyled(st highlight.StyledText) {
	h.styled = st
	h.draw()
}

// Selection returns the selection ranges, the cursor included as a
// zero-length range when nothing is selected.
func (h *Host) Selection() []editor.Range {
	if len(h.selection) == 0 {
		return []editor.Range{{Start: h.cursor}}
	}
	out := make([]editor.Range, len(h.selection))
	copy(out, h.selection)
	return out
}

// SetSelection replaces the selection ranges and notifies.
func (h *Host) SetSelection(ranges []editor.Range) {
	h.selection = editor.ClampRanges(ranges, len(h.text))
	if len(h.selection) > 0 {
		h.cursor = h.selection[0].Start
	}
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

// Post schedules fn on the event thread's next turn.
func (h *Host) Post(fn func()) {
	h.postMu.Lock()
	h.posted = append(h.posted, fn)
	h.postMu.Unlock()

	// Wake the event loop; a no-op when nothing is polling yet.
	_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Native returns the underlying tcell.Screen.
func (h *Host) Native() any {
	return h.screen
}

// Run enters the event loop: keystrokes edit the text, every edit
// notifies subscribers (the Binding restyles synchronously), and posted
// work runs between events. Returns when the user quits with Esc or
// Ctrl-C.
func (h *Host) Run() {
	h.Publish(editor.Event{Kind: editor.EventEditingBegan})
	defer h.Publish(editor.Event{Kind: editor.EventEditingEnded})

	h.draw()
	for !h.quit {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		h.HandleEvent(ev)
	}
}

// HandleEvent processes one tcell event. Exposed so embedders can run
// their own loop around the host.
func (h *Host) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		h.flushPosted()
	case *tcell.EventResize:
		h.screen.Sync()
		h.draw()
	case *tcell.EventKey:
		h.handleKey(ev)
	}
}

// flushPosted runs work queued with Post. Work posted while flushing
// runs on the next interrupt.
func (h *Host) flushPosted() {
	h.postMu.Lock()
	queued := h.posted
	h.posted = nil
	h.postMu.Unlock()

	for _, fn := range queued {
		fn()
	}
}

// handleKey applies one keystroke.
func (h *Host) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.quit = true
	case tcell.KeyRune:
		h.insert(string(ev.Rune()))
	case tcell.KeyEnter:
		h.insert("\n")
	case tcell.KeyTab:
		h.insert("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.backspace()
	case tcell.KeyLeft:
		h.moveCursor(-1)
	case tcell.KeyRight:
		h.moveCursor(1)
	}
}

// insert places s at the cursor.
func (h *Host) insert(s string) {
	h.text = h.text[:h.cursor] + s + h.text[h.cursor:]
	h.cursor += len(s)
	h.selection = nil
	h.Publish(editor.Event{Kind: editor.EventTextChanged})
}

// backspace removes the rune before the cursor.
func (h *Host) backspace() {
	if h.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(h.text[:h.cursor])
	h.text = h.text[:h.cursor-size] + h.text[h.cursor:]
	h.cursor -= size
	h.selection = nil
	h.Publish(editor.Event{Kind: editor.EventTextChanged})
}

// moveCursor shifts the cursor by one rune in either direction.
func (h *Host) moveCursor(dir int) {
	switch {
	case dir < 0 && h.cursor > 0:
		_, size := utf8.DecodeLastRuneInString(h.text[:h.cursor])
		h.cursor -= size
	case dir > 0 && h.cursor < len(h.text):
		_, size := utf8.DecodeRuneInString(h.text[h.cursor:])
		h.cursor += size
	default:
		return
	}
	h.selection = nil
	h.Publish(editor.Event{Kind: editor.EventSelectionChanged})
}

// draw repaints the styled text and cursor.
func (h *Host) draw() {
	h.screen.Clear()

	row, col := 0, 0
	cursorRow, cursorCol := 0, 0
	off := 0

	for _, span := range h.styled.Spans() {
		style := styleFor(span.Attrs)
		for _, r := range h.styled.Text()[span.Start:span.End] {
			if off == h.cursor {
				cursorRow, cursorCol = row, col
			}
			if r == '\n' {
				row++
				col = 0
				off += utf8.RuneLen(r)
				continue
			}
			h.screen.SetContent(col, row, r, nil, style)
			col += runewidth.RuneWidth(r)
			off += utf8.RuneLen(r)
		}
	}
	if off == h.cursor {
		cursorRow, cursorCol = row, col
	}

	h.screen.ShowCursor(cursorCol, cursorRow)
	h.screen.Show()
}

// styleFor converts an attribute set to a tcell style. Unknown keys and
// attributes a terminal cannot express (font scale, monospace) are
// ignored.
func styleFor(attrs highlight.AttrSet) tcell.Style {
	style := tcell.StyleDefault

	if v, ok := attrs[highlight.KeyForeground].(string); ok {
		style = style.Foreground(tcell.GetColor(v))
	}
	if v, ok := attrs[highlight.KeyBackground].(string); ok {
		style = style.Background(tcell.GetColor(v))
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
		style = style.StrikeThrough(true)
	}
	if v, ok := attrs[highlight.KeyHyperlink].(string); ok {
		style = style.Url(v)
	}

	return style
}
