package editor

import (
	"github.com/rmarchant/highlite/highlight"
)

// Binding wires a host Surface to the highlighting engine and owns the
// refresh discipline. The embedder supplies the rule set and optional
// observer hooks; the binding listens to the surface, restyles on every
// text change and guarantees that a styling refresh is invisible to
// observers: selection, typing attributes and callbacks behave exactly
// as if no refresh had happened.
//
// A Binding is single-threaded. All methods must be called from the
// host's event thread, which is also where surface notifications are
// delivered.
type Binding struct {
	surface Surface
	engine  *highlight.Engine
	rules   highlight.RuleSet

	onText      func(text string)
	onSelection func(ranges []Range)
	onEditBegin func()
	onEditEnd   func()
	introspect  func(native any)

	// active holds the in-progress pass state while styled content is
	// being installed and selection restored. Event handling consults
	// it to suppress the notifications that work causes.
	active *refreshPass

	last highlight.StyledText
	subs []Subscription
}

// refreshPass is the state captured at the start of one atomic refresh
// and restored at its end.
type refreshPass struct {
	selection []Range
	typing    highlight.AttrSet
}

// Option configures a Binding.
type Option func(*Binding)

// WithEngine sets the engine used for highlighting passes. Without it
// the binding uses a zero engine with no base attributes.
func WithEngine(e *highlight.Engine) Option {
	return func(b *Binding) {
		if e != nil {
			b.engine = e
		}
	}
}

// OnTextChange registers a hook fired after the text content changes.
// Hooks run on the host's next event-loop turn, never mid-pass.
func OnTextChange(fn func(text string)) Option {
	return func(b *Binding) {
		b.onText = fn
	}
}

// OnSelectionChange registers a hook fired after the selection changes
// for reasons the application initiated. Selection churn caused by a
// styling refresh is suppressed.
func OnSelectionChange(fn func(ranges []Range)) Option {
	return func(b *Binding) {
		b.onSelection = fn
	}
}

// OnEditingBegan registers a hook fired when an edit session starts.
func OnEditingBegan(fn func()) Option {
	return func(b *Binding) {
		b.onEditBegin = fn
	}
}

// OnEditingEnded registers a hook fired when an edit session ends.
func OnEditingEnded(fn func()) Option {
	return func(b *Binding) {
		b.onEditEnd = fn
	}
}

// WithIntrospect registers a hook that receives the surface's native
// toolkit object once at bind time, for configuration outside this
// package's scope.
func WithIntrospect(fn func(native any)) Option {
	return func(b *Binding) {
		b.introspect = fn
	}
}

// NewBinding binds surface to the given rule set, subscribes to its
// notifications and runs an initial refresh so the surface starts out
// styled.
func NewBinding(surface Surface, rules highlight.RuleSet, opts ...Option) *Binding {
	b := &Binding{
		surface: surface,
		engine:  highlight.NewEngine(nil),
		rules:   rules,
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, kind := range []EventKind{
		EventTextChanged,
		EventSelectionChanged,
		EventEditingBegan,
		EventEditingEnded,
	} {
		b.subs = append(b.subs, surface.Subscribe(kind, b.handle))
	}

	if b.introspect != nil {
		b.introspect(surface.Native())
	}

	b.Refresh()
	return b
}

// Refresh runs one atomic restyle pass: capture selection and typing
// attributes, highlight the current text, install the result, restore
// the captured state. A refresh triggered while another is installing
// is ignored; the surface already reflects the current text.
func (b *Binding) Refresh() {
	if b.active != nil {
		return
	}
	b.run(&refreshPass{
		selection: b.surface.Selection(),
		typing:    b.surface.TypingAttrs(),
	})
}

// run executes the pass. The pass state rides through explicitly; the
// binding only keeps a pointer to it so event handling can tell that
// the notifications arriving now are self-inflicted.
func (b *Binding) run(p *refreshPass) {
	b.active = p
	defer func() { b.active = nil }()

	text := b.surface.Text()
	b.last = b.engine.Highlight(text, b.rules)
	b.surface.SetStyled(b.last)

	// Restore captured state verbatim. Clamping only matters if the
	// host text changed length mid-pass, which the atomic sequence
	// rules out; it guards against misbehaving adapters.
	b.surface.SetSelection(ClampRanges(p.selection, len(text)))
	b.surface.SetTypingAttrs(p.typing)
}

// Updating returns true while a refresh pass is installing styled
// content or restoring state. Adapter callbacks that may fire as a side
// effect of those steps can consult it.
func (b *Binding) Updating() bool {
	return b.active != nil
}

// Styled returns the output of the most recent refresh pass.
func (b *Binding) Styled() highlight.StyledText {
	return b.last
}

// Rules returns the current rule set.
func (b *Binding) Rules() highlight.RuleSet {
	return b.rules
}

// SetRules replaces the rule set and refreshes immediately.
func (b *Binding) SetRules(rules highlight.RuleSet) {
	b.rules = rules
	b.Refresh()
}

// SetText replaces the surface's text. The adapter's text-changed
// notification drives the restyle, exactly as for user input.
func (b *Binding) SetText(text string) {
	b.surface.SetText(text)
}

// Text returns the surface's current text.
func (b *Binding) Text() string {
	return b.surface.Text()
}

// Close unsubscribes the binding from the surface. The surface itself
// is left untouched.
func (b *Binding) Close() {
	for _, sub := range b.subs {
		sub.Unsubscribe()
	}
	b.subs = nil
}

// handle processes one surface notification.
func (b *Binding) handle(e Event) {
	// Notifications raised by our own install/restore steps must not
	// re-enter the pass or reach application observers.
	if b.active != nil {
		return
	}

	switch e.Kind {
	case EventTextChanged:
		b.Refresh()
		if b.onText != nil {
			text := b.surface.Text()
			b.surface.Post(func() { b.onText(text) })
		}
	case EventSelectionChanged:
		if b.onSelection != nil {
			ranges := b.surface.Selection()
			b.surface.Post(func() { b.onSelection(ranges) })
		}
	case EventEditingBegan:
		if b.onEditBegin != nil {
			b.surface.Post(b.onEditBegin)
		}
	case EventEditingEnded:
		if b.onEditEnd != nil {
			b.surface.Post(b.onEditEnd)
		}
	}
}
