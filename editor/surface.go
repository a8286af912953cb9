package editor

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rmarchant/highlite/highlight"
)

// EventKind identifies a host surface notification.
type EventKind uint8

// Surface notifications.
const (
	// EventTextChanged fires after the surface's text content changed.
	EventTextChanged EventKind = iota

	// EventSelectionChanged fires after the selection ranges changed.
	EventSelectionChanged

	// EventEditingBegan fires when an edit session starts (the surface
	// gains focus or enters editing mode).
	EventEditingBegan

	// EventEditingEnded fires when an edit session ends.
	EventEditingEnded
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventTextChanged:
		return "text-changed"
	case EventSelectionChanged:
		return "selection-changed"
	case EventEditingBegan:
		return "editing-began"
	case EventEditingEnded:
		return "editing-ended"
	default:
		return "unknown"
	}
}

// Event is a single surface notification.
type Event struct {
	// Kind is the notification type.
	Kind EventKind
}

// Listener receives surface notifications.
type Listener func(Event)

// Subscription is an active listener registration.
type Subscription interface {
	// Unsubscribe removes the listener. Safe to call more than once.
	Unsubscribe()
}

// Surface is the boundary to the host text widget: the external,
// platform-specific editable text display the engine styles but does
// not implement. Adapters for concrete toolkits implement it; the
// Binding only ever talks to this interface.
//
// Setting styled content must not alter the underlying raw text. If a
// toolkit cannot guarantee that for selection or typing attributes, the
// Binding counteracts it by restoring both after every install.
type Surface interface {
	// Text returns the current raw text content.
	Text() string

	// SetText replaces the raw text content.
	SetText(text string)

	// SetStyled installs styled content. The styled text's content is
	// always identical to the current raw text.
	SetStyled(st highlight.StyledText)

	// Selection returns the current selection ranges in order.
	Selection() []Range

	// SetSelection replaces the selection ranges.
	SetSelection(ranges []Range)

	// TypingAttrs returns the attributes applied to text about to be
	// typed at the cursor.
	TypingAttrs() highlight.AttrSet

	// SetTypingAttrs replaces the typing attributes.
	SetTypingAttrs(attrs highlight.AttrSet)

	// Subscribe registers a listener for the given notification kind.
	Subscribe(kind EventKind, fn Listener) Subscription

	// Post schedules fn to run on the host's next event-loop turn,
	// after the current notification cascade has settled.
	Post(fn func())

	// Native returns the underlying toolkit object for advanced
	// configuration outside this package's scope. May be nil.
	Native() any
}

// Hub is a reusable listener registry for Surface implementations.
// Adapters embed a Hub and publish their toolkit's notifications
// through it. The zero value is ready to use.
type Hub struct {
	mu        sync.Mutex
	listeners map[EventKind]map[uuid.UUID]Listener
}

// Subscribe registers fn for notifications of the given kind.
func (h *Hub) Subscribe(kind EventKind, fn Listener) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listeners == nil {
		h.listeners = make(map[EventKind]map[uuid.UUID]Listener)
	}
	if h.listeners[kind] == nil {
		h.listeners[kind] = make(map[uuid.UUID]Listener)
	}

	id := uuid.New()
	h.listeners[kind][id] = fn
	return &hubSubscription{hub: h, kind: kind, id: id}
}

// Publish delivers an event to every listener registered for its kind.
// Listeners run synchronously in unspecified order.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	fns := make([]Listener, 0, len(h.listeners[e.Kind]))
	for _, fn := range h.listeners[e.Kind] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

// remove deletes a registration.
func (h *Hub) remove(kind EventKind, id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m := h.listeners[kind]; m != nil {
		delete(m, id)
	}
}

// hubSubscription is a Hub listener handle.
type hubSubscription struct {
	hub  *Hub
	kind EventKind
	id   uuid.UUID
	once sync.Once
}

// Unsubscribe removes the listener from the hub.
func (s *hubSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.remove(s.kind, s.id)
	})
}
