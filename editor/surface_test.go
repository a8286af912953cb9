package editor

import "testing"

func TestHubSubscribePublish(t *testing.T) {
	var hub Hub

	var textCalls, selCalls int
	hub.Subscribe(EventTextChanged, func(Event) { textCalls++ })
	hub.Subscribe(EventSelectionChanged, func(Event) { selCalls++ })

	hub.Publish(Event{Kind: EventTextChanged})
	hub.Publish(Event{Kind: EventTextChanged})
	hub.Publish(Event{Kind: EventSelectionChanged})

	if textCalls != 2 {
		t.Errorf("text listener calls = %d, want 2", textCalls)
	}
	if selCalls != 1 {
		t.Errorf("selection listener calls = %d, want 1", selCalls)
	}
}

func TestHubUnsubscribe(t *testing.T) {
	var hub Hub

	var calls int
	sub := hub.Subscribe(EventTextChanged, func(Event) { calls++ })

	hub.Publish(Event{Kind: EventTextChanged})
	sub.Unsubscribe()
	sub.Unsubscribe() // safe to repeat
	hub.Publish(Event{Kind: EventTextChanged})

	if calls != 1 {
		t.Errorf("listener calls = %d, want 1", calls)
	}
}

func TestHubPublishWithNoListeners(t *testing.T) {
	var hub Hub
	// Must not panic.
	hub.Publish(Event{Kind: EventEditingBegan})
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventTextChanged, "text-changed"},
		{EventSelectionChanged, "selection-changed"},
		{EventEditingBegan, "editing-began"},
		{EventEditingEnded, "editing-ended"},
		{EventKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
