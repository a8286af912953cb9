package highlight

import "testing"

func TestSpanMapEmpty(t *testing.T) {
	m := newSpanMap(0, nil)
	m.set(0, 5, KeyBold, true)

	st := m.styled("")
	if len(st.Spans()) != 0 {
		t.Errorf("Spans() length = %d, want 0", len(st.Spans()))
	}
}

func TestSpanMapSplitting(t *testing.T) {
	m := newSpanMap(10, nil)
	m.set(3, 7, KeyBold, true)

	st := m.styled("0123456789")
	spans := st.Spans()
	if len(spans) != 3 {
		t.Fatalf("Spans() length = %d, want 3", len(spans))
	}

	tests := []struct {
		start, end int
		bold       bool
	}{
		{0, 3, false},
		{3, 7, true},
		{7, 10, false},
	}
	for i, tt := range tests {
		s := spans[i]
		if s.Start != tt.start || s.End != tt.end {
			t.Errorf("span %d = [%d,%d), want [%d,%d)", i, s.Start, s.End, tt.start, tt.end)
		}
		if (s.Attrs[KeyBold] == true) != tt.bold {
			t.Errorf("span %d bold = %v, want %v", i, s.Attrs[KeyBold], tt.bold)
		}
	}
}

func TestSpanMapOverlappingWrites(t *testing.T) {
	m := newSpanMap(10, nil)
	m.set(0, 6, KeyForeground, "a")
	m.set(4, 10, KeyForeground, "b")

	st := m.styled("0123456789")
	spans := st.Spans()
	if len(spans) != 2 {
		t.Fatalf("Spans() length = %d, want 2: %v", len(spans), spans)
	}
	if spans[0].End != 4 || spans[0].Attrs[KeyForeground] != "a" {
		t.Errorf("span 0 = %v", spans[0])
	}
	if spans[1].Start != 4 || spans[1].Attrs[KeyForeground] != "b" {
		t.Errorf("span 1 = %v", spans[1])
	}
}

func TestSpanMapDistinctKeysStack(t *testing.T) {
	m := newSpanMap(6, nil)
	m.set(0, 6, KeyBold, true)
	m.set(2, 4, KeyItalic, true)

	st := m.styled("abcdef")
	if at := st.AttrsAt(3); at[KeyBold] != true || at[KeyItalic] != true {
		t.Errorf("AttrsAt(3) = %v, want both keys", at)
	}
	if at := st.AttrsAt(1); at[KeyItalic] == true {
		t.Errorf("AttrsAt(1) = %v, italic should not apply", at)
	}
}

func TestSpanMapCoalescing(t *testing.T) {
	m := newSpanMap(9, nil)
	// Two adjacent writes with identical attributes collapse into one span.
	m.set(0, 3, KeyBold, true)
	m.set(3, 6, KeyBold, true)

	st := m.styled("012345678")
	spans := st.Spans()
	if len(spans) != 2 {
		t.Fatalf("Spans() length = %d, want 2: %v", len(spans), spans)
	}
	if spans[0].Start != 0 || spans[0].End != 6 {
		t.Errorf("span 0 = [%d,%d), want [0,6)", spans[0].Start, spans[0].End)
	}
}

func TestSpanMapClampsOutOfRange(t *testing.T) {
	m := newSpanMap(4, nil)
	m.set(-2, 99, KeyBold, true)

	st := m.styled("abcd")
	spans := st.Spans()
	if len(spans) != 1 || spans[0].Start != 0 || spans[0].End != 4 {
		t.Fatalf("spans = %v, want single [0,4)", spans)
	}
	if spans[0].Attrs[KeyBold] != true {
		t.Error("clamped write should still apply")
	}
}

func TestSpanMapBaseIsolation(t *testing.T) {
	base := AttrSet{KeyForeground: "#fff"}
	m := newSpanMap(4, base)
	m.set(0, 2, KeyForeground, "#000")

	if base[KeyForeground] != "#fff" {
		t.Error("write leaked into the caller's base attribute set")
	}
	st := m.styled("abcd")
	if st.AttrsAt(3)[KeyForeground] != "#fff" {
		t.Error("untouched region lost base attributes")
	}
}
