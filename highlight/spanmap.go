package highlight

import "sort"

// spanMap is the engine's working representation of attribute coverage:
// an ordered list of non-overlapping spans that always partitions
// [0, n). Setting an attribute over a range splits the boundary spans
// so only the covered region changes.
type spanMap struct {
	spans []Span
}

// newSpanMap returns a map covering [0, n) with a copy of the base
// attributes. For n == 0 the map is empty.
func newSpanMap(n int, base AttrSet) *spanMap {
	m := &spanMap{}
	if n > 0 {
		m.spans = []Span{{Start: 0, End: n, Attrs: base.Clone()}}
	}
	return m
}

// set assigns key = value over [start, end), overwriting any existing
// value for the same key. Ranges outside the covered text are ignored.
func (m *spanMap) set(start, end int, key AttrKey, value any) {
	if start >= end || len(m.spans) == 0 {
		return
	}
	if start < 0 {
		start = 0
	}
	if last := m.spans[len(m.spans)-1].End; end > last {
		end = last
	}
	if start >= end {
		return
	}

	// First span whose end extends past start.
	i := sort.Search(len(m.spans), func(i int) bool {
		return m.spans[i].End > start
	})

	for i < len(m.spans) && m.spans[i].Start < end {
		if m.spans[i].Start < start {
			// Split off the uncovered left part. The covered remainder
			// moves to i+1 and is handled on the next iteration.
			left := m.spans[i]
			left.End = start
			m.spans[i].Start = start
			m.insert(i, left)
			i++
			continue
		}
		if m.spans[i].End > end {
			// Split off the uncovered right part.
			right := m.spans[i]
			right.Start = end
			m.spans[i].End = end
			m.insert(i+1, right)
		}
		// Spans may share attribute maps after a split, so copy before
		// writing.
		attrs := m.spans[i].Attrs.Clone()
		attrs[key] = value
		m.spans[i].Attrs = attrs
		i++
	}
}

// insert places s at index i, shifting later spans right.
func (m *spanMap) insert(i int, s Span) {
	m.spans = append(m.spans, Span{})
	copy(m.spans[i+1:], m.spans[i:])
	m.spans[i] = s
}

// styled freezes the map into a StyledText for text, merging adjacent
// spans whose attributes are equal.
func (m *spanMap) styled(text string) StyledText {
	out := make([]Span, 0, len(m.spans))
	for _, s := range m.spans {
		if n := len(out); n > 0 && out[n-1].Attrs.Equal(s.Attrs) {
			out[n-1].End = s.End
			continue
		}
		out = append(out, s)
	}
	return StyledText{text: text, spans: out}
}
