package highlight

// Span is a half-open byte range [Start, End) of the source text with
// its fully-resolved attributes.
type Span struct {
	// Start is the first byte offset of the span.
	Start int

	// End is the byte offset one past the last byte of the span.
	End int

	// Attrs are the resolved attributes covering the span.
	Attrs AttrSet
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns true if the given offset falls within the span.
func (s Span) Contains(off int) bool {
	return off >= s.Start && off < s.End
}

// StyledText is the output of a highlighting pass: the source text plus
// a gap-free sequence of attributed spans covering [0, len(text)).
// Spans never overlap and adjacent spans always differ in attributes.
// A StyledText is never mutated; each pass builds a fresh one.
type StyledText struct {
	text  string
	spans []Span
}

// Text returns the source text. Highlighting never alters it.
func (st StyledText) Text() string {
	return st.text
}

// Len returns the length of the source text in bytes.
func (st StyledText) Len() int {
	return len(st.text)
}

// Spans returns the attributed spans in offset order. The slice covers
// every offset of the text with no gaps; it is empty only for empty
// text. Callers must not modify the returned spans.
func (st StyledText) Spans() []Span {
	return st.spans
}

// AttrsAt returns the attributes in effect at the given byte offset,
// or nil if the offset is out of range.
func (st StyledText) AttrsAt(off int) AttrSet {
	if off < 0 || off >= len(st.text) {
		return nil
	}
	// Binary search over the ordered span list.
	lo, hi := 0, len(st.spans)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		s := st.spans[mid]
		switch {
		case off < s.Start:
			hi = mid - 1
		case off >= s.End:
			lo = mid + 1
		default:
			return s.Attrs
		}
	}
	return nil
}

// Equal reports whether two styled texts have identical text and
// identical span coverage.
func (st StyledText) Equal(other StyledText) bool {
	if st.text != other.text || len(st.spans) != len(other.spans) {
		return false
	}
	for i, s := range st.spans {
		o := other.spans[i]
		if s.Start != o.Start || s.End != o.End || !s.Attrs.Equal(o.Attrs) {
			return false
		}
	}
	return true
}
