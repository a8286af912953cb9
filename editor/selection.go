package editor

// Range is a selection range in byte offsets: a cursor when Len is 0,
// a selection of Len bytes starting at Start otherwise.
type Range struct {
	// Start is the first byte offset of the range.
	Start int

	// Len is the number of selected bytes, 0 for a bare cursor.
	Len int
}

// End returns the offset one past the last selected byte.
func (r Range) End() int {
	return r.Start + r.Len
}

// IsCursor returns true for a zero-length range.
func (r Range) IsCursor() bool {
	return r.Len == 0
}

// clamp fits the range into a text of n bytes. It returns ok == false
// when the range lies entirely beyond the text and should be dropped.
func (r Range) clamp(n int) (Range, bool) {
	if r.Start > n || r.Start < 0 {
		return Range{}, false
	}
	if r.End() > n {
		r.Len = n - r.Start
	}
	if r.Len < 0 {
		r.Len = 0
	}
	return r, true
}

// ClampRanges fits ranges into a text of n bytes, dropping ranges that
// start beyond it. Within an atomic refresh pass the text length never
// changes between capture and restore, so this is a defensive fallback
// rather than an expected path.
func ClampRanges(ranges []Range, n int) []Range {
	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if c, ok := r.clamp(n); ok {
			out = append(out, c)
		}
	}
	return out
}
