package highlight

// AttrKey identifies a single styling attribute within a span.
type AttrKey string

// Well-known attribute keys shared by the bundled presets and host
// adapters. The engine itself attaches no meaning to any key; embedders
// may define their own keys alongside these.
const (
	// KeyForeground is the text color. Preset values are hex strings
	// such as "#569cd6"; adapters parse them for their back end.
	KeyForeground AttrKey = "foreground"

	// KeyBackground is the background color behind the text.
	KeyBackground AttrKey = "background"

	// KeyBold marks bold text. Value is a bool.
	KeyBold AttrKey = "bold"

	// KeyItalic marks italic text. Value is a bool.
	KeyItalic AttrKey = "italic"

	// KeyUnderline marks underlined text. Value is a bool.
	KeyUnderline AttrKey = "underline"

	// KeyStrikethrough marks struck-through text. Value is a bool.
	KeyStrikethrough AttrKey = "strikethrough"

	// KeyFontScale is a relative font size multiplier. Value is a
	// float64; 1.0 is the base size. Terminal adapters ignore it.
	KeyFontScale AttrKey = "fontscale"

	// KeyHyperlink is a link target. Value is the target URL string.
	KeyHyperlink AttrKey = "hyperlink"

	// KeyMonospace marks text rendered in a fixed-width font. Value is
	// a bool. Terminal adapters ignore it.
	KeyMonospace AttrKey = "monospace"
)

// AttrSet maps attribute keys to their resolved values. Values are
// opaque to the engine but are expected to be comparable (strings,
// numbers, bools, small value structs) so sets can be compared.
type AttrSet map[AttrKey]any

// Clone returns an independent copy of the set. Cloning a nil set
// returns an empty, non-nil set.
func (a AttrSet) Clone() AttrSet {
	out := make(AttrSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Get returns the value for key and whether it is present.
func (a AttrSet) Get(key AttrKey) (any, bool) {
	v, ok := a[key]
	return v, ok
}

// Equal reports whether two sets hold the same keys and values.
func (a AttrSet) Equal(other AttrSet) bool {
	if len(a) != len(other) {
		return false
	}
	for k, v := range a {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}
