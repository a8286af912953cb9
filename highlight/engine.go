package highlight

// Engine runs highlighting passes. It carries the base attributes that
// cover text no rule matched (a default font, for example). The zero
// value is usable and applies no base attributes.
//
// An Engine is stateless between calls: every pass rebuilds its output
// from the current text and rules, so the same inputs always produce
// the same StyledText.
type Engine struct {
	base AttrSet
}

// NewEngine creates an engine with the given base attributes. The set
// is copied; later changes to it do not affect the engine.
func NewEngine(base AttrSet) *Engine {
	return &Engine{base: base.Clone()}
}

// Base returns a copy of the engine's base attributes.
func (e *Engine) Base() AttrSet {
	return e.base.Clone()
}

// Highlight scans text with the rules and returns the fully-styled
// result. The output's text is identical to the input; its spans cover
// every offset. Neither input is modified.
//
// Rules are applied in rule-set order, and each rule's matches are the
// standard leftmost, non-overlapping regexp matches against the whole
// text. Later rules overwrite earlier ones per attribute key on
// overlapping spans. Zero-length matches style no characters and are
// skipped, as is any mutation whose target group did not participate in
// a match. A dynamic mutation that returns an error is skipped for that
// match only.
func (e *Engine) Highlight(text string, rules RuleSet) StyledText {
	m := newSpanMap(len(text), e.base)

	for _, rule := range rules {
		for _, loc := range rule.Pattern.findAll(text) {
			if loc[1] == loc[0] {
				continue
			}
			full := text[loc[0]:loc[1]]
			for _, mut := range rule.Mutations {
				start, end, ok := targetSpan(loc, mut.Group)
				if !ok {
					continue
				}
				value := mut.Value
				if mut.Dynamic != nil {
					v, err := mut.Dynamic(Match{
						Full:   full,
						Target: text[start:end],
						Group:  mut.Group,
					})
					if err != nil {
						continue
					}
					value = v
				}
				m.set(start, end, mut.Key, value)
			}
		}
	}

	return m.styled(text)
}

// Highlight runs a pass with no base attributes.
func Highlight(text string, rules RuleSet) StyledText {
	var e Engine
	return e.Highlight(text, rules)
}

// targetSpan resolves a mutation's target range within one match. It
// returns ok == false when the group is absent from the pattern, did
// not participate in this match, or matched zero characters.
func targetSpan(loc []int, group int) (start, end int, ok bool) {
	idx := 2 * group
	if idx+1 >= len(loc) {
		return 0, 0, false
	}
	start, end = loc[idx], loc[idx+1]
	if start < 0 || end <= start {
		return 0, 0, false
	}
	return start, end, true
}
