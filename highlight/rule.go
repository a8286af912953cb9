package highlight

// Rule associates a pattern with the mutations applied to each of its
// matches. Mutations are applied in listed order; a later mutation in
// the same rule overwrites an earlier one for the same key.
type Rule struct {
	// Pattern is the compiled matching pattern.
	Pattern Pattern

	// Mutations are the attribute changes for each match, in order.
	Mutations []Mutation
}

// NewRule creates a rule from a pattern and its mutations.
func NewRule(pattern Pattern, mutations ...Mutation) Rule {
	return Rule{Pattern: pattern, Mutations: mutations}
}

// RuleSet is an ordered list of rules defining one highlighting theme.
// Order is significant: a rule listed later is applied after earlier
// rules and wins conflicts for the same attribute key on overlapping
// spans. Rule sets compose by concatenation.
type RuleSet []Rule

// Append returns a new rule set with the rules of others appended after
// the receiver's rules, preserving order. The receiver is not modified.
func (rs RuleSet) Append(others ...RuleSet) RuleSet {
	out := make(RuleSet, 0, len(rs))
	out = append(out, rs...)
	for _, other := range others {
		out = append(out, other...)
	}
	return out
}
