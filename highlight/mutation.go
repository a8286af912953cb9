package highlight

// Match describes one pattern match from the perspective of a single
// mutation. Target is the text of the span the mutation styles, which
// is the capture group's text when the mutation targets a group and the
// whole match otherwise. Full is always the entire matched text, so a
// dynamic mutation can read context outside its target span (a heading
// rule can count leading hashes in Full while styling only the title).
type Match struct {
	// Full is the text of the entire match.
	Full string

	// Target is the text of the span being styled.
	Target string

	// Group is the capture group the mutation targets, 0 for the whole
	// match.
	Group int
}

// DynamicFunc computes an attribute value from a match. Returning an
// error omits the attribute for that span; it never aborts the pass.
type DynamicFunc func(m Match) (any, error)

// Mutation is a single attribute change applied to each match of a
// rule's pattern. It either carries a fixed Value or computes one per
// match through Dynamic. A non-zero Group restricts the mutation to
// that capture group's span; the mutation is skipped for matches where
// the group did not participate.
type Mutation struct {
	// Key is the attribute the mutation sets.
	Key AttrKey

	// Value is the fixed value for static mutations. Ignored when
	// Dynamic is non-nil.
	Value any

	// Dynamic computes the value per match. Optional.
	Dynamic DynamicFunc

	// Group is the targeted capture group, 0 for the whole match.
	Group int
}

// Attr returns a static mutation applied to the whole match.
func Attr(key AttrKey, value any) Mutation {
	return Mutation{Key: key, Value: value}
}

// GroupAttr returns a static mutation applied to one capture group.
func GroupAttr(key AttrKey, value any, group int) Mutation {
	return Mutation{Key: key, Value: value, Group: group}
}

// Dynamic returns a content-dependent mutation applied to the whole
// match.
func Dynamic(key AttrKey, fn DynamicFunc) Mutation {
	return Mutation{Key: key, Dynamic: fn}
}

// GroupDynamic returns a content-dependent mutation applied to one
// capture group.
func GroupDynamic(key AttrKey, fn DynamicFunc, group int) Mutation {
	return Mutation{Key: key, Dynamic: fn, Group: group}
}
