// Package highlight implements a rule-driven text styling engine.
//
// The engine scans plain text with an ordered set of regular-expression
// rules and produces a StyledText: the same text with a gap-free set of
// attributed spans covering every offset. Attribute values are opaque to
// the engine; it only carries and merges them by key, so the same rule
// sets work against any rendering back end.
//
// Rule order is the conflict-resolution order. A rule listed later is
// applied after earlier rules and overwrites their values for the same
// attribute key on overlapping spans. Attributes with different keys
// compose regardless of order.
//
// Rule sets are static configuration. An invalid pattern fails at
// construction time, never during a highlighting pass.
package highlight
