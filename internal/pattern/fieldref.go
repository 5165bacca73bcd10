// Package pattern defines the transaction message patterns and the registry
// that selects candidate patterns for a given sender or payment channel.
package pattern

import "fmt"

// RefKind says how a field's value is obtained from a pattern match.
type RefKind int

// Field reference kinds.
const (
	// KindAbsent means the pattern does not carry this field at all.
	KindAbsent RefKind = iota
	// KindCapture means the field comes from a regex capture group.
	KindCapture
	// KindSynthesize means the pattern indicates the field exists but has no
	// literal value in the text; a fresh value is generated (reference ids).
	KindSynthesize
	// KindHeuristic means the field is recovered by a secondary heuristic
	// over the full message text (merchant fallback).
	KindHeuristic
)

// FieldRef describes where one extracted field comes from. The zero value is
// Absent.
type FieldRef struct {
	kind  RefKind
	group int
}

// Absent is the FieldRef for a field the pattern never produces.
var Absent = FieldRef{}

// CaptureGroup returns a FieldRef reading capture group n (1-based).
// Panics on n < 1: a zero or negative group is an authoring error, the
// non-capture behaviors have their own constructors.
func CaptureGroup(n int) FieldRef {
	if n < 1 {
		panic(fmt.Sprintf("pattern: capture group must be >= 1, got %d", n))
	}
	return FieldRef{kind: KindCapture, group: n}
}

// Synthesize returns a FieldRef whose value is generated at extraction time.
func Synthesize() FieldRef {
	return FieldRef{kind: KindSynthesize}
}

// Heuristic returns a FieldRef resolved by a fallback heuristic over the
// whole message.
func Heuristic() FieldRef {
	return FieldRef{kind: KindHeuristic}
}

// Kind returns how the field is obtained.
func (r FieldRef) Kind() RefKind {
	return r.kind
}

// Group returns the capture group index and whether this ref is a capture.
func (r FieldRef) Group() (int, bool) {
	return r.group, r.kind == KindCapture
}
