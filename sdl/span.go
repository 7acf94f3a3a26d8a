// Package sdl parses the schema-definition language: a small text format
// describing a datastore config block, models, and enums, which the
// semantic analyzer in package schema turns into a resolved model graph.
package sdl

import "fmt"

// Span marks a half-open byte range in the source text, along with the
// 1-based line/column of its start, for use in diagnostics.
type Span struct {
	Start, End int
	Line, Col  int
}

// String renders the span as "line:col".
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}

// Join returns the smallest span covering both s and other. A zero Span
// (both fields 0:0) is treated as absent and the other span wins.
func (s Span) Join(other Span) Span {
	if s == (Span{}) {
		return other
	}
	if other == (Span{}) {
		return s
	}
	joined := s
	if other.Start < joined.Start {
		joined.Start = other.Start
		joined.Line, joined.Col = other.Line, other.Col
	}
	if other.End > joined.End {
		joined.End = other.End
	}
	return joined
}
