// Package diag defines the structured diagnostics produced by semantic
// analysis (spec.md §7): a Kind-tagged value carrying a source span, a
// message, and any related spans, accumulated — never thrown — across a
// compilation.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/opencrudlang/sdlc/sdl"
)

// Kind identifies the category of a diagnostic. The set is fixed by
// spec.md §7 and is exhaustive for this module; every Kind is distinct and
// machine-matchable.
type Kind string

const (
	DuplicateDeclaration  Kind = "DuplicateDeclaration"
	DuplicateField        Kind = "DuplicateField"
	DuplicateEnumVariant  Kind = "DuplicateEnumVariant"
	UnknownType           Kind = "UnknownType"
	UnknownAttribute      Kind = "UnknownAttribute"
	UnknownAttributeArg   Kind = "UnknownAttributeArg"
	InvalidAttributeArg   Kind = "InvalidAttributeArg"
	MissingId             Kind = "MissingId"
	MultipleId            Kind = "MultipleId"
	InvalidIdType         Kind = "InvalidIdType"
	UniqueOnRelation      Kind = "UniqueOnRelation"
	IndexedOnRelation     Kind = "IndexedOnRelation"
	InvalidDefaultForType Kind = "InvalidDefaultForType"
	UnknownDefaultFunction Kind = "UnknownDefaultFunction"
	InvalidEnumDefault    Kind = "InvalidEnumDefault"
	RelationMissing       Kind = "RelationMissing"
	PartialRelation       Kind = "PartialRelation"
	AmbiguousRelation     Kind = "AmbiguousRelation"
	UnpairedRelation      Kind = "UnpairedRelation"
	DuplicateRelation     Kind = "DuplicateRelation"
	ScalarFieldNotFound   Kind = "ScalarFieldNotFound"
	ReferencedFieldNotFound  Kind = "ReferencedFieldNotFound"
	ReferencedFieldNotScalar Kind = "ReferencedFieldNotScalar"
	ScalarFieldTypeMismatch  Kind = "ScalarFieldTypeMismatch"
	ScalarFieldArityMismatch Kind = "ScalarFieldArityMismatch"

	// MissingConfig and DuplicateAttribute extend the spec.md §7 list,
	// which is explicitly "non-exhaustive, but all must be distinct and
	// machine-matchable."
	MissingConfig     Kind = "MissingConfig"
	DuplicateAttribute Kind = "DuplicateAttribute"
)

// Severity distinguishes fatal diagnostics (halt the pipeline before the
// schema is emitted) from warnings (reported but non-blocking).
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// RelatedSpan annotates a diagnostic with an additional source location,
// e.g. the other span of a duplicate declaration.
type RelatedSpan struct {
	Span    sdl.Span
	Message string
}

// Diagnostic is a single structured finding from semantic analysis.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Span     sdl.Span
	Message  string
	Related  []RelatedSpan
}

// String renders the diagnostic for human consumption; it is not
// machine-matchable (match on Kind for that).
func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s: %s [%s]", d.Span, d.Severity, d.Message, d.Kind)
	for _, r := range d.Related {
		fmt.Fprintf(&b, "\n    related: %s: %s", r.Span, r.Message)
	}
	return b.String()
}

// New builds an Error-severity diagnostic.
func New(kind Kind, span sdl.Span, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Severity: Error, Span: span, Message: fmt.Sprintf(format, args...)}
}

// Newf is an alias of New kept for call sites that read better without the
// implied "format" name; it behaves identically.
func Newf(kind Kind, span sdl.Span, format string, args ...any) Diagnostic {
	return New(kind, span, format, args...)
}

// Warn builds a Warning-severity diagnostic.
func Warn(kind Kind, span sdl.Span, format string, args ...any) Diagnostic {
	d := New(kind, span, format, args...)
	d.Severity = Warning
	return d
}

// WithRelated returns a copy of d with an additional related span.
func (d Diagnostic) WithRelated(span sdl.Span, format string, args ...any) Diagnostic {
	d.Related = append(d.Related, RelatedSpan{Span: span, Message: fmt.Sprintf(format, args...)})
	return d
}

// Diagnostics is an ordered collection of diagnostics accumulated across a
// compilation. The zero value is ready to use.
type Diagnostics []Diagnostic

// Add appends d to the collection.
func (ds *Diagnostics) Add(d Diagnostic) {
	*ds = append(*ds, d)
}

// Addf is a convenience for Add(New(...)).
func (ds *Diagnostics) Addf(kind Kind, span sdl.Span, format string, args ...any) {
	ds.Add(New(kind, span, format, args...))
}

// HasErrors reports whether any diagnostic has Error severity. Per
// spec.md §7, the pipeline halts (no schema emitted) once this is true.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by source span (start offset, then end) and
// then by Kind, for stable, deterministic output (spec.md §7: "order is
// stable (sorted by source span then kind)").
func (ds Diagnostics) Sort() {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i], ds[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End < b.Span.End
		}
		return a.Kind < b.Kind
	})
}

// Error implements the error interface so a Diagnostics value containing
// at least one Error-severity diagnostic can be returned/wrapped as a
// plain Go error by callers that don't want the structured form.
func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return "sdlc: no diagnostics"
	}
	var b strings.Builder
	b.WriteString("sdlc: compilation failed:")
	for _, d := range ds {
		fmt.Fprintf(&b, "\n  %s", d)
	}
	return b.String()
}
