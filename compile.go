package sdlc

import (
	"context"
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	atlas "ariga.io/atlas/sql/schema"

	"github.com/opencrudlang/sdlc/diag"
	"github.com/opencrudlang/sdlc/physical"
	"github.com/opencrudlang/sdlc/schema"
	"github.com/opencrudlang/sdlc/sdl"
	"github.com/opencrudlang/sdlc/transpile"
	"github.com/opencrudlang/sdlc/writer"
)

// ErrParse is the sentinel wrapped by every ParseError.
var ErrParse = errors.New("sdlc: parse failed")

// ParseError reports a lex/parse failure in the SDL source, before
// semantic analysis ever runs.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("sdlc: parse failed: %s", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// defaultSchemaName is used for the physical schema snapshot when the SDL
// source declares no other naming convention — this module has no
// "schema name" concept of its own (spec.md's config block carries only a
// provider), so it is a fixed constant rather than derived from anything.
const defaultSchemaName = "public"

// defaultProvider is used when the SDL source's `config db { ... }` block
// sets no provider. A source with no config block at all fails analysis
// with a MissingConfig diagnostic, so Compile never reaches this point.
const defaultProvider = "sqlite"

// Result is the output of compiling one SDL source: the resolved model
// graph, the transpiled GraphQL schema document, and the derived
// physical schema. Call Emit to write these to disk.
type Result struct {
	Graph    *schema.Graph
	Document *ast.SchemaDocument
	Physical *atlas.Schema
}

// Compile runs the full front-end pipeline over source: parse, analyze,
// transpile, derive. Diagnostics accumulated during analysis are always
// returned, even alongside a non-nil Result (warnings don't block
// compilation); a nil Result with a non-error-containing Diagnostics
// value should not happen, but callers should still check
// diagnostics.HasErrors() before trusting a non-nil Result.
//
// A malformed source (one that fails to lex/parse at all) returns a nil
// Result and nil Diagnostics, with the failure reported via the error
// return instead — parsing precedes diagnostic collection and has no
// partial-success story of its own.
func Compile(source string) (*Result, diag.Diagnostics, error) {
	f, err := sdl.Parse(source)
	if err != nil {
		return nil, nil, &ParseError{Err: err}
	}

	g, ds := schema.Analyze(f)
	if ds.HasErrors() {
		return nil, ds, nil
	}

	doc := transpile.Transpile(g)

	provider := defaultProvider
	if cfg := g.Config(); cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}
	phys := physical.DeriveSchema(g, defaultSchemaName, provider)

	return &Result{Graph: g, Document: doc, Physical: phys}, ds, nil
}

// Emit validates and writes every artifact in r to disk, per opts. See
// writer.Write for the shape of what gets written.
func (r *Result) Emit(ctx context.Context, opts writer.Options) (*writer.Result, error) {
	return writer.Write(ctx, opts, r.Graph, r.Document, r.Physical)
}
