package diag_test

import (
	"testing"

	"github.com/opencrudlang/sdlc/diag"
	"github.com/opencrudlang/sdlc/sdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsHasErrors(t *testing.T) {
	var ds diag.Diagnostics
	assert.False(t, ds.HasErrors())

	ds.Add(diag.Warn(diag.DuplicateField, sdl.Span{}, "unused"))
	assert.False(t, ds.HasErrors())

	ds.Addf(diag.MissingId, sdl.Span{}, "model %s has no id field", "User")
	require.True(t, ds.HasErrors())
	assert.Contains(t, ds.Error(), "MissingId")
}

func TestDiagnosticsSortBySpanThenKind(t *testing.T) {
	ds := diag.Diagnostics{
		diag.New(diag.MultipleId, sdl.Span{Start: 5}, "b"),
		diag.New(diag.DuplicateField, sdl.Span{Start: 1}, "a"),
		diag.New(diag.MissingId, sdl.Span{Start: 5}, "c"),
	}
	ds.Sort()
	require.Len(t, ds, 3)
	assert.Equal(t, diag.DuplicateField, ds[0].Kind)
	assert.Equal(t, diag.MissingId, ds[1].Kind) // MissingId < MultipleId lexically
	assert.Equal(t, diag.MultipleId, ds[2].Kind)
}

func TestWithRelated(t *testing.T) {
	d := diag.New(diag.DuplicateDeclaration, sdl.Span{Start: 1}, "dup").
		WithRelated(sdl.Span{Start: 10}, "first declared here")
	require.Len(t, d.Related, 1)
	assert.Equal(t, 10, d.Related[0].Span.Start)
}
