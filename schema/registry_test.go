package schema_test

import (
	"testing"

	"github.com/opencrudlang/sdlc/diag"
	"github.com/opencrudlang/sdlc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDuplicateField(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

model User {
  id ShortStr @id @default(auto())
  id ShortStr @id @default(auto())
}
`
	_, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.DuplicateField)
}

func TestAnalyzeDuplicateEnumVariant(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

enum Role {
  USER
  USER
}

model User {
  id ShortStr @id @default(auto())
}
`
	_, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.DuplicateEnumVariant)
}

func TestAnalyzeUnknownType(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

model User {
  id ShortStr @id @default(auto())
  age Integer
}
`
	_, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.UnknownType)
}

func TestAnalyzeUnknownAttribute(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

model User {
  id ShortStr @id @default(auto())
  email ShortStr @encrypted
}
`
	g, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.UnknownAttribute)
	require.NotNil(t, g)
}

func TestAnalyzeMapAttribute(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

model User {
  id ShortStr @id @default(auto())
  emailAddress ShortStr @map(name: "email_address")
}
`
	g, ds := schema.Analyze(mustParse(t, src))
	require.False(t, ds.HasErrors(), "%v", ds)
	user, _ := g.Model("User")
	field, _ := user.Field("emailAddress")
	require.NotNil(t, field.Attrs.MappedName)
	assert.Equal(t, "email_address", *field.Attrs.MappedName)
}
