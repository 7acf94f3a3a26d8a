package schema_test

import (
	"testing"

	"github.com/opencrudlang/sdlc/diag"
	"github.com/opencrudlang/sdlc/schema"
	"github.com/opencrudlang/sdlc/sdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *sdl.File {
	t.Helper()
	f, err := sdl.Parse(src)
	require.NoError(t, err)
	return f
}

func TestAnalyzeSimpleOneToManyRelation(t *testing.T) {
	src := `
config db {
  provider = "foundationDB"
}

model User {
  id ShortStr @id @default(auto())
  email ShortStr @unique
  posts Post[] @relation(name: "user_posts")
}

model Post {
  id ShortStr @id @default(auto())
  authorId ShortStr
  title LongStr
  author User @relation(name: "user_posts", field: authorId, references: id)
}
`
	f := mustParse(t, src)
	g, ds := schema.Analyze(f)
	require.False(t, ds.HasErrors(), "%v", ds)

	user, ok := g.Model("User")
	require.True(t, ok)
	assert.Equal(t, "id", user.IDField().Name)
	require.Len(t, user.UniqueFields(), 1)
	assert.Equal(t, "email", user.UniqueFields()[0].Name)

	post, ok := g.Model("Post")
	require.True(t, ok)
	authorField, ok := post.Field("author")
	require.True(t, ok)
	require.NotNil(t, authorField.Attrs.Relation)
	assert.Equal(t, schema.Owner, authorField.Attrs.Relation.Role)

	postsField, ok := user.Field("posts")
	require.True(t, ok)
	require.NotNil(t, postsField.Attrs.Relation)
	assert.Equal(t, schema.Referenced, postsField.Attrs.Relation.Role)
	assert.Equal(t, postsField.Attrs.Relation.Pair, authorField.Attrs.Relation.Pair)
	assert.Equal(t, schema.OneToMany, authorField.Attrs.Relation.Pair.Cardinality)
}

func TestAnalyzeSelfRelationValid(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

model User {
  id ShortStr @id @default(auto())
  spouseId ShortStr?
  spouse User? @relation(name: "marriage", field: spouseId, references: id)
}
`
	g, ds := schema.Analyze(mustParse(t, src))
	require.False(t, ds.HasErrors(), "%v", ds)

	user, ok := g.Model("User")
	require.True(t, ok)
	spouse, ok := user.Field("spouse")
	require.True(t, ok)
	require.NotNil(t, spouse.Attrs.Relation)
	assert.Equal(t, schema.OneToOne, spouse.Attrs.Relation.Pair.Cardinality)
	assert.Same(t, spouse, spouse.Attrs.Relation.Pair.Left.Field)
	assert.Same(t, spouse, spouse.Attrs.Relation.Pair.Right.Field)
}

func TestAnalyzeSelfRelationPartial(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

model User {
  id ShortStr @id @default(auto())
  spouse User? @relation(name: "marriage", references: id)
}
`
	_, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.PartialRelation)
}

func TestAnalyzeUnknownDefaultFunction(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

model User {
  id ShortStr @id @default(uuidv7())
}
`
	_, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.UnknownDefaultFunction)
}

func TestAnalyzeMissingId(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

model User {
  email ShortStr @unique
}
`
	_, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.MissingId)
}

func TestAnalyzeDuplicateModel(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

model User {
  id ShortStr @id @default(auto())
}

model User {
  id ShortStr @id @default(auto())
}
`
	_, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.DuplicateDeclaration)
}

func TestAnalyzeMissingConfig(t *testing.T) {
	src := `
model User {
  id ShortStr @id @default(auto())
}
`
	_, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.MissingConfig)
}

func TestAnalyzeEnumDefault(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

enum Role {
  USER
  ADMIN
}

model User {
  id ShortStr @id @default(auto())
  role Role @default(USER)
}
`
	g, ds := schema.Analyze(mustParse(t, src))
	require.False(t, ds.HasErrors(), "%v", ds)
	user, _ := g.Model("User")
	role, _ := user.Field("role")
	require.NotNil(t, role.Attrs.Default)
	assert.Equal(t, schema.DefaultEnumVariant, role.Attrs.Default.Kind)
	assert.Equal(t, "USER", role.Attrs.Default.Variant)
}

func TestAnalyzeInvalidEnumDefault(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

enum Role {
  USER
  ADMIN
}

model User {
  id ShortStr @id @default(auto())
  role Role @default(OWNER)
}
`
	_, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.InvalidEnumDefault)
}

func TestAnalyzeUniqueOnRelationForbidden(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

model User {
  id ShortStr @id @default(auto())
}

model Post {
  id ShortStr @id @default(auto())
  authorId ShortStr
  author User @unique @relation(name: "user_posts", field: authorId, references: id)
}
`
	_, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.UniqueOnRelation)
}

func TestAnalyzeDefaultOnRelationForbidden(t *testing.T) {
	src := `
config db { provider = "foundationDB" }

model User {
  id ShortStr @id @default(auto())
  spouseId ShortStr?
  spouse User? @relation(name: "marriage", field: spouseId, references: id) @default(auto())
}
`
	_, ds := schema.Analyze(mustParse(t, src))
	require.True(t, ds.HasErrors())
	assertHasKind(t, ds, diag.InvalidDefaultForType)
}

func assertHasKind(t *testing.T, ds diag.Diagnostics, kind diag.Kind) {
	t.Helper()
	for _, d := range ds {
		if d.Kind == kind {
			return
		}
	}
	t.Fatalf("expected diagnostic of kind %s, got %v", kind, ds)
}
