package transpile_test

import (
	"testing"

	"github.com/opencrudlang/sdlc/schema"
	"github.com/opencrudlang/sdlc/sdl"
	"github.com/opencrudlang/sdlc/transpile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func mustAnalyze(t *testing.T, src string) *schema.Graph {
	t.Helper()
	f, err := sdl.Parse(src)
	require.NoError(t, err)
	g, ds := schema.Analyze(f)
	require.False(t, ds.HasErrors(), "unexpected diagnostics: %v", ds)
	return g
}

func findDef(t *testing.T, doc *ast.SchemaDocument, name string) *ast.Definition {
	t.Helper()
	for _, d := range doc.Definitions {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("definition %s not found", name)
	return nil
}

func findField(t *testing.T, def *ast.Definition, name string) *ast.FieldDefinition {
	t.Helper()
	for _, f := range def.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %s not found on %s", name, def.Name)
	return nil
}

func hasDef(doc *ast.SchemaDocument, name string) bool {
	for _, d := range doc.Definitions {
		if d.Name == name {
			return true
		}
	}
	return false
}

const blogSchema = `
config db {
  provider = "foundationDB"
}

enum Role {
  USER
  ADMIN
}

model User {
  id ShortStr @id @default(auto())
  email ShortStr @unique
  role Role @default(USER)
  posts Post[] @relation(name: "user_posts")
}

model Post {
  id ShortStr @id @default(auto())
  authorId ShortStr
  title LongStr
  tags ShortStr[]
  author User @relation(name: "user_posts", field: authorId, references: id)
  category Category @relation(name: "post_category", field: categoryId, references: id)
  categoryId ShortStr
}

model Category {
  id ShortStr @id @default(auto())
  name ShortStr @unique
  posts Post[] @relation(name: "post_category")
}
`

func TestTranspileObjectTypesAndPrelude(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	doc := transpile.Transpile(g)

	for _, name := range []string{"Node", "PageInfo", "Aggregate", "ConnectPositionInput", "DateTime"} {
		assert.True(t, hasDef(doc, name), "missing prelude definition %s", name)
	}

	user := findDef(t, doc, "User")
	assert.Equal(t, ast.Object, user.Kind)
	assert.Equal(t, []string{"Node"}, user.Interfaces)

	id := findField(t, user, "id")
	assert.Equal(t, "ID", id.Type.NamedType)
	assert.True(t, id.Type.NonNull)
	require.Len(t, id.Directives, 2)
	assert.Equal(t, "map", id.Directives[0].Name)
	assert.Equal(t, "id", id.Directives[0].Arguments[0].Value.Raw)

	role := findField(t, user, "role")
	assert.Equal(t, "Role", role.Type.NamedType)

	postsConn := findField(t, user, "postsConnection")
	assert.Equal(t, "PostConnection", postsConn.Type.NamedType)
	assert.True(t, postsConn.Type.NonNull)
}

func TestTranspileEdgeAndConnection(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	doc := transpile.Transpile(g)

	edge := findDef(t, doc, "PostEdge")
	node := findField(t, edge, "node")
	assert.Equal(t, "Post", node.Type.NamedType)
	assert.True(t, node.Type.NonNull)

	conn := findDef(t, doc, "PostConnection")
	findField(t, conn, "pageInfo")
	findField(t, conn, "edges")
	findField(t, conn, "aggregate")
}

func TestTranspileCreateInputOmitsAutoId(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	doc := transpile.Transpile(g)

	create := findDef(t, doc, "PostCreateInput")
	for _, f := range create.Fields {
		assert.NotEqual(t, "id", f.Name, "auto-default id must be omitted from create input")
	}
	title := findField(t, create, "title")
	assert.True(t, title.Type.NonNull)

	tags := findField(t, create, "tags")
	assert.True(t, tags.Type.NonNull)
	assert.True(t, tags.Type.Elem.NonNull)
}

func TestTranspileUpdateInputExcludesIdAndRelaxesRequired(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	doc := transpile.Transpile(g)

	update := findDef(t, doc, "PostUpdateInput")
	for _, f := range update.Fields {
		assert.NotEqual(t, "id", f.Name)
	}
	title := findField(t, update, "title")
	assert.False(t, title.Type.NonNull)
}

func TestTranspileUpdateManyInputOmittedWhenAllUnique(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	doc := transpile.Transpile(g)

	// Category's only non-id, non-relation field is `name`, which is
	// @unique, so CategoryUpdateManyInput must not be emitted.
	assert.False(t, hasDef(doc, "CategoryUpdateManyInput"))

	mutation := findDef(t, doc, "Mutation")
	for _, f := range mutation.Fields {
		assert.NotEqual(t, "updateManyCategoriesConnection", f.Name)
	}
}

func TestTranspileWhereInputUsesLiteralIdName(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	doc := transpile.Transpile(g)

	where := findDef(t, doc, "PostWhereInput")
	findField(t, where, "id")
	findField(t, where, "id_not")
	findField(t, where, "id_contains")

	unique := findDef(t, doc, "PostWhereUniqueInput")
	idUnique := findField(t, unique, "id")
	assert.Equal(t, "ID", idUnique.Type.NamedType)
}

func TestTranspileWhereInputArrayScalarUsesStringFamily(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	doc := transpile.Transpile(g)

	where := findDef(t, doc, "PostWhereInput")
	tagsContains := findField(t, where, "tags_contains")
	assert.Equal(t, "String", tagsContains.Type.NamedType)

	tagsIn := findField(t, where, "tags_in")
	assert.Equal(t, "String", tagsIn.Type.Elem.NamedType)
}

func TestTranspileRelationFilterFields(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	doc := transpile.Transpile(g)

	userWhere := findDef(t, doc, "UserWhereInput")
	findField(t, userWhere, "posts_every")
	findField(t, userWhere, "posts_some")
	findField(t, userWhere, "posts_none")
	findField(t, userWhere, "posts_is_empty")

	postWhere := findDef(t, doc, "PostWhereInput")
	findField(t, postWhere, "author")
	findField(t, postWhere, "author_is_null")
}

func TestTranspileOrderByEnumUsesLiteralIdName(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	doc := transpile.Transpile(g)

	orderBy := findDef(t, doc, "PostOrderByInput")
	names := make(map[string]bool)
	for _, v := range orderBy.EnumValues {
		names[v.Name] = true
	}
	assert.True(t, names["id_ASC"])
	assert.True(t, names["id_DSC"])
	assert.True(t, names["title_ASC"])
	assert.False(t, names["author_ASC"], "relation fields must not appear in order-by")
}

func TestTranspileRootQueryAndMutation(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	doc := transpile.Transpile(g)

	query := findDef(t, doc, "Query")
	findField(t, query, "node")
	findField(t, query, "post")
	findField(t, query, "posts")
	findField(t, query, "postsConnection")

	mutation := findDef(t, doc, "Mutation")
	findField(t, mutation, "createPost")
	findField(t, mutation, "updatePost")
	findField(t, mutation, "deletePost")
	findField(t, mutation, "upsertPost")
	findField(t, mutation, "deleteManyPostsConnection")
}

const selfRelationSchema = `
config db {
  provider = "foundationDB"
}

model User {
  id ShortStr @id @default(auto())
  spouseId ShortStr?
  spouse User? @relation(name: "spouse", field: spouseId, references: id)
}
`

func TestTranspileSelfRelation(t *testing.T) {
	g := mustAnalyze(t, selfRelationSchema)
	doc := transpile.Transpile(g)

	user := findDef(t, doc, "User")
	spouse := findField(t, user, "spouse")
	assert.Equal(t, "User", spouse.Type.NamedType)
	assert.False(t, spouse.Type.NonNull)

	where := findDef(t, doc, "UserWhereInput")
	findField(t, where, "spouse")
	findField(t, where, "spouse_is_null")
}

func TestTranspileEnumDefinition(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	doc := transpile.Transpile(g)

	role := findDef(t, doc, "Role")
	assert.Equal(t, ast.Enum, role.Kind)
	var variants []string
	for _, v := range role.EnumValues {
		variants = append(variants, v.Name)
	}
	assert.Equal(t, []string{"USER", "ADMIN"}, variants)
}

func TestTranspileDeterministic(t *testing.T) {
	g := mustAnalyze(t, blogSchema)
	first := transpile.Transpile(g)
	second := transpile.Transpile(g)

	require.Equal(t, len(first.Definitions), len(second.Definitions))
	for i := range first.Definitions {
		assert.Equal(t, first.Definitions[i].Name, second.Definitions[i].Name)
	}
}
