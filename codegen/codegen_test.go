package codegen_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencrudlang/sdlc/codegen"
	"github.com/opencrudlang/sdlc/schema"
	"github.com/opencrudlang/sdlc/sdl"
)

func mustAnalyze(t *testing.T, src string) *schema.Graph {
	t.Helper()
	f, err := sdl.Parse(src)
	require.NoError(t, err)
	g, ds := schema.Analyze(f)
	require.False(t, ds.HasErrors(), "unexpected diagnostics: %v", ds)
	return g
}

const userSchema = `
config db {
  provider = "mysql"
}

enum Role {
  USER
  ADMIN
}

model User {
  id ShortStr @id @default(auto())
  email ShortStr @unique
  role Role @default(USER)
}

model Invite {
  code ShortStr @id
  email ShortStr
}
`

func render(t *testing.T, f *jen.File) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

func findModel(g *schema.Graph, name string) *schema.Model {
	for _, m := range g.Models() {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func findEnum(g *schema.Graph, name string) *schema.EnumType {
	for _, e := range g.Enums() {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func TestFieldConstantNaming(t *testing.T) {
	g := mustAnalyze(t, userSchema)
	user := findModel(g, "User")
	require.NotNil(t, user)

	var emailField *schema.Field
	for _, f := range user.ScalarFields() {
		if f.Name == "email" {
			emailField = f
		}
	}
	require.NotNil(t, emailField)

	assert.Equal(t, "FieldUserEmail", codegen.FieldConstant("User", emailField))
}

func TestIDConstructorNaming(t *testing.T) {
	assert.Equal(t, "NewUserID", codegen.IDConstructor("User"))
	assert.Equal(t, "NewInviteID", codegen.IDConstructor("Invite"))
}

func TestGenerateAutoIDModelEmitsConstructor(t *testing.T) {
	g := mustAnalyze(t, userSchema)
	user := findModel(g, "User")
	require.NotNil(t, user)

	f := codegen.Generate("ent", user)
	src := render(t, f)

	assert.Contains(t, src, `FieldUserId = "id"`)
	assert.Contains(t, src, `FieldUserEmail = "email"`)
	assert.Contains(t, src, `FieldUserRole = "role"`)
	assert.Contains(t, src, "func NewUserID() string")
	assert.Contains(t, src, `"github.com/google/uuid"`)
	assert.Contains(t, src, "uuid.New().String()")
}

func TestGenerateNonAutoIDModelOmitsConstructor(t *testing.T) {
	g := mustAnalyze(t, userSchema)
	invite := findModel(g, "Invite")
	require.NotNil(t, invite)

	f := codegen.Generate("ent", invite)
	src := render(t, f)

	assert.Contains(t, src, `FieldInviteCode = "code"`)
	assert.NotContains(t, src, "NewInviteID")
	assert.NotContains(t, src, "github.com/google/uuid")
}

func TestGenerateEnum(t *testing.T) {
	g := mustAnalyze(t, userSchema)
	role := findEnum(g, "Role")
	require.NotNil(t, role)

	f := codegen.GenerateEnum("ent", role)
	src := render(t, f)

	assert.Contains(t, src, "type Role string")
	assert.Contains(t, src, `RoleUser Role = "USER"`)
	assert.Contains(t, src, `RoleAdmin Role = "ADMIN"`)
}

// TestGeneratedIDConstructorContractMatchesUUID checks the expression the
// generated NewUserID returns, google/uuid.New().String(), directly: it
// yields a canonical, parseable UUID string. The generated code itself is
// not compiled or run here.
func TestGeneratedIDConstructorContractMatchesUUID(t *testing.T) {
	id := uuid.New().String()
	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`), id)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, parsed.String())
}
