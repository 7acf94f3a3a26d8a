package gqlgenconfig_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencrudlang/sdlc/gqlgenconfig"
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

const roleSchema = `
config db {
  provider = "foundationDB"
}

enum Role {
  USER
  ADMIN
}

model User {
  id ShortStr @id @default(auto())
  role Role @default(USER)
}
`

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := gqlgenconfig.Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Models)
	assert.Empty(t, cfg.SchemaFilename)
}

func TestBindGraphAddsEnumAndDateTimeBindings(t *testing.T) {
	g := mustAnalyze(t, roleSchema)
	cfg := &gqlgenconfig.Config{Models: make(map[string]gqlgenconfig.TypeMapEntry)}

	gqlgenconfig.BindGraph(cfg, g, "github.com/example/app/ent", "schema.graphql")

	assert.Equal(t, gqlgenconfig.StringList{"schema.graphql"}, cfg.SchemaFilename)
	assert.Contains(t, cfg.Autobind, "github.com/example/app/ent")

	dt, ok := cfg.Models["DateTime"]
	require.True(t, ok)
	assert.Equal(t, gqlgenconfig.StringList{"time.Time"}, dt.Model)

	role, ok := cfg.Models["Role"]
	require.True(t, ok)
	assert.Equal(t, gqlgenconfig.StringList{"github.com/example/app/ent.Role"}, role.Model)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cfg := &gqlgenconfig.Config{
		SchemaFilename: gqlgenconfig.StringList{"a.graphql", "b.graphql"},
		Autobind:       []string{"github.com/example/app/ent"},
		Models: map[string]gqlgenconfig.TypeMapEntry{
			"DateTime": {Model: gqlgenconfig.StringList{"time.Time"}},
		},
	}

	path := filepath.Join(t.TempDir(), "nested", "gqlgen.yml")
	require.NoError(t, gqlgenconfig.Save(path, cfg))

	loaded, err := gqlgenconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, gqlgenconfig.StringList{"a.graphql", "b.graphql"}, loaded.SchemaFilename)
	assert.Equal(t, []string{"github.com/example/app/ent"}, loaded.Autobind)
	assert.Equal(t, gqlgenconfig.StringList{"time.Time"}, loaded.Models["DateTime"].Model)
}

func TestSetModelIsIdempotent(t *testing.T) {
	g := mustAnalyze(t, roleSchema)
	cfg := &gqlgenconfig.Config{Models: make(map[string]gqlgenconfig.TypeMapEntry)}

	gqlgenconfig.BindGraph(cfg, g, "ent", "schema.graphql")
	gqlgenconfig.BindGraph(cfg, g, "ent", "schema.graphql")

	assert.Equal(t, gqlgenconfig.StringList{"schema.graphql"}, cfg.SchemaFilename)
	assert.Equal(t, gqlgenconfig.StringList{"time.Time"}, cfg.Models["DateTime"].Model)
}
