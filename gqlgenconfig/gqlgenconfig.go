// Package gqlgenconfig scaffolds the gqlgen.yml model-binding file for a
// resolved schema graph's GraphQL schema, adapted from the teacher's own
// contrib/graphql config reader/writer. It is a static config artifact,
// not an execution layer: nothing here runs gqlgen's own code generator.
package gqlgenconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/opencrudlang/sdlc/schema"
)

// Config is a subset of gqlgen.yml, covering only the fields this module
// ever populates.
type Config struct {
	SchemaFilename StringList              `yaml:"schema,omitempty"`
	Exec           ExecConfig              `yaml:"exec,omitempty"`
	Model          ModelConfig             `yaml:"model,omitempty"`
	Resolver       ResolverConfig          `yaml:"resolver,omitempty"`
	Autobind       []string                `yaml:"autobind,omitempty"`
	Models         map[string]TypeMapEntry `yaml:"models,omitempty"`

	OmitSliceElementPointers      bool `yaml:"omit_slice_element_pointers,omitempty"`
	OmitGetters                   bool `yaml:"omit_getters,omitempty"`
	StructFieldsAlwaysPointers    bool `yaml:"struct_fields_always_pointers,omitempty"`
	ResolversAlwaysReturnPointers bool `yaml:"resolvers_always_return_pointers,omitempty"`
	NullableInputOmittable        bool `yaml:"nullable_input_omittable,omitempty"`
}

// ExecConfig configures the generated executor.
type ExecConfig struct {
	Filename string `yaml:"filename,omitempty"`
	Package  string `yaml:"package,omitempty"`
}

// ModelConfig configures the generated models file.
type ModelConfig struct {
	Filename string `yaml:"filename,omitempty"`
	Package  string `yaml:"package,omitempty"`
}

// ResolverConfig configures resolver scaffolding.
type ResolverConfig struct {
	Filename string `yaml:"filename,omitempty"`
	Package  string `yaml:"package,omitempty"`
	Layout   string `yaml:"layout,omitempty"`
}

// TypeMapEntry is the model binding for one GraphQL type name.
type TypeMapEntry struct {
	Model  StringList               `yaml:"model,omitempty"`
	Fields map[string]TypeMapField `yaml:"fields,omitempty"`
}

// TypeMapField configures a single bound field.
type TypeMapField struct {
	FieldName string `yaml:"fieldName,omitempty"`
}

// StringList marshals as a bare string when it holds exactly one
// element, and as a YAML list otherwise — gqlgen.yml accepts both shapes
// for `model:`/`schema:` entries.
type StringList []string

func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("gqlgenconfig: expected string or list, got %v", node.Kind)
	}
}

func (s StringList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}

// Load reads a gqlgen.yml-shaped file from path. A missing file is not
// an error: it returns an empty, ready-to-populate Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Models: make(map[string]TypeMapEntry)}, nil
		}
		return nil, fmt.Errorf("gqlgenconfig: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("gqlgenconfig: parse %s: %w", path, err)
	}
	if cfg.Models == nil {
		cfg.Models = make(map[string]TypeMapEntry)
	}
	return &cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("gqlgenconfig: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("gqlgenconfig: create %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) addSchemaPath(path string) {
	if !slices.Contains(c.SchemaFilename, path) {
		c.SchemaFilename = append(c.SchemaFilename, path)
	}
}

func (c *Config) addAutobind(pkg string) {
	if !slices.Contains(c.Autobind, pkg) {
		c.Autobind = append(c.Autobind, pkg)
	}
}

func (c *Config) setModel(typeName, modelPath string) {
	entry := c.Models[typeName]
	if !slices.Contains(entry.Model, modelPath) {
		entry.Model = append(entry.Model, modelPath)
	}
	c.Models[typeName] = entry
}

// BindGraph populates cfg with the bindings a compiled schema needs:
// the schema file path, autobind against modelsPackage (where the
// codegen package's generated constructors/constants live), the
// DateTime scalar bound to time.Time, and one entry per declared enum
// bound to its generated Go type in modelsPackage.
//
// Per-model object/input types are left to gqlgen's autobind matching
// by name — they need no explicit entry unless a future field-level
// override is added.
func BindGraph(cfg *Config, g *schema.Graph, modelsPackage, schemaPath string) {
	if schemaPath != "" {
		cfg.addSchemaPath(schemaPath)
	}
	if modelsPackage != "" {
		cfg.addAutobind(modelsPackage)
	}

	cfg.setModel("DateTime", "time.Time")

	for _, e := range g.Enums() {
		cfg.setModel(e.Name, modelsPackage+"."+e.Name)
	}
}
