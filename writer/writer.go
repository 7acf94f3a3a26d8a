// Package writer assembles the artifacts a compiled schema graph produces
// — the GraphQL SDL file, the gqlgen.yml scaffold, a physical-schema
// snapshot, and one generated Go helper file per model and enum — and
// writes them to an output directory concurrently, adapted from the
// teacher's own compiler/gen/writer.go fan-out-with-errgroup pattern.
package writer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	atlas "ariga.io/atlas/sql/schema"
	"github.com/dave/jennifer/jen"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/validator"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/opencrudlang/sdlc/codegen"
	"github.com/opencrudlang/sdlc/gqlgenconfig"
	"github.com/opencrudlang/sdlc/schema"
)

// Options configures where and under what names a Writer emits its
// artifacts.
type Options struct {
	// OutDir is the directory all paths below are resolved relative to.
	OutDir string

	// SchemaFilename is the rendered GraphQL SDL file, e.g. "schema.graphql".
	SchemaFilename string
	// GQLGenFilename is the gqlgen.yml scaffold, e.g. "gqlgen.yml".
	GQLGenFilename string
	// PhysicalFilename is the physical-schema snapshot, e.g. "schema.physical.json".
	PhysicalFilename string
	// ModelsDir is the subdirectory generated Go helper files are written
	// under, relative to OutDir.
	ModelsDir string
	// ModelsPackage is the import path of the generated helper files; its
	// last element is their Go package name, and gqlgenconfig.BindGraph
	// uses the full path for autobind.
	ModelsPackage string

	// Workers bounds how many artifacts are generated concurrently. Zero
	// uses GOMAXPROCS.
	Workers int
}

// Result records what a Writer produced.
type Result struct {
	SchemaName     string
	SchemaDocument *ast.Schema
	Paths          []string
}

// Write derives and writes every artifact for g's compiled output: doc is
// the transpiled GraphQL schema document, phys is the derived physical
// schema. It returns once every artifact has been written, or on the
// first error.
func Write(ctx context.Context, opts Options, g *schema.Graph, doc *ast.SchemaDocument, phys *atlas.Schema) (*Result, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("writer: OutDir is required")
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("writer: create output directory: %w", err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sdlText, validated, err := renderSchema(doc)
	if err != nil {
		return nil, fmt.Errorf("writer: validate schema: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	paths := make([]string, 0, 2+len(g.Models())+len(g.Enums()))
	add := func(p string) { paths = append(paths, p) }

	if name := opts.SchemaFilename; name != "" {
		path := filepath.Join(opts.OutDir, name)
		add(path)
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return writeFile(path, []byte(sdlText))
			}
		})
	}

	if name := opts.GQLGenFilename; name != "" {
		path := filepath.Join(opts.OutDir, name)
		add(path)
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return writeGQLGenConfig(path, g, opts.ModelsPackage, opts.SchemaFilename)
			}
		})
	}

	if name := opts.PhysicalFilename; name != "" {
		path := filepath.Join(opts.OutDir, name)
		add(path)
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return writePhysicalSnapshot(path, phys)
			}
		})
	}

	if opts.ModelsDir != "" && opts.ModelsPackage != "" {
		pkgName := filepath.Base(opts.ModelsPackage)
		for _, m := range g.Models() {
			m := m
			path := filepath.Join(opts.OutDir, opts.ModelsDir, goFileName(m.Name))
			add(path)
			eg.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
					return writeGoFile(path, codegen.Generate(pkgName, m))
				}
			})
		}
		for _, e := range g.Enums() {
			e := e
			path := filepath.Join(opts.OutDir, opts.ModelsDir, enumFileName(e.Name))
			add(path)
			eg.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
					return writeGoFile(path, codegen.GenerateEnum(pkgName, e))
				}
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Result{SchemaName: validated.Query.Name, SchemaDocument: validated, Paths: paths}, nil
}

// renderSchema validates doc against gqlparser's own schema rules
// (undefined types, duplicate definitions, malformed directives) and
// formats the resulting merged *ast.Schema back to GraphQL SDL text for
// the file actually written to disk.
func renderSchema(doc *ast.SchemaDocument) (string, *ast.Schema, error) {
	validated, gqlErr := validator.ValidateSchemaDocument(doc)
	if gqlErr != nil {
		return "", nil, gqlErr
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchema(validated)
	return buf.String(), validated, nil
}

func writeGQLGenConfig(path string, g *schema.Graph, modelsPackage, schemaFilename string) error {
	cfg, err := gqlgenconfig.Load(path)
	if err != nil {
		return err
	}
	gqlgenconfig.BindGraph(cfg, g, modelsPackage, schemaFilename)
	return gqlgenconfig.Save(path, cfg)
}

// physicalSnapshot is a minimal, stable JSON shape for phys — not atlas's
// own HCL representation, which lives in a separate sqlspec package this
// module never imports (wiring it would mean a second schema-translation
// layer for what is already, at this point, a snapshot for humans and
// migration tooling to diff, not another atlas input).
type physicalSnapshot struct {
	Name   string             `json:"name"`
	Tables []physicalTableJSON `json:"tables"`
}

type physicalTableJSON struct {
	Name        string   `json:"name"`
	Columns     []string `json:"columns"`
	PrimaryKey  string   `json:"primary_key,omitempty"`
	Indexes     []string `json:"indexes,omitempty"`
	ForeignKeys []string `json:"foreign_keys,omitempty"`
}

func writePhysicalSnapshot(path string, phys *atlas.Schema) error {
	snap := physicalSnapshot{Name: phys.Name}
	for _, t := range phys.Tables {
		jt := physicalTableJSON{Name: t.Name}
		for _, c := range t.Columns {
			jt.Columns = append(jt.Columns, c.Name)
		}
		if t.PrimaryKey != nil && len(t.PrimaryKey.Parts) > 0 {
			jt.PrimaryKey = t.PrimaryKey.Parts[0].C.Name
		}
		for _, idx := range t.Indexes {
			jt.Indexes = append(jt.Indexes, idx.Name)
		}
		for _, fk := range t.ForeignKeys {
			jt.ForeignKeys = append(jt.ForeignKeys, fk.Symbol)
		}
		snap.Tables = append(snap.Tables, jt)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return writeFile(path, data)
}

func writeGoFile(path string, f *jen.File) error {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		debugPath := path + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return fmt.Errorf("format %s: %w (unformatted written to %s)", path, err, debugPath)
	}

	return writeFile(path, formatted)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

func goFileName(name string) string {
	return lowerFirst(name) + ".go"
}

func enumFileName(name string) string {
	return lowerFirst(name) + "_enum.go"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
