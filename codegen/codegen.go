// Package codegen emits one generated Go source file per model: field-
// name constants and, for models whose id field defaults to auto(), an
// id-constructor function — the same naming conventions the teacher's
// compiler/gen/type_field.go computes for its own templates
// (Field.Constant(), Field.DefaultName()), produced here via actual code
// generation instead of template text.
package codegen

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/opencrudlang/sdlc/schema"
)

// titleCase capitalizes the first letter of s; SDL field/model
// identifiers are already valid camelCase Go identifiers, so this is
// all the constant-naming convention needs (mirrors the teacher's own
// titleCase, a deliberately simpler replacement for strings.Title).
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FieldConstant names the exported constant holding a field's storage
// name, e.g. Post.title -> "FieldPostTitle".
func FieldConstant(modelName string, f *schema.Field) string {
	return "Field" + titleCase(modelName) + titleCase(f.Name)
}

// IDConstructor names the generated auto-id constructor function for a
// model, e.g. "NewPostID".
func IDConstructor(modelName string) string {
	return "New" + titleCase(modelName) + "ID"
}

// Generate builds one *jen.File for m: storage-name constants for every
// scalar field, and — only when the id field defaults to auto() — an id
// constructor backed by google/uuid, matching @default(auto())'s
// resolved meaning (spec.md §3: "a generated unique string").
func Generate(packageName string, m *schema.Model) *jen.File {
	f := jen.NewFile(packageName)
	f.HeaderComment("Code generated by sdlc. DO NOT EDIT.")

	for _, field := range m.ScalarFields() {
		f.Const().Id(FieldConstant(m.Name, field)).Op("=").Lit(field.Name)
	}

	idField := m.IDField()
	if idField.Attrs.Default != nil && idField.Attrs.Default.Kind == schema.DefaultAuto {
		fnName := IDConstructor(m.Name)
		f.Commentf("%s generates a fresh id for a new %s.", fnName, m.Name)
		f.Func().Id(fnName).Params().String().Block(
			jen.Return(jen.Qual("github.com/google/uuid", "New").Call().Dot("String").Call()),
		)
	}

	return f
}

// GenerateEnum builds one *jen.File declaring a string-based Go type for
// e, with one exported constant per variant, matching the binding
// gqlgenconfig.BindGraph registers for the GraphQL enum scalar.
func GenerateEnum(packageName string, e *schema.EnumType) *jen.File {
	f := jen.NewFile(packageName)
	f.HeaderComment("Code generated by sdlc. DO NOT EDIT.")

	f.Type().Id(e.Name).String()

	for _, v := range e.Variants {
		f.Const().Id(e.Name + titleCase(strings.ToLower(v))).Id(e.Name).Op("=").Lit(v)
	}

	return f
}
