package transpile

import (
	"github.com/opencrudlang/sdlc/schema"
	"github.com/vektah/gqlparser/v2/ast"
)

// orderByInput builds `enum MOrderByInput` with `<field>_ASC`/`_DSC` for
// every scalar field in declaration order, excluding relation endpoints
// (spec.md §4.4 "OrderBy enum").
func orderByInput(m *schema.Model) *ast.Definition {
	def := enumDef(namesFor(m.Name).OrderByInput)
	idField := m.IDField()

	for _, f := range m.Fields {
		if f.IsRelation() {
			continue
		}
		name := f.Name
		if f == idField {
			name = "id"
		}
		def.EnumValues = append(def.EnumValues,
			enumValue(name+"_ASC"),
			enumValue(name+"_DSC"),
		)
	}

	return def
}
