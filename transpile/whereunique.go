package transpile

import (
	"github.com/opencrudlang/sdlc/schema"
	"github.com/vektah/gqlparser/v2/ast"
)

// whereUniqueInput builds `input MWhereUniqueInput`: every nullable
// `@id`/`@unique` field; exactly one must be supplied, enforced by the
// query engine, not here (spec.md §4.4 "WhereUnique").
func whereUniqueInput(m *schema.Model) *ast.Definition {
	def := inputObject(namesFor(m.Name).WhereUniqueInput)

	def.Fields = append(def.Fields, inputValue("id", named("ID")))

	for _, f := range m.UniqueFields() {
		def.Fields = append(def.Fields, inputValue(f.Name, named(graphQLTypeName(f))))
	}

	return def
}
