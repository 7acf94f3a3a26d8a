package transpile

import (
	"github.com/opencrudlang/sdlc/schema"
	"github.com/vektah/gqlparser/v2/ast"
)

// upsertInput builds `input MUpsertInput { create: MCreateInput!,
// update: MUpdateInput! }`, used by the root `upsertM` mutation
// (spec.md §4.4 "Upsert input").
func upsertInput(m *schema.Model) *ast.Definition {
	n := namesFor(m.Name)
	def := inputObject(n.UpsertInput)
	def.Fields = ast.FieldList{
		inputValue("create", nonNull(n.CreateInput)),
		inputValue("update", nonNull(n.UpdateInput)),
	}
	return def
}

// upsertWithNestedWhereUniqueInput builds `input
// MUpsertWithNestedWhereUniqueInput { where: MWhereUniqueInput!,
// create: MCreateInput!, update: MUpdateInput! }`, used by nested
// relation upsert actions.
func upsertWithNestedWhereUniqueInput(m *schema.Model) *ast.Definition {
	n := namesFor(m.Name)
	def := inputObject(n.UpsertWithNested)
	def.Fields = ast.FieldList{
		inputValue("where", nonNull(n.WhereUniqueInput)),
		inputValue("create", nonNull(n.CreateInput)),
		inputValue("update", nonNull(n.UpdateInput)),
	}
	return def
}
