package transpile

import (
	"github.com/opencrudlang/sdlc/schema"
	"github.com/vektah/gqlparser/v2/ast"
)

// createInput builds `input MCreateInput`: every scalar field, required
// unless a default exists; relation fields become inline create/connect
// inputs (spec.md §4.4 "Create input").
func createInput(m *schema.Model) *ast.Definition {
	def := inputObject(namesFor(m.Name).CreateInput)

	idField := m.IDField()
	if idField.Attrs.Default == nil {
		def.Fields = append(def.Fields, inputValue("id", nonNull("ID")))
	}

	for _, f := range m.Fields {
		if f == idField {
			continue
		}
		if f.IsRelation() {
			def.Fields = append(def.Fields, inlineRelationInput(f, true))
			continue
		}
		def.Fields = append(def.Fields, inputValue(f.Name, scalarInputType(f, true)))
	}

	return def
}

// scalarInputType resolves the GraphQL input type for a scalar/enum
// field. forCreate == false makes the type unconditionally nullable
// (spec.md §4.4 "Update input": "same scalars but all optional").
func scalarInputType(f *schema.Field, forCreate bool) *ast.Type {
	name := graphQLTypeName(f)
	required := forCreate && f.Arity != schema.Optional && f.Attrs.Default == nil

	if f.Arity == schema.Array {
		if required {
			return listOf(name)
		}
		return nullableListOf(name)
	}
	return typeRef(name, required)
}

// inlineRelationInput builds the nested Create/Update relation input
// field: `MCreateOneInlineInput`/`MCreateManyInlineInput` for create,
// `MUpdateOneInlineInput`/`MUpdateManyInlineInput` for update.
func inlineRelationInput(f *schema.Field, forCreate bool) *ast.FieldDefinition {
	tn := namesFor(f.Type.RefName)
	var inputName string
	switch {
	case forCreate && f.Arity != schema.Array:
		inputName = tn.CreateOneInline
	case forCreate && f.Arity == schema.Array:
		inputName = tn.CreateManyInline
	case !forCreate && f.Arity != schema.Array:
		inputName = tn.UpdateOneInline
	default:
		inputName = tn.UpdateManyInline
	}
	return inputValue(f.Name, named(inputName))
}

// createOneInlineInput builds `input MCreateOneInlineInput { create:
// MCreateInput, connect: MWhereUniqueInput }`.
func createOneInlineInput(m *schema.Model) *ast.Definition {
	n := namesFor(m.Name)
	def := inputObject(n.CreateOneInline)
	def.Fields = ast.FieldList{
		inputValue("create", named(n.CreateInput)),
		inputValue("connect", named(n.WhereUniqueInput)),
	}
	return def
}

// createManyInlineInput builds `input MCreateManyInlineInput { create:
// [MCreateInput!], connect: [MWhereUniqueInput!] }`.
func createManyInlineInput(m *schema.Model) *ast.Definition {
	n := namesFor(m.Name)
	def := inputObject(n.CreateManyInline)
	def.Fields = ast.FieldList{
		inputValue("create", nullableListOf(n.CreateInput)),
		inputValue("connect", nullableListOf(n.WhereUniqueInput)),
	}
	return def
}
