package transpile

import (
	"github.com/opencrudlang/sdlc/schema"
	"github.com/vektah/gqlparser/v2/ast"
)

// Transpile is the pure function ModelGraph → SchemaAST of spec.md §4.4.
// g must have passed semantic analysis with no Error-severity
// diagnostics; Transpile never errors (spec.md: "the transpiler is a
// total function").
//
// Traversal is deterministic: models in declaration order, fields in
// declaration order within each model, and generated sibling artifacts
// in the fixed sequence documented per builder below.
func Transpile(g *schema.Graph) *ast.SchemaDocument {
	doc := &ast.SchemaDocument{
		Directives: preludeDirectives(),
	}
	doc.Definitions = append(doc.Definitions, prelude()...)

	models := g.Models()
	for _, m := range models {
		doc.Definitions = append(doc.Definitions, modelDefinitions(m)...)
	}

	for _, e := range g.Enums() {
		doc.Definitions = append(doc.Definitions, enumDefinition(e))
	}

	doc.Definitions = append(doc.Definitions, rootQuery(models), rootMutation(models))

	return doc
}

// modelDefinitions builds every definition derived from a single model,
// in the fixed sequence of spec.md §4.4: type, edge, connection, create
// inputs, update inputs, upsert input, where inputs, where-unique input,
// order-by enum.
func modelDefinitions(m *schema.Model) ast.DefinitionList {
	defs := ast.DefinitionList{
		objectType(m),
		edgeType(m),
		connectionType(m),
		// create inputs
		createInput(m),
		createOneInlineInput(m),
		createManyInlineInput(m),
		connectInput(m),
		// update inputs
		updateInput(m),
		updateOneInlineInput(m),
		updateManyInlineInput(m),
		updateWithNestedWhereUniqueInput(m),
	}
	if umi := updateManyInput(m); umi != nil {
		defs = append(defs, umi)
	}
	defs = append(defs,
		// upsert input
		upsertInput(m),
		upsertWithNestedWhereUniqueInput(m),
		// where inputs
		whereInput(m),
		whereUniqueInput(m),
		// order-by enum
		orderByInput(m),
	)
	return defs
}

func enumDefinition(e *schema.EnumType) *ast.Definition {
	def := enumDef(e.Name)
	for _, v := range e.Variants {
		def.EnumValues = append(def.EnumValues, enumValue(v))
	}
	return def
}
