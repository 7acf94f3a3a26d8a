package transpile

import (
	"github.com/opencrudlang/sdlc/schema"
	"github.com/vektah/gqlparser/v2/ast"
)

// updateInput builds `input MUpdateInput`: the same scalar fields as
// create, but unconditionally optional and without default markers; the
// id field never appears (spec.md §4.4 "Update input").
func updateInput(m *schema.Model) *ast.Definition {
	def := inputObject(namesFor(m.Name).UpdateInput)
	idField := m.IDField()

	for _, f := range m.Fields {
		if f == idField {
			continue
		}
		if f.IsRelation() {
			def.Fields = append(def.Fields, inlineRelationInput(f, false))
			continue
		}
		def.Fields = append(def.Fields, inputValue(f.Name, scalarInputType(f, false)))
	}

	return def
}

// hasUpdateManyFields reports whether m has any field eligible for the
// bulk-safe MUpdateManyInput (non-unique, non-relation scalar).
func hasUpdateManyFields(m *schema.Model) bool {
	return len(updateManyFields(m)) > 0
}

func updateManyFields(m *schema.Model) []*schema.Field {
	idField := m.IDField()
	var out []*schema.Field
	for _, f := range m.Fields {
		if f == idField || f.IsRelation() || f.Attrs.Unique {
			continue
		}
		out = append(out, f)
	}
	return out
}

// updateManyInput builds `input MUpdateManyInput`, or nil if m has no
// eligible field (spec.md §4.4: "Omitted entirely when every field in
// the model is unique").
func updateManyInput(m *schema.Model) *ast.Definition {
	fields := updateManyFields(m)
	if len(fields) == 0 {
		return nil
	}
	def := inputObject(namesFor(m.Name).UpdateManyInput)
	for _, f := range fields {
		def.Fields = append(def.Fields, inputValue(f.Name, scalarInputType(f, false)))
	}
	return def
}

// updateOneInlineInput builds `input MUpdateOneInlineInput` for a
// singular relation pointing at m: the full nested action set.
func updateOneInlineInput(m *schema.Model) *ast.Definition {
	n := namesFor(m.Name)
	def := inputObject(n.UpdateOneInline)
	def.Fields = ast.FieldList{
		inputValue("create", named(n.CreateInput)),
		inputValue("update", named(n.UpdateWithNested)),
		inputValue("upsert", named(n.UpsertWithNested)),
		inputValue("connect", named(n.WhereUniqueInput)),
		inputValue("disconnect", named("Boolean")),
		inputValue("delete", named("Boolean")),
	}
	return def
}

// updateManyInlineInput builds `input MUpdateManyInlineInput` for an
// array relation pointing at m: the list-shaped nested action set, plus
// `set` (spec.md §4.4).
func updateManyInlineInput(m *schema.Model) *ast.Definition {
	n := namesFor(m.Name)
	def := inputObject(n.UpdateManyInline)
	def.Fields = ast.FieldList{
		inputValue("create", nullableListOf(n.CreateInput)),
		inputValue("update", nullableListOf(n.UpdateWithNested)),
		inputValue("upsert", nullableListOf(n.UpsertWithNested)),
		inputValue("connect", nullableListOf(n.WhereUniqueInput)),
		inputValue("set", nullableListOf(n.WhereUniqueInput)),
		inputValue("disconnect", nullableListOf(n.WhereUniqueInput)),
		inputValue("delete", nullableListOf(n.WhereUniqueInput)),
	}
	return def
}

// updateWithNestedWhereUniqueInput builds `input
// MUpdateWithNestedWhereUniqueInput { where: MWhereUniqueInput!, data:
// MUpdateInput! }` (spec.md §4.4 "WithNested/Connect helpers").
func updateWithNestedWhereUniqueInput(m *schema.Model) *ast.Definition {
	n := namesFor(m.Name)
	def := inputObject(n.UpdateWithNested)
	def.Fields = ast.FieldList{
		inputValue("where", nonNull(n.WhereUniqueInput)),
		inputValue("data", nonNull(n.UpdateInput)),
	}
	return def
}

// connectInput builds `input MConnectInput { where: MWhereUniqueInput!,
// position: ConnectPositionInput }`.
func connectInput(m *schema.Model) *ast.Definition {
	n := namesFor(m.Name)
	def := inputObject(n.ConnectInput)
	def.Fields = ast.FieldList{
		inputValue("where", nonNull(n.WhereUniqueInput)),
		inputValue("position", named("ConnectPositionInput")),
	}
	return def
}
