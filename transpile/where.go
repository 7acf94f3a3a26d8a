package transpile

import (
	"github.com/opencrudlang/sdlc/schema"
	"github.com/vektah/gqlparser/v2/ast"
)

// Each *FilterOps list is the fixed operator family for one scalar-filter
// "kind" (spec.md §4.4's per-kind operator table). "" denotes the bare
// equality field (no suffix).
var (
	stringFilterOps  = []string{"", "_not", "_contains", "_not_contains", "_starts_with", "_not_starts_with", "_ends_with", "_not_ends_with", "_lt", "_lte", "_gt", "_gte", "_in", "_not_in"}
	numericFilterOps = []string{"", "_not", "_lt", "_lte", "_gt", "_gte", "_in", "_not_in"}
	booleanFilterOps = []string{"", "_not"}
	enumFilterOps    = []string{"", "_not", "_in", "_not_in"}
)

// isListOp reports whether op is one of the operators whose value type is
// a list of the scalar type rather than the scalar type itself.
func isListOp(op string) bool { return op == "_in" || op == "_not_in" }

// whereInput builds `input MWhereInput` for m: logical combinators first,
// then a filter family per scalar field, then relation filters
// (spec.md §4.4 "Where input").
func whereInput(m *schema.Model) *ast.Definition {
	n := namesFor(m.Name)
	def := inputObject(n.WhereInput)

	def.Fields = append(def.Fields,
		inputValue("AND", nullableListOf(n.WhereInput)),
		inputValue("OR", nullableListOf(n.WhereInput)),
		inputValue("NOT", nullableListOf(n.WhereInput)),
	)

	idField := m.IDField()
	def.Fields = append(def.Fields, scalarFilterFields("id", "ID", stringFilterOps)...)

	for _, f := range m.Fields {
		if f == idField {
			continue
		}
		switch {
		case f.IsRelation():
			def.Fields = append(def.Fields, relationFilterFields(f)...)
		case f.Arity == schema.Array:
			// Open question resolution (SPEC_FULL.md §5.1): scalar-array
			// filters operate elementwise on the stringified element,
			// so the filter value type is always String.
			def.Fields = append(def.Fields, scalarFilterFields(f.Name, "String", stringFilterOps)...)
		default:
			valueType := graphQLTypeName(f)
			def.Fields = append(def.Fields, scalarFilterFields(f.Name, valueType, opsForKind(f.Type.Kind))...)
		}
	}

	return def
}

func opsForKind(kind schema.FieldTypeKind) []string {
	switch kind {
	case schema.ShortStr, schema.LongStr:
		return stringFilterOps
	case schema.Boolean:
		return booleanFilterOps
	case schema.EnumRef:
		return enumFilterOps
	default: // DateTime, Int32, Int64, Float64
		return numericFilterOps
	}
}

func scalarFilterFields(fieldName, valueType string, ops []string) ast.FieldList {
	out := make(ast.FieldList, 0, len(ops))
	for _, op := range ops {
		name := fieldName + op
		if isListOp(op) {
			out = append(out, inputValue(name, nullableListOf(valueType)))
		} else {
			out = append(out, inputValue(name, named(valueType)))
		}
	}
	return out
}

// relationFilterFields builds the filter fields for a relation field:
// `rel`/`rel_is_null` for singular, `rel_every`/`rel_some`/`rel_none`/
// `rel_is_empty` for array (spec.md §4.4).
func relationFilterFields(f *schema.Field) ast.FieldList {
	target := namesFor(f.Type.RefName).WhereInput

	if f.Arity != schema.Array {
		return ast.FieldList{
			inputValue(f.Name, named(target)),
			inputValue(f.Name+"_is_null", named("Boolean")),
		}
	}

	return ast.FieldList{
		inputValue(f.Name+"_every", named(target)),
		inputValue(f.Name+"_some", named(target)),
		inputValue(f.Name+"_none", named(target)),
		inputValue(f.Name+"_is_empty", named("Boolean")),
	}
}
