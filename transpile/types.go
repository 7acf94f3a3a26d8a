package transpile

import (
	"github.com/opencrudlang/sdlc/schema"
	"github.com/vektah/gqlparser/v2/ast"
)

// scalarGraphQLName maps a resolved scalar FieldTypeKind to its GraphQL
// scalar name (spec.md §4.4: "ShortStr/LongStr → String; ID for the id
// field").
func scalarGraphQLName(kind schema.FieldTypeKind) string {
	switch kind {
	case schema.ShortStr, schema.LongStr:
		return "String"
	case schema.Boolean:
		return "Boolean"
	case schema.DateTime:
		return "DateTime"
	case schema.Int32, schema.Int64:
		return "Int"
	case schema.Float64:
		return "Float"
	default:
		return "String"
	}
}

// graphQLTypeName resolves the GraphQL type name a model field projects
// to: the mapped scalar name, the enum/model's own name, or "ID" for the
// id field (handled by the caller before this is reached).
func graphQLTypeName(f *schema.Field) string {
	switch f.Type.Kind {
	case schema.EnumRef, schema.ModelRef:
		return f.Type.RefName
	default:
		return scalarGraphQLName(f.Type.Kind)
	}
}

// fieldDirectives builds the @map/@unique/@indexed directive usages
// carried over from a field's resolved AttrSet (spec.md §4.4: "Carry
// over @unique, @indexed, and @map as GraphQL directives").
func fieldDirectives(f *schema.Field) ast.DirectiveList {
	var dirs ast.DirectiveList
	if f.Attrs.MappedName != nil {
		dirs = append(dirs, directiveWithStringArg("map", "name", *f.Attrs.MappedName))
	}
	if f.Attrs.Unique {
		dirs = append(dirs, directive("unique"))
	}
	if f.Attrs.Indexed {
		dirs = append(dirs, directive("indexed"))
	}
	return dirs
}

// objectType builds the `type M implements Node` definition for m,
// including its id field, scalar/enum fields, and relation fields
// (spec.md §4.4 "Per-model object type").
func objectType(m *schema.Model) *ast.Definition {
	def := object(m.Name, "Node")

	idField := m.IDField()
	idDef := field("id", nonNull("ID"))
	idDef.Directives = ast.DirectiveList{
		directiveWithStringArg("map", "name", idField.Name),
		directive("unique"),
	}
	def.Fields = append(def.Fields, idDef)

	for _, f := range m.Fields {
		if f == idField {
			continue
		}
		switch {
		case f.IsRelation():
			def.Fields = append(def.Fields, relationObjectFields(f)...)
		default:
			fd := field(f.Name, typeRef(graphQLTypeName(f), f.Arity == schema.Required))
			fd.Directives = fieldDirectives(f)
			def.Fields = append(def.Fields, fd)
		}
	}

	return def
}

// relationObjectFields builds the one or two object fields a relation
// field projects to: a single `field: Other` for singular relations, or
// `field(...)`/`fieldConnection(...)` for array relations.
func relationObjectFields(f *schema.Field) ast.FieldList {
	target := f.Type.RefName
	tn := namesFor(target)

	if f.Arity != schema.Array {
		fd := field(f.Name, typeRef(target, f.Arity == schema.Required))
		fd.Directives = fieldDirectives(f)
		return ast.FieldList{fd}
	}

	listField := fieldWithArgs(f.Name, listOf(target), paginationArgs(tn.WhereInput, tn.OrderByInput))
	connField := fieldWithArgs(f.Name+"Connection", nonNull(tn.Connection), paginationArgs(tn.WhereInput, tn.OrderByInput))
	return ast.FieldList{listField, connField}
}

// edgeType builds `type MEdge { node: M! cursor: String! }`.
func edgeType(m *schema.Model) *ast.Definition {
	return &ast.Definition{
		Kind: ast.Object,
		Name: namesFor(m.Name).Edge,
		Fields: ast.FieldList{
			field("node", nonNull(m.Name)),
			field("cursor", nonNull("String")),
		},
	}
}

// connectionType builds `type MConnection { pageInfo, edges, aggregate }`.
func connectionType(m *schema.Model) *ast.Definition {
	n := namesFor(m.Name)
	return &ast.Definition{
		Kind: ast.Object,
		Name: n.Connection,
		Fields: ast.FieldList{
			field("pageInfo", nonNull("PageInfo")),
			field("edges", listOf(n.Edge)),
			field("aggregate", nonNull("Aggregate")),
		},
	}
}
