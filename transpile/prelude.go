package transpile

import "github.com/vektah/gqlparser/v2/ast"

// prelude builds the global definitions emitted once regardless of the
// graph's contents (spec.md §4.4 "Global prelude").
func prelude() ast.DefinitionList {
	return ast.DefinitionList{
		{Kind: ast.Scalar, Name: "DateTime"},
		nodeInterface(),
		pageInfoType(),
		aggregateType(),
		connectPositionInput(),
	}
}

// preludeDirectives builds the three directive definitions carried over
// as GraphQL directives on object fields (@map, @unique, @indexed).
func preludeDirectives() ast.DirectiveDefinitionList {
	return ast.DirectiveDefinitionList{
		{
			Name:      "map",
			Arguments:  ast.ArgumentDefinitionList{arg("name", nonNull("String"))},
			Locations: []ast.DirectiveLocation{ast.LocationFieldDefinition},
		},
		{
			Name:      "unique",
			Locations: []ast.DirectiveLocation{ast.LocationFieldDefinition},
		},
		{
			Name:      "indexed",
			Locations: []ast.DirectiveLocation{ast.LocationFieldDefinition},
		},
	}
}

func nodeInterface() *ast.Definition {
	return &ast.Definition{
		Kind: ast.Interface,
		Name: "Node",
		Fields: ast.FieldList{
			field("id", nonNull("ID")),
		},
	}
}

func pageInfoType() *ast.Definition {
	return &ast.Definition{
		Kind: ast.Object,
		Name: "PageInfo",
		Fields: ast.FieldList{
			field("hasNextPage", nonNull("Boolean")),
			field("hasPreviousPage", nonNull("Boolean")),
			field("startCursor", named("String")),
			field("endCursor", named("String")),
		},
	}
}

func aggregateType() *ast.Definition {
	return &ast.Definition{
		Kind: ast.Object,
		Name: "Aggregate",
		Fields: ast.FieldList{
			field("count", nonNull("Int")),
		},
	}
}

func connectPositionInput() *ast.Definition {
	return &ast.Definition{
		Kind: ast.InputObject,
		Name: "ConnectPositionInput",
		Fields: ast.FieldList{
			inputValue("after", named("ID")),
			inputValue("before", named("ID")),
			inputValue("start", named("Boolean")),
			inputValue("end", named("Boolean")),
		},
	}
}

// paginationArgs are the standard Relay cursor-pagination arguments
// shared by every list root field and list relation field.
func paginationArgs(whereInput, orderByInput string) ast.ArgumentDefinitionList {
	return ast.ArgumentDefinitionList{
		arg("where", named(whereInput)),
		arg("orderBy", named(orderByInput)),
		arg("skip", named("Int")),
		arg("after", named("String")),
		arg("before", named("String")),
		arg("first", named("Int")),
		arg("last", named("Int")),
	}
}
