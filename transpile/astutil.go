// Package transpile implements the schema transpiler of spec.md §4.4: a
// pure function from a resolved *schema.Graph to a gqlparser schema AST.
package transpile

import "github.com/vektah/gqlparser/v2/ast"

// named builds a bare named type reference, e.g. `String`.
func named(name string) *ast.Type {
	return ast.NamedType(name, nil)
}

// nonNull builds a required named type reference, e.g. `String!`.
func nonNull(name string) *ast.Type {
	return ast.NonNullNamedType(name, nil)
}

// listOf builds `[elem!]!`: a required list of required elements, the
// shape of every list-valued object field and of required array inputs.
func listOf(elemName string) *ast.Type {
	return ast.NonNullListType(nonNull(elemName), nil)
}

// nullableListOf builds `[elem!]` (nullable list, required elements),
// used nowhere in the prelude but kept for input-list shapes like
// `_in`/`_not_in` filters where the list itself may be omitted.
func nullableListOf(elemName string) *ast.Type {
	return ast.ListType(nonNull(elemName), nil)
}

// typeRef picks a required or nullable reference to a named GraphQL type;
// array arity is not handled here.
func typeRef(name string, required bool) *ast.Type {
	if required {
		return nonNull(name)
	}
	return named(name)
}

// field builds a FieldDefinition with no arguments.
func field(name string, typ *ast.Type) *ast.FieldDefinition {
	return &ast.FieldDefinition{Name: name, Type: typ}
}

// fieldWithArgs builds a FieldDefinition with arguments.
func fieldWithArgs(name string, typ *ast.Type, args ast.ArgumentDefinitionList) *ast.FieldDefinition {
	return &ast.FieldDefinition{Name: name, Type: typ, Arguments: args}
}

// arg builds an ArgumentDefinition.
func arg(name string, typ *ast.Type) *ast.ArgumentDefinition {
	return &ast.ArgumentDefinition{Name: name, Type: typ}
}

// inputValue builds an InputValueDefinition-shaped FieldDefinition used
// inside `input` definitions (gqlparser models input fields with the
// same FieldDefinition struct as object fields).
func inputValue(name string, typ *ast.Type) *ast.FieldDefinition {
	return &ast.FieldDefinition{Name: name, Type: typ}
}

// object starts an `type Name implements ...` definition.
func object(name string, implements ...string) *ast.Definition {
	return &ast.Definition{Kind: ast.Object, Name: name, Interfaces: implements}
}

// inputObject starts an `input Name` definition.
func inputObject(name string) *ast.Definition {
	return &ast.Definition{Kind: ast.InputObject, Name: name}
}

// enumDef starts an `enum Name` definition.
func enumDef(name string) *ast.Definition {
	return &ast.Definition{Kind: ast.Enum, Name: name}
}

// enumValue builds one enum member.
func enumValue(name string) *ast.EnumValueDefinition {
	return &ast.EnumValueDefinition{Name: name}
}

// directive builds a bare directive usage, e.g. `@unique`.
func directive(name string) *ast.Directive {
	return &ast.Directive{Name: name}
}

// directiveWithStringArg builds a directive usage with one string
// argument, e.g. `@map(name: "userId")`.
func directiveWithStringArg(name, argName, value string) *ast.Directive {
	return &ast.Directive{
		Name: name,
		Arguments: ast.ArgumentList{
			{Name: argName, Value: &ast.Value{Kind: ast.StringValue, Raw: value}},
		},
	}
}
