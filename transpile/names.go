package transpile

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerCaser lower-cases a rune the way Unicode case folding defines it,
// not by assuming every identifier's first rune is a single-byte ASCII
// letter.
var lowerCaser = cases.Lower(language.English)

// names is the fixed family of derived identifiers for a model, matching
// the `PaginationNames`-style suffixing convention (Connection, Edge,
// WhereInput, …) generalized to the full OpenCRUD input family of
// spec.md §4.4.
type names struct {
	Type             string
	Edge             string
	Connection       string
	CreateInput      string
	CreateOneInline  string
	CreateManyInline string
	UpdateInput      string
	UpdateOneInline  string
	UpdateManyInline string
	UpdateManyInput  string
	UpsertInput      string
	WhereInput       string
	WhereUniqueInput string
	OrderByInput     string
	ConnectInput     string
	UpdateWithNested string
	UpsertWithNested string
}

func namesFor(model string) names {
	return names{
		Type:             model,
		Edge:             model + "Edge",
		Connection:       model + "Connection",
		CreateInput:      model + "CreateInput",
		CreateOneInline:  model + "CreateOneInlineInput",
		CreateManyInline: model + "CreateManyInlineInput",
		UpdateInput:      model + "UpdateInput",
		UpdateOneInline:  model + "UpdateOneInlineInput",
		UpdateManyInline: model + "UpdateManyInlineInput",
		UpdateManyInput:  model + "UpdateManyInput",
		UpsertInput:      model + "UpsertInput",
		WhereInput:       model + "WhereInput",
		WhereUniqueInput: model + "WhereUniqueInput",
		OrderByInput:     model + "OrderByInput",
		ConnectInput:     model + "ConnectInput",
		UpdateWithNested: model + "UpdateWithNestedWhereUniqueInput",
		UpsertWithNested: model + "UpsertWithNestedWhereUniqueInput",
	}
}

// lowerCamel renders name with a lowercase initial letter, e.g. `User`
// -> `user`, for singular root field names.
func lowerCamel(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return lowerCaser.String(string(r)) + name[size:]
}

// pluralLowerCamel pluralizes name (go-openapi/inflect) and lower-camels
// it, e.g. `Category` -> `categories`, for list root field names.
func pluralLowerCamel(name string) string {
	return lowerCamel(inflect.Pluralize(name))
}

// pluralConnectionField names the Connection-suffixed list root field,
// e.g. `Post` -> `postsConnection`.
func pluralConnectionField(name string) string {
	return pluralLowerCamel(name) + "Connection"
}

func createMutationName(model string) string { return "create" + model }
func updateMutationName(model string) string { return "update" + model }
func deleteMutationName(model string) string { return "delete" + model }
func upsertMutationName(model string) string { return "upsert" + model }

// updateManyMutationName and deleteManyMutationName use the model's
// plural form, capitalized, matching the root list field's shape but
// keeping the mutation verb capitalized too: `Post` -> `updateManyPostsConnection`.
func updateManyMutationName(model string) string {
	return fmt.Sprintf("updateMany%sConnection", inflect.Pluralize(model))
}

func deleteManyMutationName(model string) string {
	return fmt.Sprintf("deleteMany%sConnection", inflect.Pluralize(model))
}
