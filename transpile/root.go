package transpile

import (
	"github.com/opencrudlang/sdlc/schema"
	"github.com/vektah/gqlparser/v2/ast"
)

// rootQuery builds the single `type Query` definition: one `node` field,
// plus per-model singular/list/connection fields (spec.md §4.4 "Root
// Query").
func rootQuery(models []*schema.Model) *ast.Definition {
	def := &ast.Definition{Kind: ast.Object, Name: "Query"}
	def.Fields = append(def.Fields, fieldWithArgs("node", named("Node"), ast.ArgumentDefinitionList{arg("id", nonNull("ID"))}))

	for _, m := range models {
		n := namesFor(m.Name)
		def.Fields = append(def.Fields,
			fieldWithArgs(lowerCamel(m.Name), named(m.Name), ast.ArgumentDefinitionList{
				arg("where", nonNull(n.WhereUniqueInput)),
			}),
			fieldWithArgs(pluralLowerCamel(m.Name), listOf(m.Name), paginationArgs(n.WhereInput, n.OrderByInput)),
			fieldWithArgs(pluralConnectionField(m.Name), nonNull(n.Connection), paginationArgs(n.WhereInput, n.OrderByInput)),
		)
	}

	return def
}

// rootMutation builds the single `type Mutation` definition: per-model
// create/update/delete/upsert, plus the two bulk connection mutations
// (spec.md §4.4 "Root Mutation").
func rootMutation(models []*schema.Model) *ast.Definition {
	def := &ast.Definition{Kind: ast.Object, Name: "Mutation"}

	for _, m := range models {
		n := namesFor(m.Name)

		def.Fields = append(def.Fields,
			fieldWithArgs(createMutationName(m.Name), nonNull(m.Name), ast.ArgumentDefinitionList{
				arg("data", nonNull(n.CreateInput)),
			}),
			fieldWithArgs(updateMutationName(m.Name), named(m.Name), ast.ArgumentDefinitionList{
				arg("where", nonNull(n.WhereUniqueInput)),
				arg("data", nonNull(n.UpdateInput)),
			}),
			fieldWithArgs(deleteMutationName(m.Name), named(m.Name), ast.ArgumentDefinitionList{
				arg("where", nonNull(n.WhereUniqueInput)),
			}),
			fieldWithArgs(upsertMutationName(m.Name), named(m.Name), ast.ArgumentDefinitionList{
				arg("where", nonNull(n.WhereUniqueInput)),
				arg("data", nonNull(n.UpsertInput)),
			}),
		)

		if updateManyInput(m) != nil {
			args := append(ast.ArgumentDefinitionList{
				arg("where", nonNull(n.WhereInput)),
				arg("data", nonNull(n.UpdateManyInput)),
			}, paginationArgs(n.WhereInput, n.OrderByInput)...)
			def.Fields = append(def.Fields, fieldWithArgs(updateManyMutationName(m.Name), nonNull(n.Connection), args))
		}

		deleteArgs := append(ast.ArgumentDefinitionList{
			arg("where", nonNull(n.WhereInput)),
		}, paginationArgs(n.WhereInput, n.OrderByInput)...)
		def.Fields = append(def.Fields, fieldWithArgs(deleteManyMutationName(m.Name), nonNull(n.Connection), deleteArgs))
	}

	return def
}
