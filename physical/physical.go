// Package physical derives a concrete table/column/index/foreign-key
// layout from a resolved *schema.Graph: the physical counterpart to the
// GraphQL schema transpile produces, consumed by a storage back-end
// this module does not implement (spec.md §1, SPEC_FULL.md §4).
//
// Deriving is a single from-graph snapshot, never a diff between two
// schema versions — schema migration is an explicit Non-goal.
package physical

import (
	atlas "ariga.io/atlas/sql/schema"

	"github.com/opencrudlang/sdlc/schema"
)

// DeriveSchema builds an atlas sql/schema.Schema named schemaName from
// every model in g, using the column-type table for provider (case
// insensitive; unrecognized providers fall back to the sqlite table,
// see types.go).
func DeriveSchema(g *schema.Graph, schemaName, provider string) *atlas.Schema {
	types := typeTableFor(provider)

	out := &atlas.Schema{Name: schemaName}
	tables := make(map[string]*atlas.Table, len(g.Models()))
	columns := make(map[string]map[string]*atlas.Column, len(g.Models()))

	for _, m := range g.Models() {
		t, cols := buildTable(m, g, types)
		t.Schema = out
		tables[m.Name] = t
		columns[m.Name] = cols
		out.Tables = append(out.Tables, t)
	}

	for _, m := range g.Models() {
		addForeignKeys(m, tables, columns)
	}

	return out
}

// tableName renders a model's SQL table name: the model name unchanged.
// Column names, unlike table names, honor a field's @map override (see
// columnName).
func tableName(m *schema.Model) string {
	return m.Name
}

func columnName(f *schema.Field) string {
	if f.Attrs.MappedName != nil {
		return *f.Attrs.MappedName
	}
	return f.Name
}

func buildTable(m *schema.Model, g *schema.Graph, types typeTable) (*atlas.Table, map[string]*atlas.Column) {
	t := &atlas.Table{Name: tableName(m)}
	cols := make(map[string]*atlas.Column, len(m.Fields))

	for _, f := range m.ScalarFields() {
		c := buildColumn(f, g, types)
		t.Columns = append(t.Columns, c)
		cols[f.Name] = c
	}

	idCol := cols[m.IDField().Name]
	t.PrimaryKey = &atlas.Index{
		Name:  "pk_" + t.Name,
		Table: t,
		Parts: []*atlas.IndexPart{{C: idCol}},
	}

	for _, f := range m.ScalarFields() {
		if f == m.IDField() {
			continue
		}
		if !f.Attrs.Unique && !f.Attrs.Indexed {
			continue
		}
		t.Indexes = append(t.Indexes, &atlas.Index{
			Name:   indexName(t.Name, f),
			Unique: f.Attrs.Unique,
			Table:  t,
			Parts:  []*atlas.IndexPart{{C: cols[f.Name]}},
		})
	}

	return t, cols
}

func indexName(table string, f *schema.Field) string {
	if f.Attrs.Unique {
		return "uq_" + table + "_" + f.Name
	}
	return "idx_" + table + "_" + f.Name
}

func buildColumn(f *schema.Field, g *schema.Graph, types typeTable) *atlas.Column {
	c := &atlas.Column{
		Name: columnName(f),
		Type: &atlas.ColumnType{
			Type: types.columnType(f, g),
			Null: f.Arity == schema.Optional,
		},
	}
	return c
}

// addForeignKeys adds one atlas.ForeignKey per relation this model owns
// (the side holding `field:`/`references:`). Array-arity scalar FK
// columns are skipped: a single-column SQL foreign key cannot reference
// a set of rows, and the array's multi-value storage shape is
// provider-specific and out of scope here.
func addForeignKeys(m *schema.Model, tables map[string]*atlas.Table, columns map[string]map[string]*atlas.Column) {
	t := tables[m.Name]

	for _, f := range m.RelationFields() {
		ref := f.Attrs.Relation
		if ref == nil {
			continue
		}
		// The Left endpoint always carries ScalarField/ReferencesField
		// (finishPair's convention); only build the foreign key once,
		// when f is that endpoint's field. For a self-relation, Left
		// and Right share the same field, so this still fires exactly
		// once per pair.
		owner := ref.Pair.Left
		if owner.Field != f {
			continue
		}
		if owner.ScalarField.Arity == schema.Array {
			continue
		}

		other := ref.Pair.Other(f)
		otherTable := tables[other.Model.Name]
		otherCol := columns[other.Model.Name][owner.ReferencesField.Name]
		ownCol := columns[m.Name][owner.ScalarField.Name]
		if otherTable == nil || otherCol == nil || ownCol == nil {
			continue
		}

		t.ForeignKeys = append(t.ForeignKeys, &atlas.ForeignKey{
			Symbol:     "fk_" + t.Name + "_" + ref.Pair.Name,
			Table:      t,
			Columns:    []*atlas.Column{ownCol},
			RefTable:   otherTable,
			RefColumns: []*atlas.Column{otherCol},
			OnUpdate:   atlas.NoAction,
			OnDelete:   atlas.NoAction,
		})
	}
}
