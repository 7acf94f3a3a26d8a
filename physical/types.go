package physical

import (
	"strings"

	atlas "ariga.io/atlas/sql/schema"

	// Blank-imported so database/sql has the driver registered once a
	// caller opens a DSN for the provider DeriveSchema resolved a type
	// table for. physical itself never opens a connection (storage
	// back-end execution is a Non-goal); it only needs the driver name
	// to exist in the database/sql registry for callers that do.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/opencrudlang/sdlc/schema"
)

// typeTable maps a resolved field to the atlas column Type the target
// provider uses for it.
type typeTable struct {
	driverName string
	columnType func(f *schema.Field, g *schema.Graph) atlas.Type
}

// typeTableFor resolves the column-type table for a Config.Provider
// value. Recognized providers get their native SQL type names; anything
// else (e.g. "foundationDB" — a document store, not a SQL dialect) falls
// back to the sqlite table, the closest the pack's driver set gets to a
// provider-neutral embedded default.
func typeTableFor(provider string) typeTable {
	switch strings.ToLower(provider) {
	case "mysql":
		return typeTable{driverName: "mysql", columnType: mysqlType}
	case "postgres", "postgresql":
		return typeTable{driverName: "postgres", columnType: postgresType}
	default:
		return typeTable{driverName: "sqlite", columnType: sqliteType}
	}
}

// DriverName returns the database/sql driver name registered for
// provider by this package's blank imports, for callers that need to
// open a connection against the derived schema.
func DriverName(provider string) string {
	return typeTableFor(provider).driverName
}

func enumValues(f *schema.Field, g *schema.Graph) []string {
	e, ok := g.Enum(f.Type.RefName)
	if !ok {
		return nil
	}
	return e.Variants
}

func mysqlType(f *schema.Field, g *schema.Graph) atlas.Type {
	switch f.Type.Kind {
	case schema.ShortStr:
		return &atlas.StringType{T: "varchar(255)"}
	case schema.LongStr:
		return &atlas.StringType{T: "text"}
	case schema.Boolean:
		return &atlas.BoolType{T: "bool"}
	case schema.DateTime:
		return &atlas.TimeType{T: "datetime"}
	case schema.Int32:
		return &atlas.IntegerType{T: "int"}
	case schema.Int64:
		return &atlas.IntegerType{T: "bigint"}
	case schema.Float64:
		return &atlas.FloatType{T: "double"}
	case schema.EnumRef:
		return &atlas.EnumType{T: "enum", Values: enumValues(f, g)}
	default:
		return &atlas.StringType{T: "text"}
	}
}

func postgresType(f *schema.Field, g *schema.Graph) atlas.Type {
	switch f.Type.Kind {
	case schema.ShortStr:
		return &atlas.StringType{T: "character varying(255)"}
	case schema.LongStr:
		return &atlas.StringType{T: "text"}
	case schema.Boolean:
		return &atlas.BoolType{T: "boolean"}
	case schema.DateTime:
		return &atlas.TimeType{T: "timestamptz"}
	case schema.Int32:
		return &atlas.IntegerType{T: "integer"}
	case schema.Int64:
		return &atlas.IntegerType{T: "bigint"}
	case schema.Float64:
		return &atlas.FloatType{T: "double precision"}
	case schema.EnumRef:
		return &atlas.EnumType{T: "enum", Values: enumValues(f, g)}
	default:
		return &atlas.StringType{T: "text"}
	}
}

func sqliteType(f *schema.Field, g *schema.Graph) atlas.Type {
	switch f.Type.Kind {
	case schema.ShortStr, schema.LongStr:
		return &atlas.StringType{T: "text"}
	case schema.Boolean:
		return &atlas.BoolType{T: "bool"}
	case schema.DateTime:
		return &atlas.TimeType{T: "datetime"}
	case schema.Int32, schema.Int64:
		return &atlas.IntegerType{T: "integer"}
	case schema.Float64:
		return &atlas.FloatType{T: "real"}
	case schema.EnumRef:
		// SQLite has no native enum type; sqlc/atlas model it as a
		// CHECK-constrained text column, but emitting the CHECK clause
		// itself is storage-engine wiring this package doesn't do.
		return &atlas.StringType{T: "text"}
	default:
		return &atlas.StringType{T: "text"}
	}
}
