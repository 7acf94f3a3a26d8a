// Package schema turns a parsed sdl.File into a resolved, invariant-bearing
// model graph: the registry/attribute/field-type/relation resolution
// passes described in spec.md §4, and the read-only Graph facade of §4.5.
package schema

import "github.com/opencrudlang/sdlc/sdl"

// FieldTypeKind is the resolved, named type of a field (spec.md §3).
type FieldTypeKind int

const (
	// Invalid marks a field whose type could not be resolved; it only
	// ever appears on a Field belonging to a Graph that also carries at
	// least one Error-severity diagnostic, and such a Graph is never
	// handed to the transpiler.
	Invalid FieldTypeKind = iota
	ShortStr
	LongStr
	Boolean
	DateTime
	Int32
	Int64
	Float64
	EnumRef
	ModelRef
)

// String names the kind, matching its SDL surface spelling for primitives.
func (k FieldTypeKind) String() string {
	switch k {
	case ShortStr:
		return "ShortStr"
	case LongStr:
		return "LongStr"
	case Boolean:
		return "Boolean"
	case DateTime:
		return "DateTime"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Float64:
		return "Float64"
	case EnumRef:
		return "EnumRef"
	case ModelRef:
		return "ModelRef"
	default:
		return "Invalid"
	}
}

// IsPrimitive reports whether k is one of the seven built-in scalar kinds
// (excludes EnumRef, ModelRef, and Invalid).
func (k FieldTypeKind) IsPrimitive() bool {
	switch k {
	case ShortStr, LongStr, Boolean, DateTime, Int32, Int64, Float64:
		return true
	default:
		return false
	}
}

// FieldType is a field's resolved, named type: one of the seven built-in
// scalars, a reference to a declared enum, or a reference to another
// model. RefName is set only for EnumRef/ModelRef.
type FieldType struct {
	Kind    FieldTypeKind
	RefName string
}

// Arity is a field's cardinality marker. Array implies its elements are
// required (spec.md §3: "Array of optional is not representable").
type Arity int

const (
	Required Arity = iota
	Optional
	Array
)

func (a Arity) String() string {
	switch a {
	case Optional:
		return "Optional"
	case Array:
		return "Array"
	default:
		return "Required"
	}
}

// DefaultKind distinguishes the shapes a field default may take.
type DefaultKind int

const (
	DefaultNone DefaultKind = iota
	DefaultLiteral
	DefaultAuto
	DefaultNow
	DefaultEnumVariant
)

// DefaultExpr is a field's resolved `@default(...)` value.
type DefaultExpr struct {
	Kind    DefaultKind
	Literal sdl.LiteralValue // valid when Kind == DefaultLiteral
	Variant string           // valid when Kind == DefaultEnumVariant
}

// Role distinguishes the two ends of a resolved relation pair.
type Role int

const (
	Owner Role = iota
	Referenced
)

func (r Role) String() string {
	if r == Referenced {
		return "Referenced"
	}
	return "Owner"
}

// Cardinality is the derived multiplicity of a relation pair (spec.md §3
// invariant 8).
type Cardinality int

const (
	OneToOne Cardinality = iota
	OneToMany
	ManyToMany
)

func (c Cardinality) String() string {
	switch c {
	case OneToMany:
		return "1-N"
	case ManyToMany:
		return "N-N"
	default:
		return "1-1"
	}
}

// Endpoint is one side of a resolved RelationPair.
type Endpoint struct {
	Model *Model
	Field *Field
	Role  Role
	// ScalarField and ReferencesField are set only on the Owner endpoint:
	// ScalarField is the owner's own foreign-key-bearing scalar field;
	// ReferencesField is the field on the *other* endpoint's model that
	// ScalarField's value(s) point to.
	ScalarField     *Field
	ReferencesField *Field
}

// RelationPair is a fully resolved relation: two endpoints (possibly the
// same field, for a self-relation expressed by a single SDL endpoint —
// see relations.go) plus the derived cardinality.
type RelationPair struct {
	Name        string
	Left, Right Endpoint
	Cardinality Cardinality
}

// Other returns the endpoint of p that is not e (by field identity). For
// a self-relation where Left and Right share the same field, it returns e
// itself.
func (p *RelationPair) Other(e *Field) Endpoint {
	if p.Left.Field == e {
		return p.Right
	}
	return p.Left
}

// AttrSet holds a field's resolved attributes (spec.md §3).
type AttrSet struct {
	ID      bool
	Unique  bool
	Indexed bool
	Default *DefaultExpr
	// MappedName is the `@map(name: ...)` override, or nil if absent.
	MappedName *string
	// Relation is non-nil only for relation fields (Type.Kind == ModelRef)
	// once the relation resolver has paired them; nil on a field that
	// failed to pair (the compilation will have a fatal diagnostic).
	Relation *RelationEndpointRef
}

// RelationEndpointRef links a relation field back to its resolved pair
// and the field's own role within it.
type RelationEndpointRef struct {
	Pair *RelationPair
	Role Role
}

// Field is a fully resolved field on a Model.
type Field struct {
	Name  string
	Type  FieldType
	Arity Arity
	Attrs AttrSet
	Span  sdl.Span

	model *Model
	// relRaw carries the unresolved @relation(...) arguments from
	// attribute resolution through to the relation resolver; it is nil
	// once resolution completes (or if the field never had @relation).
	relRaw *relationRaw
}

// Model returns the model this field belongs to.
func (f *Field) Model() *Model { return f.model }

// IsRelation reports whether f is a relation field (its type refers to
// another model, rather than a scalar primitive or enum).
func (f *Field) IsRelation() bool { return f.Type.Kind == ModelRef }

// relationRaw is the not-yet-paired form of a `@relation(...)` attribute.
type relationRaw struct {
	name           string
	fieldIdent     *string
	referencesIdent *string
	span           sdl.Span
}

// Model is a fully resolved model declaration.
type Model struct {
	Name   string
	Fields []*Field
	Span   sdl.Span

	fields  map[string]*Field
	idField *Field
}

// Field looks up a field by name.
func (m *Model) Field(name string) (*Field, bool) {
	f, ok := m.fields[name]
	return f, ok
}

// IDField returns the model's single id field. Every model that passed
// analysis has exactly one (spec.md §3 invariant 2).
func (m *Model) IDField() *Field { return m.idField }

// ScalarFields returns the model's non-relation fields, in declaration
// order.
func (m *Model) ScalarFields() []*Field {
	out := make([]*Field, 0, len(m.Fields))
	for _, f := range m.Fields {
		if !f.IsRelation() {
			out = append(out, f)
		}
	}
	return out
}

// RelationFields returns the model's relation fields, in declaration
// order.
func (m *Model) RelationFields() []*Field {
	out := make([]*Field, 0, len(m.Fields))
	for _, f := range m.Fields {
		if f.IsRelation() {
			out = append(out, f)
		}
	}
	return out
}

// UniqueFields returns the model's fields carrying @unique (not
// including the id field), in declaration order.
func (m *Model) UniqueFields() []*Field {
	out := make([]*Field, 0, len(m.Fields))
	for _, f := range m.Fields {
		if f.Attrs.Unique && !f.Attrs.ID {
			out = append(out, f)
		}
	}
	return out
}

// Relations returns the resolved RelationPair for every relation field on
// m, in field declaration order. A pair appears once per relation field
// that belongs to m, so a self-relation's single field yields one entry.
func (m *Model) Relations() []*RelationPair {
	out := make([]*RelationPair, 0, len(m.Fields))
	for _, f := range m.Fields {
		if f.IsRelation() && f.Attrs.Relation != nil {
			out = append(out, f.Attrs.Relation.Pair)
		}
	}
	return out
}

// EnumType is a fully resolved enum declaration.
type EnumType struct {
	Name     string
	Variants []string
	Span     sdl.Span
}

// HasVariant reports whether name is a declared variant of e.
func (e *EnumType) HasVariant(name string) bool {
	for _, v := range e.Variants {
		if v == name {
			return true
		}
	}
	return false
}

// Config is the resolved `config db { ... }` block.
type Config struct {
	Provider string
}
