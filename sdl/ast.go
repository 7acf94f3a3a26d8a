package sdl

// File is the root of the raw syntax tree: a sequence of top-level
// declarations in source order.
type File struct {
	Decls []Decl
}

// Decl is a top-level declaration: *ConfigDecl, *ModelDecl, or *EnumDecl.
type Decl interface {
	declSpan() Span
	declName() string
}

// ConfigDecl is the `config <name> { ... }` block. Only one is meaningful
// to the analyzer (spec.md §3, Config is a singleton), but duplicates
// parse successfully so the analyzer can report DuplicateDeclaration.
type ConfigDecl struct {
	Name  string
	Props []Prop
	Span  Span
}

func (d *ConfigDecl) declSpan() Span   { return d.Span }
func (d *ConfigDecl) declName() string { return d.Name }

// Prop is a `key = value` entry inside a config block.
type Prop struct {
	Key   string
	Value Value
	Span  Span
}

// ModelDecl is `model Name { <field>+ }`.
type ModelDecl struct {
	Name   string
	Fields []*FieldDecl
	Span   Span
}

func (d *ModelDecl) declSpan() Span   { return d.Span }
func (d *ModelDecl) declName() string { return d.Name }

// EnumDecl is `enum Name { <VARIANT>+ }`.
type EnumDecl struct {
	Name     string
	Variants []*EnumVariantDecl
	Span     Span
}

func (d *EnumDecl) declSpan() Span   { return d.Span }
func (d *EnumDecl) declName() string { return d.Name }

// EnumVariantDecl is a single bareword variant inside an enum block.
type EnumVariantDecl struct {
	Name string
	Span Span
}

// FieldDecl is a single `ident TypeRef attrs?` line inside a model block.
type FieldDecl struct {
	Name  string
	Type  TypeRef
	Attrs []*AttrDecl
	Span  Span
}

// TypeRef is a raw, unresolved type reference: an identifier plus the `?`
// (optional) or `[]` (array) arity marker. Exactly one of Optional/Array
// may be set; neither set means Required.
type TypeRef struct {
	Name     string
	Optional bool
	Array    bool
	Span     Span
}

// AttrDecl is a raw `@name` or `@name(args)` attribute invocation.
type AttrDecl struct {
	Name string
	Args []Arg
	Span Span
}

// Arg is one argument to an attribute or call. Name is empty for a
// positional argument; non-empty for a `name: value` keyword argument.
type Arg struct {
	Name  string
	Value Value
	Span  Span
}

// Value is one of LiteralValue, IdentValue, or CallValue.
type Value interface {
	valueSpan() Span
}

// LiteralKind distinguishes the primitive kinds a LiteralValue may hold.
type LiteralKind int

const (
	// LitString is a double-quoted string literal.
	LitString LiteralKind = iota
	// LitInt is a decimal integer literal.
	LitInt
	// LitFloat is a decimal floating-point literal.
	LitFloat
	// LitBool is the bareword `true` or `false`.
	LitBool
)

// LiteralValue is a literal value: a string, integer, float, or boolean.
type LiteralValue struct {
	Kind LiteralKind
	Str  string
	Int  int64
	Flt  float64
	Bool bool
	Span Span
}

func (v LiteralValue) valueSpan() Span { return v.Span }

// IdentValue is a bare identifier used as an argument, e.g. an enum
// variant name passed to `@default(ADMIN)`.
type IdentValue struct {
	Name string
	Span Span
}

func (v IdentValue) valueSpan() Span { return v.Span }

// CallValue is a `name(args)` invocation used as an argument value, e.g.
// `auto()` or `now()` inside `@default(...)`.
type CallValue struct {
	Name string
	Args []Arg
	Span Span
}

func (v CallValue) valueSpan() Span { return v.Span }
