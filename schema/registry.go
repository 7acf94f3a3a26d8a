package schema

import (
	"fmt"

	"github.com/opencrudlang/sdlc/diag"
	"github.com/opencrudlang/sdlc/sdl"
)

// primitiveNames is the set of reserved built-in scalar type names; a
// model or enum may not reuse one (spec.md §3).
var primitiveNames = map[string]FieldTypeKind{
	"ShortStr": ShortStr,
	"LongStr":  LongStr,
	"Boolean":  Boolean,
	"DateTime": DateTime,
	"Int32":    Int32,
	"Int64":    Int64,
	"Float64":  Float64,
}

// registry is the stage-0 symbol table: every top-level declaration,
// keyed by name, with duplicates reported and dropped (first occurrence
// wins).
type registry struct {
	config *sdl.ConfigDecl
	models map[string]*sdl.ModelDecl
	enums  map[string]*sdl.EnumDecl
	// order preserves first-seen declaration order for models, used to
	// produce deterministic output later in the pipeline.
	modelOrder []string
	enumOrder  []string
}

func buildRegistry(f *sdl.File, ds *diag.Diagnostics) *registry {
	r := &registry{
		models: make(map[string]*sdl.ModelDecl),
		enums:  make(map[string]*sdl.EnumDecl),
	}

	for _, d := range f.Decls {
		switch decl := d.(type) {
		case *sdl.ConfigDecl:
			if r.config != nil {
				ds.Add(diag.New(diag.DuplicateDeclaration, decl.Span,
					"config block %q redeclared", decl.Name).
					WithRelated(r.config.Span, "first config block declared here"))
				continue
			}
			r.config = decl
		case *sdl.ModelDecl:
			if _, clash := primitiveNames[decl.Name]; clash {
				ds.Addf(diag.DuplicateDeclaration, decl.Span,
					"model %q cannot reuse a built-in type name", decl.Name)
				continue
			}
			if prev, ok := r.models[decl.Name]; ok {
				ds.Add(diag.New(diag.DuplicateDeclaration, decl.Span,
					"model %q redeclared", decl.Name).
					WithRelated(prev.Span, "first declared here"))
				continue
			}
			if prev, ok := r.enums[decl.Name]; ok {
				ds.Add(diag.New(diag.DuplicateDeclaration, decl.Span,
					"model %q collides with enum of the same name", decl.Name).
					WithRelated(prev.Span, "enum declared here"))
				continue
			}
			r.models[decl.Name] = decl
			r.modelOrder = append(r.modelOrder, decl.Name)
		case *sdl.EnumDecl:
			if _, clash := primitiveNames[decl.Name]; clash {
				ds.Addf(diag.DuplicateDeclaration, decl.Span,
					"enum %q cannot reuse a built-in type name", decl.Name)
				continue
			}
			if prev, ok := r.enums[decl.Name]; ok {
				ds.Add(diag.New(diag.DuplicateDeclaration, decl.Span,
					"enum %q redeclared", decl.Name).
					WithRelated(prev.Span, "first declared here"))
				continue
			}
			if prev, ok := r.models[decl.Name]; ok {
				ds.Add(diag.New(diag.DuplicateDeclaration, decl.Span,
					"enum %q collides with model of the same name", decl.Name).
					WithRelated(prev.Span, "model declared here"))
				continue
			}
			r.enums[decl.Name] = decl
			r.enumOrder = append(r.enumOrder, decl.Name)
		default:
			panic(fmt.Sprintf("schema: unhandled decl type %T", decl))
		}
	}

	if r.config == nil {
		ds.Addf(diag.MissingConfig, sdl.Span{}, "no config block declared")
	}

	for _, mdecl := range r.models {
		seen := make(map[string]*sdl.FieldDecl, len(mdecl.Fields))
		for _, fdecl := range mdecl.Fields {
			if prev, ok := seen[fdecl.Name]; ok {
				ds.Add(diag.New(diag.DuplicateField, fdecl.Span,
					"field %q redeclared on model %q", fdecl.Name, mdecl.Name).
					WithRelated(prev.Span, "first declared here"))
				continue
			}
			seen[fdecl.Name] = fdecl
		}
	}

	for _, edecl := range r.enums {
		seen := make(map[string]*sdl.EnumVariantDecl, len(edecl.Variants))
		for _, vdecl := range edecl.Variants {
			if prev, ok := seen[vdecl.Name]; ok {
				ds.Add(diag.New(diag.DuplicateEnumVariant, vdecl.Span,
					"variant %q redeclared on enum %q", vdecl.Name, edecl.Name).
					WithRelated(prev.Span, "first declared here"))
				continue
			}
			seen[vdecl.Name] = vdecl
		}
	}

	return r
}

// resolveTypeRef resolves a raw TypeRef against the registry, returning
// Invalid (with a diagnostic already added) if the name is unknown.
func (r *registry) resolveTypeRef(ref sdl.TypeRef, ds *diag.Diagnostics) FieldType {
	if kind, ok := primitiveNames[ref.Name]; ok {
		return FieldType{Kind: kind}
	}
	if _, ok := r.enums[ref.Name]; ok {
		return FieldType{Kind: EnumRef, RefName: ref.Name}
	}
	if _, ok := r.models[ref.Name]; ok {
		return FieldType{Kind: ModelRef, RefName: ref.Name}
	}
	ds.Addf(diag.UnknownType, ref.Span, "unknown type %q", ref.Name)
	return FieldType{Kind: Invalid}
}

func arityOf(ref sdl.TypeRef) Arity {
	switch {
	case ref.Array:
		return Array
	case ref.Optional:
		return Optional
	default:
		return Required
	}
}
