package schema

import (
	"github.com/opencrudlang/sdlc/diag"
	"github.com/opencrudlang/sdlc/sdl"
)

// typeField resolves a single field's TypeRef against the registry and
// validates the type-dependent attribute invariants (spec.md §3,
// invariants 3-5): unique/indexed/default forbidden on relation fields,
// the id field must be a primitive type and ShortStr when defaulted with
// auto(), a literal default must match the field's type, and an
// enum-variant default must name a declared variant of that enum.
//
// It does not touch @relation; that is left to the relation resolver,
// which needs every field of every model resolved first.
func typeField(r *registry, modelName string, fdecl *sdl.FieldDecl, ra resolvedAttrs, ds *diag.Diagnostics) *Field {
	ftype := r.resolveTypeRef(fdecl.Type, ds)
	arity := arityOf(fdecl.Type)

	f := &Field{
		Name:   fdecl.Name,
		Type:   ftype,
		Arity:  arity,
		Attrs:  ra.attrs,
		Span:   fdecl.Span,
		relRaw: ra.relRaw,
	}

	isRelation := ftype.Kind == ModelRef

	if isRelation {
		if f.Attrs.Unique {
			ds.Addf(diag.UniqueOnRelation, fdecl.Span, "@unique is not allowed on relation field %s.%s", modelName, fdecl.Name)
		}
		if f.Attrs.Indexed {
			ds.Addf(diag.IndexedOnRelation, fdecl.Span, "@indexed is not allowed on relation field %s.%s", modelName, fdecl.Name)
		}
		if f.Attrs.Default != nil {
			ds.Addf(diag.InvalidDefaultForType, fdecl.Span, "@default is not allowed on relation field %s.%s", modelName, fdecl.Name)
		}
		return f
	}

	if f.Attrs.ID && !ftype.Kind.IsPrimitive() {
		ds.Addf(diag.InvalidIdType, fdecl.Span, "id field %s.%s must have a primitive type, got %s", modelName, fdecl.Name, ftype.Kind)
	}

	if def := f.Attrs.Default; def != nil {
		validateDefault(modelName, fdecl.Name, f, def, r, ds)
	}

	return f
}

func validateDefault(modelName, fieldName string, f *Field, def *DefaultExpr, r *registry, ds *diag.Diagnostics) {
	switch def.Kind {
	case DefaultAuto:
		if f.Type.Kind != ShortStr {
			ds.Addf(diag.InvalidDefaultForType, f.Span, "@default(auto()) requires ShortStr, %s.%s has %s", modelName, fieldName, f.Type.Kind)
		}
	case DefaultNow:
		if f.Type.Kind != DateTime {
			ds.Addf(diag.InvalidDefaultForType, f.Span, "@default(now()) requires DateTime, %s.%s has %s", modelName, fieldName, f.Type.Kind)
		}
	case DefaultEnumVariant:
		if f.Type.Kind != EnumRef {
			ds.Addf(diag.InvalidDefaultForType, f.Span, "@default(%s) requires an enum type, %s.%s has %s", def.Variant, modelName, fieldName, f.Type.Kind)
			return
		}
		edecl, ok := r.enums[f.Type.RefName]
		if !ok {
			return // UnknownType already reported when the type was resolved
		}
		found := false
		for _, v := range edecl.Variants {
			if v.Name == def.Variant {
				found = true
				break
			}
		}
		if !found {
			ds.Addf(diag.InvalidEnumDefault, f.Span, "%q is not a variant of enum %s", def.Variant, f.Type.RefName)
		}
	case DefaultLiteral:
		if !literalMatchesType(def.Literal, f.Type.Kind) {
			ds.Addf(diag.InvalidDefaultForType, f.Span, "default literal does not match type %s of %s.%s", f.Type.Kind, modelName, fieldName)
		}
	}
}

func literalMatchesType(lit sdl.LiteralValue, kind FieldTypeKind) bool {
	switch kind {
	case ShortStr, LongStr, DateTime:
		return lit.Kind == sdl.LitString
	case Boolean:
		return lit.Kind == sdl.LitBool
	case Int32, Int64:
		return lit.Kind == sdl.LitInt
	case Float64:
		return lit.Kind == sdl.LitFloat || lit.Kind == sdl.LitInt
	default:
		return false
	}
}
