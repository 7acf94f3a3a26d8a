package schema

import (
	"github.com/opencrudlang/sdlc/diag"
	"github.com/opencrudlang/sdlc/sdl"
)

// knownAttrs is the set of attribute names the SDL understands (spec.md
// §3). Anything else is UnknownAttribute.
var knownAttrs = map[string]bool{
	"id":       true,
	"unique":   true,
	"indexed":  true,
	"map":      true,
	"default":  true,
	"relation": true,
}

// resolvedAttrs is the stage-1 output for a single field: everything that
// can be decided from the raw attribute shapes alone, without knowing the
// field's resolved type yet.
type resolvedAttrs struct {
	attrs  AttrSet
	relRaw *relationRaw
}

// resolveAttrs walks a field's raw @-attributes, validating argument
// shapes and catching duplicates/unknowns, independent of the field's
// type (spec.md §4.2, stage 1).
func resolveAttrs(modelName string, fdecl *sdl.FieldDecl, ds *diag.Diagnostics) resolvedAttrs {
	var out resolvedAttrs
	var sawID, sawUnique, sawIndexed, sawMap, sawDefault, sawRelation *sdl.AttrDecl

	for _, a := range fdecl.Attrs {
		if !knownAttrs[a.Name] {
			ds.Addf(diag.UnknownAttribute, a.Span, "unknown attribute @%s on %s.%s", a.Name, modelName, fdecl.Name)
			continue
		}

		switch a.Name {
		case "id":
			if sawID != nil {
				ds.Add(diag.New(diag.DuplicateAttribute, a.Span, "@id repeated on %s.%s", modelName, fdecl.Name).
					WithRelated(sawID.Span, "first applied here"))
				continue
			}
			sawID = a
			out.attrs.ID = true
		case "unique":
			if sawUnique != nil {
				ds.Add(diag.New(diag.DuplicateAttribute, a.Span, "@unique repeated on %s.%s", modelName, fdecl.Name).
					WithRelated(sawUnique.Span, "first applied here"))
				continue
			}
			sawUnique = a
			out.attrs.Unique = true
		case "indexed":
			if sawIndexed != nil {
				ds.Add(diag.New(diag.DuplicateAttribute, a.Span, "@indexed repeated on %s.%s", modelName, fdecl.Name).
					WithRelated(sawIndexed.Span, "first applied here"))
				continue
			}
			sawIndexed = a
			out.attrs.Indexed = true
		case "map":
			if sawMap != nil {
				ds.Add(diag.New(diag.DuplicateAttribute, a.Span, "@map repeated on %s.%s", modelName, fdecl.Name).
					WithRelated(sawMap.Span, "first applied here"))
				continue
			}
			sawMap = a
			if name, ok := parseMapArg(a, ds); ok {
				out.attrs.MappedName = &name
			}
		case "default":
			if sawDefault != nil {
				ds.Add(diag.New(diag.DuplicateAttribute, a.Span, "@default repeated on %s.%s", modelName, fdecl.Name).
					WithRelated(sawDefault.Span, "first applied here"))
				continue
			}
			sawDefault = a
			out.attrs.Default = parseDefaultArg(a, ds)
		case "relation":
			if sawRelation != nil {
				ds.Add(diag.New(diag.DuplicateAttribute, a.Span, "@relation repeated on %s.%s", modelName, fdecl.Name).
					WithRelated(sawRelation.Span, "first applied here"))
				continue
			}
			sawRelation = a
			out.relRaw = parseRelationArg(a, ds)
		}
	}

	return out
}

func parseMapArg(a *sdl.AttrDecl, ds *diag.Diagnostics) (string, bool) {
	if len(a.Args) != 1 || a.Args[0].Name != "name" {
		ds.Addf(diag.InvalidAttributeArg, a.Span, "@map requires a single `name:` argument")
		return "", false
	}
	lit, ok := a.Args[0].Value.(sdl.LiteralValue)
	if !ok || lit.Kind != sdl.LitString {
		ds.Addf(diag.InvalidAttributeArg, a.Args[0].Span, "@map name: must be a string literal")
		return "", false
	}
	return lit.Str, true
}

// parseDefaultArg accepts either a single positional literal, the bare
// ident of an enum variant, or a zero-arg call (`auto()`/`now()`).
func parseDefaultArg(a *sdl.AttrDecl, ds *diag.Diagnostics) *DefaultExpr {
	if len(a.Args) != 1 || a.Args[0].Name != "" {
		ds.Addf(diag.InvalidAttributeArg, a.Span, "@default requires exactly one positional argument")
		return nil
	}
	switch v := a.Args[0].Value.(type) {
	case sdl.LiteralValue:
		return &DefaultExpr{Kind: DefaultLiteral, Literal: v}
	case sdl.IdentValue:
		return &DefaultExpr{Kind: DefaultEnumVariant, Variant: v.Name}
	case sdl.CallValue:
		if len(v.Args) != 0 {
			ds.Addf(diag.InvalidAttributeArg, v.Span, "@default(%s(...)) takes no arguments", v.Name)
			return nil
		}
		switch v.Name {
		case "auto":
			return &DefaultExpr{Kind: DefaultAuto}
		case "now":
			return &DefaultExpr{Kind: DefaultNow}
		default:
			ds.Addf(diag.UnknownDefaultFunction, v.Span, "unknown default function %q", v.Name)
			return nil
		}
	default:
		ds.Addf(diag.InvalidAttributeArg, a.Args[0].Span, "unsupported @default argument")
		return nil
	}
}

// parseRelationArg accepts `@relation(name: "...")`, optionally with
// `field:` and `references:` identifier arguments.
func parseRelationArg(a *sdl.AttrDecl, ds *diag.Diagnostics) *relationRaw {
	out := &relationRaw{span: a.Span}
	var sawName bool

	for _, arg := range a.Args {
		switch arg.Name {
		case "name":
			lit, ok := arg.Value.(sdl.LiteralValue)
			if !ok || lit.Kind != sdl.LitString {
				ds.Addf(diag.InvalidAttributeArg, arg.Span, "@relation name: must be a string literal")
				continue
			}
			sawName = true
			out.name = lit.Str
		case "field":
			ident, ok := arg.Value.(sdl.IdentValue)
			if !ok {
				ds.Addf(diag.InvalidAttributeArg, arg.Span, "@relation field: must be an identifier")
				continue
			}
			name := ident.Name
			out.fieldIdent = &name
		case "references":
			ident, ok := arg.Value.(sdl.IdentValue)
			if !ok {
				ds.Addf(diag.InvalidAttributeArg, arg.Span, "@relation references: must be an identifier")
				continue
			}
			name := ident.Name
			out.referencesIdent = &name
		default:
			ds.Addf(diag.UnknownAttributeArg, arg.Span, "unknown @relation argument %q", arg.Name)
		}
	}

	if !sawName {
		ds.Addf(diag.InvalidAttributeArg, a.Span, "@relation requires a name: argument")
	}
	return out
}
