package schema

import (
	"github.com/opencrudlang/sdlc/diag"
	"github.com/opencrudlang/sdlc/sdl"
)

// Analyze runs the full semantic analysis pipeline of spec.md §4 over a
// parsed file: registry construction, attribute resolution, field
// typing, relation resolution, and graph assembly. It never panics on
// malformed input; every problem becomes a diagnostic.
//
// The returned Graph is always non-nil and safe to inspect, but callers
// must check diagnostics.HasErrors() before handing it to the
// transpiler (spec.md §7): a Graph built from input with fatal
// diagnostics may contain Invalid field types or unpaired relations.
func Analyze(f *sdl.File) (*Graph, diag.Diagnostics) {
	var ds diag.Diagnostics
	reg := buildRegistry(f, &ds)

	models := make(map[string]*Model, len(reg.modelOrder))
	for _, mname := range reg.modelOrder {
		mdecl := reg.models[mname]
		models[mname] = buildModel(reg, mdecl, &ds)
	}

	enums := make(map[string]*EnumType, len(reg.enumOrder))
	for _, ename := range reg.enumOrder {
		edecl := reg.enums[ename]
		enums[ename] = buildEnum(edecl)
	}

	resolveRelations(models, reg.modelOrder, &ds)

	for _, mname := range reg.modelOrder {
		validateIDCount(models[mname], &ds)
	}

	var cfg *Config
	if reg.config != nil {
		cfg = buildConfig(reg.config, &ds)
	}

	ds.Sort()

	return &Graph{
		config:     cfg,
		models:     models,
		enums:      enums,
		modelOrder: append([]string(nil), reg.modelOrder...),
		enumOrder:  append([]string(nil), reg.enumOrder...),
	}, ds
}

func buildModel(reg *registry, mdecl *sdl.ModelDecl, ds *diag.Diagnostics) *Model {
	m := &Model{
		Name:   mdecl.Name,
		Span:   mdecl.Span,
		fields: make(map[string]*Field, len(mdecl.Fields)),
	}

	seen := make(map[string]bool, len(mdecl.Fields))
	for _, fdecl := range mdecl.Fields {
		if seen[fdecl.Name] {
			// Already reported as DuplicateField in buildRegistry; skip
			// building a second Field value for the same name so the
			// model's field map keeps the first declaration.
			continue
		}
		seen[fdecl.Name] = true

		ra := resolveAttrs(mdecl.Name, fdecl, ds)
		f := typeField(reg, mdecl.Name, fdecl, ra, ds)
		f.model = m
		m.Fields = append(m.Fields, f)
		m.fields[f.Name] = f
	}

	return m
}

func validateIDCount(m *Model, ds *diag.Diagnostics) {
	var idFields []*Field
	for _, f := range m.Fields {
		if f.Attrs.ID {
			idFields = append(idFields, f)
		}
	}
	switch len(idFields) {
	case 0:
		ds.Addf(diag.MissingId, m.Span, "model %s has no @id field", m.Name)
	case 1:
		m.idField = idFields[0]
	default:
		d := diag.New(diag.MultipleId, idFields[0].Span, "model %s has more than one @id field", m.Name)
		for _, extra := range idFields[1:] {
			d = d.WithRelated(extra.Span, "also marked @id here")
		}
		ds.Add(d)
		m.idField = idFields[0]
	}
}

func buildEnum(edecl *sdl.EnumDecl) *EnumType {
	e := &EnumType{Name: edecl.Name, Span: edecl.Span}
	for _, v := range edecl.Variants {
		e.Variants = append(e.Variants, v.Name)
	}
	return e
}

func buildConfig(cdecl *sdl.ConfigDecl, ds *diag.Diagnostics) *Config {
	cfg := &Config{}
	for _, p := range cdecl.Props {
		if p.Key != "provider" {
			continue
		}
		lit, ok := p.Value.(sdl.LiteralValue)
		if !ok || lit.Kind != sdl.LitString {
			ds.Addf(diag.InvalidAttributeArg, p.Span, "config provider must be a string literal")
			continue
		}
		cfg.Provider = lit.Str
	}
	return cfg
}
