package schema

import (
	"github.com/opencrudlang/sdlc/diag"
)

// relEndpoint is the stage-3 (Pass A) collected form of one relation
// field: everything needed to pair it with its partner(s) by name.
type relEndpoint struct {
	model *Model
	field *Field
	raw   *relationRaw
}

func (e relEndpoint) hasField() bool      { return e.raw.fieldIdent != nil }
func (e relEndpoint) hasReferences() bool { return e.raw.referencesIdent != nil }
func (e relEndpoint) hasBoth() bool       { return e.hasField() && e.hasReferences() }
func (e relEndpoint) hasOne() bool        { return e.hasField() != e.hasReferences() }

// resolveRelations runs the two-pass relation resolver of spec.md §4.3
// over every model in models (keyed in modelOrder for determinism),
// cross-linking each relation field's AttrSet.Relation to its pair.
func resolveRelations(models map[string]*Model, modelOrder []string, ds *diag.Diagnostics) {
	groups := make(map[string][]relEndpoint)
	var groupOrder []string

	for _, mname := range modelOrder {
		m := models[mname]
		for _, f := range m.Fields {
			if !f.IsRelation() {
				continue
			}
			if f.relRaw == nil {
				ds.Addf(diag.RelationMissing, f.Span, "relation field %s.%s has no @relation attribute", m.Name, f.Name)
				continue
			}
			name := f.relRaw.name
			if _, ok := groups[name]; !ok {
				groupOrder = append(groupOrder, name)
			}
			groups[name] = append(groups[name], relEndpoint{model: m, field: f, raw: f.relRaw})
		}
	}

	for _, name := range groupOrder {
		endpoints := groups[name]
		switch {
		case len(endpoints) > 2:
			first := endpoints[0]
			for _, extra := range endpoints[2:] {
				ds.Add(diag.New(diag.DuplicateRelation, extra.field.Span,
					"relation %q appears on more than two endpoints", name).
					WithRelated(first.field.Span, "first endpoint declared here"))
			}
		case len(endpoints) == 2:
			pairTwo(name, endpoints[0], endpoints[1], ds)
		case len(endpoints) == 1:
			pairSelf(name, endpoints[0], ds)
		}
	}
}

func pairTwo(name string, a, b relEndpoint, ds *diag.Diagnostics) {
	switch {
	case a.hasBoth() && !b.hasBoth() && !b.hasOne():
		finishPair(name, a, b, ds)
	case b.hasBoth() && !a.hasBoth() && !a.hasOne():
		finishPair(name, b, a, ds)
	case a.hasOne() || b.hasOne():
		if a.hasOne() {
			ds.Addf(diag.PartialRelation, a.field.Span, "relation %q endpoint %s.%s supplies only one of field:/references:", name, a.model.Name, a.field.Name)
		}
		if b.hasOne() {
			ds.Addf(diag.PartialRelation, b.field.Span, "relation %q endpoint %s.%s supplies only one of field:/references:", name, b.model.Name, b.field.Name)
		}
	case a.hasBoth() && b.hasBoth():
		ds.Add(diag.New(diag.AmbiguousRelation, a.field.Span,
			"relation %q has both endpoints supplying field:/references:", name).
			WithRelated(b.field.Span, "other endpoint here"))
	default: // neither supplies anything
		ds.Add(diag.New(diag.RelationMissing, a.field.Span,
			"relation %q has no endpoint supplying field:/references:", name).
			WithRelated(b.field.Span, "other endpoint here"))
	}
}

func pairSelf(name string, e relEndpoint, ds *diag.Diagnostics) {
	selfRef := e.field.Type.RefName == e.model.Name
	if !selfRef {
		ds.Addf(diag.UnpairedRelation, e.field.Span, "relation %q has only one endpoint (%s.%s)", name, e.model.Name, e.field.Name)
		return
	}
	switch {
	case e.hasBoth():
		finishPair(name, e, e, ds)
	case e.hasOne():
		ds.Addf(diag.PartialRelation, e.field.Span, "self-relation %q on %s.%s supplies only one of field:/references:", name, e.model.Name, e.field.Name)
	default:
		ds.Addf(diag.UnpairedRelation, e.field.Span, "self-relation %q on %s.%s supplies neither field: nor references:", name, e.model.Name, e.field.Name)
	}
}

// finishPair resolves owner's field:/references: idents, validates type
// and arity compatibility (invariants 7, 9), derives cardinality
// (invariant 8), and cross-links both fields' AttrSet.Relation.
func finishPair(name string, owner, other relEndpoint, ds *diag.Diagnostics) {
	scalarField, ok := owner.model.Field(*owner.raw.fieldIdent)
	if !ok || scalarField.IsRelation() {
		ds.Addf(diag.ScalarFieldNotFound, owner.field.Span, "relation %q: %s is not a scalar field on %s", name, *owner.raw.fieldIdent, owner.model.Name)
		return
	}

	refModel := other.model
	referencesField, ok := refModel.Field(*owner.raw.referencesIdent)
	if !ok {
		ds.Addf(diag.ReferencedFieldNotFound, owner.field.Span, "relation %q: %s has no field %s", name, refModel.Name, *owner.raw.referencesIdent)
		return
	}
	if referencesField.IsRelation() || (!referencesField.Attrs.ID && !referencesField.Attrs.Unique) {
		ds.Addf(diag.ReferencedFieldNotScalar, owner.field.Span, "relation %q: %s.%s must be a scalar @id or @unique field", name, refModel.Name, referencesField.Name)
		return
	}

	if scalarField.Type != referencesField.Type {
		ds.Addf(diag.ScalarFieldTypeMismatch, scalarField.Span, "relation %q: %s.%s type %s does not match %s.%s type %s",
			name, owner.model.Name, scalarField.Name, scalarField.Type.Kind, refModel.Name, referencesField.Name, referencesField.Type.Kind)
		return
	}

	wantArity := owner.field.Arity
	if wantArity == Array {
		if scalarField.Arity != Array {
			ds.Addf(diag.ScalarFieldArityMismatch, scalarField.Span, "relation %q: array relation field %s requires array scalar field %s", name, owner.field.Name, scalarField.Name)
			return
		}
	} else if scalarField.Arity != wantArity {
		ds.Addf(diag.ScalarFieldArityMismatch, scalarField.Span, "relation %q: scalar field %s arity does not match relation field %s arity", name, scalarField.Name, owner.field.Name)
		return
	}

	cardinality := deriveCardinality(owner.field.Arity, other.field.Arity)

	pair := &RelationPair{
		Name: name,
		Left: Endpoint{
			Model: owner.model, Field: owner.field, Role: Owner,
			ScalarField: scalarField, ReferencesField: referencesField,
		},
		Right: Endpoint{
			Model: other.model, Field: other.field, Role: Referenced,
		},
		Cardinality: cardinality,
	}

	owner.field.Attrs.Relation = &RelationEndpointRef{Pair: pair, Role: Owner}
	other.field.Attrs.Relation = &RelationEndpointRef{Pair: pair, Role: Referenced}
}

func deriveCardinality(ownerArity, otherArity Arity) Cardinality {
	ownerArr := ownerArity == Array
	otherArr := otherArity == Array
	switch {
	case ownerArr && otherArr:
		return ManyToMany
	case ownerArr != otherArr:
		return OneToMany
	default:
		return OneToOne
	}
}
