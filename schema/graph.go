package schema

// Graph is the fully resolved model graph: the output of semantic
// analysis (spec.md §4.5). It is read-only and safe for concurrent use
// by multiple transpiler goroutines once analysis has completed.
type Graph struct {
	config *Config
	models map[string]*Model
	enums  map[string]*EnumType

	modelOrder []string
	enumOrder  []string
}

// Config returns the resolved `config db { ... }` block, or nil if none
// was declared (a diagnostic will have been recorded in that case).
func (g *Graph) Config() *Config { return g.config }

// Model looks up a model by name.
func (g *Graph) Model(name string) (*Model, bool) {
	m, ok := g.models[name]
	return m, ok
}

// Models returns every model, in declaration order.
func (g *Graph) Models() []*Model {
	out := make([]*Model, 0, len(g.modelOrder))
	for _, name := range g.modelOrder {
		out = append(out, g.models[name])
	}
	return out
}

// Enum looks up an enum type by name.
func (g *Graph) Enum(name string) (*EnumType, bool) {
	e, ok := g.enums[name]
	return e, ok
}

// Enums returns every enum, in declaration order.
func (g *Graph) Enums() []*EnumType {
	out := make([]*EnumType, 0, len(g.enumOrder))
	for _, name := range g.enumOrder {
		out = append(out, g.enums[name])
	}
	return out
}
