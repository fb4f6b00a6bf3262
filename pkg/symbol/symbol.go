package symbol

// Definition is an authored symbol: a named tree of shapes plus the data
// needed to compose it with other symbols.
//
// A Definition is treated as immutable once built. Renderers and lookups
// only read from it.
type Definition struct {
	Name   string    `json:"name" yaml:"name" toml:"name" bson:"name"`
	BBox   BBox      `json:"bbox" yaml:"bbox" toml:"bbox" bson:"bbox"`
	Layers []Element `json:"layers" yaml:"layers" toml:"layers" bson:"layers"`
	Specs  Specs     `json:"specs" yaml:"specs,omitempty" toml:"specs,omitempty" bson:"specs,omitempty"`
	Meta   Metadata  `json:"meta,omitempty" yaml:"meta,omitempty" toml:"meta,omitempty" bson:"meta,omitempty"`
}

// BBox is the axis-aligned bounding box of a symbol in its own coordinates.
type BBox struct {
	X      float64 `json:"x" yaml:"x" toml:"x" bson:"x"`
	Y      float64 `json:"y" yaml:"y" toml:"y" bson:"y"`
	Width  float64 `json:"width" yaml:"width" toml:"width" bson:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height" bson:"height"`
}

// Metadata holds arbitrary authoring data attached to a symbol.
// Its contents are not interpreted by this module.
type Metadata map[string]any

// HasSpecs reports whether the symbol declares attachment point data.
func (d *Definition) HasSpecs() bool {
	return d.Specs != nil
}

// ElementCount returns the total number of elements in the layer tree.
func (d *Definition) ElementCount() int {
	n := 0
	d.Walk(func(int, Element) { n++ })
	return n
}

// Walk calls fn for every element in depth-first, document order.
// depth is 0 for top-level layers.
func (d *Definition) Walk(fn func(depth int, el Element)) {
	var walk func(els []Element, depth int)
	walk = func(els []Element, depth int) {
		for _, el := range els {
			fn(depth, el)
			walk(el.Children, depth+1)
		}
	}
	walk(d.Layers, 0)
}
