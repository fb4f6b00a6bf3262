package scene

import "github.com/matzehuels/sigil/pkg/symbol"

// Kind identifies the display primitive a [Node] maps to.
type Kind string

const (
	KindGroup Kind = "g"
	KindPath  Kind = "path"
)

// Node is one element of a rendered scene. It carries only resolved,
// display-ready attributes: no placeholder colors and no element ids.
type Node struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name,omitempty"` // emitted as data-symbol-name

	D            string            `json:"d,omitempty"`
	Fill         string            `json:"fill,omitempty"`
	Stroke       string            `json:"stroke,omitempty"`
	StrokeWidth  *float64          `json:"strokeWidth,omitempty"`
	VectorEffect string            `json:"vectorEffect,omitempty"`
	Transform    string            `json:"transform,omitempty"`
	Attrs        map[string]string `json:"attrs,omitempty"`

	Children []Node `json:"children,omitempty"`
}

// Walk visits n and its descendants depth-first, parents before children.
func (n Node) Walk(fn func(depth int, n Node)) {
	n.walk(0, fn)
}

func (n Node) walk(depth int, fn func(int, Node)) {
	fn(depth, n)
	for _, c := range n.Children {
		c.walk(depth+1, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func (n Node) Count() int {
	count := 0
	n.Walk(func(int, Node) { count++ })
	return count
}

func kindOf(tag symbol.Tag) Kind {
	switch tag {
	case symbol.TagGroup:
		return KindGroup
	case symbol.TagPath:
		return KindPath
	}
	panic("scene: unknown element tag " + string(tag))
}
