package symbol

import "strings"

// Tag discriminates the shape kinds an [Element] can be.
type Tag string

// Supported element tags. Adding a tag means extending [Tags] and every
// renderer's switch over Tag.
const (
	TagGroup Tag = "g"
	TagPath  Tag = "path"
)

// Tags returns every supported tag.
func Tags() []Tag {
	return []Tag{TagGroup, TagPath}
}

// Valid reports whether t is a supported tag.
func (t Tag) Valid() bool {
	switch t {
	case TagGroup, TagPath:
		return true
	}
	return false
}

// Element is one node of a symbol's shape tree.
type Element struct {
	Tag      Tag       `json:"tag" yaml:"tag" toml:"tag" bson:"tag"`
	Props    Props     `json:"props" yaml:"props" toml:"props" bson:"props"`
	Children []Element `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty" bson:"children,omitempty"`
}

// Props are the presentational properties of an element.
//
// Empty Fill and Stroke mean the property is not set. A nil StrokeWidth
// means the element does not declare one. ID is an authoring artifact and
// is stripped before anything reaches the display layer.
type Props struct {
	ID          string            `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty" bson:"id,omitempty"`
	D           string            `json:"d,omitempty" yaml:"d,omitempty" toml:"d,omitempty" bson:"d,omitempty"`
	Fill        string            `json:"fill,omitempty" yaml:"fill,omitempty" toml:"fill,omitempty" bson:"fill,omitempty"`
	Stroke      string            `json:"stroke,omitempty" yaml:"stroke,omitempty" toml:"stroke,omitempty" bson:"stroke,omitempty"`
	StrokeWidth *float64          `json:"strokeWidth,omitempty" yaml:"strokeWidth,omitempty" toml:"strokeWidth,omitempty" bson:"strokeWidth,omitempty"`
	Transform   string            `json:"transform,omitempty" yaml:"transform,omitempty" toml:"transform,omitempty" bson:"transform,omitempty"`
	Attrs       map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty" toml:"attrs,omitempty" bson:"attrs,omitempty"`
}

// reservedAttrs are attribute names the renderer derives from typed
// properties. They may not appear in [Props.Attrs].
var reservedAttrs = map[string]bool{
	"id":               true,
	"d":                true,
	"fill":             true,
	"stroke":           true,
	"stroke-width":     true,
	"vector-effect":    true,
	"transform":        true,
	"data-symbol-name": true,
}

// IsReservedAttr reports whether name is set by the renderer itself and so
// cannot be passed through [Props.Attrs]. The check ignores case.
func IsReservedAttr(name string) bool {
	return reservedAttrs[strings.ToLower(strings.TrimSpace(name))]
}

// Group returns a group element with the given props and children.
func Group(props Props, children ...Element) Element {
	return Element{Tag: TagGroup, Props: props, Children: children}
}

// Path returns a path element with the given props and children.
func Path(props Props, children ...Element) Element {
	return Element{Tag: TagPath, Props: props, Children: children}
}

// Width returns a pointer to w, for populating [Props.StrokeWidth].
func Width(w float64) *float64 {
	return &w
}
