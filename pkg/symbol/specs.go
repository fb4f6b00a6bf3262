package symbol

import (
	"math"
	"slices"
)

// AttachmentPointType names a family of attachment points on a symbol.
// The set is open; the constants below are the ones the bundled symbols use.
type AttachmentPointType string

const (
	Anchor AttachmentPointType = "anchor"
	Tail   AttachmentPointType = "tail"
	Leg    AttachmentPointType = "leg"
	Arm    AttachmentPointType = "arm"
	Horn   AttachmentPointType = "horn"
	Crown  AttachmentPointType = "crown"

	Top    AttachmentPointType = "top"
	Bottom AttachmentPointType = "bottom"
	Left   AttachmentPointType = "left"
	Right  AttachmentPointType = "right"
)

// PointWithNormal is a position on a symbol plus the direction an attached
// symbol should face. NormalAngle is in radians, measured from the +X axis.
type PointWithNormal struct {
	X           float64 `json:"x" yaml:"x" toml:"x" bson:"x"`
	Y           float64 `json:"y" yaml:"y" toml:"y" bson:"y"`
	NormalAngle float64 `json:"normalAngle" yaml:"normalAngle" toml:"normalAngle" bson:"normalAngle"`
}

// Normal returns the unit normal vector.
func (p PointWithNormal) Normal() (x, y float64) {
	return math.Cos(p.NormalAngle), math.Sin(p.NormalAngle)
}

// Specs maps attachment point types to their ordered points.
type Specs map[AttachmentPointType][]PointWithNormal

// Types returns the declared attachment point types in sorted order.
func (s Specs) Types() []AttachmentPointType {
	types := make([]AttachmentPointType, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}
