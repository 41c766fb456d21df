package component

import (
	"image/color"

	"github.com/milk9111/magnetfisher/rope"
)

// Rope hangs a simulated chain from a fixed anchor to the magnet. Segments
// holds the owned segment entities (stored as uint64 to avoid an import
// cycle), one per chain link.
type Rope struct {
	Magnet     uint64
	AnchorX    float64
	AnchorXSet bool
	AnchorY    float64

	Params   rope.Params
	Chain    *rope.Chain
	Segments []uint64

	Thickness float64
	Color     color.Color
	Layer     int
}

var RopeComponent = NewComponent[Rope]()

// RopeSegment marks an entity owned by a Rope.
type RopeSegment struct {
	Rope  uint64
	Index int
}

var RopeSegmentComponent = NewComponent[RopeSegment]()
