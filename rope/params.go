package rope

import "math"

// Params tunes a Chain. The zero value is not useful; start from
// DefaultParams and override what the game config provides.
type Params struct {
	// BaseSegmentLength is the visual length a segment is authored at. The
	// segment count follows span / BaseSegmentLength.
	BaseSegmentLength float64
	MinSegments       int
	MaxSegments       int

	// Damping scales the carried-over Verlet velocity of free nodes.
	Damping float64
	// AnchorDamping is the extra fraction of velocity removed at the anchor
	// end, fading to zero at the magnet end.
	AnchorDamping float64
	// SagBias is the downward displacement added per step at the magnet end,
	// fading to zero at the anchor.
	SagBias float64

	IterationsPerSegment float64
	MinIterations        int
	MaxIterations        int

	// AnchorStiffness multiplies the correction of the anchor-adjacent link.
	AnchorStiffness float64
	// AntiFloatBlend pulls the first free node's X toward the anchor X.
	AntiFloatBlend float64

	Epsilon float64
}

// DefaultParams is the shipped rope feel. AnchorStiffness and AntiFloatBlend
// are hand-tuned and kept as defaults; the game config's rope section
// overrides any of these.
func DefaultParams() Params {
	return Params{
		BaseSegmentLength:    10,
		MinSegments:          3,
		MaxSegments:          60,
		Damping:              0.98,
		AnchorDamping:        0.15,
		SagBias:              0.35,
		IterationsPerSegment: 0.5,
		MinIterations:        8,
		MaxIterations:        32,
		AnchorStiffness:      1.25,
		AntiFloatBlend:       0.08,
		Epsilon:              1e-6,
	}
}

// normalized returns a copy with unusable values replaced so the solver never
// divides by zero or diverges.
func (p Params) normalized() Params {
	def := DefaultParams()
	if p.BaseSegmentLength <= 0 || math.IsNaN(p.BaseSegmentLength) {
		p.BaseSegmentLength = def.BaseSegmentLength
	}
	if p.MinSegments < 1 {
		p.MinSegments = 1
	}
	if p.MaxSegments < p.MinSegments {
		p.MaxSegments = p.MinSegments
	}
	if p.Damping < 0 {
		p.Damping = 0
	}
	p.AnchorDamping = clamp(p.AnchorDamping, 0, 1)
	if p.MinIterations < 1 {
		p.MinIterations = 1
	}
	if p.MaxIterations < p.MinIterations {
		p.MaxIterations = p.MinIterations
	}
	if p.AnchorStiffness <= 0 {
		p.AnchorStiffness = 1
	}
	// over-relaxation past 2 diverges
	if p.AnchorStiffness >= 2 {
		p.AnchorStiffness = 1.95
	}
	p.AntiFloatBlend = clamp(p.AntiFloatBlend, 0, 1)
	if p.Epsilon <= 0 {
		p.Epsilon = def.Epsilon
	}
	return p
}

// DesiredSegments returns clamp(ceil(total / base), min, max).
func DesiredSegments(total float64, p Params) int {
	p = p.normalized()
	if total <= 0 || math.IsNaN(total) {
		return p.MinSegments
	}
	n := int(math.Ceil(total / p.BaseSegmentLength))
	if n < p.MinSegments {
		return p.MinSegments
	}
	if n > p.MaxSegments {
		return p.MaxSegments
	}
	return n
}

// Iterations returns the relaxation pass count for a chain of n segments.
func Iterations(n int, p Params) int {
	p = p.normalized()
	iters := int(math.Ceil(float64(n) * p.IterationsPerSegment))
	if iters < p.MinIterations {
		return p.MinIterations
	}
	if iters > p.MaxIterations {
		return p.MaxIterations
	}
	return iters
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
