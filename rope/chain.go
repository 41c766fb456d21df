// Package rope simulates the winch rope as a chain of Verlet nodes pinned
// between a fixed anchor and the magnet.
//
// Coordinates are world units with +Y up, so gravity-like sag pulls toward -Y.
package rope

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Chain is the mutable per-frame rope state. Nodes and Prev always hold
// Segments()+1 entries and are replaced, never resized, when the segment
// count changes.
type Chain struct {
	Params     Params
	Nodes      []cp.Vector
	Prev       []cp.Vector
	RestLength float64
}

// Link is the write-back data for one visual segment.
type Link struct {
	Mid    cp.Vector
	Angle  float64
	Length float64
	// ScaleY is Length relative to Params.BaseSegmentLength.
	ScaleY float64
}

// NewChain lays a straight chain from anchor to magnet with the segment count
// the span asks for.
func NewChain(anchor, magnet cp.Vector, params Params) *Chain {
	total := anchor.Distance(magnet)
	n := DesiredSegments(total, params)

	nodes := make([]cp.Vector, n+1)
	for i := range nodes {
		nodes[i] = anchor.Lerp(magnet, float64(i)/float64(n))
	}
	nodes[n] = magnet

	prev := make([]cp.Vector, n+1)
	copy(prev, nodes)

	return &Chain{
		Params:     params,
		Nodes:      nodes,
		Prev:       prev,
		RestLength: total / float64(n),
	}
}

// Segments returns the current link count.
func (c *Chain) Segments() int {
	if c == nil || len(c.Nodes) < 2 {
		return 0
	}
	return len(c.Nodes) - 1
}

// SetParams swaps tuning in place. A changed segment band takes effect on the
// next Resegment.
func (c *Chain) SetParams(p Params) {
	if c == nil {
		return
	}
	c.Params = p
}

// ArcLength returns the length of the node polyline.
func (c *Chain) ArcLength() float64 {
	if c == nil {
		return 0
	}
	return polylineLength(c.Nodes)
}

// Resegment matches the segment count to the current anchor-magnet span,
// resampling the existing polyline by arc length when the count changes, and
// recomputes the rest length. It reports the old and new counts.
func (c *Chain) Resegment(anchor, magnet cp.Vector) (from, to int, changed bool) {
	p := c.Params.normalized()
	total := anchor.Distance(magnet)

	from = c.Segments()
	to = DesiredSegments(total, p)
	if to != from {
		fallback := math.Max(total, float64(from)*p.BaseSegmentLength)
		c.Nodes = Resample(c.Nodes, to, fallback, magnet.Sub(anchor))
		c.Prev = make([]cp.Vector, len(c.Nodes))
		copy(c.Prev, c.Nodes)
		changed = true
	}

	c.RestLength = total / float64(to)
	return from, to, changed
}

// Update runs one full frame: resegment, then step. It is what the ECS rope
// system calls once both endpoints are known.
func (c *Chain) Update(anchor, magnet cp.Vector) (from, to int, changed bool) {
	from, to, changed = c.Resegment(anchor, magnet)
	c.Step(anchor, magnet)
	return from, to, changed
}

// Links returns the per-link midpoint, angle and length. Angle is measured
// from +X and rotated by -90° because segment sprites are authored vertical.
func (c *Chain) Links() []Link {
	n := c.Segments()
	if n == 0 {
		return nil
	}
	base := c.Params.normalized().BaseSegmentLength

	links := make([]Link, n)
	for i := 0; i < n; i++ {
		a, b := c.Nodes[i], c.Nodes[i+1]
		d := b.Sub(a)
		length := d.Length()
		links[i] = Link{
			Mid:    a.Lerp(b, 0.5),
			Angle:  math.Atan2(d.Y, d.X) - math.Pi/2,
			Length: length,
			ScaleY: length / base,
		}
	}
	return links
}

func polylineLength(nodes []cp.Vector) float64 {
	total := 0.0
	for i := 1; i < len(nodes); i++ {
		total += nodes[i].Distance(nodes[i-1])
	}
	return total
}
