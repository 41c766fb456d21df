package rope

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Step pins both ends, integrates the free nodes, relaxes the link
// constraints and applies the anti-float clamp. After Step returns,
// Nodes[0] == anchor and Nodes[N] == magnet exactly.
func (c *Chain) Step(anchor, magnet cp.Vector) {
	n := c.Segments()
	if n == 0 {
		return
	}
	p := c.Params.normalized()

	c.pin(anchor, magnet)
	c.integrate(p)

	iters := Iterations(n, p)
	for k := 0; k < iters; k++ {
		c.relax(p)
		c.pin(anchor, magnet)
	}

	if n >= 2 {
		c.Nodes[1].X += (anchor.X - c.Nodes[1].X) * p.AntiFloatBlend
	}
	c.pin(anchor, magnet)
}

func (c *Chain) pin(anchor, magnet cp.Vector) {
	last := len(c.Nodes) - 1
	c.Nodes[0] = anchor
	c.Prev[0] = anchor
	c.Nodes[last] = magnet
	c.Prev[last] = magnet
}

// integrate advances the free nodes 1..N-1. Damping is strongest next to the
// anchor and the sag bias strongest next to the magnet.
func (c *Chain) integrate(p Params) {
	n := len(c.Nodes) - 1
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		damping := p.Damping * (1 - p.AnchorDamping*(1-t))

		cur := c.Nodes[i]
		vel := cur.Sub(c.Prev[i]).Mult(damping)
		c.Prev[i] = cur
		c.Nodes[i] = cur.Add(vel).Add(cp.Vector{Y: -p.SagBias * t})
	}
}

// relax runs one pass over every link, pushing its length back toward
// RestLength. Pinned ends never move.
func (c *Chain) relax(p Params) {
	last := len(c.Nodes) - 1
	for i := 0; i < last; i++ {
		a, b := c.Nodes[i], c.Nodes[i+1]
		delta := b.Sub(a)
		dist := math.Max(delta.Length(), p.Epsilon)
		correction := delta.Mult((dist - c.RestLength) / dist)

		pinnedA := i == 0
		pinnedB := i+1 == last
		switch {
		case pinnedA && pinnedB:
			continue
		case pinnedA:
			c.Nodes[i+1] = b.Sub(correction.Mult(p.AnchorStiffness))
		case pinnedB:
			c.Nodes[i] = a.Add(correction)
		default:
			half := correction.Mult(0.5)
			c.Nodes[i] = a.Add(half)
			c.Nodes[i+1] = b.Sub(half)
		}
	}
}
