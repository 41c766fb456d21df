package rope

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestDesiredSegmentsBounds(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name  string
		total float64
		want  int
	}{
		{name: "zero_span_uses_min", total: 0, want: 3},
		{name: "short_span_uses_min", total: 25, want: 3},
		{name: "exact_multiple", total: 50, want: 5},
		{name: "rounds_up", total: 50.5, want: 6},
		{name: "long_span", total: 500, want: 50},
		{name: "clamped_to_max", total: 5000, want: 60},
		{name: "nan_uses_min", total: math.NaN(), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DesiredSegments(tt.total, p); got != tt.want {
				t.Fatalf("expected %d segments, got %d", tt.want, got)
			}
		})
	}
}

func TestIterationsBounds(t *testing.T) {
	p := DefaultParams()
	if got := Iterations(3, p); got != p.MinIterations {
		t.Fatalf("expected min iterations %d, got %d", p.MinIterations, got)
	}
	if got := Iterations(40, p); got != 20 {
		t.Fatalf("expected 20 iterations, got %d", got)
	}
	if got := Iterations(1000, p); got != p.MaxIterations {
		t.Fatalf("expected max iterations %d, got %d", p.MaxIterations, got)
	}
}

func TestDefaultParamsSurviveNormalization(t *testing.T) {
	p := DefaultParams()
	if got := p.normalized(); got != p {
		t.Fatalf("defaults changed by normalization: %+v -> %+v", p, got)
	}
	if p.AnchorStiffness <= 1 || p.AnchorStiffness >= 2 {
		t.Fatalf("anchor stiffness %v should over-relax without diverging", p.AnchorStiffness)
	}
	if p.AntiFloatBlend <= 0 || p.AntiFloatBlend >= 1 {
		t.Fatalf("anti-float blend %v should be a partial pull", p.AntiFloatBlend)
	}
}

func TestNewChainIsStraight(t *testing.T) {
	anchor := cp.Vector{X: 0, Y: 0}
	magnet := cp.Vector{X: 0, Y: -100}
	c := NewChain(anchor, magnet, DefaultParams())

	if c.Segments() != 10 {
		t.Fatalf("expected 10 segments, got %d", c.Segments())
	}
	if len(c.Prev) != len(c.Nodes) {
		t.Fatalf("expected prev and nodes to match, got %d and %d", len(c.Prev), len(c.Nodes))
	}
	if !near(c.RestLength, 10) {
		t.Fatalf("expected rest length 10, got %v", c.RestLength)
	}
	for i, node := range c.Nodes {
		want := cp.Vector{X: 0, Y: -10 * float64(i)}
		if !nearVec(node, want) {
			t.Fatalf("node %d: expected %v, got %v", i, want, node)
		}
	}
}

func TestChainStepPinsEndpoints(t *testing.T) {
	anchor := cp.Vector{X: 50, Y: 50}
	magnet := cp.Vector{X: -69, Y: -70}
	c := NewChain(anchor, magnet, DefaultParams())

	for frame := 0; frame < 120; frame++ {
		magnet = magnet.Add(cp.Vector{X: math.Sin(float64(frame) * 0.1), Y: -2})
		c.Update(anchor, magnet)

		n := c.Segments()
		if c.Nodes[0] != anchor {
			t.Fatalf("frame %d: expected node 0 at anchor %v, got %v", frame, anchor, c.Nodes[0])
		}
		if c.Nodes[n] != magnet {
			t.Fatalf("frame %d: expected node %d at magnet %v, got %v", frame, n, magnet, c.Nodes[n])
		}
	}
}

func TestChainStepSingleSegment(t *testing.T) {
	p := DefaultParams()
	p.MinSegments = 1
	anchor := cp.Vector{}
	magnet := cp.Vector{X: 3, Y: -4}
	c := NewChain(anchor, magnet, p)

	if c.Segments() != 1 {
		t.Fatalf("expected 1 segment, got %d", c.Segments())
	}
	c.Step(anchor, magnet)
	if c.Nodes[0] != anchor || c.Nodes[1] != magnet {
		t.Fatalf("expected both ends pinned, got %v", c.Nodes)
	}
}

func TestResegmentRestLength(t *testing.T) {
	anchor := cp.Vector{X: 0, Y: 0}
	c := NewChain(anchor, cp.Vector{X: 0, Y: -50}, DefaultParams())

	magnet := cp.Vector{X: 30, Y: -400}
	from, to, changed := c.Resegment(anchor, magnet)
	if !changed || from != 5 || to != 41 {
		t.Fatalf("expected 5 -> 41 change, got %d -> %d (changed=%v)", from, to, changed)
	}
	if len(c.Nodes) != to+1 || len(c.Prev) != to+1 {
		t.Fatalf("expected %d nodes, got %d nodes and %d prev", to+1, len(c.Nodes), len(c.Prev))
	}
	total := anchor.Distance(magnet)
	if !near(c.RestLength*float64(to), total) {
		t.Fatalf("expected rest length * N == %v, got %v", total, c.RestLength*float64(to))
	}

	// Same count: no resample, rest length still tracks the span.
	magnet = cp.Vector{X: 31, Y: -401}
	_, _, changed = c.Resegment(anchor, magnet)
	if changed {
		t.Fatalf("expected no resample for unchanged count")
	}
	if !near(c.RestLength*41, anchor.Distance(magnet)) {
		t.Fatalf("expected rest length to follow span, got %v", c.RestLength)
	}
}

func TestResamplePreservesArcLength(t *testing.T) {
	t.Run("semicircle", func(t *testing.T) {
		const radius = 100.0
		nodes := make([]cp.Vector, 65)
		for i := range nodes {
			a := math.Pi * float64(i) / 64
			nodes[i] = cp.Vector{X: radius * math.Cos(a), Y: -radius * math.Sin(a)}
		}
		before := polylineLength(nodes)

		out := Resample(nodes, 40, 0, cp.Vector{})
		if len(out) != 41 {
			t.Fatalf("expected 41 nodes, got %d", len(out))
		}
		after := polylineLength(out)
		if math.Abs(after-before)/before > 0.01 {
			t.Fatalf("expected arc length %v within 1%%, got %v", before, after)
		}
		if out[0] != nodes[0] || out[40] != nodes[64] {
			t.Fatalf("expected endpoints preserved, got %v and %v", out[0], out[40])
		}
		// still curved, not snapped to the chord
		if math.Abs(out[20].Y) < radius*0.9 {
			t.Fatalf("expected midpoint near the bottom of the arc, got %v", out[20])
		}
	})

	t.Run("right_angle", func(t *testing.T) {
		nodes := []cp.Vector{{X: 0, Y: 0}, {X: 0, Y: -30}, {X: 30, Y: -30}}
		out := Resample(nodes, 6, 0, cp.Vector{})
		want := []cp.Vector{
			{X: 0, Y: 0}, {X: 0, Y: -10}, {X: 0, Y: -20}, {X: 0, Y: -30},
			{X: 10, Y: -30}, {X: 20, Y: -30}, {X: 30, Y: -30},
		}
		for i := range want {
			if !nearVec(out[i], want[i]) {
				t.Fatalf("node %d: expected %v, got %v", i, want[i], out[i])
			}
		}
	})

	t.Run("zero_length_fallback", func(t *testing.T) {
		p := cp.Vector{X: 7, Y: -3}
		nodes := []cp.Vector{p, p, p, p}
		dir := cp.Vector{X: 0, Y: -5}

		short := Resample(nodes, 8, 30, dir)
		long := Resample(nodes, 8, 3000, dir)
		if len(short) != 9 || len(long) != 9 {
			t.Fatalf("expected 9 nodes, got %d and %d", len(short), len(long))
		}
		for i := range short {
			want := cp.Vector{X: 7, Y: -3 - 30*float64(i)/8}
			if !nearVec(short[i], want) {
				t.Fatalf("node %d: expected %v, got %v", i, want, short[i])
			}
		}
		if !near(polylineLength(short), 30) {
			t.Fatalf("expected the fallback length 30 to be laid out, got %v", polylineLength(short))
		}
		if nearVec(short[8], long[8]) {
			t.Fatalf("expected the fallback length to change the layout, both ended at %v", short[8])
		}
	})

	t.Run("zero_length_without_direction_hangs_down", func(t *testing.T) {
		out := Resample([]cp.Vector{{}, {}}, 4, 20, cp.Vector{})
		if !nearVec(out[4], cp.Vector{X: 0, Y: -20}) {
			t.Fatalf("expected the last node straight below, got %v", out[4])
		}
	})
}

func TestResegmentSpreadsCollapsedChain(t *testing.T) {
	anchor := cp.Vector{X: 0, Y: 0}
	c := NewChain(anchor, anchor, DefaultParams())
	if c.ArcLength() != 0 {
		t.Fatalf("expected a collapsed chain, got arc %v", c.ArcLength())
	}

	magnet := cp.Vector{X: 0, Y: -100}
	from, to, changed := c.Resegment(anchor, magnet)
	if !changed || from != 3 || to != 10 {
		t.Fatalf("expected 3 -> 10 change, got %d -> %d (changed=%v)", from, to, changed)
	}
	for i, node := range c.Nodes {
		want := cp.Vector{X: 0, Y: -10 * float64(i)}
		if !nearVec(node, want) {
			t.Fatalf("node %d: expected %v, got %v", i, want, node)
		}
	}
	if !near(c.ArcLength(), 100) {
		t.Fatalf("expected arc length 100, got %v", c.ArcLength())
	}
}

func TestChainGrowthStaysFinite(t *testing.T) {
	anchor := cp.Vector{X: 0, Y: 50}
	magnet := cp.Vector{X: 0, Y: 0}
	c := NewChain(anchor, magnet, DefaultParams())

	for frame := 0; frame < 300; frame++ {
		magnet.Y -= 1.5
		magnet.X = 20 * math.Sin(float64(frame)*0.05)
		c.Update(anchor, magnet)

		for i, node := range c.Nodes {
			if math.IsNaN(node.X) || math.IsNaN(node.Y) || math.IsInf(node.X, 0) || math.IsInf(node.Y, 0) {
				t.Fatalf("frame %d: node %d is not finite: %v", frame, i, node)
			}
		}
	}

	want := DesiredSegments(anchor.Distance(magnet), c.Params)
	if c.Segments() != want {
		t.Fatalf("expected %d segments, got %d", want, c.Segments())
	}
}

func TestLinks(t *testing.T) {
	c := NewChain(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: -40}, DefaultParams())
	links := c.Links()
	if len(links) != c.Segments() {
		t.Fatalf("expected %d links, got %d", c.Segments(), len(links))
	}

	first := links[0]
	if !nearVec(first.Mid, cp.Vector{X: 0, Y: -5}) {
		t.Fatalf("expected first midpoint (0,-5), got %v", first.Mid)
	}
	if !near(math.Abs(first.Angle), math.Pi) {
		t.Fatalf("expected a hanging link to be rotated by pi, got %v", first.Angle)
	}
	if !near(first.ScaleY, 1) {
		t.Fatalf("expected unit scale, got %v", first.ScaleY)
	}

	var empty *Chain
	if empty.Links() != nil {
		t.Fatalf("expected nil links for nil chain")
	}
}

// relaxOnly turns off everything in Step except relaxation and pinning.
func relaxOnly(iters int) Params {
	p := DefaultParams()
	p.Damping = 0
	p.SagBias = 0
	p.AntiFloatBlend = 0
	p.AnchorStiffness = 1
	p.MinIterations = iters
	p.MaxIterations = iters
	return p
}

func TestChainStepRelaxesToRestLength(t *testing.T) {
	anchor := cp.Vector{X: 0, Y: 0}
	magnet := cp.Vector{X: 0, Y: -100}
	c := NewChain(anchor, magnet, relaxOnly(64))

	// slack rope, buckled sideways so it has room to take up the slack
	c.RestLength = 12
	for i := 1; i < c.Segments(); i++ {
		if i%2 == 0 {
			c.Nodes[i].X += 5
		} else {
			c.Nodes[i].X -= 5
		}
	}
	copy(c.Prev, c.Nodes)

	for frame := 0; frame < 20; frame++ {
		c.Step(anchor, magnet)
	}

	for i, link := range c.Links() {
		if math.Abs(link.Length-c.RestLength) > 0.02*c.RestLength {
			t.Fatalf("link %d: expected length near %v, got %v", i, c.RestLength, link.Length)
		}
	}
}

func TestChainStepAnchorTuning(t *testing.T) {
	anchor := cp.Vector{X: 0, Y: 0}
	magnet := cp.Vector{X: 0, Y: -100}

	stepped := func(p Params) cp.Vector {
		c := NewChain(anchor, magnet, p)
		c.Nodes[1] = cp.Vector{X: 20, Y: -10}
		copy(c.Prev, c.Nodes)
		c.Step(anchor, magnet)
		return c.Nodes[1]
	}

	base := stepped(relaxOnly(1))
	if near(base.X, 0) {
		t.Fatalf("expected node 1 to keep some sideways offset, got %v", base)
	}

	stiff := relaxOnly(1)
	stiff.AnchorStiffness = 1.8
	if got := stepped(stiff); nearVec(got, base) {
		t.Fatalf("expected anchor stiffness to move node 1, both at %v", got)
	}

	blended := relaxOnly(1)
	blended.AntiFloatBlend = 0.5
	got := stepped(blended)
	if !near(got.X, base.X*0.5) || !near(got.Y, base.Y) {
		t.Fatalf("expected node 1 X pulled halfway to the anchor (%v), got %v", base.X*0.5, got)
	}
}

func TestChainStepSagsBelowChord(t *testing.T) {
	anchor := cp.Vector{X: 0, Y: 0}
	magnet := cp.Vector{X: 100, Y: 0}

	tests := []struct {
		name string
		sag  float64
	}{
		{name: "sag", sag: DefaultParams().SagBias},
		{name: "no_sag", sag: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.SagBias = tt.sag
			c := NewChain(anchor, magnet, p)
			for frame := 0; frame < 30; frame++ {
				c.Step(anchor, magnet)
			}

			for i := 1; i < c.Segments(); i++ {
				y := c.Nodes[i].Y
				if tt.sag > 0 && y >= 0 {
					t.Fatalf("node %d: expected it below the chord, got y=%v", i, y)
				}
				if tt.sag == 0 && math.Abs(y) > 1e-9 {
					t.Fatalf("node %d: expected it on the chord, got y=%v", i, y)
				}
			}
		})
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func nearVec(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}
