package rope

import "github.com/jakecoffman/cp"

// Resample redistributes a polyline onto count evenly spaced arc-length
// positions, interpolating linearly between the bracketing old nodes. The
// first and last nodes are preserved exactly.
//
// A polyline with zero length (every node coincident, as on the first frame)
// has no shape to follow. It is treated as a straight line of fallbackLength
// leaving the first node along dir, so the new nodes are spaced
// fallbackLength/count apart. A zero dir hangs the line straight down.
func Resample(nodes []cp.Vector, count int, fallbackLength float64, dir cp.Vector) []cp.Vector {
	if count < 1 || len(nodes) == 0 {
		return nil
	}

	oldSegs := len(nodes) - 1
	cum := make([]float64, len(nodes))
	for i := 1; i < len(nodes); i++ {
		cum[i] = cum[i-1] + nodes[i].Distance(nodes[i-1])
	}
	length := cum[oldSegs]
	if length <= 0 {
		return straightLine(nodes[0], count, fallbackLength, dir)
	}

	out := make([]cp.Vector, count+1)
	j := 0
	for i := 0; i <= count; i++ {
		target := length * float64(i) / float64(count)
		for j < oldSegs-1 && cum[j+1] < target {
			j++
		}
		t := 0.0
		if span := cum[j+1] - cum[j]; span > 0 {
			t = clamp((target-cum[j])/span, 0, 1)
		}
		out[i] = nodes[j].Lerp(nodes[j+1], t)
	}

	out[0] = nodes[0]
	out[count] = nodes[oldSegs]
	return out
}

func straightLine(start cp.Vector, count int, length float64, dir cp.Vector) []cp.Vector {
	unit := cp.Vector{X: 0, Y: -1}
	if l := dir.Length(); l > 0 {
		unit = dir.Mult(1 / l)
	}
	if length < 0 {
		length = 0
	}

	out := make([]cp.Vector, count+1)
	step := length / float64(count)
	for i := range out {
		out[i] = start.Add(unit.Mult(step * float64(i)))
	}
	return out
}
