package route

import (
	"math"

	"github.com/cpmech/gosl/la"

	"PipeFlow/internal/calc/calcerr"
)

// StraightRuns converts N ordered nodes into N-1 runs. It fails for fewer
// than two nodes and for coincident consecutive nodes, which have no
// direction.
func StraightRuns(r Route) ([]StraightRun, error) {
	if len(r.Nodes) < 2 {
		return nil, calcerr.Inputf("route needs at least 2 nodes, got %d", len(r.Nodes))
	}
	runs := make([]StraightRun, 0, len(r.Nodes)-1)
	for i := 0; i < len(r.Nodes)-1; i++ {
		a, b := r.Nodes[i], r.Nodes[i+1]
		d := []float64{b.X - a.X, b.Y - a.Y, b.Z - a.Z}
		length := math.Sqrt(la.VecDot(d, d))
		if length == 0 {
			return nil, calcerr.Inputf("nodes %d and %d coincide; zero-length run has no direction", i, i+1)
		}
		runs = append(runs, StraightRun{
			FromIndex:  i,
			ToIndex:    i + 1,
			LengthM:    length,
			ElevationM: b.Z - a.Z,
			Direction:  [3]float64{d[0] / length, d[1] / length, d[2] / length},
		})
	}
	return runs, nil
}

// BendAngle is the deflection between an incoming and outgoing unit
// direction, in degrees: 0 is straight-through, 180 a full reversal. The
// cosine is clamped to [-1, 1] to absorb floating-point drift before the
// inverse cosine.
func BendAngle(in, out [3]float64) float64 {
	cos := la.VecDot(in[:], out[:])
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180.0 / math.Pi
}
