package route

import (
	"PipeFlow/internal/calc/fittings"
	"PipeFlow/internal/calc/segment"
)

// ToSegments emits one segment per straight run. A detected elbow attaches
// to the run arriving at its node; each node's manually attached fittings
// go to the run starting at that node, except the last node's, which join
// the final run.
func ToSegments(r Route, opt Options, base SegmentBase) ([]segment.Input, error) {
	runs, err := StraightRuns(r)
	if err != nil {
		return nil, err
	}
	elbows, err := DetectElbows(runs, opt)
	if err != nil {
		return nil, err
	}

	segs := make([]segment.Input, len(runs))
	for i, run := range runs {
		segs[i] = segment.Input{
			Pipe:       base.Pipe,
			Material:   base.Material,
			Fluid:      base.Fluid,
			FlowM3S:    base.FlowM3S,
			LengthM:    run.LengthM,
			ElevationM: run.ElevationM,
		}
	}

	for _, e := range elbows {
		i := e.NodeIndex - 1 // run arriving at the elbow's node
		segs[i].Fittings = append(segs[i].Fittings, fittings.Request{ID: e.FittingID, Quantity: 1})
	}

	last := len(segs) - 1
	for n, node := range r.Nodes {
		if len(node.Fittings) == 0 {
			continue
		}
		i := n
		if i > last {
			i = last
		}
		segs[i].Fittings = append(segs[i].Fittings, node.Fittings...)
	}

	return segs, nil
}

// Analyze is the read-only preview: straight runs, detected elbows and
// aggregate totals, without building segments. An empty or single-node
// route is a valid all-zero analysis, not an error.
func Analyze(r Route, opt Options) (Analysis, error) {
	if len(r.Nodes) < 2 {
		return Analysis{}, nil
	}
	runs, err := StraightRuns(r)
	if err != nil {
		return Analysis{}, err
	}
	elbows, err := DetectElbows(runs, opt)
	if err != nil {
		return Analysis{}, err
	}

	out := Analysis{Runs: runs, Elbows: elbows}
	for _, run := range runs {
		out.TotalLengthM += run.LengthM
		out.TotalElevationM += run.ElevationM
	}
	for _, e := range elbows {
		if out.ElbowCounts == nil {
			out.ElbowCounts = make(map[int]int)
		}
		out.ElbowCounts[e.StandardAngle]++
		if e.Warning != nil {
			out.Warnings = append(out.Warnings, *e.Warning)
		}
	}
	return out, nil
}
