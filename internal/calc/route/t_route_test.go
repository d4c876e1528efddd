package route

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"PipeFlow/internal/calc/fittings"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/calc/pipe"
	"PipeFlow/internal/calc/segment"
	"PipeFlow/internal/calc/system"
	"PipeFlow/internal/catalog"
)

func waterBase() SegmentBase {
	return SegmentBase{
		Pipe:     pipe.Spec{Nominal: "2", Schedule: "40", InnerMM: 52.50},
		Material: pipe.Material{ID: "carbon_steel_new", RoughnessMM: 0.046},
		Fluid:    fluid.State{Density: 998.21, Viscosity: 1.002e-3, TemperatureC: 20},
		FlowM3S:  10.0 / 3600.0,
	}
}

func TestGeometry01(tst *testing.T) {
	chk.PrintTitle("geometry01. straight runs: length, direction, elevation")

	r := Route{Nodes: []Node{
		{X: 0, Y: 0, Z: 0},
		{X: 30, Y: 0, Z: 0},
		{X: 30, Y: 0, Z: 10},
	}}
	runs, err := StraightRuns(r)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 2 {
		tst.Fatalf("want 2 runs, got %d", len(runs))
	}
	chk.Float64(tst, "run 0 length", 1e-12, runs[0].LengthM, 30)
	chk.Float64(tst, "run 0 elevation", 1e-12, runs[0].ElevationM, 0)
	chk.Float64(tst, "run 0 dir x", 1e-12, runs[0].Direction[0], 1)
	chk.Float64(tst, "run 1 length", 1e-12, runs[1].LengthM, 10)
	chk.Float64(tst, "run 1 elevation", 1e-12, runs[1].ElevationM, 10)
	if runs[0].FromIndex != 0 || runs[0].ToIndex != 1 || runs[1].ToIndex != 2 {
		tst.Errorf("run node indices wrong: %+v", runs)
	}
}

func TestGeometry02(tst *testing.T) {
	chk.PrintTitle("geometry02. degenerate routes")

	if _, err := StraightRuns(Route{Nodes: []Node{{X: 1}}}); err == nil {
		tst.Errorf("single node must fail")
	}
	r := Route{Nodes: []Node{{X: 0}, {X: 0}, {X: 5}}}
	if _, err := StraightRuns(r); err == nil {
		tst.Errorf("coincident consecutive nodes must fail")
	}
}

func TestGeometry03(tst *testing.T) {
	chk.PrintTitle("geometry03. bend angle between run directions")

	chk.Float64(tst, "right angle", 1e-9, BendAngle([3]float64{1, 0, 0}, [3]float64{0, 1, 0}), 90)
	chk.Float64(tst, "straight through", 1e-9, BendAngle([3]float64{1, 0, 0}, [3]float64{1, 0, 0}), 0)
	chk.Float64(tst, "reversal", 1e-9, BendAngle([3]float64{1, 0, 0}, [3]float64{-1, 0, 0}), 180)
	chk.Float64(tst, "diagonal", 1e-9, BendAngle([3]float64{1, 0, 0}, [3]float64{1, 1, 0}), 45)
}

func TestClassify01(tst *testing.T) {
	chk.PrintTitle("classify01. snapping inside tolerance is silent")

	std, warn := ClassifyAngle(93, 5)
	if std != 90 || warn != nil {
		tst.Errorf("93° must snap silently to 90, got %d %v", std, warn)
	}
	std, warn = ClassifyAngle(2, 5)
	if std != 0 || warn != nil {
		tst.Errorf("2° must snap silently to 0, got %d %v", std, warn)
	}
	// a near-straight node never warns, however far off it is
	std, warn = ClassifyAngle(15, 5)
	if std != 0 || warn != nil {
		tst.Errorf("15° is nearest 0 and must stay silent, got %d %v", std, warn)
	}
}

func TestClassify02(tst *testing.T) {
	chk.PrintTitle("classify02. deviation beyond tolerance is flagged")

	std, warn := ClassifyAngle(30, 5)
	if std != 45 {
		tst.Fatalf("30° must snap to 45, got %d", std)
	}
	if warn == nil {
		tst.Fatalf("15° deviation must warn")
	}
	if warn.Key != "elbow_angle_deviation_45" {
		tst.Errorf("warning key: got %q", warn.Key)
	}
	if !strings.Contains(warn.Message, "30.0°") || !strings.Contains(warn.Message, "45°") {
		tst.Errorf("message must name both angles: %q", warn.Message)
	}

	std, warn = ClassifyAngle(170, 5)
	if std != 180 || warn == nil {
		tst.Errorf("170° must snap to 180 with a warning, got %d %v", std, warn)
	}
}

func TestDetect01(tst *testing.T) {
	chk.PrintTitle("detect01. elbow detection over an L route")

	r := Route{Nodes: []Node{
		{X: 0, Y: 0, Z: 0},
		{X: 30, Y: 0, Z: 0},
		{X: 30, Y: 20, Z: 0},
	}}
	runs, err := StraightRuns(r)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	elbows, err := DetectElbows(runs, Options{LongRadius: true})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(elbows) != 1 {
		tst.Fatalf("want 1 elbow, got %d", len(elbows))
	}
	e := elbows[0]
	if e.NodeIndex != 1 || e.StandardAngle != 90 {
		tst.Errorf("elbow: %+v", e)
	}
	if e.FittingID != "elbow_90_lr_welded" {
		tst.Errorf("fitting id: got %q", e.FittingID)
	}
	if e.Warning != nil {
		tst.Errorf("exact 90° must not warn: %v", e.Warning)
	}

	elbows, err = DetectElbows(runs, Options{Connection: ConnectionThreaded})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if elbows[0].FittingID != "elbow_90_std_threaded" {
		tst.Errorf("fitting id: got %q", elbows[0].FittingID)
	}

	if _, err := DetectElbows(runs, Options{Connection: "glued"}); err == nil {
		tst.Errorf("unknown connection must fail")
	}
}

func TestAnalyze01(tst *testing.T) {
	chk.PrintTitle("analyze01. preview totals and elbow counts")

	r := Route{Nodes: []Node{
		{X: 0, Y: 0, Z: 0},
		{X: 30, Y: 0, Z: 0},
		{X: 30, Y: 20, Z: 0},
		{X: 30, Y: 20, Z: 10},
	}}
	a, err := Analyze(r, Options{LongRadius: true})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "total length", 1e-12, a.TotalLengthM, 60)
	chk.Float64(tst, "total elevation", 1e-12, a.TotalElevationM, 10)
	if a.ElbowCounts[90] != 2 {
		tst.Errorf("elbow counts: %v", a.ElbowCounts)
	}
	if len(a.Warnings) != 0 {
		tst.Errorf("exact right angles must not warn: %v", a.Warnings)
	}

	a, err = Analyze(Route{Nodes: []Node{{X: 1}}}, Options{})
	if err != nil || a.TotalLengthM != 0 || len(a.Runs) != 0 {
		tst.Errorf("single-node preview must be a zero analysis, got %+v %v", a, err)
	}
}

func TestConvert01(tst *testing.T) {
	chk.PrintTitle("convert01. straight route equals one manual segment")

	env := catalog.CraneEnv()
	base := waterBase()
	r := Route{Nodes: []Node{
		{X: 0, Y: 0, Z: 0},
		{X: 30, Y: 0, Z: 5},
	}}
	segs, err := ToSegments(r, Options{}, base)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 {
		tst.Fatalf("want 1 segment, got %d", len(segs))
	}

	fromRoute, err := system.Calculate(system.Input{Segments: segs, Env: env})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	manual, err := segment.Calculate(segment.Input{
		Pipe:       base.Pipe,
		Material:   base.Material,
		Fluid:      base.Fluid,
		FlowM3S:    base.FlowM3S,
		LengthM:    segs[0].LengthM,
		ElevationM: 5,
	}, env)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "dp total", 1e-9, fromRoute.DPTotalPa, manual.DPTotalPa)
}

func TestConvert02(tst *testing.T) {
	chk.PrintTitle("convert02. L route equals two manual segments plus one elbow")

	env := catalog.CraneEnv()
	base := waterBase()
	r := Route{Nodes: []Node{
		{X: 0, Y: 0, Z: 0},
		{X: 30, Y: 0, Z: 0},
		{X: 30, Y: 20, Z: 0},
	}}
	segs, err := ToSegments(r, Options{LongRadius: true}, base)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 {
		tst.Fatalf("want 2 segments, got %d", len(segs))
	}
	if len(segs[0].Fittings) != 1 || segs[0].Fittings[0].ID != "elbow_90_lr_welded" {
		tst.Fatalf("elbow must attach to the arriving run: %+v", segs[0].Fittings)
	}

	fromRoute, err := system.Calculate(system.Input{Segments: segs, Env: env})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	manual, err := system.Calculate(system.Input{
		Segments: []segment.Input{
			{
				Pipe: base.Pipe, Material: base.Material, Fluid: base.Fluid,
				FlowM3S: base.FlowM3S, LengthM: 30,
				Fittings: []fittings.Request{{ID: "elbow_90_lr_welded", Quantity: 1}},
			},
			{
				Pipe: base.Pipe, Material: base.Material, Fluid: base.Fluid,
				FlowM3S: base.FlowM3S, LengthM: 20,
			},
		},
		Env: env,
	})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "dp total", 1e-9, fromRoute.DPTotalPa, manual.DPTotalPa)
	chk.Float64(tst, "dp fittings", 1e-9, fromRoute.DPFittingsPa, manual.DPFittingsPa)
}

func TestConvert03(tst *testing.T) {
	chk.PrintTitle("convert03. manual node fittings and last-node clamping")

	base := waterBase()
	r := Route{Nodes: []Node{
		{X: 0, Fittings: []fittings.Request{{ID: "entrance_sharp"}}},
		{X: 30},
		{X: 30, Y: 20, Fittings: []fittings.Request{{ID: "exit"}}},
	}}
	segs, err := ToSegments(r, Options{}, base)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(segs[0].Fittings) != 2 { // entrance plus the detected elbow
		tst.Errorf("segment 0 fittings: %+v", segs[0].Fittings)
	}
	if len(segs[1].Fittings) != 1 || segs[1].Fittings[0].ID != "exit" {
		tst.Errorf("last node's fittings must land on the final run: %+v", segs[1].Fittings)
	}
}
