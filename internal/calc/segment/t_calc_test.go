package segment

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"PipeFlow/internal/calc/fittings"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/calc/pipe"
	"PipeFlow/internal/catalog"
)

// water at 20 degC in a 2 inch sch 40 carbon steel line, 10 m3/h over 50 m
// rising 5 m, with four long-radius welded elbows.
func referenceInput() Input {
	return Input{
		Pipe:       pipe.Spec{Standard: "ASME B36.10", Nominal: "2", Schedule: "40", InnerMM: 52.50},
		Material:   pipe.Material{ID: "carbon_steel_new", RoughnessMM: 0.046},
		Fluid:      fluid.State{Density: 998.21, Viscosity: 1.002e-3, TemperatureC: 20},
		FlowM3S:    10.0 / 3600.0,
		LengthM:    50,
		ElevationM: 5,
		Fittings: []fittings.Request{
			{ID: "elbow_90_lr_welded", Quantity: 4},
		},
	}
}

func TestSegment01(tst *testing.T) {
	chk.PrintTitle("segment01. reference line, component values")

	res, err := Calculate(referenceInput(), catalog.CraneEnv())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	chk.Float64(tst, "velocity", 1e-4, res.VelocityMS, 1.28318)
	chk.Float64(tst, "Reynolds", 50, res.Reynolds, 67112)
	if res.Regime != pipe.RegimeTurbulent {
		tst.Errorf("regime: got %q", res.Regime)
	}
	if res.FrictionFactor < 0.019 || res.FrictionFactor > 0.027 {
		tst.Errorf("friction factor out of band: %g", res.FrictionFactor)
	}
	if res.FrictionMethod != pipe.MethodChurchill {
		tst.Errorf("friction method: got %q", res.FrictionMethod)
	}

	chk.Float64(tst, "dp elevation", 0.5, res.DPElevationPa, 48945.6)

	if len(res.Fittings) != 1 {
		tst.Fatalf("want 1 resolved fitting, got %d", len(res.Fittings))
	}
	elbow := res.Fittings[0]
	if elbow.Method != fittings.MethodCraneLD {
		tst.Errorf("fitting method: got %q", elbow.Method)
	}
	// K = fT * 14 with fT from the rough-wall limit of the 2 inch line
	chk.Float64(tst, "elbow K", 5e-3, elbow.K, 0.019*14.0)
}

func TestSegment02(tst *testing.T) {
	chk.PrintTitle("segment02. totals are the sum of their components")

	in := referenceInput()
	res, err := Calculate(in, catalog.CraneEnv())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	chk.Float64(tst, "dp total", 1e-9, res.DPTotalPa,
		res.DPFrictionPa+res.DPFittingsPa+res.DPElevationPa)
	chk.Float64(tst, "head total", 1e-12, res.HeadTotalM,
		res.HeadFrictionM+res.HeadFittingsM+res.HeadElevationM)

	rhoG := in.Fluid.Density * pipe.Gravity
	chk.Float64(tst, "head/dp friction", 1e-12, res.HeadFrictionM, res.DPFrictionPa/rhoG)
	chk.Float64(tst, "head/dp total", 1e-12, res.HeadTotalM, res.DPTotalPa/rhoG)

	d := in.Pipe.InnerM()
	dyn := in.Fluid.Density * res.VelocityMS * res.VelocityMS / 2.0
	chk.Float64(tst, "darcy friction dp", 1e-9, res.DPFrictionPa,
		res.FrictionFactor*in.LengthM/d*dyn)

	sumDP := 0.0
	for _, f := range res.Fittings {
		sumDP += f.DPPa
	}
	chk.Float64(tst, "fittings dp sum", 1e-9, res.DPFittingsPa, sumDP)
}

func TestSegment03(tst *testing.T) {
	chk.PrintTitle("segment03. downhill segment can recover head")

	in := referenceInput()
	in.ElevationM = -20
	res, err := Calculate(in, catalog.CraneEnv())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if res.DPElevationPa >= 0 {
		tst.Errorf("descending elevation must be a negative dp, got %g", res.DPElevationPa)
	}
	chk.Float64(tst, "dp total", 1e-9, res.DPTotalPa,
		res.DPFrictionPa+res.DPFittingsPa+res.DPElevationPa)
}

func TestSegment04(tst *testing.T) {
	chk.PrintTitle("segment04. nominal run raises no advisories")

	res, err := Calculate(referenceInput(), catalog.CraneEnv())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(res.Warnings) != 0 {
		tst.Errorf("want no warnings, got %v", res.Warnings)
	}
	if len(res.References) == 0 {
		tst.Errorf("references must cite the friction correlation")
	}
}

func TestSegment05(tst *testing.T) {
	chk.PrintTitle("segment05. invalid inputs")

	in := referenceInput()
	in.LengthM = -1
	if _, err := Calculate(in, catalog.CraneEnv()); err == nil {
		tst.Errorf("negative length must fail")
	}

	in = referenceInput()
	in.Pipe.InnerMM = 0
	if _, err := Calculate(in, catalog.CraneEnv()); err == nil {
		tst.Errorf("zero diameter must fail")
	}

	in = referenceInput()
	in.Fluid.Viscosity = 0
	if _, err := Calculate(in, catalog.CraneEnv()); err == nil {
		tst.Errorf("zero viscosity must fail")
	}

	in = referenceInput()
	in.Fittings = []fittings.Request{{ID: "no_such_fitting"}}
	if _, err := Calculate(in, catalog.CraneEnv()); err == nil {
		tst.Errorf("unknown fitting must fail")
	}
}

func TestSegment06(tst *testing.T) {
	chk.PrintTitle("segment06. zero-length segment drops only friction")

	in := referenceInput()
	in.LengthM = 0
	in.Fittings = nil
	res, err := Calculate(in, catalog.CraneEnv())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "dp friction", 0, res.DPFrictionPa, 0)
	chk.Float64(tst, "dp total", 1e-9, res.DPTotalPa, res.DPElevationPa)
}
