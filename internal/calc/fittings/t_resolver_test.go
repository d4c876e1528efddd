package fittings

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/pipe"
)

func testEnv(active string) Env {
	return Env{
		Active: active,
		LD: &LDCatalog{Entries: map[string]LDEntry{
			"elbow_90_lr_welded": {LD: 14, Description: "90 deg long-radius elbow"},
			"gate_valve":         {LD: 8, Description: "gate valve"},
		}},
		ThreeK: &ThreeKCatalog{Entries: map[string]ThreeKEntry{
			"elbow_90_std_threaded": {K1: 800, Ki: 0.14, Kd: 4.0, Description: "90 deg standard elbow"},
		}},
		FixedK: &FixedKCatalog{Entries: map[string]FixedKEntry{
			"entrance_sharp": {K: 0.5, Description: "sharp entrance"},
			"exit":           {K: 1.0, Description: "exit"},
		}},
		FTBySize: map[string]float64{"2": 0.019},
	}
}

func testCtx() Context {
	return Context{
		Pipe:       pipe.Spec{Nominal: "2", InnerMM: 52.50},
		Density:    998.21,
		VelocityMS: 1.2832,
		Reynolds:   67112,
		FT:         0.019,
	}
}

func TestCv01(tst *testing.T) {
	chk.PrintTitle("cv01. K = 894 d^4 / Cv^2, quartic in d, inverse square in Cv")

	env := testEnv(MethodCraneLD)
	ctx := testCtx()

	r1, err := env.Resolve(Request{ID: "valve", Cv: 100}, ctx)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	d := ctx.Pipe.InnerInch()
	chk.Float64(tst, "K(Cv=100)", 1e-12, r1.K, 894.0*math.Pow(d, 4)/1e4)
	if r1.Method != MethodCv {
		tst.Errorf("method: got %q", r1.Method)
	}

	r2, err := env.Resolve(Request{ID: "valve", Cv: 200}, ctx)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "K ratio on Cv doubling", 1e-12, r1.K/r2.K, 4.0)
	if r2.K >= r1.K {
		tst.Errorf("K must decrease with Cv")
	}
}

func TestCv02(tst *testing.T) {
	chk.PrintTitle("cv02. Cv override wins over every catalog")

	env := testEnv(MethodCraneLD)
	r, err := env.Resolve(Request{ID: "entrance_sharp", Cv: 50}, testCtx())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if r.Method != MethodCv {
		tst.Errorf("Cv override must take priority, got %q", r.Method)
	}

	if _, err := env.Resolve(Request{ID: "x", Cv: -1}, testCtx()); err == nil {
		tst.Errorf("negative Cv must fail")
	}
}

func TestCv03(tst *testing.T) {
	chk.PrintTitle("cv03. plausibility warnings on extreme K")

	env := testEnv(MethodCraneLD)
	r, err := env.Resolve(Request{ID: "huge_valve", Cv: 10000}, testCtx())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if r.Warning == nil || r.Warning.Key != "cv_k_small" {
		tst.Errorf("tiny K must warn, got %+v", r.Warning)
	}

	r, err = env.Resolve(Request{ID: "pinhole", Cv: 1}, testCtx())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if r.Warning == nil || r.Warning.Key != "cv_k_large" {
		tst.Errorf("huge K must warn, got %+v", r.Warning)
	}
}

func TestFixedK01(tst *testing.T) {
	chk.PrintTitle("fixedk01. entrance/exit catalog precedes the active catalog")

	env := testEnv(MethodCraneLD)
	r, err := env.Resolve(Request{ID: "exit"}, testCtx())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "K", 0, r.K, 1.0)
	if r.Method != MethodFixedK {
		tst.Errorf("method: got %q", r.Method)
	}
}

func TestCrane01(tst *testing.T) {
	chk.PrintTitle("crane01. K = fT (L/D), dp and head")

	env := testEnv(MethodCraneLD)
	ctx := testCtx()
	r, err := env.Resolve(Request{ID: "elbow_90_lr_welded", Quantity: 4}, ctx)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "K", 1e-12, r.K, 0.019*14.0)
	wantDP := 4.0 * r.K * ctx.Density * ctx.VelocityMS * ctx.VelocityMS / 2.0
	chk.Float64(tst, "dp", 1e-9, r.DPPa, wantDP)
	chk.Float64(tst, "head", 1e-12, r.HeadM, wantDP/(ctx.Density*pipe.Gravity))
}

func TestCrane02(tst *testing.T) {
	chk.PrintTitle("crane02. fT falls back to the nominal-size table")

	env := testEnv(MethodCraneLD)
	ctx := testCtx()
	ctx.FT = 0
	r, err := env.Resolve(Request{ID: "gate_valve"}, ctx)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "K", 1e-12, r.K, 0.019*8.0)

	ctx.Pipe.Nominal = "99"
	if _, err := env.Resolve(Request{ID: "gate_valve"}, ctx); err == nil {
		tst.Errorf("no fT source must fail")
	}
}

func TestThreeK01(tst *testing.T) {
	chk.PrintTitle("threek01. K = K1/Re + Ki (1 + Kd/d^0.3)")

	env := testEnv(MethodThreeK)
	ctx := testCtx()
	r, err := env.Resolve(Request{ID: "elbow_90_std_threaded"}, ctx)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	d := ctx.Pipe.InnerInch()
	want := 800.0/ctx.Reynolds + 0.14*(1.0+4.0/math.Pow(d, 0.3))
	chk.Float64(tst, "K", 1e-12, r.K, want)
	if r.Method != MethodThreeK {
		tst.Errorf("method: got %q", r.Method)
	}

	ctx.Reynolds = 0
	if _, err := env.Resolve(Request{ID: "elbow_90_std_threaded"}, ctx); err == nil {
		tst.Errorf("3-K without Reynolds must fail")
	}
}

func TestLookup01(tst *testing.T) {
	chk.PrintTitle("lookup01. unknown id is a LookupError")

	env := testEnv(MethodCraneLD)
	_, err := env.Resolve(Request{ID: "no_such_fitting"}, testCtx())
	var le *calcerr.LookupError
	if !errors.As(err, &le) {
		tst.Errorf("want LookupError, got %v", err)
	}
}

func TestResolveAll01(tst *testing.T) {
	chk.PrintTitle("resolveall01. quantity-weighted K sum and 3-K flag")

	env := testEnv(MethodThreeK)
	ctx := testCtx()
	rs, sumK, any3K, err := env.ResolveAll([]Request{
		{ID: "entrance_sharp"},
		{ID: "elbow_90_std_threaded", Quantity: 2},
	}, ctx)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != 2 {
		tst.Fatalf("want 2 resolved fittings, got %d", len(rs))
	}
	if !any3K {
		tst.Errorf("3-K flag must be set")
	}
	chk.Float64(tst, "sumK", 1e-12, sumK, rs[0].K+2.0*rs[1].K)

	rs, sumK, any3K, err = env.ResolveAll(nil, ctx)
	if err != nil || rs != nil || sumK != 0 || any3K {
		tst.Errorf("empty request list must be a zero result")
	}
}
