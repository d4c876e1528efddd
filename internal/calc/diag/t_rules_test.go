package diag

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func keys(ws []Warning) map[string]bool {
	m := make(map[string]bool, len(ws))
	for _, w := range ws {
		m[w.Key] = true
	}
	return m
}

func TestRules01(tst *testing.T) {
	chk.PrintTitle("rules01. a nominal turbulent run is clean")

	ws := Evaluate(Values{
		Reynolds:          67112,
		Regime:            "turbulent",
		VelocityMS:        1.28,
		RelativeRoughness: 8.8e-4,
		InnerDiameterInch: 2.067,
		ElevationM:        5,
	})
	if len(ws) != 0 {
		tst.Errorf("want no warnings, got %v", ws)
	}
}

func TestRules02(tst *testing.T) {
	chk.PrintTitle("rules02. independent rules fire together")

	ws := Evaluate(Values{
		Reynolds:   3000,
		Regime:     "transitional",
		VelocityMS: 0.3,
		ElevationM: 50,
	})
	got := keys(ws)
	for _, want := range []string{"flow_transitional", "velocity_low", "elevation_large"} {
		if !got[want] {
			tst.Errorf("missing %q in %v", want, got)
		}
	}
	if len(ws) < 3 {
		tst.Errorf("want at least 3 warnings, got %d", len(ws))
	}
}

func TestRules03(tst *testing.T) {
	chk.PrintTitle("rules03. per-rule thresholds")

	if ws := Evaluate(Values{Reynolds: 50, Regime: "laminar", VelocityMS: 1}); !keys(ws)["reynolds_very_low"] {
		tst.Errorf("Re=50 must flag creeping flow: %v", ws)
	}
	if ws := Evaluate(Values{Reynolds: 1e5, Regime: "turbulent", VelocityMS: 3.5}); !keys(ws)["velocity_high"] {
		tst.Errorf("3.5 m/s must flag erosion risk: %v", ws)
	}
	if ws := Evaluate(Values{Reynolds: 1e5, Regime: "turbulent", VelocityMS: 1, RelativeRoughness: 2e-3}); !keys(ws)["roughness_high"] {
		tst.Errorf("rel roughness 2e-3 must be flagged: %v", ws)
	}
	if ws := Evaluate(Values{Reynolds: 1e5, Regime: "turbulent", VelocityMS: 1, Has3KFitting: true, InnerDiameterInch: 30}); !keys(ws)["three_k_diameter_range"] {
		tst.Errorf("3-K outside its size range must be flagged: %v", ws)
	}
	if ws := Evaluate(Values{Reynolds: 1e5, Regime: "turbulent", VelocityMS: 1, FrictionLD: 2, SumFittingK: 5}); !keys(ws)["fittings_dominant"] {
		tst.Errorf("fitting-dominated line must be flagged: %v", ws)
	}

	// zero velocity and zero Reynolds stay silent
	if ws := Evaluate(Values{Regime: "turbulent"}); len(ws) != 0 {
		tst.Errorf("zeroed inputs must not warn: %v", ws)
	}
}

func TestDedup01(tst *testing.T) {
	chk.PrintTitle("dedup01. warnings by key, references by value, first seen wins")

	ws := DedupWarnings([]Warning{
		{Key: "a", Message: "first"},
		{Key: "b"},
		{Key: "a", Message: "second"},
	})
	if len(ws) != 2 || ws[0].Message != "first" || ws[1].Key != "b" {
		tst.Errorf("warning dedup: %v", ws)
	}

	r1 := Reference{Source: "Crane TP-410", Page: "A-26"}
	r2 := Reference{Source: "Perry 8e", Page: "6-10"}
	rs := DedupReferences([]Reference{r1, r2, r1})
	if len(rs) != 2 || rs[0] != r1 || rs[1] != r2 {
		tst.Errorf("reference dedup: %v", rs)
	}
}
