package fluid

import (
	"math"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/diag"
)

// PiecewisePoly is a property of the pure alcohol as piecewise quartic
// polynomials in temperature. Breaks has one more entry than Coeffs; piece
// i covers Breaks[i]..Breaks[i+1]. Outside the overall span the nearest
// piece extrapolates.
type PiecewisePoly struct {
	Breaks []float64    `json:"breaks_c"`
	Coeffs [][5]float64 `json:"coeffs"` // a0 + a1·t + a2·t² + a3·t³ + a4·t⁴
}

func (p PiecewisePoly) eval(t float64) (float64, error) {
	if len(p.Breaks) != len(p.Coeffs)+1 {
		return 0, calcerr.Inputf("piecewise polynomial has %d breaks for %d pieces", len(p.Breaks), len(p.Coeffs))
	}
	i := 0
	for i < len(p.Coeffs)-1 && t > p.Breaks[i+1] {
		i++
	}
	c := p.Coeffs[i]
	return c[0] + t*(c[1]+t*(c[2]+t*(c[3]+t*c[4]))), nil
}

// AlcoholBlend models an alcohol-water mixture from pure-alcohol reference
// polynomials plus ideal mixing: density mixes linearly by volume fraction,
// viscosity by volume-fraction-weighted logarithms. The ideal rules are a
// deliberate simplification; they underestimate the mid-range viscosity
// peak, and the pinned reference values assume exactly that behaviour.
type AlcoholBlend struct {
	Name          string         `json:"name"`
	Reference     diag.Reference `json:"reference"`
	DensityPoly   PiecewisePoly  `json:"density_poly"`   // pure alcohol density [kg/m³]
	ViscosityPoly PiecewisePoly  `json:"viscosity_poly"` // pure alcohol ln(viscosity mPa·s)
}

func (AlcoholBlend) methodTag() string { return "alcohol_blend" }

func (a AlcoholBlend) properties(t float64, conc Concentration) (State, error) {
	phi, err := conc.VolumeFraction()
	if err != nil {
		return State{}, err
	}
	if err := checkFraction(phi); err != nil {
		return State{}, err
	}

	rhoA, err := a.DensityPoly.eval(t)
	if err != nil {
		return State{}, err
	}
	lnMuA, err := a.ViscosityPoly.eval(t)
	if err != nil {
		return State{}, err
	}

	rho := phi*rhoA + (1.0-phi)*waterDensity(t)
	lnMu := phi*lnMuA + (1.0-phi)*math.Log(waterViscosity(t)*1000.0)

	return State{
		Density:      rho,
		Viscosity:    math.Exp(lnMu) / 1000.0,
		TemperatureC: t,
		Reference:    a.Reference,
	}, nil
}
