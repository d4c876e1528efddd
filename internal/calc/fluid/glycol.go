package fluid

import (
	"math"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/diag"
)

// GlycolPolynomial is the double-variable polynomial model used for
// glycol-water mixtures (Melinder-style). A property is
//
//	P = sum_i sum_j C[n] * (c - cBase)^i * (t - tBase)^j
//
// where i runs over concentration groups, j over the temperature powers of
// group i (TermsPerGroup[i] of them), and n indexes the flat coefficient
// slice in that order. Density comes out directly; the viscosity polynomial
// yields ln(viscosity in mPa·s) and is exponentiated. Closed form;
// extrapolates silently outside the fitted region.
type GlycolPolynomial struct {
	Reference       diag.Reference `json:"reference"`
	BaseConcPct     float64        `json:"base_conc_pct"` // mass percent at the reference point
	BaseTempC       float64        `json:"base_temp_c"`
	TermsPerGroup   []int          `json:"terms_per_group"`
	DensityCoeffs   []float64      `json:"density_coeffs"`
	ViscosityCoeffs []float64      `json:"viscosity_coeffs"`
}

func (GlycolPolynomial) methodTag() string { return "glycol_poly" }

func (g GlycolPolynomial) properties(t float64, conc Concentration) (State, error) {
	w, err := conc.MassFraction()
	if err != nil {
		return State{}, err
	}
	if err := checkFraction(w); err != nil {
		return State{}, err
	}
	dc := w*100.0 - g.BaseConcPct
	dt := t - g.BaseTempC

	rho, err := g.eval(g.DensityCoeffs, dc, dt)
	if err != nil {
		return State{}, err
	}
	lnMu, err := g.eval(g.ViscosityCoeffs, dc, dt)
	if err != nil {
		return State{}, err
	}

	return State{
		Density:      rho,
		Viscosity:    math.Exp(lnMu) / 1000.0,
		TemperatureC: t,
		Reference:    g.Reference,
	}, nil
}

func (g GlycolPolynomial) eval(coeffs []float64, dc, dt float64) (float64, error) {
	total := 0
	for _, n := range g.TermsPerGroup {
		total += n
	}
	if total != len(coeffs) {
		return 0, calcerr.Inputf("glycol polynomial has %d coefficients, term counts need %d", len(coeffs), total)
	}
	sum := 0.0
	n := 0
	cp := 1.0
	for _, terms := range g.TermsPerGroup {
		tp := 1.0
		for j := 0; j < terms; j++ {
			sum += coeffs[n] * cp * tp
			tp *= dt
			n++
		}
		cp *= dc
	}
	return sum, nil
}
