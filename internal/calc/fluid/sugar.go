package fluid

import (
	"PipeFlow/internal/calc/diag"
)

// SucroseSolution pairs a 2-D viscosity table (temperature × mass percent)
// with a companion density polynomial relative to pure water:
//
//	rho = rho_w(t) · (1 + wp·(a + b·wp + c·t))    wp in mass percent
//
// Viscosity lookups outside the table fail with a range error; the density
// polynomial extrapolates.
type SucroseSolution struct {
	Reference      diag.Reference `json:"reference"`
	DensityCoeffs  [3]float64     `json:"density_coeffs"`
	ViscosityTable Table2D        `json:"viscosity_table"` // values in mPa·s
}

func (SucroseSolution) methodTag() string { return "sucrose" }

func (s SucroseSolution) properties(t float64, conc Concentration) (State, error) {
	w, err := conc.MassFraction()
	if err != nil {
		return State{}, err
	}
	if err := checkFraction(w); err != nil {
		return State{}, err
	}
	wp := w * 100.0

	mPas, err := s.ViscosityTable.lookup(t, wp)
	if err != nil {
		return State{}, err
	}

	c := s.DensityCoeffs
	rho := waterDensity(t) * (1.0 + wp*(c[0]+c[1]*wp+c[2]*t))

	return State{
		Density:      rho,
		Viscosity:    mPas / 1000.0,
		TemperatureC: t,
		Reference:    s.Reference,
	}, nil
}

// EthanolSolution models ethanol-water: viscosity from a 2-D table
// (temperature × mass percent), density from volume-additive mixing of the
// pure components corrected by an excess-volume term
//
//	v = w_e/rho_e(t) + w_w/rho_w(t) + w_e·(1-w_e)·(e0 + e1·t)
//
// with rho_e a quadratic in temperature. The excess term is negative for
// ethanol-water (the mixture contracts).
type EthanolSolution struct {
	Reference      diag.Reference `json:"reference"`
	PureDensity    [3]float64     `json:"pure_density_coeffs"` // rho_e = d0 + d1·t + d2·t²
	ExcessVolume   [2]float64     `json:"excess_volume_coeffs"`
	ViscosityTable Table2D        `json:"viscosity_table"` // values in mPa·s
}

func (EthanolSolution) methodTag() string { return "ethanol" }

func (e EthanolSolution) properties(t float64, conc Concentration) (State, error) {
	w, err := conc.MassFraction()
	if err != nil {
		return State{}, err
	}
	if err := checkFraction(w); err != nil {
		return State{}, err
	}

	mPas, err := e.ViscosityTable.lookup(t, w*100.0)
	if err != nil {
		return State{}, err
	}

	d := e.PureDensity
	rhoE := d[0] + t*(d[1]+t*d[2])
	v := w/rhoE + (1.0-w)/waterDensity(t) + w*(1.0-w)*(e.ExcessVolume[0]+e.ExcessVolume[1]*t)

	return State{
		Density:      1.0 / v,
		Viscosity:    mPas / 1000.0,
		TemperatureC: t,
		Reference:    e.Reference,
	}, nil
}
