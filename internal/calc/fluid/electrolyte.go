package fluid

import (
	"math"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/diag"
)

// Solute is one dissolved species of an electrolyte solution with its
// Laliberte model coefficients: five for apparent density, six for apparent
// viscosity.
type Solute struct {
	Name            string     `json:"name"`
	MassFraction    float64    `json:"mass_fraction"`
	DensityCoeffs   [5]float64 `json:"density_coeffs"`
	ViscosityCoeffs [6]float64 `json:"viscosity_coeffs"`
}

// Electrolyte is the universal multi-solute aqueous electrolyte model
// (Laliberte & Cooper 2004 for density, Laliberte 2007 for viscosity).
// Density mixes volume-additively across water and all solutes; viscosity
// mixes by mass-weighted logarithms. Closed form; extrapolates silently.
type Electrolyte struct {
	Reference diag.Reference `json:"reference"`
	Solutes   []Solute       `json:"solutes"`
}

func (Electrolyte) methodTag() string { return "electrolyte" }

func (e Electrolyte) properties(t float64, conc Concentration) (State, error) {
	solutes := e.Solutes
	if conc.Unit != UnitNone {
		w, err := conc.MassFraction()
		if err != nil {
			return State{}, err
		}
		if err := checkFraction(w); err != nil {
			return State{}, err
		}
		if len(solutes) != 1 {
			return State{}, calcerr.Inputf("explicit concentration needs exactly one solute, model has %d", len(solutes))
		}
		s := solutes[0]
		s.MassFraction = w
		solutes = []Solute{s}
	}

	ww := 1.0
	for _, s := range solutes {
		ww -= s.MassFraction
	}
	if ww <= 0 {
		return State{}, calcerr.Inputf("solute mass fractions sum to %g, no water left", 1.0-ww)
	}

	// Volume-additive density: 1/rho = w_w/rho_w + sum w_i/rho_app,i.
	invRho := ww / waterDensity(t)
	// Mass-weighted log viscosity: ln mu = w_w ln mu_w + sum w_i ln mu_app,i.
	lnMu := ww * math.Log(waterViscosity(t))
	for _, s := range solutes {
		if s.MassFraction == 0 {
			continue
		}
		invRho += s.MassFraction / apparentDensity(s, ww, t)
		lnMu += s.MassFraction * math.Log(apparentViscosity(s, ww, t))
	}

	return State{
		Density:      1.0 / invRho,
		Viscosity:    math.Exp(lnMu),
		TemperatureC: t,
		Reference:    e.Reference,
	}, nil
}

// apparentDensity is the Laliberte apparent solute density [kg/m³] at water
// mass fraction ww and temperature t [°C].
func apparentDensity(s Solute, ww, t float64) float64 {
	c := s.DensityCoeffs
	return (c[0]*(1.0-ww) + c[1]) * math.Exp(1e-6*(t+c[4])*(t+c[4])) / ((1.0 - ww) + c[2] + c[3]*t)
}

// apparentViscosity is the Laliberte apparent solute viscosity [Pa·s].
func apparentViscosity(s Solute, ww, t float64) float64 {
	v := s.ViscosityCoeffs
	ws := 1.0 - ww
	mPas := math.Exp((v[0]*math.Pow(ws, v[1])+v[2])/(v[3]*t+1.0)) / (v[4]*math.Pow(ws, v[5]) + 1.0)
	return mPas / 1000.0
}
