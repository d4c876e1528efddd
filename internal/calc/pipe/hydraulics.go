package pipe

import (
	"math"

	"PipeFlow/internal/calc/calcerr"
)

type Regime string

const (
	RegimeLaminar      Regime = "laminar"
	RegimeTransitional Regime = "transitional"
	RegimeTurbulent    Regime = "turbulent"
)

// Regime thresholds for circular pipes.
const (
	laminarLimit   = 2100.0
	turbulentLimit = 4000.0
)

// FlowArea returns the flow cross-section [m²] for an inner diameter [m].
func FlowArea(innerM float64) (float64, error) {
	if innerM <= 0 {
		return 0, calcerr.Inputf("inner diameter must be positive, got %g m", innerM)
	}
	r := innerM / 2.0
	return math.Pi * r * r, nil
}

// Velocity returns the mean flow velocity [m/s] for a volumetric flow
// [m³/s] through an inner diameter [m].
func Velocity(flowM3S, innerM float64) (float64, error) {
	if flowM3S <= 0 {
		return 0, calcerr.Inputf("flow rate must be positive, got %g m3/s", flowM3S)
	}
	area, err := FlowArea(innerM)
	if err != nil {
		return 0, err
	}
	return flowM3S / area, nil
}

// Reynolds returns the Reynolds number rho·V·D/mu.
func Reynolds(density, velocityMS, innerM, viscosity float64) (float64, error) {
	if viscosity <= 0 {
		return 0, calcerr.Inputf("viscosity must be positive, got %g Pa.s", viscosity)
	}
	return density * velocityMS * innerM / viscosity, nil
}

// ClassifyRegime maps a Reynolds number to a flow regime.
func ClassifyRegime(re float64) Regime {
	switch {
	case re < laminarLimit:
		return RegimeLaminar
	case re < turbulentLimit:
		return RegimeTransitional
	default:
		return RegimeTurbulent
	}
}
