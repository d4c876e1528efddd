package pipe

import (
	"math"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/diag"
)

// Friction method tags reported in results.
const (
	MethodChurchill  = "churchill"
	MethodSwameeJain = "swamee_jain"
	MethodVonKarman  = "von_karman"
)

// ChurchillReference identifies the primary friction correlation.
var ChurchillReference = diag.Reference{
	Source:   "Churchill, Chem. Eng. 84 (1977)",
	Page:     "91-92",
	Equation: "f = 8[(8/Re)^12 + (A+B)^-1.5]^(1/12)",
}

// Churchill returns the Darcy friction factor by Churchill's single
// explicit correlation, valid across laminar, transitional and turbulent
// flow. relRough is the relative roughness e/D.
func Churchill(re, relRough float64) (float64, error) {
	if re <= 0 {
		return 0, calcerr.Inputf("Reynolds number must be positive, got %g", re)
	}
	if relRough < 0 {
		return 0, calcerr.Inputf("relative roughness must not be negative, got %g", relRough)
	}
	a := math.Pow(2.457*math.Log(1.0/(math.Pow(7.0/re, 0.9)+0.27*relRough)), 16)
	b := math.Pow(37530.0/re, 16)
	return 8.0 * math.Pow(math.Pow(8.0/re, 12)+1.0/math.Pow(a+b, 1.5), 1.0/12.0), nil
}

// SwameeJain returns the turbulent-only explicit approximation to the
// Colebrook equation. Not on the primary pipeline; kept as an alternate
// method for cross-checks.
func SwameeJain(re, relRough float64) (float64, error) {
	if re <= 0 {
		return 0, calcerr.Inputf("Reynolds number must be positive, got %g", re)
	}
	d := math.Log10(relRough/3.7 + 5.74/math.Pow(re, 0.9))
	return 0.25 / (d * d), nil
}

// VonKarman returns the fully-turbulent (Reynolds-independent) friction
// factor fT = [2·log10(3.7·D/e)]^-2. It is used only inside fitting K
// formulas, never for straight-pipe loss.
func VonKarman(innerM, roughnessM float64) (float64, error) {
	if innerM <= 0 {
		return 0, calcerr.Inputf("inner diameter must be positive, got %g m", innerM)
	}
	if roughnessM <= 0 {
		return 0, calcerr.Inputf("roughness must be positive, got %g m", roughnessM)
	}
	d := 2.0 * math.Log10(3.7*innerM/roughnessM)
	return 1.0 / (d * d), nil
}
