// Package pipe covers the pipe side of a segment calculation: dimension and
// material value objects, bulk-flow quantities (area, velocity, Reynolds
// number, regime) and the explicit friction-factor correlations.
package pipe

import "PipeFlow/internal/calc/diag"

const (
	// Gravity is the standard acceleration of free fall [m/s²].
	Gravity = 9.80665

	mmPerInch = 25.4
)

// Spec describes a resolved pipe size. Diameters are in millimetres; the
// identity fields (standard, nominal, schedule) are informational only.
type Spec struct {
	Standard string  `json:"standard,omitempty"`
	Nominal  string  `json:"nominal"`
	Schedule string  `json:"schedule,omitempty"`
	OuterMM  float64 `json:"outer_mm"`
	WallMM   float64 `json:"wall_mm"`
	InnerMM  float64 `json:"inner_mm"`
}

// InnerM returns the inner diameter in metres.
func (s Spec) InnerM() float64 { return s.InnerMM / 1000.0 }

// InnerInch returns the inner diameter in inches, as used by the Cv and
// 3-K fitting formulas.
func (s Spec) InnerInch() float64 { return s.InnerMM / mmPerInch }

// Material is a pipe wall material with its absolute roughness.
type Material struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	RoughnessMM float64        `json:"roughness_mm"`
	Reference   diag.Reference `json:"reference,omitempty"`
}

// RoughnessM returns the absolute roughness in metres.
func (m Material) RoughnessM() float64 { return m.RoughnessMM / 1000.0 }
