// Package fluid resolves liquid transport properties (density, viscosity)
// from temperature and concentration. Each supported correlation family is
// a payload struct implementing Method; a single Resolve dispatch matches
// them exhaustively. Table-backed families fail with a range error outside
// their validated domain, closed-form families extrapolate silently.
package fluid

import (
	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/diag"
)

// State is a fully resolved fluid at one temperature. It is produced fresh
// per query and never cached.
type State struct {
	Density      float64        `json:"density_kg_m3"`
	Viscosity    float64        `json:"viscosity_pa_s"`
	TemperatureC float64        `json:"temperature_c"`
	PressureKPa  float64        `json:"pressure_kpa,omitempty"` // saturation pressure where the source table provides it
	Reference    diag.Reference `json:"reference,omitempty"`
}

type ConcUnit string

const (
	UnitNone           ConcUnit = ""
	UnitMassPercent    ConcUnit = "mass_percent"
	UnitMassFraction   ConcUnit = "mass_fraction"
	UnitVolumePercent  ConcUnit = "volume_percent"
	UnitVolumeFraction ConcUnit = "volume_fraction"
)

// Concentration is a solute amount with its unit. The zero value means
// "no concentration given".
type Concentration struct {
	Value float64  `json:"value"`
	Unit  ConcUnit `json:"unit"`
}

// MassFraction converts to a 0..1 mass fraction.
func (c Concentration) MassFraction() (float64, error) {
	switch c.Unit {
	case UnitMassFraction:
		return c.Value, nil
	case UnitMassPercent:
		return c.Value / 100.0, nil
	}
	return 0, calcerr.Inputf("concentration unit %q cannot be read as a mass fraction", string(c.Unit))
}

// VolumeFraction converts to a 0..1 volume fraction.
func (c Concentration) VolumeFraction() (float64, error) {
	switch c.Unit {
	case UnitVolumeFraction:
		return c.Value, nil
	case UnitVolumePercent:
		return c.Value / 100.0, nil
	}
	return 0, calcerr.Inputf("concentration unit %q cannot be read as a volume fraction", string(c.Unit))
}

func checkFraction(w float64) error {
	if w < 0 || w > 1 {
		return calcerr.Inputf("fraction %g outside [0, 1]", w)
	}
	return nil
}
