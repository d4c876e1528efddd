package fluid

import (
	"PipeFlow/internal/calc/calcerr"
)

// Method is the tagged union of property correlation families. Exactly the
// payload structs in this package implement it.
type Method interface {
	methodTag() string
}

// Tag reports the method tag of m ("table", "electrolyte", ...).
func Tag(m Method) string {
	if m == nil {
		return ""
	}
	return m.methodTag()
}

// Resolve computes the fluid state at temperature t [°C] and concentration
// conc for the given correlation family. It is the single dispatch point;
// every Method variant is matched here.
func Resolve(m Method, t float64, conc Concentration) (State, error) {
	switch v := m.(type) {
	case SaturationTable:
		row, err := v.lookup(t)
		if err != nil {
			return State{}, err
		}
		return State{
			Density:      row.Density,
			Viscosity:    row.Viscosity,
			TemperatureC: t,
			PressureKPa:  row.PressureKPa,
			Reference:    v.Reference,
		}, nil
	case Electrolyte:
		return v.properties(t, conc)
	case GlycolPolynomial:
		return v.properties(t, conc)
	case AlcoholBlend:
		return v.properties(t, conc)
	case SucroseSolution:
		return v.properties(t, conc)
	case EthanolSolution:
		return v.properties(t, conc)
	case nil:
		return State{}, calcerr.Inputf("no fluid method given")
	}
	return State{}, calcerr.Inputf("unsupported fluid method %q", Tag(m))
}
