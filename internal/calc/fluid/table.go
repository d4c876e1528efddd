package fluid

import (
	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/diag"
)

// TableRow is one temperature row of a saturated-liquid property table.
type TableRow struct {
	TempC        float64 `json:"temp_c"`
	Density      float64 `json:"density_kg_m3"`
	Viscosity    float64 `json:"viscosity_pa_s"`
	PressureKPa  float64 `json:"pressure_kpa"`
	SpecificHeat float64 `json:"specific_heat_kj_kg_k"`
}

// SaturationTable is a temperature-indexed saturated-liquid table. Rows
// must be sorted ascending by temperature.
type SaturationTable struct {
	Name      string         `json:"name"`
	Reference diag.Reference `json:"reference"`
	Rows      []TableRow     `json:"rows"`
}

func (SaturationTable) methodTag() string { return "table" }

// lookup interpolates all columns linearly at t. An exact table abscissa
// returns that row unmodified; outside [min, max] it is a range error.
func (tb SaturationTable) lookup(t float64) (TableRow, error) {
	n := len(tb.Rows)
	if n == 0 {
		return TableRow{}, calcerr.Inputf("saturation table %q has no rows", tb.Name)
	}
	lo, hi := tb.Rows[0].TempC, tb.Rows[n-1].TempC
	if t < lo || t > hi {
		return TableRow{}, &calcerr.RangeError{Quantity: "temperature", Value: t, Min: lo, Max: hi}
	}
	for i := 0; i < n; i++ {
		if tb.Rows[i].TempC == t {
			return tb.Rows[i], nil
		}
		if tb.Rows[i].TempC > t {
			a, b := tb.Rows[i-1], tb.Rows[i]
			f := (t - a.TempC) / (b.TempC - a.TempC)
			return TableRow{
				TempC:        t,
				Density:      a.Density + f*(b.Density-a.Density),
				Viscosity:    a.Viscosity + f*(b.Viscosity-a.Viscosity),
				PressureKPa:  a.PressureKPa + f*(b.PressureKPa-a.PressureKPa),
				SpecificHeat: a.SpecificHeat + f*(b.SpecificHeat-a.SpecificHeat),
			}, nil
		}
	}
	return tb.Rows[n-1], nil
}

// Table2D is a property surface sampled over a temperature × concentration
// grid: Values[i][j] belongs to Temps[i] and Concs[j]. Both axes are sorted
// ascending.
type Table2D struct {
	Temps  []float64   `json:"temps_c"`
	Concs  []float64   `json:"concs"`
	Values [][]float64 `json:"values"`
}

// lookup bilinearly interpolates, temperature axis first. Queries outside
// either axis fail with a range error.
func (tb Table2D) lookup(t, c float64) (float64, error) {
	ti, tf, err := bracket("temperature", tb.Temps, t)
	if err != nil {
		return 0, err
	}
	ci, cf, err := bracket("concentration", tb.Concs, c)
	if err != nil {
		return 0, err
	}
	row := func(i int) float64 {
		v := tb.Values[i]
		return v[ci] + cf*(v[ci+1]-v[ci])
	}
	return row(ti) + tf*(row(ti+1)-row(ti)), nil
}

// bracket locates x on a sorted axis and returns the lower index plus the
// 0..1 interpolation fraction. The last point maps to the final interval
// with fraction 1.
func bracket(name string, axis []float64, x float64) (int, float64, error) {
	n := len(axis)
	if n < 2 {
		return 0, 0, calcerr.Inputf("axis %s needs at least 2 points", name)
	}
	if x < axis[0] || x > axis[n-1] {
		return 0, 0, &calcerr.RangeError{Quantity: name, Value: x, Min: axis[0], Max: axis[n-1]}
	}
	for i := 1; i < n; i++ {
		if x <= axis[i] {
			return i - 1, (x - axis[i-1]) / (axis[i] - axis[i-1]), nil
		}
	}
	return n - 2, 1, nil
}
