package diag

// Values is the snapshot of computed segment quantities the rule set
// inspects. Regime uses the same strings as the hydraulics package
// ("laminar", "transitional", "turbulent").
type Values struct {
	Reynolds          float64
	Regime            string
	VelocityMS        float64
	RelativeRoughness float64
	InnerDiameterInch float64
	Has3KFitting      bool
	FrictionLD        float64 // f·(L/D) of the straight pipe
	SumFittingK       float64 // ΣK over all resolved fittings
	ElevationM        float64 // signed elevation change
}

// Evaluate runs the fixed, ordered rule set over v. Every rule is
// independent; any subset may fire together. The returned slice may be
// empty but evaluation itself never fails.
func Evaluate(v Values) []Warning {
	var out []Warning

	if v.Reynolds > 0 && v.Reynolds < 100 {
		w := newWarning(SeverityCaution, "flow", "reynolds_very_low",
			"very low Reynolds number (Re=%.1f); creeping-flow correlations may not hold", v.Reynolds)
		w.Params = map[string]any{"reynolds": v.Reynolds}
		out = append(out, w)
	}

	if v.Regime == "transitional" {
		w := newWarning(SeverityWarning, "flow", "flow_transitional",
			"flow is in the transitional regime (Re=%.0f); friction prediction is uncertain", v.Reynolds)
		w.Params = map[string]any{"reynolds": v.Reynolds}
		out = append(out, w)
	}

	if v.VelocityMS > 3 {
		w := newWarning(SeverityWarning, "velocity", "velocity_high",
			"high velocity (%.2f m/s); erosion and noise risk above 3 m/s", v.VelocityMS)
		w.Params = map[string]any{"velocity_m_s": v.VelocityMS}
		out = append(out, w)
	}

	if v.VelocityMS > 0 && v.VelocityMS < 0.5 {
		w := newWarning(SeverityInfo, "velocity", "velocity_low",
			"low velocity (%.2f m/s); sedimentation possible below 0.5 m/s", v.VelocityMS)
		w.Params = map[string]any{"velocity_m_s": v.VelocityMS}
		out = append(out, w)
	}

	if v.RelativeRoughness > 0.001 {
		w := newWarning(SeverityInfo, "pipe", "roughness_high",
			"relative roughness e/D=%.4f exceeds 0.001; friction factor is roughness dominated", v.RelativeRoughness)
		w.Params = map[string]any{"relative_roughness": v.RelativeRoughness}
		out = append(out, w)
	}

	if v.Has3KFitting && (v.InnerDiameterInch < 0.5 || v.InnerDiameterInch > 24) {
		w := newWarning(SeverityWarning, "fittings", "three_k_diameter_range",
			"3-K fitting correlation used outside its 0.5-24 inch validation range (D=%.2f in)", v.InnerDiameterInch)
		w.Params = map[string]any{"diameter_inch": v.InnerDiameterInch}
		out = append(out, w)
	}

	if v.FrictionLD > 0 && v.SumFittingK > 0 && v.SumFittingK > v.FrictionLD {
		w := newWarning(SeverityInfo, "fittings", "fittings_dominant",
			"fitting losses (sumK=%.2f) exceed straight-pipe friction (f.L/D=%.2f)", v.SumFittingK, v.FrictionLD)
		w.Params = map[string]any{"sum_k": v.SumFittingK, "friction_ld": v.FrictionLD}
		out = append(out, w)
	}

	if v.ElevationM > 30 || v.ElevationM < -30 {
		w := newWarning(SeverityInfo, "elevation", "elevation_large",
			"large elevation change (%.1f m); verify static head and pump placement", v.ElevationM)
		w.Params = map[string]any{"elevation_m": v.ElevationM}
		out = append(out, w)
	}

	return out
}
