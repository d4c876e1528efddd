package fluid

// Closed-form pure-water properties used as the solvent baseline inside the
// mixture models. The mixture paths need water values at arbitrary
// temperatures without dragging a table dependency along, so they use these
// correlations instead of the saturation table.

// waterDensity returns the density of air-free water [kg/m³] at t [°C]
// (Kell, J. Chem. Eng. Data 20, 1975; valid 0-150 °C, extrapolates outside).
func waterDensity(t float64) float64 {
	num := 999.83952 + t*(16.945176+t*(-0.0079870401+t*(-4.6170461e-5+t*(1.0556302e-7+t*(-2.8054253e-10)))))
	return num / (1.0 + 0.016879850e0*t)
}

// waterViscosity returns the dynamic viscosity of water [Pa·s] at t [°C]
// (Laliberte's water fit, J. Chem. Eng. Data 52, 2007).
func waterViscosity(t float64) float64 {
	mPas := (t + 246.0) / (0.05594*t*t + 5.2842*t + 137.37)
	return mPas / 1000.0
}
