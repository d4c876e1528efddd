package catalog

import (
	"PipeFlow/internal/calc/diag"
	"PipeFlow/internal/calc/fluid"
)

var laliberteDensityRef = diag.Reference{
	Source:   "Laliberte & Cooper, J. Chem. Eng. Data 49 (2004)",
	Equation: "apparent solute density",
}

var naclSolution = fluid.Electrolyte{
	Reference: laliberteDensityRef,
	Solutes: []fluid.Solute{{
		Name:            "NaCl",
		DensityCoeffs:   [5]float64{-0.00433, 0.06471, 1.01660, 0.014624, 3315.6},
		ViscosityCoeffs: [6]float64{16.222, 1.3229, 1.4849, 0.0074691, 30.78, 2.0583},
	}},
}

var cacl2Solution = fluid.Electrolyte{
	Reference: laliberteDensityRef,
	Solutes: []fluid.Solute{{
		Name:            "CaCl2",
		DensityCoeffs:   [5]float64{-0.03, 0.05612, 1.0, 0.013, 3400.0},
		ViscosityCoeffs: [6]float64{20.0, 0.8, 0.614, 0.0078, 35.0, 1.8},
	}},
}

var glycolRef = diag.Reference{
	Source: "Melinder, Properties of Secondary Working Fluids, IIR (2010)",
}

// Both glycol sets share the reference point (30 mass %, 20 °C) and the
// {4,3,2,1} term layout: the leading coefficient is the property at the
// reference point itself.
var ethyleneGlycol = fluid.GlycolPolynomial{
	Reference:     glycolRef,
	BaseConcPct:   30,
	BaseTempC:     20,
	TermsPerGroup: []int{4, 3, 2, 1},
	DensityCoeffs: []float64{
		1040.0, -0.45, -0.0025, 0.0,
		1.65, -0.005, 0.0,
		-0.005, 0.0,
		0.0,
	},
	ViscosityCoeffs: []float64{
		0.916, -0.026, 0.00025, 0.0,
		0.045, -0.0005, 0.0,
		0.00015, 0.0,
		0.0,
	},
}

var propyleneGlycol = fluid.GlycolPolynomial{
	Reference:     glycolRef,
	BaseConcPct:   30,
	BaseTempC:     20,
	TermsPerGroup: []int{4, 3, 2, 1},
	DensityCoeffs: []float64{
		1026.0, -0.50, -0.003, 0.0,
		1.0, -0.006, 0.0,
		-0.008, 0.0,
		0.0,
	},
	ViscosityCoeffs: []float64{
		1.194, -0.032, 0.0003, 0.0,
		0.052, -0.0007, 0.0,
		0.0002, 0.0,
		0.0,
	},
}

var methanolBlend = fluid.AlcoholBlend{
	Name: "methanol",
	Reference: diag.Reference{
		Source: "CRC Handbook of Chemistry and Physics, 95th ed.",
	},
	DensityPoly: fluid.PiecewisePoly{
		Breaks: []float64{-40, 25, 60},
		Coeffs: [][5]float64{
			{810.0, -0.935, -0.0004, 0, 0},
			{810.5, -0.950, -0.0003, 0, 0},
		},
	},
	ViscosityPoly: fluid.PiecewisePoly{
		Breaks: []float64{-40, 25, 60},
		Coeffs: [][5]float64{
			{-0.213, -0.0155, 4.0e-5, 0, 0},
			{-0.210, -0.0158, 4.0e-5, 0, 0},
		},
	},
}

var ethanolSolution = fluid.EthanolSolution{
	Reference: diag.Reference{
		Source: "CRC Handbook of Chemistry and Physics, 95th ed.",
	},
	PureDensity:  [3]float64{806.0, -0.8455, -0.0001},
	ExcessVolume: [2]float64{-1.62e-4, 2.0e-7},
	ViscosityTable: fluid.Table2D{
		Temps: []float64{0, 10, 20, 30, 40, 60},
		Concs: []float64{0, 20, 40, 60, 80, 100},
		Values: [][]float64{
			{1.792, 4.29, 6.94, 5.75, 3.69, 1.77},
			{1.307, 3.06, 4.76, 4.06, 2.71, 1.45},
			{1.002, 2.183, 2.910, 2.667, 2.008, 1.200},
			{0.798, 1.61, 2.18, 2.02, 1.58, 1.00},
			{0.653, 1.26, 1.68, 1.61, 1.28, 0.834},
			{0.467, 0.80, 1.02, 0.99, 0.82, 0.590},
		},
	},
}

var sucroseSolution = fluid.SucroseSolution{
	Reference: diag.Reference{
		Source: "Swindells et al., NBS Circular 440 (sucrose tables)",
	},
	DensityCoeffs: [3]float64{3.9605e-3, 1.5653e-5, -6.0e-6},
	ViscosityTable: fluid.Table2D{
		Temps: []float64{0, 20, 40, 60, 80},
		Concs: []float64{0, 20, 40, 60},
		Values: [][]float64{
			{1.792, 3.804, 14.58, 238.0},
			{1.002, 1.945, 6.162, 58.49},
			{0.653, 1.160, 3.249, 21.0},
			{0.467, 0.790, 1.975, 9.70},
			{0.355, 0.578, 1.325, 5.40},
		},
	},
}

var fluids = map[string]fluid.Method{
	"water":            waterTable,
	"seawater":         seawaterTable,
	"nacl":             naclSolution,
	"cacl2":            cacl2Solution,
	"ethylene_glycol":  ethyleneGlycol,
	"propylene_glycol": propyleneGlycol,
	"methanol":         methanolBlend,
	"ethanol":          ethanolSolution,
	"sucrose":          sucroseSolution,
}
