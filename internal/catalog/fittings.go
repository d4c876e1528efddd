package catalog

import (
	"PipeFlow/internal/calc/diag"
	"PipeFlow/internal/calc/fittings"
)

var craneLD = fittings.LDCatalog{
	Reference: diag.Reference{
		Source: "Crane TP-410, Flow of Fluids",
		Page:   "A-26..A-29",
	},
	Entries: map[string]fittings.LDEntry{
		"elbow_90_std_welded":   {LD: 20, Description: "90 deg standard elbow, welded (r/d=1)"},
		"elbow_90_std_threaded": {LD: 30, Description: "90 deg standard elbow, threaded"},
		"elbow_90_lr_welded":    {LD: 14, Description: "90 deg long-radius elbow, welded (r/d=1.5)"},
		"elbow_90_lr_threaded":  {LD: 16, Description: "90 deg long-radius elbow, threaded"},
		"elbow_45_welded":       {LD: 16, Description: "45 deg elbow, welded"},
		"elbow_45_threaded":     {LD: 16, Description: "45 deg elbow, threaded"},
		"return_bend_welded":    {LD: 50, Description: "180 deg return bend, welded"},
		"return_bend_threaded":  {LD: 50, Description: "180 deg return bend, threaded"},
		"tee_run":               {LD: 20, Description: "tee, flow through run"},
		"tee_branch":            {LD: 60, Description: "tee, flow through branch"},
		"gate_valve":            {LD: 8, Description: "gate valve, fully open"},
		"globe_valve":           {LD: 340, Description: "globe valve, fully open"},
		"ball_valve":            {LD: 3, Description: "ball valve, full bore"},
		"butterfly_valve":       {LD: 45, Description: "butterfly valve, fully open"},
		"check_valve_swing":     {LD: 100, Description: "swing check valve"},
		"angle_valve":           {LD: 150, Description: "angle valve, fully open"},
	},
}

var darby3K = fittings.ThreeKCatalog{
	Reference: diag.Reference{
		Source: "Darby, Chemical Engineering Fluid Mechanics, 2nd ed.",
		Page:   "209, Table 7-3",
	},
	Entries: map[string]fittings.ThreeKEntry{
		"elbow_90_std_welded":   {K1: 800, Ki: 0.091, Kd: 4.0, Description: "90 deg standard elbow, welded (r/d=1)"},
		"elbow_90_std_threaded": {K1: 800, Ki: 0.14, Kd: 4.0, Description: "90 deg standard elbow, threaded"},
		"elbow_90_lr_welded":    {K1: 800, Ki: 0.071, Kd: 4.2, Description: "90 deg long-radius elbow, welded (r/d=1.5)"},
		"elbow_90_lr_threaded":  {K1: 800, Ki: 0.071, Kd: 4.2, Description: "90 deg long-radius elbow, threaded"},
		"elbow_45_welded":       {K1: 500, Ki: 0.052, Kd: 4.0, Description: "45 deg elbow, welded"},
		"elbow_45_threaded":     {K1: 500, Ki: 0.071, Kd: 4.2, Description: "45 deg elbow, threaded"},
		"return_bend_welded":    {K1: 1000, Ki: 0.12, Kd: 4.0, Description: "180 deg return bend, welded"},
		"return_bend_threaded":  {K1: 1000, Ki: 0.23, Kd: 4.0, Description: "180 deg return bend, threaded"},
		"tee_run":               {K1: 200, Ki: 0.091, Kd: 4.0, Description: "tee, flow through run"},
		"tee_branch":            {K1: 800, Ki: 0.28, Kd: 4.0, Description: "tee, flow through branch"},
		"gate_valve":            {K1: 300, Ki: 0.037, Kd: 3.9, Description: "gate valve, fully open"},
		"globe_valve":           {K1: 1500, Ki: 1.70, Kd: 3.6, Description: "globe valve, fully open"},
		"ball_valve":            {K1: 300, Ki: 0.017, Kd: 3.5, Description: "ball valve, full bore"},
		"check_valve_swing":     {K1: 1500, Ki: 0.46, Kd: 4.0, Description: "swing check valve"},
	},
}

var fixedK = fittings.FixedKCatalog{
	Reference: diag.Reference{
		Source: "Crane TP-410, Flow of Fluids",
		Page:   "A-29",
	},
	Entries: map[string]fittings.FixedKEntry{
		"entrance_sharp":      {K: 0.5, Description: "pipe entrance, sharp-edged"},
		"entrance_rounded":    {K: 0.04, Description: "pipe entrance, well rounded (r/d>0.15)"},
		"entrance_projecting": {K: 0.78, Description: "pipe entrance, inward projecting"},
		"exit":                {K: 1.0, Description: "pipe exit, all geometries"},
	},
}

// Crane fully-turbulent friction factors by nominal size, used when the
// material roughness is not available to compute fT directly.
var ftBySize = map[string]float64{
	"1/2":   0.027,
	"3/4":   0.025,
	"1":     0.023,
	"1-1/4": 0.022,
	"1-1/2": 0.021,
	"2":     0.019,
	"2-1/2": 0.018,
	"3":     0.018,
	"4":     0.017,
	"6":     0.015,
	"8":     0.014,
	"10":    0.014,
	"12":    0.013,
}
