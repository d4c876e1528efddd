package catalog

import (
	"PipeFlow/internal/calc/diag"
	"PipeFlow/internal/calc/pipe"
)

type pipeDim struct {
	outerMM float64
	wallMM  float64
}

// ASME B36.10 welded and seamless wrought steel pipe, schedules 40 and 80.
var pipeSchedules = map[string]map[string]pipeDim{
	"40": {
		"1/2":   {21.34, 2.77},
		"3/4":   {26.67, 2.87},
		"1":     {33.40, 3.38},
		"1-1/4": {42.16, 3.56},
		"1-1/2": {48.26, 3.68},
		"2":     {60.33, 3.91},
		"2-1/2": {73.03, 5.16},
		"3":     {88.90, 5.49},
		"4":     {114.30, 6.02},
		"6":     {168.28, 7.11},
		"8":     {219.08, 8.18},
		"10":    {273.05, 9.27},
		"12":    {323.85, 10.31},
	},
	"80": {
		"1/2":   {21.34, 3.73},
		"3/4":   {26.67, 3.91},
		"1":     {33.40, 4.55},
		"1-1/4": {42.16, 4.85},
		"1-1/2": {48.26, 5.08},
		"2":     {60.33, 5.54},
		"2-1/2": {73.03, 7.01},
		"3":     {88.90, 7.62},
		"4":     {114.30, 8.56},
		"6":     {168.28, 10.97},
		"8":     {219.08, 12.70},
		"10":    {273.05, 15.09},
		"12":    {323.85, 17.48},
	},
}

var materialReference = diag.Reference{
	Source: "Perry's Chemical Engineers' Handbook, 8th ed.",
	Page:   "6-10, Table 6-3",
}

var materials = map[string]pipe.Material{
	"carbon_steel_new": {
		ID: "carbon_steel_new", Name: "Carbon steel, new",
		RoughnessMM: 0.046, Reference: materialReference,
	},
	"carbon_steel_corroded": {
		ID: "carbon_steel_corroded", Name: "Carbon steel, lightly corroded",
		RoughnessMM: 0.5, Reference: materialReference,
	},
	"stainless_steel": {
		ID: "stainless_steel", Name: "Stainless steel, drawn",
		RoughnessMM: 0.015, Reference: materialReference,
	},
	"galvanized_steel": {
		ID: "galvanized_steel", Name: "Galvanized steel",
		RoughnessMM: 0.15, Reference: materialReference,
	},
	"cast_iron": {
		ID: "cast_iron", Name: "Cast iron, new",
		RoughnessMM: 0.26, Reference: materialReference,
	},
	"copper": {
		ID: "copper", Name: "Copper tube, drawn",
		RoughnessMM: 0.0015, Reference: materialReference,
	},
	"pvc": {
		ID: "pvc", Name: "PVC / plastic",
		RoughnessMM: 0.0015, Reference: materialReference,
	},
	"concrete": {
		ID: "concrete", Name: "Concrete, smoothed",
		RoughnessMM: 1.0, Reference: materialReference,
	},
}
