package catalog

import (
	"PipeFlow/internal/calc/diag"
	"PipeFlow/internal/calc/fluid"
)

// Saturated liquid water, 0-100 °C.
var waterTable = fluid.SaturationTable{
	Name: "water",
	Reference: diag.Reference{
		Source: "IAPWS-IF97 saturated liquid tables",
	},
	Rows: []fluid.TableRow{
		{TempC: 0, Density: 999.84, Viscosity: 1.792e-3, PressureKPa: 0.6113, SpecificHeat: 4.217},
		{TempC: 10, Density: 999.70, Viscosity: 1.307e-3, PressureKPa: 1.2281, SpecificHeat: 4.192},
		{TempC: 20, Density: 998.21, Viscosity: 1.002e-3, PressureKPa: 2.3388, SpecificHeat: 4.182},
		{TempC: 30, Density: 995.65, Viscosity: 0.7977e-3, PressureKPa: 4.2455, SpecificHeat: 4.178},
		{TempC: 40, Density: 992.22, Viscosity: 0.6532e-3, PressureKPa: 7.3814, SpecificHeat: 4.179},
		{TempC: 50, Density: 988.03, Viscosity: 0.5470e-3, PressureKPa: 12.344, SpecificHeat: 4.181},
		{TempC: 60, Density: 983.20, Viscosity: 0.4665e-3, PressureKPa: 19.932, SpecificHeat: 4.185},
		{TempC: 70, Density: 977.76, Viscosity: 0.4040e-3, PressureKPa: 31.176, SpecificHeat: 4.190},
		{TempC: 80, Density: 971.79, Viscosity: 0.3544e-3, PressureKPa: 47.373, SpecificHeat: 4.197},
		{TempC: 90, Density: 965.31, Viscosity: 0.3145e-3, PressureKPa: 70.117, SpecificHeat: 4.205},
		{TempC: 100, Density: 958.35, Viscosity: 0.2818e-3, PressureKPa: 101.325, SpecificHeat: 4.216},
	},
}

// Standard sea water (3.5 % salinity), 0-40 °C.
var seawaterTable = fluid.SaturationTable{
	Name: "seawater",
	Reference: diag.Reference{
		Source: "Sharqawy, Lienhard & Zubair, Desalination and Water Treatment 16 (2010)",
	},
	Rows: []fluid.TableRow{
		{TempC: 0, Density: 1028.1, Viscosity: 1.906e-3, PressureKPa: 0.599, SpecificHeat: 3.986},
		{TempC: 10, Density: 1027.0, Viscosity: 1.397e-3, PressureKPa: 1.206, SpecificHeat: 3.986},
		{TempC: 20, Density: 1024.8, Viscosity: 1.077e-3, PressureKPa: 2.294, SpecificHeat: 3.993},
		{TempC: 30, Density: 1021.7, Viscosity: 0.861e-3, PressureKPa: 4.156, SpecificHeat: 3.997},
		{TempC: 40, Density: 1017.8, Viscosity: 0.707e-3, PressureKPa: 7.210, SpecificHeat: 4.000},
	},
}

// WaterTable exposes the saturated water table for callers that need the
// companion columns (vapor pressure for NPSH checks).
func WaterTable() fluid.SaturationTable { return waterTable }
