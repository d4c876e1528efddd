// Package pump holds the closed-form pump-side checks that sit next to a
// piping calculation: hydraulic and shaft power, metric specific speed and
// available NPSH. No curve fitting or selection logic lives here.
package pump

import (
	"math"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/diag"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/calc/pipe"
)

type Input struct {
	Fluid          fluid.State `json:"fluid"`
	FlowM3S        float64     `json:"flow_m3_s"`
	HeadM          float64     `json:"head_m"`
	SpeedRPM       float64     `json:"speed_rpm"`
	Efficiency     float64     `json:"efficiency"`      // 0..1, default 0.7
	AtmosphereKPa  float64     `json:"atmosphere_kpa"`  // default 101.325
	SuctionLiftM   float64     `json:"suction_lift_m"`  // positive when the pump sits above the liquid level
	SuctionLossesM float64     `json:"suction_losses_m"`
}

type Result struct {
	HydraulicPowerKW float64        `json:"hydraulic_power_kw"`
	ShaftPowerKW     float64        `json:"shaft_power_kw"`
	SpecificSpeed    float64        `json:"specific_speed"` // n·sqrt(Q)/H^0.75, rpm·(m³/s)^0.5/m^0.75
	NPSHAvailableM   float64        `json:"npsh_available_m"`
	Warnings         []diag.Warning `json:"warnings,omitempty"`
}

// Calculate runs the closed-form pump checks. The fluid's PressureKPa field
// is read as the vapor pressure at pumping temperature; table-resolved
// states carry it already.
func Calculate(in Input) (Result, error) {
	if in.FlowM3S <= 0 || in.HeadM <= 0 {
		return Result{}, calcerr.Inputf("flow and head must be positive, got Q=%g m3/s H=%g m", in.FlowM3S, in.HeadM)
	}
	if in.Fluid.Density <= 0 {
		return Result{}, calcerr.Inputf("fluid density must be positive, got %g", in.Fluid.Density)
	}
	if in.SpeedRPM <= 0 {
		return Result{}, calcerr.Inputf("pump speed must be positive, got %g rpm", in.SpeedRPM)
	}
	eff := in.Efficiency
	if eff <= 0 || eff > 1 {
		eff = 0.7
	}
	atm := in.AtmosphereKPa
	if atm <= 0 {
		atm = 101.325
	}

	var res Result
	res.HydraulicPowerKW = in.Fluid.Density * pipe.Gravity * in.FlowM3S * in.HeadM / 1000.0
	res.ShaftPowerKW = res.HydraulicPowerKW / eff
	res.SpecificSpeed = in.SpeedRPM * math.Sqrt(in.FlowM3S) / math.Pow(in.HeadM, 0.75)

	rhoG := in.Fluid.Density * pipe.Gravity
	res.NPSHAvailableM = (atm-in.Fluid.PressureKPa)*1000.0/rhoG - in.SuctionLiftM - in.SuctionLossesM

	if res.NPSHAvailableM < 3 {
		res.Warnings = append(res.Warnings, diag.Warning{
			Severity: diag.SeverityWarning,
			Category: "pump",
			Key:      "npsh_low",
			Message:  "available NPSH is below 3 m; cavitation margin is thin",
			Params:   map[string]any{"npsh_available_m": res.NPSHAvailableM},
		})
	}
	return res, nil
}
