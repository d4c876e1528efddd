// Package system aggregates an ordered list of series-connected segments
// into one result. Series connection implies a single fluid, so segment
// densities must agree within tolerance before anything is computed.
package system

import (
	"math"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/diag"
	"PipeFlow/internal/calc/fittings"
	"PipeFlow/internal/calc/pipe"
	"PipeFlow/internal/calc/segment"
)

// Allowed relative density deviation between series segments.
const densityTolerance = 0.01

type Input struct {
	Segments []segment.Input `json:"segments"`
	Env      fittings.Env    `json:"env"`
}

type Result struct {
	Segments []segment.Result `json:"segments"`

	DPFrictionPa  float64 `json:"dp_friction_pa"`
	DPFittingsPa  float64 `json:"dp_fittings_pa"`
	DPElevationPa float64 `json:"dp_elevation_pa"`
	DPTotalPa     float64 `json:"dp_total_pa"`

	HeadFrictionM  float64 `json:"head_friction_m"`
	HeadFittingsM  float64 `json:"head_fittings_m"`
	HeadElevationM float64 `json:"head_elevation_m"`
	HeadTotalM     float64 `json:"head_total_m"`

	References []diag.Reference `json:"references,omitempty"`
	Warnings   []diag.Warning   `json:"warnings,omitempty"`
}

// Calculate validates fluid consistency, computes every segment and sums
// the pressure drops. The overall total head is derived from the overall
// total pressure drop rather than by summing per-segment heads, so rounding
// does not compound. An empty segment list is a valid all-zero system.
func Calculate(in Input) (Result, error) {
	if len(in.Segments) == 0 {
		return Result{}, nil
	}

	rho0 := in.Segments[0].Fluid.Density
	if rho0 <= 0 {
		return Result{}, calcerr.Inputf("segment 0: fluid density must be positive, got %g", rho0)
	}
	for i, s := range in.Segments {
		dev := math.Abs(s.Fluid.Density-rho0) / rho0
		if dev > densityTolerance {
			return Result{}, &calcerr.ConsistencyError{
				Segment:      i,
				DeviationPct: dev * 100.0,
				Msg:          "fluid density differs from segment 0; series segments share one fluid",
			}
		}
	}

	res := Result{Segments: make([]segment.Result, 0, len(in.Segments))}
	var refs []diag.Reference
	var warns []diag.Warning
	for _, s := range in.Segments {
		sr, err := segment.Calculate(s, in.Env)
		if err != nil {
			return Result{}, err
		}
		res.Segments = append(res.Segments, sr)

		res.DPFrictionPa += sr.DPFrictionPa
		res.DPFittingsPa += sr.DPFittingsPa
		res.DPElevationPa += sr.DPElevationPa
		res.DPTotalPa += sr.DPTotalPa
		res.HeadFrictionM += sr.HeadFrictionM
		res.HeadFittingsM += sr.HeadFittingsM
		res.HeadElevationM += sr.HeadElevationM

		refs = append(refs, sr.References...)
		warns = append(warns, sr.Warnings...)
	}
	res.HeadTotalM = res.DPTotalPa / (rho0 * pipe.Gravity)

	res.References = diag.DedupReferences(refs)
	res.Warnings = diag.DedupWarnings(warns)
	return res, nil
}
