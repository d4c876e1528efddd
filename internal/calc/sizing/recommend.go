// Package sizing recommends a line size: the smallest standard pipe that
// keeps the velocity under a target limit at the requested flow.
package sizing

import (
	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/calc/pipe"
	"PipeFlow/internal/calc/segment"
	"PipeFlow/internal/catalog"
)

type Input struct {
	FluidID       string              `json:"fluid_id"`
	TemperatureC  float64             `json:"temperature_c"`
	Concentration fluid.Concentration `json:"concentration,omitempty"`
	FlowM3H       float64             `json:"flow_m3_h"`
	MaterialID    string              `json:"material_id"`
	PipeSchedule  string              `json:"pipe_schedule,omitempty"`
	MaxVelocityMS float64             `json:"max_velocity_m_s,omitempty"` // default 3
}

// Candidate is one evaluated size; the recommended one is flagged.
type Candidate struct {
	Nominal     string  `json:"nominal"`
	InnerMM     float64 `json:"inner_mm"`
	VelocityMS  float64 `json:"velocity_m_s"`
	DPPer100MPa float64 `json:"dp_per_100m_pa"`
	Recommended bool    `json:"recommended"`
}

type Result struct {
	Nominal    string      `json:"nominal"`
	Candidates []Candidate `json:"candidates"`
}

// Recommend walks the schedule from the smallest bore up and picks the
// first size whose velocity stays under the limit. Every size from the
// first with a finite velocity margin up to and including the pick is
// reported, so the client can show the trade-off.
func Recommend(in Input) (Result, error) {
	if in.FlowM3H <= 0 {
		return Result{}, calcerr.Inputf("flow must be positive, got %g m3/h", in.FlowM3H)
	}
	limit := in.MaxVelocityMS
	if limit <= 0 {
		limit = 3.0
	}

	mat, err := catalog.Material(in.MaterialID)
	if err != nil {
		return Result{}, err
	}
	method, err := catalog.FluidMethod(in.FluidID)
	if err != nil {
		return Result{}, err
	}
	st, err := fluid.Resolve(method, in.TemperatureC, in.Concentration)
	if err != nil {
		return Result{}, err
	}
	sizes, err := catalog.PipeSizes(in.PipeSchedule)
	if err != nil {
		return Result{}, err
	}
	env := catalog.CraneEnv()

	var out Result
	for _, nominal := range sizes {
		spec, err := catalog.PipeSpec(nominal, in.PipeSchedule)
		if err != nil {
			return Result{}, err
		}
		v, err := pipe.Velocity(in.FlowM3H/3600.0, spec.InnerM())
		if err != nil {
			return Result{}, err
		}
		sr, err := segment.Calculate(segment.Input{
			Pipe:     spec,
			Material: mat,
			Fluid:    st,
			FlowM3S:  in.FlowM3H / 3600.0,
			LengthM:  100,
		}, env)
		if err != nil {
			return Result{}, err
		}
		c := Candidate{
			Nominal:     nominal,
			InnerMM:     spec.InnerMM,
			VelocityMS:  v,
			DPPer100MPa: sr.DPTotalPa,
		}
		if out.Nominal == "" && v <= limit {
			c.Recommended = true
			out.Nominal = nominal
		}
		out.Candidates = append(out.Candidates, c)
		if c.Recommended {
			break
		}
	}
	if out.Nominal == "" {
		return Result{}, calcerr.Inputf("no standard size keeps %g m3/h under %g m/s", in.FlowM3H, limit)
	}
	return out, nil
}
