// Package segment computes the pressure drop of one pipe segment: straight
// friction loss, fitting losses and elevation head, with the advisory rule
// set run over the outcome.
package segment

import (
	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/diag"
	"PipeFlow/internal/calc/fittings"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/calc/pipe"
)

// Input is one series segment. Elevation is signed, positive upward.
type Input struct {
	Pipe       pipe.Spec          `json:"pipe"`
	Material   pipe.Material      `json:"material"`
	Fluid      fluid.State        `json:"fluid"`
	FlowM3S    float64            `json:"flow_m3_s"`
	LengthM    float64            `json:"length_m"`
	ElevationM float64            `json:"elevation_m"`
	Fittings   []fittings.Request `json:"fittings,omitempty"`
}

type Result struct {
	VelocityMS     float64     `json:"velocity_m_s"`
	Reynolds       float64     `json:"reynolds"`
	Regime         pipe.Regime `json:"regime"`
	FrictionFactor float64     `json:"friction_factor"`
	FrictionMethod string      `json:"friction_method"`

	DPFrictionPa  float64 `json:"dp_friction_pa"`
	DPFittingsPa  float64 `json:"dp_fittings_pa"`
	DPElevationPa float64 `json:"dp_elevation_pa"`
	DPTotalPa     float64 `json:"dp_total_pa"`

	HeadFrictionM  float64 `json:"head_friction_m"`
	HeadFittingsM  float64 `json:"head_fittings_m"`
	HeadElevationM float64 `json:"head_elevation_m"`
	HeadTotalM     float64 `json:"head_total_m"`

	Fittings   []fittings.Resolved `json:"fittings,omitempty"`
	References []diag.Reference    `json:"references,omitempty"`
	Warnings   []diag.Warning      `json:"warnings,omitempty"`
}

// Calculate resolves one segment against the given fitting environment.
func Calculate(in Input, env fittings.Env) (Result, error) {
	if in.LengthM < 0 {
		return Result{}, calcerr.Inputf("segment length must not be negative, got %g m", in.LengthM)
	}

	d := in.Pipe.InnerM()
	v, err := pipe.Velocity(in.FlowM3S, d)
	if err != nil {
		return Result{}, err
	}
	re, err := pipe.Reynolds(in.Fluid.Density, v, d, in.Fluid.Viscosity)
	if err != nil {
		return Result{}, err
	}
	regime := pipe.ClassifyRegime(re)

	relRough := in.Material.RoughnessM() / d
	f, err := pipe.Churchill(re, relRough)
	if err != nil {
		return Result{}, err
	}

	// fT is only defined for a rough wall; with zero roughness the fitting
	// resolver falls back to its nominal-size table.
	var ft float64
	if in.Material.RoughnessM() > 0 {
		ft, err = pipe.VonKarman(d, in.Material.RoughnessM())
		if err != nil {
			return Result{}, err
		}
	}

	dyn := in.Fluid.Density * v * v / 2.0
	frictionLD := f * in.LengthM / d

	resolved, sumK, any3K, err := env.ResolveAll(in.Fittings, fittings.Context{
		Pipe:       in.Pipe,
		Density:    in.Fluid.Density,
		VelocityMS: v,
		Reynolds:   re,
		FT:         ft,
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{
		VelocityMS:     v,
		Reynolds:       re,
		Regime:         regime,
		FrictionFactor: f,
		FrictionMethod: pipe.MethodChurchill,
		Fittings:       resolved,
	}

	res.DPFrictionPa = frictionLD * dyn
	for _, r := range resolved {
		res.DPFittingsPa += r.DPPa
	}
	res.DPElevationPa = in.Fluid.Density * pipe.Gravity * in.ElevationM
	res.DPTotalPa = res.DPFrictionPa + res.DPFittingsPa + res.DPElevationPa

	rhoG := in.Fluid.Density * pipe.Gravity
	res.HeadFrictionM = res.DPFrictionPa / rhoG
	res.HeadFittingsM = res.DPFittingsPa / rhoG
	res.HeadElevationM = res.DPElevationPa / rhoG
	res.HeadTotalM = res.DPTotalPa / rhoG

	refs := []diag.Reference{pipe.ChurchillReference}
	if in.Fluid.Reference != (diag.Reference{}) {
		refs = append(refs, in.Fluid.Reference)
	}
	if in.Material.Reference != (diag.Reference{}) {
		refs = append(refs, in.Material.Reference)
	}
	for _, r := range resolved {
		if r.Reference != (diag.Reference{}) {
			refs = append(refs, r.Reference)
		}
	}
	res.References = diag.DedupReferences(refs)

	for _, r := range resolved {
		if r.Warning != nil {
			res.Warnings = append(res.Warnings, *r.Warning)
		}
	}
	res.Warnings = append(res.Warnings, diag.Evaluate(diag.Values{
		Reynolds:          re,
		Regime:            string(regime),
		VelocityMS:        v,
		RelativeRoughness: relRough,
		InnerDiameterInch: in.Pipe.InnerInch(),
		Has3KFitting:      any3K,
		FrictionLD:        frictionLD,
		SumFittingK:       sumK,
		ElevationM:        in.ElevationM,
	})...)

	return res, nil
}
