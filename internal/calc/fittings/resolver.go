package fittings

import (
	"math"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/diag"
	"PipeFlow/internal/calc/pipe"
)

// Env is the set of catalogs active for a calculation. Active selects how
// plain catalog ids are resolved (Crane L/D or Darby 3-K); the fixed-K
// entrance/exit catalog is always consulted first.
type Env struct {
	Active   string             `json:"active"` // MethodCraneLD or MethodThreeK
	LD       *LDCatalog         `json:"ld,omitempty"`
	ThreeK   *ThreeKCatalog     `json:"three_k,omitempty"`
	FixedK   *FixedKCatalog     `json:"fixed_k,omitempty"`
	FTBySize map[string]float64 `json:"ft_by_size,omitempty"`
}

// Context carries the already-computed pipe/flow quantities a K formula
// needs. FT is the fully-turbulent friction factor; when zero, the
// nominal-size table in Env is used instead.
type Context struct {
	Pipe       pipe.Spec
	Density    float64
	VelocityMS float64
	Reynolds   float64
	FT         float64
}

// Resolve computes one fitting entry.
func (e Env) Resolve(req Request, ctx Context) (Resolved, error) {
	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}
	out := Resolved{ID: req.ID, Quantity: qty}

	switch {
	case req.Cv < 0:
		return Resolved{}, calcerr.Inputf("fitting %q: Cv must be positive, got %g", req.ID, req.Cv)

	case req.Cv > 0:
		d := ctx.Pipe.InnerInch()
		if d <= 0 {
			return Resolved{}, calcerr.Inputf("fitting %q: pipe inner diameter must be positive", req.ID)
		}
		out.Method = MethodCv
		out.K = 894.0 * math.Pow(d, 4) / (req.Cv * req.Cv)
		out.Description = "valve/fitting from flow coefficient"
		out.Warning = cvPlausibility(req.ID, out.K)

	case e.FixedK != nil && hasFixedK(e.FixedK, req.ID):
		entry := e.FixedK.Entries[req.ID]
		out.Method = MethodFixedK
		out.K = entry.K
		out.Description = entry.Description
		out.Reference = e.FixedK.Reference

	case e.Active == MethodCraneLD && e.LD != nil:
		entry, ok := e.LD.Entries[req.ID]
		if !ok {
			return Resolved{}, &calcerr.LookupError{Kind: "fitting", ID: req.ID}
		}
		ft, err := e.fullyTurbulent(ctx)
		if err != nil {
			return Resolved{}, err
		}
		out.Method = MethodCraneLD
		out.K = ft * entry.LD
		out.Description = entry.Description
		out.Reference = e.LD.Reference

	case e.Active == MethodThreeK && e.ThreeK != nil:
		entry, ok := e.ThreeK.Entries[req.ID]
		if !ok {
			return Resolved{}, &calcerr.LookupError{Kind: "fitting", ID: req.ID}
		}
		if ctx.Reynolds <= 0 {
			return Resolved{}, calcerr.Inputf("fitting %q: Reynolds number must be positive for the 3-K method", req.ID)
		}
		d := ctx.Pipe.InnerInch()
		if d <= 0 {
			return Resolved{}, calcerr.Inputf("fitting %q: pipe inner diameter must be positive", req.ID)
		}
		out.Method = MethodThreeK
		out.K = entry.K1/ctx.Reynolds + entry.Ki*(1.0+entry.Kd/math.Pow(d, 0.3))
		out.Description = entry.Description
		out.Reference = e.ThreeK.Reference

	default:
		return Resolved{}, &calcerr.LookupError{Kind: "fitting", ID: req.ID}
	}

	q := float64(qty)
	out.DPPa = q * out.K * ctx.Density * ctx.VelocityMS * ctx.VelocityMS / 2.0
	out.HeadM = q * out.K * ctx.VelocityMS * ctx.VelocityMS / (2.0 * pipe.Gravity)
	return out, nil
}

// ResolveAll resolves every request and reports the quantity-weighted K sum
// plus whether any entry used the 3-K correlation.
func (e Env) ResolveAll(reqs []Request, ctx Context) ([]Resolved, float64, bool, error) {
	if len(reqs) == 0 {
		return nil, 0, false, nil
	}
	out := make([]Resolved, 0, len(reqs))
	sumK := 0.0
	any3K := false
	for _, req := range reqs {
		r, err := e.Resolve(req, ctx)
		if err != nil {
			return nil, 0, false, err
		}
		sumK += float64(r.Quantity) * r.K
		if r.Method == MethodThreeK {
			any3K = true
		}
		out = append(out, r)
	}
	return out, sumK, any3K, nil
}

func (e Env) fullyTurbulent(ctx Context) (float64, error) {
	if ctx.FT > 0 {
		return ctx.FT, nil
	}
	if ft, ok := e.FTBySize[ctx.Pipe.Nominal]; ok {
		return ft, nil
	}
	return 0, calcerr.Inputf("no fully-turbulent friction factor for pipe size %q", ctx.Pipe.Nominal)
}

func hasFixedK(c *FixedKCatalog, id string) bool {
	_, ok := c.Entries[id]
	return ok
}

// cvPlausibility flags K values implausible for the pipe size: a Cv that
// small or that large next to the given line usually means a unit slip.
func cvPlausibility(id string, k float64) *diag.Warning {
	switch {
	case k < 0.05:
		return &diag.Warning{
			Severity: diag.SeverityInfo,
			Category: "fittings",
			Key:      "cv_k_small",
			Message:  "fitting " + id + ": K from Cv is implausibly small for this pipe size; check Cv units",
			Params:   map[string]any{"k": k},
		}
	case k > 1000:
		return &diag.Warning{
			Severity: diag.SeverityInfo,
			Category: "fittings",
			Key:      "cv_k_large",
			Message:  "fitting " + id + ": K from Cv is implausibly large for this pipe size; check Cv units",
			Params:   map[string]any{"k": k},
		}
	}
	return nil
}
