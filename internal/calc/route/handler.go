package route

import (
	"encoding/json"
	"net/http"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/calc/system"
	"PipeFlow/internal/catalog"
)

// Request is the wire form of a route calculation: waypoints, elbow
// options and the shared segment parameters as catalog ids.
type Request struct {
	Nodes         []Node              `json:"nodes"`
	Options       Options             `json:"options"`
	PipeNominal   string              `json:"pipe_nominal"`
	PipeSchedule  string              `json:"pipe_schedule,omitempty"`
	MaterialID    string              `json:"material_id"`
	FluidID       string              `json:"fluid_id"`
	TemperatureC  float64             `json:"temperature_c"`
	Concentration fluid.Concentration `json:"concentration,omitempty"`
	FlowM3H       float64             `json:"flow_m3_h"`
	FittingMethod string              `json:"fitting_method,omitempty"`
}

func buildBase(req Request) (SegmentBase, error) {
	spec, err := catalog.PipeSpec(req.PipeNominal, req.PipeSchedule)
	if err != nil {
		return SegmentBase{}, err
	}
	mat, err := catalog.Material(req.MaterialID)
	if err != nil {
		return SegmentBase{}, err
	}
	method, err := catalog.FluidMethod(req.FluidID)
	if err != nil {
		return SegmentBase{}, err
	}
	st, err := fluid.Resolve(method, req.TemperatureC, req.Concentration)
	if err != nil {
		return SegmentBase{}, err
	}
	return SegmentBase{Pipe: spec, Material: mat, Fluid: st, FlowM3S: req.FlowM3H / 3600.0}, nil
}

type calcResponse struct {
	Analysis Analysis      `json:"analysis"`
	System   system.Result `json:"system"`
}

type Handler struct{}

// AnalyzeRoute is the read-only geometry preview; no fluid data needed.
func (h *Handler) AnalyzeRoute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nodes   []Node  `json:"nodes"`
		Options Options `json:"options"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	a, err := Analyze(Route{Nodes: req.Nodes}, req.Options)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// Calc converts the route to segments and runs the full system calculation.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	base, err := buildBase(req)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	env, err := catalog.Env(req.FittingMethod)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	rt := Route{Nodes: req.Nodes}
	a, err := Analyze(rt, req.Options)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	segs, err := ToSegments(rt, req.Options, base)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	res, err := system.Calculate(system.Input{Segments: segs, Env: env})
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calcResponse{Analysis: a, System: res})
}
