package segment

import (
	"encoding/json"
	"net/http"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/fittings"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/catalog"
)

// Request is the wire form of one segment: catalog ids plus operating
// conditions, with the flow in m3/h as clients enter it.
type Request struct {
	PipeNominal   string              `json:"pipe_nominal"`
	PipeSchedule  string              `json:"pipe_schedule,omitempty"`
	MaterialID    string              `json:"material_id"`
	FluidID       string              `json:"fluid_id"`
	TemperatureC  float64             `json:"temperature_c"`
	Concentration fluid.Concentration `json:"concentration,omitempty"`
	FlowM3H       float64             `json:"flow_m3_h"`
	LengthM       float64             `json:"length_m"`
	ElevationM    float64             `json:"elevation_m"`
	Fittings      []fittings.Request  `json:"fittings,omitempty"`
	FittingMethod string              `json:"fitting_method,omitempty"`
}

// BuildInput resolves the catalog ids of a request into a typed Input.
func BuildInput(req Request) (Input, error) {
	spec, err := catalog.PipeSpec(req.PipeNominal, req.PipeSchedule)
	if err != nil {
		return Input{}, err
	}
	mat, err := catalog.Material(req.MaterialID)
	if err != nil {
		return Input{}, err
	}
	method, err := catalog.FluidMethod(req.FluidID)
	if err != nil {
		return Input{}, err
	}
	st, err := fluid.Resolve(method, req.TemperatureC, req.Concentration)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Pipe:       spec,
		Material:   mat,
		Fluid:      st,
		FlowM3S:    req.FlowM3H / 3600.0,
		LengthM:    req.LengthM,
		ElevationM: req.ElevationM,
		Fittings:   req.Fittings,
	}, nil
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	in, err := BuildInput(req)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	env, err := catalog.Env(req.FittingMethod)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	res, err := Calculate(in, env)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
