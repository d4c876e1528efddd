package fittings

import (
	"encoding/json"
	"net/http"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/pipe"
)

// Handler resolves fitting K values against the injected catalogs.
type Handler struct {
	Env      func(method string) (Env, error)
	PipeSpec func(nominal, schedule string) (pipe.Spec, error)
}

type kRequest struct {
	PipeNominal  string    `json:"pipe_nominal"`
	PipeSchedule string    `json:"pipe_schedule"`
	Method       string    `json:"method"` // "" means Crane L/D
	Density      float64   `json:"density_kg_m3"`
	VelocityMS   float64   `json:"velocity_m_s"`
	Reynolds     float64   `json:"reynolds"`
	Fittings     []Request `json:"fittings"`
}

type kResponse struct {
	Fittings []Resolved `json:"fittings"`
	SumK     float64    `json:"sum_k"`
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req kRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	env, err := h.Env(req.Method)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	spec, err := h.PipeSpec(req.PipeNominal, req.PipeSchedule)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	resolved, sumK, _, err := env.ResolveAll(req.Fittings, Context{
		Pipe:       spec,
		Density:    req.Density,
		VelocityMS: req.VelocityMS,
		Reynolds:   req.Reynolds,
	})
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(kResponse{Fittings: resolved, SumK: sumK})
}
