package system

import (
	"encoding/json"
	"net/http"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/segment"
	"PipeFlow/internal/catalog"
)

// Request is the wire form of a whole series system.
type Request struct {
	Segments      []segment.Request `json:"segments"`
	FittingMethod string            `json:"fitting_method,omitempty"`
}

// BuildInput resolves every segment request against the catalog.
func BuildInput(req Request) (Input, error) {
	env, err := catalog.Env(req.FittingMethod)
	if err != nil {
		return Input{}, err
	}
	in := Input{Env: env, Segments: make([]segment.Input, 0, len(req.Segments))}
	for _, s := range req.Segments {
		si, err := segment.BuildInput(s)
		if err != nil {
			return Input{}, err
		}
		in.Segments = append(in.Segments, si)
	}
	return in, nil
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
	res, err := Calculate(in)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
