package fluid

import (
	"encoding/json"
	"net/http"

	"PipeFlow/internal/calc/calcerr"
)

// Handler serves property lookups. The catalog is injected so this package
// stays free of catalog data.
type Handler struct {
	Lookup func(id string) (Method, error)
	IDs    func() []string
}

type propertiesRequest struct {
	FluidID       string        `json:"fluid_id"`
	TemperatureC  float64       `json:"temperature_c"`
	Concentration Concentration `json:"concentration"`
}

type propertiesResponse struct {
	FluidID string `json:"fluid_id"`
	Method  string `json:"method"`
	State
}

func (h *Handler) Properties(w http.ResponseWriter, r *http.Request) {
	var req propertiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	m, err := h.Lookup(req.FluidID)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	st, err := Resolve(m, req.TemperatureC, req.Concentration)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(propertiesResponse{FluidID: req.FluidID, Method: Tag(m), State: st})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"fluids": h.IDs()})
}
