package sizing

import (
	"encoding/json"
	"net/http"

	"PipeFlow/internal/calc/calcerr"
)

type Handler struct{}

func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Recommend(input)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
