package report

import (
	"encoding/json"
	"net/http"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/system"
)

const maxImportSize = 10 << 20

type Handler struct{}

type generateRequest struct {
	Meta Meta           `json:"meta"`
	Calc system.Request `json:"calc"`
}

func (h *Handler) compute(w http.ResponseWriter, r *http.Request) (generateRequest, system.Result, bool) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return req, system.Result{}, false
	}
	in, err := system.BuildInput(req.Calc)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return req, system.Result{}, false
	}
	res, err := system.Calculate(in)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return req, system.Result{}, false
	}
	return req, res, true
}

func (h *Handler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	req, res, ok := h.compute(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := WritePDF(w, req.Meta, res); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GenerateXLSX(w http.ResponseWriter, r *http.Request) {
	_, res, ok := h.compute(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.xlsx\"")
	if err := WriteXLSX(w, res); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

type importResult struct {
	Count  int           `json:"count"`
	Result system.Result `json:"result"`
}

// Import accepts an xlsx upload of segments, runs the system calculation
// and returns the result as JSON.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	segs, err := ReadSegmentsXLSX(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	in, err := system.BuildInput(system.Request{Segments: segs, FittingMethod: r.FormValue("fitting_method")})
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	res, err := system.Calculate(in)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(importResult{Count: len(segs), Result: res})
}
