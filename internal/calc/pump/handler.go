package pump

import (
	"encoding/json"
	"net/http"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/catalog"
)

// Request is the wire form: fluid by catalog id, flow in m3/h.
type Request struct {
	FluidID        string              `json:"fluid_id"`
	TemperatureC   float64             `json:"temperature_c"`
	Concentration  fluid.Concentration `json:"concentration,omitempty"`
	FlowM3H        float64             `json:"flow_m3_h"`
	HeadM          float64             `json:"head_m"`
	SpeedRPM       float64             `json:"speed_rpm"`
	Efficiency     float64             `json:"efficiency,omitempty"`
	AtmosphereKPa  float64             `json:"atmosphere_kpa,omitempty"`
	SuctionLiftM   float64             `json:"suction_lift_m,omitempty"`
	SuctionLossesM float64             `json:"suction_losses_m,omitempty"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	method, err := catalog.FluidMethod(req.FluidID)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	st, err := fluid.Resolve(method, req.TemperatureC, req.Concentration)
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	res, err := Calculate(Input{
		Fluid:          st,
		FlowM3S:        req.FlowM3H / 3600.0,
		HeadM:          req.HeadM,
		SpeedRPM:       req.SpeedRPM,
		Efficiency:     req.Efficiency,
		AtmosphereKPa:  req.AtmosphereKPa,
		SuctionLiftM:   req.SuctionLiftM,
		SuctionLossesM: req.SuctionLossesM,
	})
	if err != nil {
		calcerr.WriteHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
