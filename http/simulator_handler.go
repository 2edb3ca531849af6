package http

import (
	"fmt"
	"net/http"

	"prestabanco/service"
)

type SimulatorHandler struct {
	service *service.SimulatorService
}

func NewSimulatorHandler(service *service.SimulatorService) *SimulatorHandler {
	return &SimulatorHandler{service: service}
}

type ratesResponse struct {
	Rates    []service.RateRange  `json:"rates"`
	MaxTerm  int                  `json:"maxTerm"`
	Statuses []service.StatusInfo `json:"statuses"`
}

func (h *SimulatorHandler) Rates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ratesResponse{
		Rates:    service.RateRanges(),
		MaxTerm:  service.MaxTermYears,
		Statuses: service.StatusOptions(),
	})
}

func (h *SimulatorHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req service.SimulationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.service.Simulate(r.Context(), simulationOwner(r), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *SimulatorHandler) History(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.History(simulationOwner(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// simulationOwner keys the history by user id; anonymous runs are not kept.
func simulationOwner(r *http.Request) string {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		return ""
	}
	return fmt.Sprintf("user:%d", session.User.ID)
}
