package http

import (
	"context"
	"net/http"

	"prestabanco/service"
)

type HistoryHandler struct {
	view *service.HistoryView
}

func NewHistoryHandler(view *service.HistoryView) *HistoryHandler {
	return &HistoryHandler{view: view}
}

func (h *HistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	groups, err := h.view.Load(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// Pinger is implemented by *client.Client.
type Pinger interface {
	Ping(ctx context.Context) (string, error)
}

type HealthHandler struct {
	backend Pinger
}

func NewHealthHandler(backend Pinger) *HealthHandler {
	return &HealthHandler{backend: backend}
}

type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend,omitempty"`
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	msg, err := h.backend.Ping(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "backend unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Backend: msg})
}
