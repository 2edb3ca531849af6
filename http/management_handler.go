package http

import (
	"net/http"
	"strconv"

	"prestabanco/domain"
	"prestabanco/service"
)

// ManagementHandler is the executive's application list.
type ManagementHandler struct {
	view *service.ApplicationsView
}

func NewManagementHandler(view *service.ApplicationsView) *ManagementHandler {
	return &ManagementHandler{view: view}
}

// List returns every application, or those in ?status= when given.
func (h *ManagementHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		apps []service.ApplicationSummary
		err  error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		apps, err = h.view.ByStatus(r.Context(), domain.ApplicationStatus(status))
	} else {
		apps, err = h.view.All(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ManagementHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update domain.StatusUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	app, err := h.view.ChangeStatus(r.Context(), id, update.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// Document streams one attachment of an application.
func (h *ManagementHandler) Document(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	doc, data, err := h.view.Document(r.Context(), id, r.PathValue("key"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", doc.Type)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", `inline; filename="`+sanitizeFilename(doc.Name)+`"`)
	w.WriteHeader(http.StatusOK)
	writeBody(w, data)
}

func sanitizeFilename(name string) string {
	out := make([]rune, 0, len(name))
	for _, c := range name {
		if c == '"' || c == '\\' || c < 0x20 {
			c = '_'
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return "documento"
	}
	return string(out)
}
