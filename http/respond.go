package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"prestabanco/client"
	"prestabanco/service"
)

// maxJSONBody bounds request bodies; the documents payload travels inside JSON.
const maxJSONBody = service.MaxDocumentPayloadBytes * 2

type errorBody struct {
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: failed to write response: %v", err)
	}
}

// writeBody sends raw bytes after the headers are out; a failure can only be logged.
func writeBody(w http.ResponseWriter, data []byte) {
	if _, err := w.Write(data); err != nil {
		log.Printf("Warning: failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// writeServiceError maps view service errors onto status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		writeJSON(w, http.StatusBadRequest, errorBody{Errors: validation.Fields})
		return
	}

	var alert *service.AlertError
	if errors.As(err, &alert) {
		switch {
		case client.IsUnauthorized(alert.Cause):
			writeError(w, http.StatusUnauthorized, alert.Message)
		case client.IsNotFound(alert.Cause):
			writeError(w, http.StatusNotFound, alert.Message)
		default:
			writeError(w, http.StatusBadGateway, alert.Message)
		}
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidSession):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrDocumentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDocumentType),
		errors.Is(err, service.ErrDocumentSize),
		errors.Is(err, service.ErrDocumentData),
		errors.Is(err, service.ErrUnknownStep):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Error: unexpected: %v", err)
		writeError(w, http.StatusInternalServerError, "Error interno")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
