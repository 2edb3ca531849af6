package http

import (
	"net/http"

	"prestabanco/domain"
	"prestabanco/service"
)

// CreditHandler is the executive's credit evaluation screen.
type CreditHandler struct {
	view *service.CreditView
}

func NewCreditHandler(view *service.CreditView) *CreditHandler {
	return &CreditHandler{view: view}
}

func (h *CreditHandler) Load(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := h.view.Load(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// WhatIf assesses the posted savings figures without storing them.
func (h *CreditHandler) WhatIf(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var rec domain.SavingsRecord
	if !decodeJSON(w, r, &rec) {
		return
	}

	assessment, err := h.view.WhatIf(r.Context(), id, rec)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

type savedSavings struct {
	Savings    domain.SavingsRecord      `json:"savings"`
	Assessment service.SavingsAssessment `json:"assessment"`
}

// CreateSavings handles POST, UpdateSavings PUT; both store the applicant's record.
func (h *CreditHandler) CreateSavings(w http.ResponseWriter, r *http.Request) {
	h.saveSavings(w, r, true)
}

func (h *CreditHandler) UpdateSavings(w http.ResponseWriter, r *http.Request) {
	h.saveSavings(w, r, false)
}

func (h *CreditHandler) saveSavings(w http.ResponseWriter, r *http.Request, create bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var rec domain.SavingsRecord
	if !decodeJSON(w, r, &rec) {
		return
	}
	if create {
		rec.ID = 0
	} else if rec.ID == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Errors: map[string]string{"id": "Falta el identificador del registro de ahorro"}})
		return
	}

	saved, assessment, err := h.view.SaveSavings(r.Context(), id, rec)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	status := http.StatusOK
	if create {
		status = http.StatusCreated
	}
	writeJSON(w, status, savedSavings{Savings: saved, Assessment: assessment})
}
