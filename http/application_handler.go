package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"prestabanco/domain"
	"prestabanco/service"
)

// ApplicationHandler serves the loan application form and the client's status page.
type ApplicationHandler struct {
	form *service.ApplicationFormService
	view *service.ApplicationsView
}

func NewApplicationHandler(form *service.ApplicationFormService, view *service.ApplicationsView) *ApplicationHandler {
	return &ApplicationHandler{form: form, view: view}
}

type stepsResponse struct {
	Steps     []string                   `json:"steps"`
	Documents []service.RequiredDocument `json:"documents"`
}

// Steps lists the form steps and, given ?propertyType=, the documents to attach.
func (h *ApplicationHandler) Steps(w http.ResponseWriter, r *http.Request) {
	pt, _ := domain.ParsePropertyType(r.URL.Query().Get("propertyType"))
	writeJSON(w, http.StatusOK, stepsResponse{
		Steps:     service.ApplicationSteps,
		Documents: service.RequiredDocuments(pt),
	})
}

func (h *ApplicationHandler) ValidateStep(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(r.PathValue("step"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid step")
		return
	}

	var form service.ApplicationForm
	if !decodeJSON(w, r, &form) {
		return
	}

	if err := h.form.CheckStep(step, form); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, _ := SessionFromContext(r.Context())

	var form service.ApplicationForm
	if !decodeJSON(w, r, &form) {
		return
	}

	created, err := h.form.Submit(r.Context(), session.User, form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, service.Summarize(created))
}

// UploadDocument turns a multipart "file" into an attachment the form can carry.
func (h *ApplicationHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxDocumentBytes+1<<20)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, service.ErrDocumentSize.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxDocumentBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid upload")
		return
	}

	doc, err := service.NewAttachment(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Mine lists the signed-in client's applications.
func (h *ApplicationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	session, _ := SessionFromContext(r.Context())

	apps, err := h.view.ForUser(r.Context(), session.User.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}
