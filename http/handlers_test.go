package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"prestabanco/domain"
	"prestabanco/service"
)

func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/auth/login", "", `{"email":"ana@example.com","password":"x"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	var session service.Session
	decodeBody(t, w, &session)
	if session.Token == "" || session.User.ID != clientUser.ID {
		t.Errorf("unexpected session %+v", session)
	}

	me := srv.do(t, http.MethodGet, "/auth/me", session.Token, "")
	if me.Code != http.StatusOK {
		t.Fatalf("expected 200 from /auth/me, got %d", me.Code)
	}

	w = srv.do(t, http.MethodPost, "/auth/login", "", `{"email":"nadie@example.com","password":"x"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body errorBody
	decodeBody(t, w, &body)
	if body.Error != "Email o contraseña incorrectos" {
		t.Errorf("unexpected error %q", body.Error)
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t, clientUser)

	if w := srv.do(t, http.MethodPost, "/auth/logout", token, ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := srv.do(t, http.MethodGet, "/auth/me", token, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodPost, "/auth/register", "", `{"email":"a@b.cl","password":"uno","confirmPassword":"dos"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body errorBody
	decodeBody(t, w, &body)
	if body.Errors["confirmPassword"] != "Las contraseñas no coinciden" {
		t.Errorf("unexpected errors %v", body.Errors)
	}
}

func TestSimulate(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t, clientUser)

	w := srv.do(t, http.MethodPost, "/simulator", token, `{"loanType":"FIRST_HOME","amount":100000000,"term":30}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	var view service.SimulationView
	decodeBody(t, w, &view)
	if view.MonthlyPaymentText != "$449.045" {
		t.Errorf("unexpected monthly payment %q", view.MonthlyPaymentText)
	}

	history := srv.do(t, http.MethodGet, "/simulator/history", token, "")
	var results []domain.LoanResult
	decodeBody(t, history, &results)
	if len(results) != 1 {
		t.Errorf("expected 1 simulation in history, got %d", len(results))
	}

	bad := srv.do(t, http.MethodPost, "/simulator", "", `{"loanType":"FIRST_HOME","amount":1000,"term":40}`)
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", bad.Code)
	}
}

func TestSimulate_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodPost, "/simulator", "", `{invalid-json}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodGet, "/simulator", "", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestExecutiveRoutes(t *testing.T) {
	srv := newTestServer(t)

	if w := srv.do(t, http.MethodGet, "/managements", "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: expected 401, got %d", w.Code)
	}
	if w := srv.do(t, http.MethodGet, "/managements", srv.token(t, clientUser), ""); w.Code != http.StatusForbidden {
		t.Errorf("client: expected 403, got %d", w.Code)
	}
	if w := srv.do(t, http.MethodGet, "/managements", srv.token(t, executiveUser), ""); w.Code != http.StatusOK {
		t.Errorf("executive: expected 200, got %d", w.Code)
	}
}

func TestChangeStatus(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t, executiveUser)

	w := srv.do(t, http.MethodPut, "/managements/1/status", token, `{"status":"IN_EVALUATION"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	if srv.apps.apps[1].Status != domain.StatusInEvaluation {
		t.Errorf("status not updated: %s", srv.apps.apps[1].Status)
	}

	if w := srv.do(t, http.MethodPut, "/managements/1/status", token, `{"status":"ARCHIVED"}`); w.Code != http.StatusBadRequest {
		t.Errorf("unknown status: expected 400, got %d", w.Code)
	}
	if w := srv.do(t, http.MethodPut, "/managements/42/status", token, `{"status":"APPROVED"}`); w.Code != http.StatusNotFound {
		t.Errorf("missing application: expected 404, got %d", w.Code)
	}
	if w := srv.do(t, http.MethodPut, "/managements/abc/status", token, `{"status":"APPROVED"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad id: expected 400, got %d", w.Code)
	}
}

func TestCreditLoad_WithoutSavings(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodGet, "/credit/1", srv.token(t, executiveUser), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	var view service.CreditEvaluation
	decodeBody(t, w, &view)
	if view.Savings != nil || view.Assessment != nil {
		t.Error("expected no savings data")
	}
	if view.Evaluation == nil || !view.Evaluation.Approved {
		t.Error("expected evaluation result")
	}
}

func TestCreditSavings(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t, executiveUser)

	w := srv.do(t, http.MethodPost, "/credit/1/savings", token, `{"accountNumber":"00-1","currentBalance":20000000,"consecutiveMonthsWithBalance":24}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body)
	}

	if w := srv.do(t, http.MethodPut, "/credit/1/savings", token, `{"accountNumber":"00-1"}`); w.Code != http.StatusBadRequest {
		t.Errorf("update without id: expected 400, got %d", w.Code)
	}
}

func TestHistory(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodGet, "/history", srv.token(t, executiveUser), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var groups []service.ClientHistory
	decodeBody(t, w, &groups)
	if len(groups) != 1 || groups[0].Client != "Ana Pérez" {
		t.Errorf("unexpected history %+v", groups)
	}
}

func TestUploadDocument(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="liquidacion.pdf"`)
	header.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("%PDF-1.4\n"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/loan-application/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+srv.token(t, clientUser))
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	var doc domain.Document
	decodeBody(t, w, &doc)
	if doc.Type != "application/pdf" || !strings.HasPrefix(doc.Content, "data:application/pdf;base64,") {
		t.Errorf("unexpected document %+v", doc)
	}
}

func TestValidateStep(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/loan-application/steps/0", "", `{"monthlyIncome":0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body errorBody
	decodeBody(t, w, &body)
	if body.Errors["monthlyIncome"] != "Ingrese un ingreso mensual válido" {
		t.Errorf("unexpected errors %v", body.Errors)
	}

	if w := srv.do(t, http.MethodPost, "/loan-application/steps/0", "", `{"monthlyIncome":1500000,"employmentYears":3}`); w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if w := srv.do(t, http.MethodPost, "/loan-application/steps/9", "", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("unknown step: expected 400, got %d", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	if w := srv.do(t, http.MethodGet, "/healthz", "", ""); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
