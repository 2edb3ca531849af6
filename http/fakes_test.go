package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"prestabanco/client"
	"prestabanco/domain"
	"prestabanco/repository"
	"prestabanco/service"
)

const testSecret = "http-test-secret-0123456789"

var (
	clientUser    = domain.User{ID: 10, FirstName: "Ana", LastName: "Pérez", Email: "ana@example.com", Role: domain.RoleClient}
	executiveUser = domain.User{ID: 1, FirstName: "Eva", LastName: "Soto", Email: "eva@prestabanco.cl", Role: domain.RoleExecutive}
)

type stubUsers struct{}

func (stubUsers) Register(_ context.Context, user domain.User) (domain.User, error) {
	user.ID = 99
	return user, nil
}

func (stubUsers) Login(_ context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	switch creds.Email {
	case clientUser.Email:
		return domain.LoginResult{User: clientUser, IsAuthenticated: true}, nil
	case executiveUser.Email:
		return domain.LoginResult{User: executiveUser, IsAuthenticated: true}, nil
	}
	return domain.LoginResult{}, &client.APIError{StatusCode: http.StatusUnauthorized}
}

func (stubUsers) Logout(context.Context) error { return nil }

type stubApplications struct {
	apps map[int64]domain.LoanApplication
}

func (s *stubApplications) List(context.Context) ([]domain.LoanApplication, error) {
	var out []domain.LoanApplication
	for id := int64(1); id <= int64(len(s.apps)); id++ {
		out = append(out, s.apps[id])
	}
	return out, nil
}

func (s *stubApplications) Create(_ context.Context, app domain.LoanApplication) (domain.LoanApplication, error) {
	app.ID = int64(len(s.apps) + 1)
	s.apps[app.ID] = app
	return app, nil
}

func (s *stubApplications) Get(_ context.Context, id int64) (domain.LoanApplication, error) {
	app, ok := s.apps[id]
	if !ok {
		return domain.LoanApplication{}, &client.APIError{StatusCode: http.StatusNotFound}
	}
	return app, nil
}

func (s *stubApplications) Evaluate(context.Context, int64) (domain.EvaluationResult, error) {
	return domain.EvaluationResult{Approved: true, Message: "Solicitud aprobada"}, nil
}

func (s *stubApplications) ListByUser(_ context.Context, userID int64) ([]domain.LoanApplication, error) {
	var out []domain.LoanApplication
	for _, app := range s.apps {
		if app.User != nil && app.User.ID == userID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (s *stubApplications) ListByStatus(_ context.Context, status domain.ApplicationStatus) ([]domain.LoanApplication, error) {
	var out []domain.LoanApplication
	for _, app := range s.apps {
		if app.Status == status {
			out = append(out, app)
		}
	}
	return out, nil
}

func (s *stubApplications) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) (domain.LoanApplication, error) {
	app, ok := s.apps[id]
	if !ok {
		return domain.LoanApplication{}, &client.APIError{StatusCode: http.StatusNotFound}
	}
	app.Status = status
	s.apps[id] = app
	return app, nil
}

type stubLoans struct{}

func (stubLoans) Simulate(_ context.Context, in domain.LoanInput) (domain.Loan, error) {
	return domain.Loan{RequestedAmount: in.RequestedAmount, MonthlyPayment: decimal.NewFromInt(449045)}, nil
}

func (stubLoans) CalculateCost(_ context.Context, in domain.LoanInput) (domain.Loan, error) {
	return domain.Loan{RequestedAmount: in.RequestedAmount, TotalCost: decimal.NewFromInt(161656150)}, nil
}

type stubSavings struct{}

func (stubSavings) GetByUser(context.Context, int64) (domain.SavingsRecord, error) {
	return domain.SavingsRecord{}, &client.APIError{StatusCode: http.StatusNotFound}
}

func (stubSavings) Create(_ context.Context, rec domain.SavingsRecord) (domain.SavingsRecord, error) {
	rec.ID = 5
	return rec, nil
}

func (stubSavings) Update(_ context.Context, _ int64, rec domain.SavingsRecord) (domain.SavingsRecord, error) {
	return rec, nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) (string, error) {
	return "Backend funcionando", p.err
}

type testServer struct {
	handler  http.Handler
	sessions *service.SessionService
	apps     *stubApplications
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cache := repository.NewMemoryCache()
	t.Cleanup(cache.Stop)
	sessions, err := service.NewSessionService(testSecret, time.Hour, cache)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}

	apps := &stubApplications{apps: map[int64]domain.LoanApplication{
		1: {ID: 1, User: &clientUser, Status: domain.StatusInReview, PropertyType: domain.FirstHome,
			RequestedAmount: decimal.NewFromInt(100000000), InterestRate: decimal.RequireFromString("4.5"), Term: 20},
	}}
	view := service.NewApplicationsView(apps)

	handlers := Handlers{
		Auth:        NewAuthHandler(service.NewAuthService(stubUsers{}, sessions)),
		Simulator:   NewSimulatorHandler(service.NewSimulatorService(stubLoans{}, repository.NewSimulationRepositoryMemory(), cache, time.Minute)),
		Application: NewApplicationHandler(service.NewApplicationFormService(apps), view),
		Management:  NewManagementHandler(view),
		Credit:      NewCreditHandler(service.NewCreditView(apps, stubSavings{}, stubLoans{})),
		History:     NewHistoryHandler(service.NewHistoryView(apps)),
		Health:      NewHealthHandler(stubPinger{}),
	}

	return &testServer{
		handler:  NewRouter(handlers, sessions, nil),
		sessions: sessions,
		apps:     apps,
	}
}

func (s *testServer) token(t *testing.T, user domain.User) string {
	t.Helper()
	session, err := s.sessions.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return session.Token
}

func withDocument(t *testing.T, app domain.LoanApplication) domain.LoanApplication {
	t.Helper()
	doc, err := service.NewAttachment("liquidacion.pdf", "application/pdf", []byte("%PDF-1.4\n"))
	if err != nil {
		t.Fatalf("attachment: %v", err)
	}
	app.Documents, err = domain.DocumentSet{"incomeProof": doc}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return app
}
