package service

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"prestabanco/client"
	"prestabanco/domain"
)

func mustDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	return decimal.RequireFromString(s)
}

type fakeUsers struct {
	registered []domain.User
	loginRes   domain.LoginResult
	loginErr   error
	logoutErr  error
	logoutTok  string
}

func (f *fakeUsers) Register(_ context.Context, user domain.User) (domain.User, error) {
	f.registered = append(f.registered, user)
	user.ID = int64(len(f.registered))
	return user, nil
}

func (f *fakeUsers) Login(_ context.Context, _ domain.Credentials) (domain.LoginResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeUsers) Logout(ctx context.Context) error {
	f.logoutTok = client.TokenFromContext(ctx)
	return f.logoutErr
}

type fakeApplications struct {
	apps        map[int64]domain.LoanApplication
	listErr     error
	getErr      error
	evaluation  domain.EvaluationResult
	evaluateErr error
	created     []domain.LoanApplication
	statusCalls []domain.ApplicationStatus
}

func (f *fakeApplications) List(_ context.Context) ([]domain.LoanApplication, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.LoanApplication, 0, len(f.apps))
	for id := int64(1); id <= int64(len(f.apps)); id++ {
		out = append(out, f.apps[id])
	}
	return out, nil
}

func (f *fakeApplications) Create(_ context.Context, app domain.LoanApplication) (domain.LoanApplication, error) {
	f.created = append(f.created, app)
	app.ID = int64(len(f.created))
	return app, nil
}

func (f *fakeApplications) Get(_ context.Context, id int64) (domain.LoanApplication, error) {
	if f.getErr != nil {
		return domain.LoanApplication{}, f.getErr
	}
	app, ok := f.apps[id]
	if !ok {
		return domain.LoanApplication{}, &client.APIError{StatusCode: http.StatusNotFound}
	}
	return app, nil
}

func (f *fakeApplications) Evaluate(_ context.Context, _ int64) (domain.EvaluationResult, error) {
	return f.evaluation, f.evaluateErr
}

func (f *fakeApplications) ListByUser(_ context.Context, userID int64) ([]domain.LoanApplication, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.LoanApplication
	for id := int64(1); id <= int64(len(f.apps)); id++ {
		if app := f.apps[id]; app.User != nil && app.User.ID == userID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeApplications) ListByStatus(_ context.Context, status domain.ApplicationStatus) ([]domain.LoanApplication, error) {
	var out []domain.LoanApplication
	for id := int64(1); id <= int64(len(f.apps)); id++ {
		if app := f.apps[id]; app.Status == status {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeApplications) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) (domain.LoanApplication, error) {
	f.statusCalls = append(f.statusCalls, status)
	app, ok := f.apps[id]
	if !ok {
		return domain.LoanApplication{}, &client.APIError{StatusCode: http.StatusNotFound}
	}
	app.Status = status
	f.apps[id] = app
	return app, nil
}

type fakeLoans struct {
	monthlyPayment string
	totalCost      string
	simulateErr    error
	costErr        error
	simulateCalls  int
	costCalls      int
}

func (f *fakeLoans) Simulate(_ context.Context, in domain.LoanInput) (domain.Loan, error) {
	f.simulateCalls++
	if f.simulateErr != nil {
		return domain.Loan{}, f.simulateErr
	}
	return domain.Loan{RequestedAmount: in.RequestedAmount, MonthlyPayment: mustDecimal(f.monthlyPayment)}, nil
}

func (f *fakeLoans) CalculateCost(_ context.Context, in domain.LoanInput) (domain.Loan, error) {
	f.costCalls++
	if f.costErr != nil {
		return domain.Loan{}, f.costErr
	}
	return domain.Loan{RequestedAmount: in.RequestedAmount, TotalCost: mustDecimal(f.totalCost)}, nil
}

type fakeSavings struct {
	byUser  map[int64]domain.SavingsRecord
	getErr  error
	created []domain.SavingsRecord
	updated []domain.SavingsRecord
}

func (f *fakeSavings) GetByUser(_ context.Context, userID int64) (domain.SavingsRecord, error) {
	if f.getErr != nil {
		return domain.SavingsRecord{}, f.getErr
	}
	rec, ok := f.byUser[userID]
	if !ok {
		return domain.SavingsRecord{}, &client.APIError{StatusCode: http.StatusNotFound, Method: http.MethodGet, Path: "/api/savings/user/{id}"}
	}
	return rec, nil
}

func (f *fakeSavings) Create(_ context.Context, rec domain.SavingsRecord) (domain.SavingsRecord, error) {
	f.created = append(f.created, rec)
	rec.ID = 100
	return rec, nil
}

func (f *fakeSavings) Update(_ context.Context, _ int64, rec domain.SavingsRecord) (domain.SavingsRecord, error) {
	f.updated = append(f.updated, rec)
	return rec, nil
}
