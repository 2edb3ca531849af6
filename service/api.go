package service

import (
	"context"

	"prestabanco/domain"
)

// The backend operations the views use. *client.UsersService and friends
// satisfy these.

type UsersAPI interface {
	Register(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error)
	Logout(ctx context.Context) error
}

type ApplicationsAPI interface {
	List(ctx context.Context) ([]domain.LoanApplication, error)
	Create(ctx context.Context, app domain.LoanApplication) (domain.LoanApplication, error)
	Get(ctx context.Context, id int64) (domain.LoanApplication, error)
	Evaluate(ctx context.Context, id int64) (domain.EvaluationResult, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.LoanApplication, error)
	ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.LoanApplication, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (domain.LoanApplication, error)
}

type LoansAPI interface {
	Simulate(ctx context.Context, in domain.LoanInput) (domain.Loan, error)
	CalculateCost(ctx context.Context, in domain.LoanInput) (domain.Loan, error)
}

type SavingsAPI interface {
	GetByUser(ctx context.Context, userID int64) (domain.SavingsRecord, error)
	Create(ctx context.Context, rec domain.SavingsRecord) (domain.SavingsRecord, error)
	Update(ctx context.Context, id int64, rec domain.SavingsRecord) (domain.SavingsRecord, error)
}
