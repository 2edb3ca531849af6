package client

import (
	"context"
	"net/http"

	"prestabanco/domain"
)

// LoansService covers /api/loans.
type LoansService struct {
	c *Client
}

func (s *LoansService) List(ctx context.Context) ([]domain.Loan, error) {
	var loans []domain.Loan
	err := s.c.do(ctx, http.MethodGet, "/api/loans", nil, &loans)
	return loans, err
}

func (s *LoansService) Create(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	var out domain.Loan
	err := s.c.do(ctx, http.MethodPost, "/api/loans", loan, &out)
	return out, err
}

func (s *LoansService) Get(ctx context.Context, id int64) (domain.Loan, error) {
	var out domain.Loan
	err := s.c.do(ctx, http.MethodGet, "/api/loans/"+segment(id), nil, &out)
	return out, err
}

func (s *LoansService) Update(ctx context.Context, id int64, loan domain.Loan) (domain.Loan, error) {
	var out domain.Loan
	err := s.c.do(ctx, http.MethodPut, "/api/loans/"+segment(id), loan, &out)
	return out, err
}

func (s *LoansService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/api/loans/"+segment(id), nil, nil)
}

// CalculateCost returns the loan with TotalCost filled in by the backend.
func (s *LoansService) CalculateCost(ctx context.Context, in domain.LoanInput) (domain.Loan, error) {
	var out domain.Loan
	err := s.c.do(ctx, http.MethodPost, "/api/loans/calculate-cost", in, &out)
	return out, err
}

// Simulate returns the loan with MonthlyPayment filled in by the backend.
func (s *LoansService) Simulate(ctx context.Context, in domain.LoanInput) (domain.Loan, error) {
	var out domain.Loan
	err := s.c.do(ctx, http.MethodPost, "/api/loans/simulate", in, &out)
	return out, err
}

func (s *LoansService) ListByUser(ctx context.Context, userID int64) ([]domain.Loan, error) {
	var loans []domain.Loan
	err := s.c.do(ctx, http.MethodGet, "/api/loans/user/"+segment(userID), nil, &loans)
	return loans, err
}

func (s *LoansService) ListByUserAndType(ctx context.Context, userID int64, pt domain.PropertyType) ([]domain.Loan, error) {
	var loans []domain.Loan
	err := s.c.do(ctx, http.MethodGet, "/api/loans/user/"+segment(userID)+"/type/"+segment(pt), nil, &loans)
	return loans, err
}
