package client

import (
	"context"
	"net/http"

	"prestabanco/domain"
)

// SavingsService covers /api/savings.
type SavingsService struct {
	c *Client
}

func (s *SavingsService) List(ctx context.Context) ([]domain.SavingsRecord, error) {
	var records []domain.SavingsRecord
	err := s.c.do(ctx, http.MethodGet, "/api/savings", nil, &records)
	return records, err
}

func (s *SavingsService) Create(ctx context.Context, rec domain.SavingsRecord) (domain.SavingsRecord, error) {
	var out domain.SavingsRecord
	err := s.c.do(ctx, http.MethodPost, "/api/savings", rec, &out)
	return out, err
}

func (s *SavingsService) Get(ctx context.Context, id int64) (domain.SavingsRecord, error) {
	var out domain.SavingsRecord
	err := s.c.do(ctx, http.MethodGet, "/api/savings/"+segment(id), nil, &out)
	return out, err
}

func (s *SavingsService) Update(ctx context.Context, id int64, rec domain.SavingsRecord) (domain.SavingsRecord, error) {
	var out domain.SavingsRecord
	err := s.c.do(ctx, http.MethodPut, "/api/savings/"+segment(id), rec, &out)
	return out, err
}

func (s *SavingsService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/api/savings/"+segment(id), nil, nil)
}

// GetByUser returns the applicant's savings account; a 404 APIError means none on file.
func (s *SavingsService) GetByUser(ctx context.Context, userID int64) (domain.SavingsRecord, error) {
	var out domain.SavingsRecord
	err := s.c.do(ctx, http.MethodGet, "/api/savings/user/"+segment(userID), nil, &out)
	return out, err
}

func (s *SavingsService) GetByAccountNumber(ctx context.Context, accountNumber string) (domain.SavingsRecord, error) {
	var out domain.SavingsRecord
	err := s.c.do(ctx, http.MethodGet, "/api/savings/account/"+segment(accountNumber), nil, &out)
	return out, err
}
