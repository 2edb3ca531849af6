package client

import (
	"context"
	"net/http"

	"prestabanco/domain"
)

// ApplicationsService covers /api/applications.
type ApplicationsService struct {
	c *Client
}

func (s *ApplicationsService) List(ctx context.Context) ([]domain.LoanApplication, error) {
	var apps []domain.LoanApplication
	err := s.c.do(ctx, http.MethodGet, "/api/applications", nil, &apps)
	return apps, err
}

func (s *ApplicationsService) Create(ctx context.Context, app domain.LoanApplication) (domain.LoanApplication, error) {
	var out domain.LoanApplication
	err := s.c.do(ctx, http.MethodPost, "/api/applications", app, &out)
	return out, err
}

func (s *ApplicationsService) Get(ctx context.Context, id int64) (domain.LoanApplication, error) {
	var out domain.LoanApplication
	err := s.c.do(ctx, http.MethodGet, "/api/applications/"+segment(id), nil, &out)
	return out, err
}

func (s *ApplicationsService) Update(ctx context.Context, id int64, app domain.LoanApplication) (domain.LoanApplication, error) {
	var out domain.LoanApplication
	err := s.c.do(ctx, http.MethodPut, "/api/applications/"+segment(id), app, &out)
	return out, err
}

func (s *ApplicationsService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/api/applications/"+segment(id), nil, nil)
}

// Evaluate asks the backend to run its credit rules for the application.
func (s *ApplicationsService) Evaluate(ctx context.Context, id int64) (domain.EvaluationResult, error) {
	var out domain.EvaluationResult
	err := s.c.do(ctx, http.MethodPost, "/api/applications/"+segment(id)+"/evaluate", nil, &out)
	return out, err
}

func (s *ApplicationsService) ListByUser(ctx context.Context, userID int64) ([]domain.LoanApplication, error) {
	var apps []domain.LoanApplication
	err := s.c.do(ctx, http.MethodGet, "/api/applications/user/"+segment(userID), nil, &apps)
	return apps, err
}

func (s *ApplicationsService) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.LoanApplication, error) {
	var apps []domain.LoanApplication
	err := s.c.do(ctx, http.MethodGet, "/api/applications/status/"+segment(status), nil, &apps)
	return apps, err
}

func (s *ApplicationsService) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (domain.LoanApplication, error) {
	var out domain.LoanApplication
	err := s.c.do(ctx, http.MethodPut, "/api/applications/"+segment(id)+"/status", domain.StatusUpdate{Status: status}, &out)
	return out, err
}
