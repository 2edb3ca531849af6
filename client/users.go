package client

import (
	"context"
	"net/http"

	"prestabanco/domain"
)

// UsersService covers /api/users.
type UsersService struct {
	c *Client
}

func (s *UsersService) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := s.c.do(ctx, http.MethodGet, "/api/users", nil, &users)
	return users, err
}

func (s *UsersService) Create(ctx context.Context, user domain.User) (domain.User, error) {
	var out domain.User
	err := s.c.do(ctx, http.MethodPost, "/api/users", user, &out)
	return out, err
}

func (s *UsersService) Get(ctx context.Context, id int64) (domain.User, error) {
	var out domain.User
	err := s.c.do(ctx, http.MethodGet, "/api/users/"+segment(id), nil, &out)
	return out, err
}

func (s *UsersService) Update(ctx context.Context, id int64, user domain.User) (domain.User, error) {
	var out domain.User
	err := s.c.do(ctx, http.MethodPut, "/api/users/"+segment(id), user, &out)
	return out, err
}

func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/api/users/"+segment(id), nil, nil)
}

func (s *UsersService) FindByRut(ctx context.Context, rut string) (domain.User, error) {
	var out domain.User
	err := s.c.do(ctx, http.MethodGet, "/api/users/rut/"+segment(rut), nil, &out)
	return out, err
}

func (s *UsersService) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var out domain.User
	err := s.c.do(ctx, http.MethodGet, "/api/users/email/"+segment(email), nil, &out)
	return out, err
}

func (s *UsersService) Register(ctx context.Context, user domain.User) (domain.User, error) {
	var out domain.User
	err := s.c.do(ctx, http.MethodPost, "/api/users/register", user, &out)
	return out, err
}

func (s *UsersService) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	var out domain.LoginResult
	err := s.c.do(ctx, http.MethodPost, "/api/users/login", creds, &out)
	return out, err
}

func (s *UsersService) Logout(ctx context.Context) error {
	return s.c.do(ctx, http.MethodPost, "/api/users/logout", nil, nil)
}
