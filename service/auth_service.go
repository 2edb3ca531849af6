package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"prestabanco/client"
	"prestabanco/domain"
)

type AuthService struct {
	users    UsersAPI
	sessions *SessionService
}

func NewAuthService(users UsersAPI, sessions *SessionService) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Register creates a client account. Role is always CLIENT; executives are
// provisioned on the backend.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(reg.Email) == "" {
		fields["email"] = "Ingrese un email válido"
	}
	if reg.Password == "" {
		fields["password"] = "Ingrese una contraseña"
	}
	if reg.Password != reg.ConfirmPassword {
		fields["confirmPassword"] = "Las contraseñas no coinciden"
	}
	if reg.Age < 0 {
		fields["age"] = "Ingrese una edad válida"
	}
	if err := validationOrNil(fields); err != nil {
		return domain.User{}, err
	}

	user, err := s.users.Register(ctx, reg.User())
	if err != nil {
		return domain.User{}, alert("Error al registrar usuario", err)
	}
	return user.Public(), nil
}

// Login checks the credentials against the backend and opens a session.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (Session, error) {
	res, err := s.users.Login(ctx, creds)
	if err != nil {
		return Session{}, alert("Email o contraseña incorrectos", err)
	}
	if !res.IsAuthenticated {
		return Session{}, alert("Email o contraseña incorrectos", errors.New("backend did not authenticate user"))
	}
	return s.sessions.Issue(res.User)
}

// Logout revokes the session locally first, then tells the backend.
func (s *AuthService) Logout(ctx context.Context, session Session) error {
	if err := s.sessions.Revoke(ctx, session); err != nil {
		return alert("Error al cerrar sesión", err)
	}
	if err := s.users.Logout(client.WithToken(ctx, session.Token)); err != nil {
		log.Printf("Warning: backend logout failed: %v", err)
	}
	return nil
}
