package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"prestabanco/domain"
	"prestabanco/repository"
)

const (
	sessionIssuer    = "prestabanco-console"
	revokedKeyPrefix = "session:revoked:"
	minSessionSecret = 16
)

var ErrInvalidSession = errors.New("sesión inválida o expirada")

type sessionClaims struct {
	UserID    int64           `json:"uid"`
	Role      domain.UserRole `json:"role"`
	FirstName string          `json:"given_name,omitempty"`
	LastName  string          `json:"family_name,omitempty"`
	Email     string          `json:"email,omitempty"`
	Age       int             `json:"age,omitempty"`
	jwt.RegisteredClaims
}

// Session is an authenticated console user. Token is the signed bearer token
// that is also forwarded to the backend.
type Session struct {
	ID        string      `json:"-"`
	Token     string      `json:"token"`
	User      domain.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

type SessionService struct {
	secret []byte
	ttl    time.Duration
	cache  repository.CacheRepository
	now    func() time.Time
}

func NewSessionService(secret string, ttl time.Duration, cache repository.CacheRepository) (*SessionService, error) {
	if len(secret) < minSessionSecret {
		return nil, fmt.Errorf("session secret must be at least %d bytes", minSessionSecret)
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		secret: []byte(secret),
		ttl:    ttl,
		cache:  cache,
		now:    time.Now,
	}, nil
}

// Issue signs a new session for the user.
func (s *SessionService) Issue(user domain.User) (Session, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	id := uuid.NewString()

	claims := sessionClaims{
		UserID:    user.ID,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Age:       user.Age,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    sessionIssuer,
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign session: %w", err)
	}
	return Session{ID: id, Token: token, User: user.Public(), ExpiresAt: expiresAt}, nil
}

// Parse verifies the token and rejects revoked sessions.
func (s *SessionService) Parse(ctx context.Context, token string) (Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	revoked, err := s.cache.Exists(ctx, revokedKeyPrefix+claims.ID)
	if err != nil {
		// Sin acceso a las revocaciones la sesión no se acepta.
		return Session{}, fmt.Errorf("%w: revocation check: %v", ErrInvalidSession, err)
	}
	if revoked {
		return Session{}, ErrInvalidSession
	}
	return Session{
		ID:    claims.ID,
		Token: token,
		User: domain.User{
			ID:        claims.UserID,
			Role:      claims.Role,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
			Email:     claims.Email,
			Age:       claims.Age,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke blocks the session until it would have expired anyway.
func (s *SessionService) Revoke(ctx context.Context, session Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, revokedKeyPrefix+session.ID, "1", ttl)
}
