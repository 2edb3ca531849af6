package http

import (
	"context"
	"net/http"
	"strings"

	"prestabanco/client"
	"prestabanco/service"
)

type sessionKey struct{}

// SessionParser is implemented by *service.SessionService.
type SessionParser interface {
	Parse(ctx context.Context, token string) (service.Session, error)
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func withSession(ctx context.Context, session service.Session) context.Context {
	ctx = context.WithValue(ctx, sessionKey{}, session)
	return client.WithToken(ctx, session.Token)
}

// SessionFromContext returns the session put there by the auth middleware.
func SessionFromContext(ctx context.Context) (service.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(service.Session)
	return session, ok
}

type Auth struct {
	sessions SessionParser
}

func NewAuth(sessions SessionParser) *Auth {
	return &Auth{sessions: sessions}
}

// Optional attaches the session when a valid bearer token is sent and lets
// anonymous requests through.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if session, err := a.sessions.Parse(r.Context(), token); err == nil {
				r = r.WithContext(withSession(r.Context(), session))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Require rejects requests without a valid session.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Debe iniciar sesión")
			return
		}
		session, err := a.sessions.Parse(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, service.ErrInvalidSession.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
	})
}

// Executive is Require plus the EXECUTIVE role.
func (a *Auth) Executive(next http.Handler) http.Handler {
	return a.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := SessionFromContext(r.Context())
		if !session.User.IsExecutive() {
			writeError(w, http.StatusForbidden, "Acceso restringido a ejecutivos")
			return
		}
		next.ServeHTTP(w, r)
	}))
}
