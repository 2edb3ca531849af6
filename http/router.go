package http

import "net/http"

// Handlers groups every view handler the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Simulator   *SimulatorHandler
	Application *ApplicationHandler
	Management  *ManagementHandler
	Credit      *CreditHandler
	History     *HistoryHandler
	Health      *HealthHandler
}

// NewRouter mounts the console endpoints behind the rate limiter.
func NewRouter(h Handlers, sessions SessionParser, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()
	auth := NewAuth(sessions)

	open := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, auth.Optional(fn))
	}
	signedIn := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, auth.Require(fn))
	}
	executive := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, auth.Executive(fn))
	}

	open("POST /auth/register", h.Auth.Register)
	open("POST /auth/login", h.Auth.Login)
	signedIn("POST /auth/logout", h.Auth.Logout)
	signedIn("GET /auth/me", h.Auth.Me)

	open("GET /rates", h.Simulator.Rates)
	open("POST /simulator", h.Simulator.Simulate)
	signedIn("GET /simulator/history", h.Simulator.History)

	open("GET /loan-application/steps", h.Application.Steps)
	open("POST /loan-application/steps/{step}", h.Application.ValidateStep)
	signedIn("POST /loan-application/documents", h.Application.UploadDocument)
	signedIn("POST /loan-application", h.Application.Submit)
	signedIn("GET /applications", h.Application.Mine)

	executive("GET /managements", h.Management.List)
	executive("PUT /managements/{id}/status", h.Management.ChangeStatus)
	executive("GET /managements/{id}/documents/{key}", h.Management.Document)

	executive("GET /credit/{id}", h.Credit.Load)
	executive("POST /credit/{id}/what-if", h.Credit.WhatIf)
	executive("POST /credit/{id}/savings", h.Credit.CreateSavings)
	executive("PUT /credit/{id}/savings", h.Credit.UpdateSavings)

	executive("GET /history", h.History.History)

	mux.HandleFunc("GET /healthz", h.Health.Healthz)

	if limiter == nil {
		return mux
	}
	return RateLimitMiddleware(limiter, sessions, mux)
}
