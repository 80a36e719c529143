// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/tracing"
)

type API struct {
	service       ServiceInterface
	sessions      TokenManagerInterface
	adminVerify   TokenManagerInterface
	secureCookies bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	sessions TokenManagerInterface,
	adminVerify TokenManagerInterface,
	secureCookies bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:       service,
		sessions:      sessions,
		adminVerify:   adminVerify,
		secureCookies: secureCookies,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// RegisterPublicEndpoints mounts sign-in and sign-out. The router is
// expected to rate limit this group.
func (a *API) RegisterPublicEndpoints(r chi.Router) {
	r.Post("/auth/login", a.login)
	r.Post("/auth/logout", a.logout)
}

// RegisterVerifyEndpoints mounts the admin step-up check on a
// session-guarded router.
func (a *API) RegisterVerifyEndpoints(r chi.Router) {
	r.Post("/admin/verify", a.verifyAdmin)
}

type loginRequest struct {
	Email string `json:"email"`
}

type verifyRequest struct {
	Password string `json:"password"`
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.login")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		a.errorResponse(w, http.StatusBadRequest, "please enter your email")
		return
	}

	token, err := a.service.SignIn(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrEmailNotAllowed) {
			a.errorResponse(w, http.StatusUnauthorized, ErrEmailNotAllowed.Error())
			return
		}
		a.logger.Errorf("sign-in failed: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   a.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	a.okResponse(w)
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "authentication.API.logout")
	defer span.End()

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	a.okResponse(w)
}

func (a *API) verifyAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.verifyAdmin")
	defer span.End()

	email, ok := GetUserEmail(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not signed in")
		return
	}

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := a.service.VerifyAdmin(ctx, email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotAuthorized):
			a.errorResponse(w, http.StatusForbidden, ErrNotAuthorized.Error())
		case errors.Is(err, ErrWrongPassword):
			a.errorResponse(w, http.StatusUnauthorized, ErrWrongPassword.Error())
		default:
			a.logger.Errorf("admin verification failed: %v", err)
			a.errorResponse(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AdminVerifyCookieName,
		Value:    token,
		Path:     "/api/v0/admin",
		MaxAge:   int(a.adminVerify.TTL().Seconds()),
		HttpOnly: true,
		Secure:   a.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	a.okResponse(w)
}

func (a *API) okResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
	}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error": message,
	}); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}
