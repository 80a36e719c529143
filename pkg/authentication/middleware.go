// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/canonical/booking-service/internal/access"
	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/storage"
	"github.com/canonical/booking-service/internal/tracing"
)

type Middleware struct {
	sessions    TokenManagerInterface
	adminVerify TokenManagerInterface
	roles       RoleGetterInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(
	sessions TokenManagerInterface,
	adminVerify TokenManagerInterface,
	roles RoleGetterInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		sessions:    sessions,
		adminVerify: adminVerify,
		roles:       roles,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// RequireSession verifies the session cookie and injects the caller's email
// into the request context. Missing, expired or malformed tokens are all
// treated the same: no session.
func (m *Middleware) RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.RequireSession")
			defer span.End()

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				m.errorResponse(w, http.StatusUnauthorized, "not signed in")
				return
			}

			email, err := m.sessions.Verify(ctx, cookie.Value)
			if err != nil {
				m.logger.Debugf("session verification failed: %v", err)
				m.errorResponse(w, http.StatusUnauthorized, "not signed in")
				return
			}

			ctx = WithUserEmail(ctx, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates the admin area. It must run after RequireSession: the
// caller needs an admin role on the allow-list plus a step-up verification
// token bound to the same email.
func (m *Middleware) RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.RequireAdmin")
			defer span.End()

			email, ok := GetUserEmail(ctx)
			if !ok {
				m.errorResponse(w, http.StatusUnauthorized, "not signed in")
				return
			}

			role, err := m.roles.GetRole(ctx, email)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					m.errorResponse(w, http.StatusForbidden, "not authorized")
					return
				}
				m.logger.Errorf("failed to look up role: %v", err)
				m.errorResponse(w, http.StatusInternalServerError, "failed to look up role")
				return
			}
			if !access.IsAdminRole(role) {
				m.errorResponse(w, http.StatusForbidden, "not authorized")
				return
			}

			cookie, err := r.Cookie(AdminVerifyCookieName)
			if err != nil {
				m.errorResponse(w, http.StatusUnauthorized, "admin verification required")
				return
			}

			verifiedEmail, err := m.adminVerify.Verify(ctx, cookie.Value)
			if err != nil || !strings.EqualFold(verifiedEmail, email) {
				m.errorResponse(w, http.StatusUnauthorized, "admin verification required")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error": message,
	}); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}
