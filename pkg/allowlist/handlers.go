// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package allowlist

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	chi "github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/tracing"
	"github.com/canonical/booking-service/pkg/authentication"
)

type AddEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/admin/emails", a.listEmails)
	r.Post("/admin/emails", a.addEmail)
	r.Patch("/admin/emails/{email}", a.updateRole)
	r.Delete("/admin/emails/{email}", a.removeEmail)
}

func (a *API) listEmails(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "allowlist.API.listEmails")
	defer span.End()

	emails, err := a.service.ListEmails(ctx)
	if err != nil {
		a.logger.Errorf("failed to list allowed emails: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.jsonResponse(w, map[string]interface{}{"emails": emails})
}

func (a *API) addEmail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "allowlist.API.addEmail")
	defer span.End()

	actor, ok := authentication.GetUserEmail(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not signed in")
		return
	}

	req := new(AddEmailRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}

	if err := a.service.AddEmail(ctx, actor, req.Email, req.Role); err != nil {
		a.writeError(w, err, "failed to add email")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"status": "ok"}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "allowlist.API.updateRole")
	defer span.End()

	actor, ok := authentication.GetUserEmail(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not signed in")
		return
	}

	req := new(UpdateRoleRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}

	if err := a.service.UpdateRole(ctx, actor, emailParam(r), req.Role); err != nil {
		a.writeError(w, err, "failed to update role")
		return
	}

	a.jsonResponse(w, map[string]interface{}{"status": "ok"})
}

func (a *API) removeEmail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "allowlist.API.removeEmail")
	defer span.End()

	actor, ok := authentication.GetUserEmail(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not signed in")
		return
	}

	if err := a.service.RemoveEmail(ctx, actor, emailParam(r)); err != nil {
		a.writeError(w, err, "failed to remove email")
		return
	}

	a.jsonResponse(w, map[string]interface{}{"status": "ok"})
}

// emailParam decodes the {email} path segment; addresses contain characters
// clients must percent-encode.
func emailParam(r *http.Request) string {
	raw := chi.URLParam(r, "email")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (a *API) writeError(w http.ResponseWriter, err error, logPrefix string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		a.logger.Errorf("%s: %v", logPrefix, err)
	}
	a.errorResponse(w, status, err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrLastSuperAdmin):
		return http.StatusForbidden
	case errors.Is(err, ErrEmailNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (a *API) jsonResponse(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
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
