// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/tracing"
	"github.com/canonical/booking-service/pkg/authentication"
)

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
	r.Get("/bookings", a.listBookings)
	r.Post("/bookings", a.createBooking)
	r.Delete("/bookings/{id}", a.cancelBooking)
}

func (a *API) listBookings(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "booking.API.listBookings")
	defer span.End()

	email, ok := authentication.GetUserEmail(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, ErrNotSignedIn.Error())
		return
	}

	bookings, err := a.service.ListUserBookings(ctx, email)
	if err != nil {
		a.logger.Errorf("failed to list bookings: %v", err)
		a.errorResponse(w, statusForError(err), err.Error())
		return
	}

	a.jsonResponse(w, map[string]interface{}{"bookings": bookings})
}

func (a *API) createBooking(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "booking.API.createBooking")
	defer span.End()

	email, ok := authentication.GetUserEmail(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, ErrNotSignedIn.Error())
		return
	}

	req := new(CreateBookingRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}

	booking, err := a.service.CreateBooking(ctx, email, req)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			a.logger.Errorf("failed to create booking: %v", err)
		}
		a.errorResponse(w, status, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"booking": booking}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) cancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "booking.API.cancelBooking")
	defer span.End()

	email, ok := authentication.GetUserEmail(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, ErrNotSignedIn.Error())
		return
	}

	if err := a.service.CancelBooking(ctx, email, chi.URLParam(r, "id")); err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			a.logger.Errorf("failed to cancel booking: %v", err)
		}
		a.errorResponse(w, status, err.Error())
		return
	}

	a.jsonResponse(w, map[string]interface{}{"status": "ok"})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrNotSignedIn):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrPastDate),
		errors.Is(err, ErrTooFarAhead),
		errors.Is(err, ErrStartNotFuture):
		return http.StatusBadRequest
	case errors.Is(err, ErrActiveBookingExists),
		errors.Is(err, ErrRoomUnavailable):
		return http.StatusConflict
	case errors.Is(err, ErrBookingNotFound):
		return http.StatusNotFound
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
