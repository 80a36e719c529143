// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package availability

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/tracing"
)

type API struct {
	service ServiceInterface

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
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/rooms", a.listRooms)
	r.Get("/rooms/available", a.availableRooms)
	r.Get("/rooms/{id}/slots", a.availableSlots)
}

func (a *API) listRooms(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "availability.API.listRooms")
	defer span.End()

	rooms, err := a.service.ListRooms(ctx)
	if err != nil {
		a.logger.Errorf("failed to list rooms: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.jsonResponse(w, map[string]interface{}{"rooms": rooms})
}

func (a *API) availableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "availability.API.availableRooms")
	defer span.End()

	q := r.URL.Query()
	duration, err := strconv.Atoi(q.Get("duration"))
	if err != nil {
		a.errorResponse(w, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}
	tzOffset, err := parseTzOffset(q.Get("tz_offset"))
	if err != nil {
		a.errorResponse(w, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}

	rooms, err := a.service.AvailableRooms(ctx, q.Get("date"), q.Get("start"), duration, tzOffset)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			a.errorResponse(w, http.StatusBadRequest, ErrInvalidInput.Error())
			return
		}
		a.logger.Errorf("failed to compute available rooms: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.jsonResponse(w, map[string]interface{}{"rooms": rooms})
}

func (a *API) availableSlots(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "availability.API.availableSlots")
	defer span.End()

	tzOffset, err := parseTzOffset(r.URL.Query().Get("tz_offset"))
	if err != nil {
		a.errorResponse(w, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}

	slots, err := a.service.AvailableSlots(ctx, chi.URLParam(r, "id"), r.URL.Query().Get("date"), tzOffset)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			a.errorResponse(w, http.StatusBadRequest, ErrInvalidInput.Error())
			return
		}
		a.logger.Errorf("failed to compute available slots: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.jsonResponse(w, map[string]interface{}{"slots": slots})
}

// parseTzOffset treats a missing offset as UTC rather than rejecting,
// so non-browser clients need not send one.
func parseTzOffset(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
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
