// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package booking admits and cancels bookings. Admission revalidates every
// client-supplied field against the same calendar rules the availability
// engine advertises, then leans on the store's exclusion constraint to
// settle races it cannot see.
package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/storage"
	"github.com/canonical/booking-service/internal/tracing"
	"github.com/canonical/booking-service/internal/types"
	"github.com/canonical/booking-service/pkg/availability"
)

var (
	ErrNotSignedIn         = errors.New("not signed in")
	ErrInvalidInput        = errors.New("missing or invalid fields")
	ErrPastDate            = errors.New("cannot book in the past")
	ErrTooFarAhead         = errors.New("bookings are only allowed up to 7 days in advance")
	ErrStartNotFuture      = errors.New("start time must be in the future")
	ErrActiveBookingExists = errors.New("you already have an active booking")
	ErrRoomUnavailable     = errors.New("room is no longer available")
	ErrBookingNotFound     = errors.New("booking not found")
)

// CreateBookingRequest carries the client's caller-local view of the slot;
// tz_offset is the JS-style offset in minutes west of UTC.
type CreateBookingRequest struct {
	RoomID   string `json:"room_id" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Start    string `json:"start" validate:"required,datetime=15:04"`
	Duration int    `json:"duration" validate:"required,oneof=1 2"`
	TzOffset int    `json:"tz_offset"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	// now is swapped in tests.
	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateBooking admits a booking, checking the cheapest rejections first.
// The first failing check wins; nothing is written before all pass.
func (s *Service) CreateBooking(ctx context.Context, email string, req *CreateBookingRequest) (*types.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Service.CreateBooking")
	defer span.End()

	if email == "" {
		return nil, ErrNotSignedIn
	}
	if req == nil || req.RoomID == "" || req.Date == "" || req.Start == "" {
		return nil, ErrInvalidInput
	}
	if !slices.Contains(availability.SlotDurations, req.Duration) {
		return nil, ErrInvalidInput
	}

	start, err := availability.LocalStart(req.Date, req.Start, req.TzOffset)
	if err != nil {
		return nil, ErrInvalidInput
	}
	day, err := availability.LocalMidnight(req.Date, req.TzOffset)
	if err != nil {
		return nil, ErrInvalidInput
	}

	now := s.now()
	zone := availability.Zone(req.TzOffset)
	nowLocal := now.In(zone)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, zone)

	if day.Before(today) {
		return nil, ErrPastDate
	}
	if day.After(today.AddDate(0, 0, availability.MaxDaysAhead)) {
		return nil, ErrTooFarAhead
	}
	if !start.After(now) {
		return nil, ErrStartNotFuture
	}

	active, err := s.storage.CountActiveBookingsByEmail(ctx, email, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count active bookings: %w", err)
	}
	if active > 0 {
		return nil, ErrActiveBookingExists
	}

	end := start.Add(time.Duration(req.Duration) * time.Hour)

	booking, err := s.storage.InsertBooking(ctx, email, req.RoomID, start, end)
	if err != nil {
		// A concurrent winner tripped the exclusion constraint; the slot
		// looked free when we checked but is gone now.
		if errors.Is(err, storage.ErrBookingOverlap) {
			return nil, ErrRoomUnavailable
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.Infof("booking %s created for %s in room %s", booking.ID, email, booking.RoomID)
	return booking, nil
}

// CancelBooking deletes a booking the caller owns. A miss and someone
// else's booking are indistinguishable to the caller.
func (s *Service) CancelBooking(ctx context.Context, email, id string) error {
	ctx, span := s.tracer.Start(ctx, "booking.Service.CancelBooking")
	defer span.End()

	if email == "" {
		return ErrNotSignedIn
	}
	if id == "" {
		return ErrInvalidInput
	}

	if err := s.storage.DeleteBooking(ctx, id, email); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.logger.Infof("booking %s cancelled by %s", id, email)
	return nil
}

func (s *Service) ListUserBookings(ctx context.Context, email string) ([]*types.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Service.ListUserBookings")
	defer span.End()

	if email == "" {
		return nil, ErrNotSignedIn
	}

	return s.storage.ListBookingsByEmail(ctx, email)
}
