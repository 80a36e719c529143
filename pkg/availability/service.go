// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package availability computes free rooms and free slots. Every local
// calendar decision ("today", slot boundaries, the booking window) is made
// in the caller's zone, reconstructed from the tz offset the client sends;
// the server's own location is never consulted.
package availability

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/tracing"
	"github.com/canonical/booking-service/internal/types"
)

// MaxDaysAhead bounds the booking window: a slot may start no later than
// this many days after "today" in the caller's local calendar.
const MaxDaysAhead = 7

// SlotDurations are the bookable durations in hours, ascending.
var SlotDurations = []int{1, 2}

var ErrInvalidInput = errors.New("missing or invalid fields")

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

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

// Zone reconstructs the caller's fixed zone from a JS-style timezone
// offset (minutes west of UTC, so UTC = local + offset).
func Zone(tzOffsetMinutes int) *time.Location {
	return time.FixedZone("local", -tzOffsetMinutes*60)
}

// LocalStart turns caller-local date and wall-clock fields into an
// absolute instant.
func LocalStart(date, start string, tzOffsetMinutes int) (time.Time, error) {
	zone := Zone(tzOffsetMinutes)
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+start, zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return t, nil
}

// LocalMidnight returns 00:00 of the given caller-local date.
func LocalMidnight(date string, tzOffsetMinutes int) (time.Time, error) {
	zone := Zone(tzOffsetMinutes)
	t, err := time.ParseInLocation(dateLayout, date, zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return t, nil
}

// Overlaps is the half-open interval predicate: [s1,e1) and [s2,e2)
// overlap iff s1 < e2 and s2 < e1. Touching endpoints do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

func (s *Service) ListRooms(ctx context.Context) ([]*types.Room, error) {
	ctx, span := s.tracer.Start(ctx, "availability.Service.ListRooms")
	defer span.End()

	return s.storage.ListRooms(ctx)
}

// AvailableRooms returns the rooms free for the requested interval,
// ordered by name.
func (s *Service) AvailableRooms(ctx context.Context, date, start string, durationHours, tzOffset int) ([]*types.Room, error) {
	ctx, span := s.tracer.Start(ctx, "availability.Service.AvailableRooms")
	defer span.End()

	if !slices.Contains(SlotDurations, durationHours) {
		return nil, ErrInvalidInput
	}
	startTime, err := LocalStart(date, start, tzOffset)
	if err != nil {
		return nil, err
	}
	endTime := startTime.Add(time.Duration(durationHours) * time.Hour)

	rooms, err := s.storage.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	if len(rooms) == 0 {
		return []*types.Room{}, nil
	}

	overlapping, err := s.storage.ListBookingsOverlapping(ctx, "", startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	booked := make(map[string]struct{}, len(overlapping))
	for _, b := range overlapping {
		booked[b.RoomID] = struct{}{}
	}

	free := make([]*types.Room, 0, len(rooms))
	for _, r := range rooms {
		if _, taken := booked[r.ID]; !taken {
			free = append(free, r)
		}
	}

	return free, nil
}

// AvailableSlots enumerates the free slots for a room on a caller-local
// calendar day, ordered by start time then duration. A date outside
// [today, today+MaxDaysAhead] yields an empty result, not an error.
func (s *Service) AvailableSlots(ctx context.Context, roomID, date string, tzOffset int) ([]types.Slot, error) {
	ctx, span := s.tracer.Start(ctx, "availability.Service.AvailableSlots")
	defer span.End()

	if roomID == "" {
		return nil, ErrInvalidInput
	}
	day, err := LocalMidnight(date, tzOffset)
	if err != nil {
		return nil, err
	}

	now := s.now()
	zone := Zone(tzOffset)
	nowLocal := now.In(zone)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, zone)

	if day.Before(today) || day.After(today.AddDate(0, 0, MaxDaysAhead)) {
		return []types.Slot{}, nil
	}

	// One fetch covers the whole local day.
	existing, err := s.storage.ListBookingsOverlapping(ctx, roomID, day, day.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	slots := []types.Slot{}
	for hour := 0; hour <= 23; hour++ {
		for _, duration := range SlotDurations {
			if duration == 2 && hour == 23 {
				// Would cross midnight.
				continue
			}
			start := day.Add(time.Duration(hour) * time.Hour)
			end := start.Add(time.Duration(duration) * time.Hour)
			if !end.After(now) {
				continue
			}
			if overlapsAny(start, end, existing) {
				continue
			}
			slots = append(slots, types.Slot{
				Start:         start.Format(timeLayout),
				End:           end.Format(timeLayout),
				StartInstant:  start,
				EndInstant:    end,
				DurationHours: duration,
			})
		}
	}

	return slots, nil
}

func overlapsAny(start, end time.Time, bookings []*types.Booking) bool {
	for _, b := range bookings {
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}
