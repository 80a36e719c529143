// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package availability

import (
	"context"
	"time"

	"github.com/canonical/booking-service/internal/types"
)

type StorageInterface interface {
	ListRooms(ctx context.Context) ([]*types.Room, error)
	ListBookingsOverlapping(ctx context.Context, roomID string, start, end time.Time) ([]*types.Booking, error)
}

type ServiceInterface interface {
	ListRooms(ctx context.Context) ([]*types.Room, error)
	AvailableRooms(ctx context.Context, date, start string, durationHours, tzOffset int) ([]*types.Room, error)
	AvailableSlots(ctx context.Context, roomID, date string, tzOffset int) ([]types.Slot, error)
}
