// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package booking

import (
	"context"
	"time"

	"github.com/canonical/booking-service/internal/types"
)

type StorageInterface interface {
	CountActiveBookingsByEmail(ctx context.Context, email string, now time.Time) (int, error)
	InsertBooking(ctx context.Context, email, roomID string, start, end time.Time) (*types.Booking, error)
	DeleteBooking(ctx context.Context, id, ownerEmail string) error
	ListBookingsByEmail(ctx context.Context, email string) ([]*types.Booking, error)
}

type ServiceInterface interface {
	CreateBooking(ctx context.Context, email string, req *CreateBookingRequest) (*types.Booking, error)
	CancelBooking(ctx context.Context, email, id string) error
	ListUserBookings(ctx context.Context, email string) ([]*types.Booking, error)
}
