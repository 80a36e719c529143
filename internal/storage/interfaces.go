// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/booking-service/internal/types"
)

type StorageInterface interface {
	ListRooms(ctx context.Context) ([]*types.Room, error)
	GetRoomByID(ctx context.Context, id string) (*types.Room, error)

	ListBookingsOverlapping(ctx context.Context, roomID string, start, end time.Time) ([]*types.Booking, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]*types.Booking, error)
	CountActiveBookingsByEmail(ctx context.Context, email string, now time.Time) (int, error)
	InsertBooking(ctx context.Context, email, roomID string, start, end time.Time) (*types.Booking, error)
	DeleteBooking(ctx context.Context, id, ownerEmail string) error

	GetRoleByEmail(ctx context.Context, email string) (string, error)
	CountByRole(ctx context.Context, role string) (int, error)
	ListAllowedEmails(ctx context.Context) ([]*types.AllowedEmail, error)
	InsertAllowedEmail(ctx context.Context, email, role string) error
	UpdateAllowedEmailRole(ctx context.Context, email, role string) error
	DeleteAllowedEmail(ctx context.Context, email string) error
}
