// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Room struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Capacity  int       `db:"capacity" json:"capacity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Booking struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	RoomID    string    `db:"room_id" json:"room_id"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type AllowedEmail struct {
	Email     string    `db:"email" json:"email"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Slot is a candidate bookable interval, derived and never persisted.
// Start and End are wall-clock times in the caller's local zone, the
// absolute instants are kept for admission checks.
type Slot struct {
	Start         string    `json:"start"`
	End           string    `json:"end"`
	StartInstant  time.Time `json:"start_time"`
	EndInstant    time.Time `json:"end_time"`
	DurationHours int       `json:"duration_hours"`
}
