// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/booking-service/internal/db"
	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/tracing"
	"github.com/canonical/booking-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) ListRooms(ctx context.Context) ([]*types.Room, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRooms")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "capacity", "created_at").
		From("rooms").
		OrderBy("name ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*types.Room
	for rows.Next() {
		var r types.Room
		if err := rows.Scan(&r.ID, &r.Name, &r.Capacity, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return rooms, nil
}

func (s *Storage) GetRoomByID(ctx context.Context, id string) (*types.Room, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRoomByID")
	defer span.End()

	var r types.Room
	err := s.db.Statement(ctx).
		Select("id", "name", "capacity", "created_at").
		From("rooms").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.Name, &r.Capacity, &r.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return &r, nil
}

// ListBookingsOverlapping returns bookings whose half-open interval
// intersects [start, end). An empty roomID matches every room.
func (s *Storage) ListBookingsOverlapping(ctx context.Context, roomID string, start, end time.Time) ([]*types.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBookingsOverlapping")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "email", "room_id", "start_time", "end_time", "created_at").
		From("bookings").
		Where(sq.Lt{"start_time": end}).
		Where(sq.Gt{"end_time": start})

	if roomID != "" {
		query = query.Where(sq.Eq{"room_id": roomID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*types.Booking
	for rows.Next() {
		var b types.Booking
		if err := rows.Scan(&b.ID, &b.Email, &b.RoomID, &b.StartTime, &b.EndTime, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

func (s *Storage) ListBookingsByEmail(ctx context.Context, email string) ([]*types.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBookingsByEmail")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "email", "room_id", "start_time", "end_time", "created_at").
		From("bookings").
		Where(sq.Eq{"email": email}).
		OrderBy("start_time ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*types.Booking
	for rows.Next() {
		var b types.Booking
		if err := rows.Scan(&b.ID, &b.Email, &b.RoomID, &b.StartTime, &b.EndTime, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

func (s *Storage) CountActiveBookingsByEmail(ctx context.Context, email string, now time.Time) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveBookingsByEmail")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("bookings").
		Where(sq.Eq{"email": email}).
		Where(sq.Gt{"end_time": now}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}

	return count, nil
}

func (s *Storage) InsertBooking(ctx context.Context, email, roomID string, start, end time.Time) (*types.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertBooking")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate booking ID: %w", err)
	}

	var b types.Booking
	err = s.db.Statement(ctx).
		Insert("bookings").
		Columns("id", "email", "room_id", "start_time", "end_time").
		Values(id.String(), email, roomID, start, end).
		Suffix("RETURNING id, email, room_id, start_time, end_time, created_at").
		QueryRowContext(ctx).
		Scan(&b.ID, &b.Email, &b.RoomID, &b.StartTime, &b.EndTime, &b.CreatedAt)

	if err != nil {
		if IsExclusionViolation(err) {
			return nil, ErrBookingOverlap
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	return &b, nil
}

// DeleteBooking removes a booking only when ownerEmail matches the row.
func (s *Storage) DeleteBooking(ctx context.Context, id, ownerEmail string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteBooking")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("bookings").
		Where(sq.Eq{
			"id":    id,
			"email": ownerEmail,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetRoleByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRoleByEmail")
	defer span.End()

	var role string
	err := s.db.Statement(ctx).
		Select("role").
		From("allowed_emails").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx).
		Scan(&role)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get role: %w", err)
	}

	return role, nil
}

func (s *Storage) CountByRole(ctx context.Context, role string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountByRole")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("allowed_emails").
		Where(sq.Eq{"role": role}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count by role: %w", err)
	}

	return count, nil
}

func (s *Storage) ListAllowedEmails(ctx context.Context) ([]*types.AllowedEmail, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAllowedEmails")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("email", "role", "created_at").
		From("allowed_emails").
		OrderBy("email ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowed emails: %w", err)
	}
	defer rows.Close()

	var entries []*types.AllowedEmail
	for rows.Next() {
		var e types.AllowedEmail
		if err := rows.Scan(&e.Email, &e.Role, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan allowed email: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating allowed email rows: %w", err)
	}

	return entries, nil
}

func (s *Storage) InsertAllowedEmail(ctx context.Context, email, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.InsertAllowedEmail")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("allowed_emails").
		Columns("email", "role").
		Values(email, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert allowed email: %w", err)
	}

	return nil
}

func (s *Storage) UpdateAllowedEmailRole(ctx context.Context, email, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAllowedEmailRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("allowed_emails").
		Set("role", role).
		Where(sq.Eq{"email": email}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteAllowedEmail(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAllowedEmail")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("allowed_emails").
		Where(sq.Eq{"email": email}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete allowed email: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
