// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package allowlist manages the email allow-list that doubles as the role
// store. Role lookups sit on the middleware hot path, so reads go through
// a short-lived cache that every mutation invalidates.
package allowlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/canonical/booking-service/internal/access"
	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/storage"
	"github.com/canonical/booking-service/internal/tracing"
	"github.com/canonical/booking-service/internal/types"
)

const (
	roleCacheTTL     = time.Minute
	roleCacheCleanup = 5 * time.Minute
)

var (
	ErrInvalidInput   = errors.New("missing or invalid fields")
	ErrForbidden      = errors.New("insufficient permissions")
	ErrDuplicateEmail = errors.New("that email is already allowed")
	ErrEmailNotFound  = errors.New("email not found")
	ErrLastSuperAdmin = errors.New("at least one super admin is required")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	roles   *gocache.Cache

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
		roles:   gocache.New(roleCacheTTL, roleCacheCleanup),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) ListEmails(ctx context.Context) ([]*types.AllowedEmail, error) {
	ctx, span := s.tracer.Start(ctx, "allowlist.Service.ListEmails")
	defer span.End()

	return s.storage.ListAllowedEmails(ctx)
}

// GetRole resolves an email's role, serving repeat lookups from the cache.
// A missing entry surfaces as storage.ErrNotFound so callers can tell
// "unknown email" from a store failure.
func (s *Service) GetRole(ctx context.Context, email string) (access.Role, error) {
	ctx, span := s.tracer.Start(ctx, "allowlist.Service.GetRole")
	defer span.End()

	email = normalizeEmail(email)
	if email == "" {
		return "", ErrInvalidInput
	}

	if cached, ok := s.roles.Get(email); ok {
		return cached.(access.Role), nil
	}

	raw, err := s.storage.GetRoleByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	role, err := access.ParseRole(raw)
	if err != nil {
		return "", fmt.Errorf("store returned unknown role for %s: %w", email, err)
	}

	s.roles.Set(email, role, gocache.DefaultExpiration)
	return role, nil
}

// AddEmail adds an allow-list entry with the given role on behalf of actor.
func (s *Service) AddEmail(ctx context.Context, actor, email, role string) error {
	ctx, span := s.tracer.Start(ctx, "allowlist.Service.AddEmail")
	defer span.End()

	email = normalizeEmail(email)
	if email == "" {
		return ErrInvalidInput
	}
	newRole, err := access.ParseRole(role)
	if err != nil {
		return ErrInvalidInput
	}

	actorRole, err := s.actorRole(ctx, actor)
	if err != nil {
		return err
	}
	if !access.CanCreateRole(actorRole, newRole) {
		return ErrForbidden
	}

	if err := s.storage.InsertAllowedEmail(ctx, email, string(newRole)); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to add email: %w", err)
	}

	s.roles.Delete(email)
	s.logger.Infof("%s added %s as %s", actor, email, newRole)
	return nil
}

// RemoveEmail deletes an entry, refusing to orphan the allow-list of its
// last super admin.
func (s *Service) RemoveEmail(ctx context.Context, actor, target string) error {
	ctx, span := s.tracer.Start(ctx, "allowlist.Service.RemoveEmail")
	defer span.End()

	target = normalizeEmail(target)
	if target == "" {
		return ErrInvalidInput
	}

	actorRole, err := s.actorRole(ctx, actor)
	if err != nil {
		return err
	}
	targetRole, err := s.targetRole(ctx, target)
	if err != nil {
		return err
	}

	if !access.CanRemoveEmail(actorRole, targetRole) {
		return ErrForbidden
	}
	if targetRole == access.RoleSuperAdmin {
		if err := s.requireSpareSuperAdmin(ctx); err != nil {
			return err
		}
	}

	if err := s.storage.DeleteAllowedEmail(ctx, target); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrEmailNotFound
		}
		return fmt.Errorf("failed to remove email: %w", err)
	}

	s.roles.Delete(target)
	s.logger.Infof("%s removed %s", actor, target)
	return nil
}

// UpdateRole changes an entry's role, guarding super admin downgrades the
// same way removal is guarded.
func (s *Service) UpdateRole(ctx context.Context, actor, target, role string) error {
	ctx, span := s.tracer.Start(ctx, "allowlist.Service.UpdateRole")
	defer span.End()

	target = normalizeEmail(target)
	if target == "" {
		return ErrInvalidInput
	}
	newRole, err := access.ParseRole(role)
	if err != nil {
		return ErrInvalidInput
	}

	actorRole, err := s.actorRole(ctx, actor)
	if err != nil {
		return err
	}
	if !access.CanChangeRole(actorRole) {
		return ErrForbidden
	}

	targetRole, err := s.targetRole(ctx, target)
	if err != nil {
		return err
	}
	if targetRole == access.RoleSuperAdmin && newRole != access.RoleSuperAdmin {
		if err := s.requireSpareSuperAdmin(ctx); err != nil {
			return err
		}
	}

	if err := s.storage.UpdateAllowedEmailRole(ctx, target, string(newRole)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrEmailNotFound
		}
		return fmt.Errorf("failed to update role: %w", err)
	}

	s.roles.Delete(target)
	s.logger.Infof("%s changed %s to %s", actor, target, newRole)
	return nil
}

func (s *Service) actorRole(ctx context.Context, actor string) (access.Role, error) {
	role, err := s.GetRole(ctx, actor)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrForbidden
		}
		return "", fmt.Errorf("failed to resolve actor role: %w", err)
	}
	return role, nil
}

func (s *Service) targetRole(ctx context.Context, target string) (access.Role, error) {
	raw, err := s.storage.GetRoleByEmail(ctx, target)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrEmailNotFound
		}
		return "", fmt.Errorf("failed to resolve target role: %w", err)
	}
	role, err := access.ParseRole(raw)
	if err != nil {
		return "", fmt.Errorf("store returned unknown role for %s: %w", target, err)
	}
	return role, nil
}

func (s *Service) requireSpareSuperAdmin(ctx context.Context) error {
	count, err := s.storage.CountByRole(ctx, string(access.RoleSuperAdmin))
	if err != nil {
		return fmt.Errorf("failed to count super admins: %w", err)
	}
	if count <= 1 {
		return ErrLastSuperAdmin
	}
	return nil
}
