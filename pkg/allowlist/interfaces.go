// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package allowlist

import (
	"context"

	"github.com/canonical/booking-service/internal/access"
	"github.com/canonical/booking-service/internal/types"
)

type StorageInterface interface {
	GetRoleByEmail(ctx context.Context, email string) (string, error)
	CountByRole(ctx context.Context, role string) (int, error)
	ListAllowedEmails(ctx context.Context) ([]*types.AllowedEmail, error)
	InsertAllowedEmail(ctx context.Context, email, role string) error
	UpdateAllowedEmailRole(ctx context.Context, email, role string) error
	DeleteAllowedEmail(ctx context.Context, email string) error
}

type ServiceInterface interface {
	ListEmails(ctx context.Context) ([]*types.AllowedEmail, error)
	AddEmail(ctx context.Context, actor, email, role string) error
	RemoveEmail(ctx context.Context, actor, target string) error
	UpdateRole(ctx context.Context, actor, target, role string) error
	GetRole(ctx context.Context, email string) (access.Role, error)
}
