// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/canonical/booking-service/internal/access"
)

type TokenManagerInterface interface {
	// Issue returns a signed token binding the email to this manager's scope.
	Issue(ctx context.Context, email string) (string, error)
	// Verify returns the email carried by a valid, unexpired token of this
	// manager's scope. Any failure means "no identity", never a server error.
	Verify(ctx context.Context, raw string) (string, error)
	TTL() time.Duration
}

type RoleGetterInterface interface {
	GetRole(ctx context.Context, email string) (access.Role, error)
}

type ServiceInterface interface {
	SignIn(ctx context.Context, email string) (string, error)
	VerifyAdmin(ctx context.Context, email, password string) (string, error)
}
