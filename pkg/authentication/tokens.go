// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/tracing"
)

// Token scopes. The session and the admin step-up verification are two
// independent tokens; one is never inferred from the other.
const (
	ScopeSession     = "session"
	ScopeAdminVerify = "admin_verify"
)

// Cookie names for the two token scopes.
const (
	SessionCookieName     = "rb_session"
	AdminVerifyCookieName = "rb_admin_verified"
)

var _ TokenManagerInterface = (*TokenManager)(nil)

type tokenClaims struct {
	Email string `json:"email"`
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed tokens for a single scope.
type TokenManager struct {
	secret []byte
	scope  string
	ttl    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewTokenManager(
	secret []byte,
	scope string,
	ttl time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *TokenManager {
	return &TokenManager{
		secret:  secret,
		scope:   scope,
		ttl:     ttl,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

func (m *TokenManager) Issue(ctx context.Context, email string) (string, error) {
	_, span := m.tracer.Start(ctx, "authentication.TokenManager.Issue")
	defer span.End()

	now := time.Now()
	claims := tokenClaims{
		Email: strings.ToLower(email),
		Scope: m.scope,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (m *TokenManager) Verify(ctx context.Context, raw string) (string, error) {
	_, span := m.tracer.Start(ctx, "authentication.TokenManager.Verify")
	defer span.End()

	claims := new(tokenClaims)
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	if claims.Scope != m.scope {
		return "", fmt.Errorf("token scope %q does not match %q", claims.Scope, m.scope)
	}
	if claims.Email == "" {
		return "", fmt.Errorf("token carries no identity")
	}

	return claims.Email, nil
}
