// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/booking-service/internal/access"
	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/storage"
	"github.com/canonical/booking-service/internal/tracing"
)

var (
	ErrEmailNotAllowed = errors.New("this email is not allowed to access the booking system")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrWrongPassword   = errors.New("wrong password")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	roles         RoleGetterInterface
	sessions      TokenManagerInterface
	adminVerify   TokenManagerInterface
	adminPassword string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	roles RoleGetterInterface,
	sessions TokenManagerInterface,
	adminVerify TokenManagerInterface,
	adminPassword string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		roles:         roles,
		sessions:      sessions,
		adminVerify:   adminVerify,
		adminPassword: adminPassword,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// SignIn issues a session token for an email present on the allow-list.
func (s *Service) SignIn(ctx context.Context, email string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.SignIn")
	defer span.End()

	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrEmailNotAllowed
	}

	if _, err := s.roles.GetRole(ctx, normalized); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().LoginFailure(normalized)
			return "", ErrEmailNotAllowed
		}
		return "", fmt.Errorf("failed to check allow-list: %w", err)
	}

	token, err := s.sessions.Issue(ctx, normalized)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Security().LoginSuccess(normalized)
	return token, nil
}

// VerifyAdmin performs the step-up check: the caller must already hold an
// admin role and present the shared admin password.
func (s *Service) VerifyAdmin(ctx context.Context, email, password string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.VerifyAdmin")
	defer span.End()

	normalized := strings.ToLower(strings.TrimSpace(email))

	role, err := s.roles.GetRole(ctx, normalized)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNotAuthorized
		}
		return "", fmt.Errorf("failed to look up role: %w", err)
	}
	if !access.IsAdminRole(role) {
		return "", ErrNotAuthorized
	}

	if s.adminPassword == "" ||
		subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		s.logger.Security().StepUpFailure(normalized)
		return "", ErrWrongPassword
	}

	token, err := s.adminVerify.Issue(ctx, normalized)
	if err != nil {
		return "", fmt.Errorf("failed to issue verification token: %w", err)
	}

	s.logger.Security().StepUpSuccess(normalized)
	return token, nil
}
