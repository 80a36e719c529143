// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/booking-service/internal/access"
	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/storage"
	"github.com/canonical/booking-service/internal/tracing"
)

const testAdminPassword = "hunter2"

func newTestService(roles RoleGetterInterface) (*Service, *TokenManager, *TokenManager) {
	sessions := newTestTokenManager(ScopeSession, 7*24*time.Hour)
	stepUp := newTestTokenManager(ScopeAdminVerify, time.Hour)
	s := NewService(
		roles,
		sessions,
		stepUp,
		testAdminPassword,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return s, sessions, stepUp
}

func TestService_SignIn(t *testing.T) {
	dbErr := errors.New("db error")

	tests := []struct {
		name        string
		email       string
		setupMocks  func(*MockRoleGetterInterface)
		expectedErr error
	}{
		{
			name:  "allowed email",
			email: "user@example.com",
			setupMocks: func(m *MockRoleGetterInterface) {
				m.EXPECT().GetRole(gomock.Any(), "user@example.com").Return(access.RoleMember, nil)
			},
		},
		{
			name:  "email is normalized before lookup",
			email: "  User@Example.COM ",
			setupMocks: func(m *MockRoleGetterInterface) {
				m.EXPECT().GetRole(gomock.Any(), "user@example.com").Return(access.RoleMember, nil)
			},
		},
		{
			name:  "unknown email",
			email: "stranger@example.com",
			setupMocks: func(m *MockRoleGetterInterface) {
				m.EXPECT().GetRole(gomock.Any(), "stranger@example.com").Return(access.Role(""), storage.ErrNotFound)
			},
			expectedErr: ErrEmailNotAllowed,
		},
		{
			name:        "empty email",
			email:       "   ",
			setupMocks:  func(m *MockRoleGetterInterface) {},
			expectedErr: ErrEmailNotAllowed,
		},
		{
			name:  "storage error",
			email: "user@example.com",
			setupMocks: func(m *MockRoleGetterInterface) {
				m.EXPECT().GetRole(gomock.Any(), "user@example.com").Return(access.Role(""), dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRoles := NewMockRoleGetterInterface(ctrl)
			tt.setupMocks(mockRoles)

			s, sessions, _ := newTestService(mockRoles)

			token, err := s.SignIn(context.Background(), tt.email)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			email, err := sessions.Verify(context.Background(), token)
			if err != nil {
				t.Fatalf("issued token does not verify: %v", err)
			}
			if email != "user@example.com" {
				t.Errorf("expected token for user@example.com, got %q", email)
			}
		})
	}
}

func TestService_VerifyAdmin(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setupMocks  func(*MockRoleGetterInterface)
		expectedErr error
	}{
		{
			name:     "admin with correct password",
			email:    "admin@example.com",
			password: testAdminPassword,
			setupMocks: func(m *MockRoleGetterInterface) {
				m.EXPECT().GetRole(gomock.Any(), "admin@example.com").Return(access.RoleAdmin, nil)
			},
		},
		{
			name:     "super admin with correct password",
			email:    "root@example.com",
			password: testAdminPassword,
			setupMocks: func(m *MockRoleGetterInterface) {
				m.EXPECT().GetRole(gomock.Any(), "root@example.com").Return(access.RoleSuperAdmin, nil)
			},
		},
		{
			name:     "member is not authorized",
			email:    "member@example.com",
			password: testAdminPassword,
			setupMocks: func(m *MockRoleGetterInterface) {
				m.EXPECT().GetRole(gomock.Any(), "member@example.com").Return(access.RoleMember, nil)
			},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:     "unknown email is not authorized",
			email:    "gone@example.com",
			password: testAdminPassword,
			setupMocks: func(m *MockRoleGetterInterface) {
				m.EXPECT().GetRole(gomock.Any(), "gone@example.com").Return(access.Role(""), storage.ErrNotFound)
			},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:     "wrong password",
			email:    "admin@example.com",
			password: "wrong",
			setupMocks: func(m *MockRoleGetterInterface) {
				m.EXPECT().GetRole(gomock.Any(), "admin@example.com").Return(access.RoleAdmin, nil)
			},
			expectedErr: ErrWrongPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRoles := NewMockRoleGetterInterface(ctrl)
			tt.setupMocks(mockRoles)

			s, _, stepUp := newTestService(mockRoles)

			token, err := s.VerifyAdmin(context.Background(), tt.email, tt.password)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			email, err := stepUp.Verify(context.Background(), token)
			if err != nil {
				t.Fatalf("issued token does not verify: %v", err)
			}
			if email != tt.email {
				t.Errorf("expected step-up token for %q, got %q", tt.email, email)
			}
		})
	}
}

func TestService_VerifyAdminNoConfiguredPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoles := NewMockRoleGetterInterface(ctrl)
	mockRoles.EXPECT().GetRole(gomock.Any(), "admin@example.com").Return(access.RoleAdmin, nil)

	s := NewService(
		mockRoles,
		newTestTokenManager(ScopeSession, time.Hour),
		newTestTokenManager(ScopeAdminVerify, time.Hour),
		"", // step-up is unusable without a configured password
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	if _, err := s.VerifyAdmin(context.Background(), "admin@example.com", ""); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}
