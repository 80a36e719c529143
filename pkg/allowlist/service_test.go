// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package allowlist

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/booking-service/internal/access"
	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/storage"
	"github.com/canonical/booking-service/internal/tracing"
	"github.com/canonical/booking-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package allowlist -destination ./mock_allowlist.go -source=./interfaces.go

const (
	superAdmin = "root@example.com"
	admin      = "admin@example.com"
	member     = "user@example.com"
)

func newTestService(s StorageInterface) *Service {
	return NewService(
		s,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

// expectRole wires the storage role lookup that the cached GetRole path
// performs on a cold cache.
func expectRole(m *MockStorageInterface, email string, role access.Role) {
	m.EXPECT().GetRoleByEmail(gomock.Any(), email).Return(string(role), nil)
}

func TestService_GetRoleCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	// A single storage hit serves both lookups.
	expectRole(mockStorage, member, access.RoleMember)

	s := newTestService(mockStorage)

	for i := 0; i < 2; i++ {
		role, err := s.GetRole(context.Background(), member)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if role != access.RoleMember {
			t.Errorf("expected member, got %s", role)
		}
	}
}

func TestService_GetRoleNormalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	expectRole(mockStorage, member, access.RoleMember)

	s := newTestService(mockStorage)

	role, err := s.GetRole(context.Background(), "  User@Example.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != access.RoleMember {
		t.Errorf("expected member, got %s", role)
	}
}

func TestService_GetRoleUnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetRoleByEmail(gomock.Any(), "ghost@example.com").Return("", storage.ErrNotFound)

	s := newTestService(mockStorage)

	if _, err := s.GetRole(context.Background(), "ghost@example.com"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected storage.ErrNotFound, got %v", err)
	}
}

func TestService_AddEmail(t *testing.T) {
	tests := []struct {
		name        string
		actor       string
		actorRole   access.Role
		email       string
		role        string
		setupMock   func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:      "super admin adds admin",
			actor:     superAdmin,
			actorRole: access.RoleSuperAdmin,
			email:     "new@example.com",
			role:      "admin",
			setupMock: func(m *MockStorageInterface) {
				m.EXPECT().InsertAllowedEmail(gomock.Any(), "new@example.com", "admin").Return(nil)
			},
		},
		{
			name:      "admin adds member",
			actor:     admin,
			actorRole: access.RoleAdmin,
			email:     "new@example.com",
			role:      "member",
			setupMock: func(m *MockStorageInterface) {
				m.EXPECT().InsertAllowedEmail(gomock.Any(), "new@example.com", "member").Return(nil)
			},
		},
		{
			name:        "admin cannot add admin",
			actor:       admin,
			actorRole:   access.RoleAdmin,
			email:       "new@example.com",
			role:        "admin",
			setupMock:   func(m *MockStorageInterface) {},
			expectedErr: ErrForbidden,
		},
		{
			name:        "member cannot add anyone",
			actor:       member,
			actorRole:   access.RoleMember,
			email:       "new@example.com",
			role:        "member",
			setupMock:   func(m *MockStorageInterface) {},
			expectedErr: ErrForbidden,
		},
		{
			name:      "duplicate email",
			actor:     superAdmin,
			actorRole: access.RoleSuperAdmin,
			email:     "new@example.com",
			role:      "member",
			setupMock: func(m *MockStorageInterface) {
				m.EXPECT().InsertAllowedEmail(gomock.Any(), "new@example.com", "member").Return(storage.ErrDuplicateKey)
			},
			expectedErr: ErrDuplicateEmail,
		},
		{
			name:      "email is normalized before insert",
			actor:     superAdmin,
			actorRole: access.RoleSuperAdmin,
			email:     "  New@Example.COM ",
			role:      "member",
			setupMock: func(m *MockStorageInterface) {
				m.EXPECT().InsertAllowedEmail(gomock.Any(), "new@example.com", "member").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			expectRole(mockStorage, tt.actor, tt.actorRole)
			tt.setupMock(mockStorage)

			s := newTestService(mockStorage)

			err := s.AddEmail(context.Background(), tt.actor, tt.email, tt.role)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_AddEmailInvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestService(NewMockStorageInterface(ctrl))

	if err := s.AddEmail(context.Background(), superAdmin, "new@example.com", "owner"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_RemoveEmail(t *testing.T) {
	tests := []struct {
		name        string
		actor       string
		actorRole   access.Role
		target      string
		setupMock   func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:      "admin removes member",
			actor:     admin,
			actorRole: access.RoleAdmin,
			target:    member,
			setupMock: func(m *MockStorageInterface) {
				expectRole(m, member, access.RoleMember)
				m.EXPECT().DeleteAllowedEmail(gomock.Any(), member).Return(nil)
			},
		},
		{
			name:      "admin cannot remove admin",
			actor:     admin,
			actorRole: access.RoleAdmin,
			target:    "other-admin@example.com",
			setupMock: func(m *MockStorageInterface) {
				expectRole(m, "other-admin@example.com", access.RoleAdmin)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:      "removing the last super admin is refused",
			actor:     superAdmin,
			actorRole: access.RoleSuperAdmin,
			target:    superAdmin,
			setupMock: func(m *MockStorageInterface) {
				m.EXPECT().CountByRole(gomock.Any(), "super_admin").Return(1, nil)
			},
			expectedErr: ErrLastSuperAdmin,
		},
		{
			name:      "removing a spare super admin succeeds",
			actor:     superAdmin,
			actorRole: access.RoleSuperAdmin,
			target:    "second-root@example.com",
			setupMock: func(m *MockStorageInterface) {
				expectRole(m, "second-root@example.com", access.RoleSuperAdmin)
				m.EXPECT().CountByRole(gomock.Any(), "super_admin").Return(2, nil)
				m.EXPECT().DeleteAllowedEmail(gomock.Any(), "second-root@example.com").Return(nil)
			},
		},
		{
			name:      "unknown target",
			actor:     superAdmin,
			actorRole: access.RoleSuperAdmin,
			target:    "ghost@example.com",
			setupMock: func(m *MockStorageInterface) {
				m.EXPECT().GetRoleByEmail(gomock.Any(), "ghost@example.com").Return("", storage.ErrNotFound)
			},
			expectedErr: ErrEmailNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			expectRole(mockStorage, tt.actor, tt.actorRole)
			if tt.actor == tt.target {
				// Actor's own role lookup is cached; the target lookup
				// goes straight to storage.
				expectRole(mockStorage, tt.target, tt.actorRole)
			}
			tt.setupMock(mockStorage)

			s := newTestService(mockStorage)

			err := s.RemoveEmail(context.Background(), tt.actor, tt.target)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_UpdateRole(t *testing.T) {
	tests := []struct {
		name        string
		actor       string
		actorRole   access.Role
		target      string
		role        string
		setupMock   func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:      "super admin promotes member",
			actor:     superAdmin,
			actorRole: access.RoleSuperAdmin,
			target:    member,
			role:      "admin",
			setupMock: func(m *MockStorageInterface) {
				expectRole(m, member, access.RoleMember)
				m.EXPECT().UpdateAllowedEmailRole(gomock.Any(), member, "admin").Return(nil)
			},
		},
		{
			name:        "admin cannot change roles",
			actor:       admin,
			actorRole:   access.RoleAdmin,
			target:      member,
			role:        "admin",
			setupMock:   func(m *MockStorageInterface) {},
			expectedErr: ErrForbidden,
		},
		{
			name:      "demoting the last super admin is refused",
			actor:     superAdmin,
			actorRole: access.RoleSuperAdmin,
			target:    superAdmin,
			role:      "admin",
			setupMock: func(m *MockStorageInterface) {
				m.EXPECT().CountByRole(gomock.Any(), "super_admin").Return(1, nil)
			},
			expectedErr: ErrLastSuperAdmin,
		},
		{
			name:      "demoting a spare super admin succeeds",
			actor:     superAdmin,
			actorRole: access.RoleSuperAdmin,
			target:    "second-root@example.com",
			role:      "member",
			setupMock: func(m *MockStorageInterface) {
				expectRole(m, "second-root@example.com", access.RoleSuperAdmin)
				m.EXPECT().CountByRole(gomock.Any(), "super_admin").Return(2, nil)
				m.EXPECT().UpdateAllowedEmailRole(gomock.Any(), "second-root@example.com", "member").Return(nil)
			},
		},
		{
			name:        "invalid role",
			actor:       superAdmin,
			actorRole:   access.RoleSuperAdmin,
			target:      member,
			role:        "owner",
			setupMock:   func(m *MockStorageInterface) {},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			if tt.expectedErr != ErrInvalidInput {
				expectRole(mockStorage, tt.actor, tt.actorRole)
			}
			if tt.actor == tt.target {
				expectRole(mockStorage, tt.target, tt.actorRole)
			}
			tt.setupMock(mockStorage)

			s := newTestService(mockStorage)

			err := s.UpdateRole(context.Background(), tt.actor, tt.target, tt.role)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_MutationInvalidatesRoleCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	// Cold lookup, then the update's own target lookup, then the fresh
	// lookup after invalidation.
	expectRole(mockStorage, member, access.RoleMember)
	expectRole(mockStorage, superAdmin, access.RoleSuperAdmin)
	expectRole(mockStorage, member, access.RoleMember)
	mockStorage.EXPECT().UpdateAllowedEmailRole(gomock.Any(), member, "admin").Return(nil)
	expectRole(mockStorage, member, access.RoleAdmin)

	s := newTestService(mockStorage)

	role, err := s.GetRole(context.Background(), member)
	if err != nil || role != access.RoleMember {
		t.Fatalf("expected member, got %s (%v)", role, err)
	}

	if err := s.UpdateRole(context.Background(), superAdmin, member, "admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	role, err = s.GetRole(context.Background(), member)
	if err != nil || role != access.RoleAdmin {
		t.Errorf("expected admin after invalidation, got %s (%v)", role, err)
	}
}

func TestService_ListEmails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	emails := []*types.AllowedEmail{
		{Email: admin, Role: "admin"},
		{Email: member, Role: "member"},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListAllowedEmails(gomock.Any()).Return(emails, nil)

	s := newTestService(mockStorage)

	got, err := s.ListEmails(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Email != admin {
		t.Errorf("unexpected emails: %+v", got)
	}
}
