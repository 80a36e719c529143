// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Role
		expectErr bool
	}{
		{name: "member", input: "member", expected: RoleMember},
		{name: "admin", input: "admin", expected: RoleAdmin},
		{name: "super admin", input: "super_admin", expected: RoleSuperAdmin},
		{name: "surrounding whitespace", input: "  admin ", expected: RoleAdmin},
		{name: "empty", input: "", expectErr: true},
		{name: "unknown", input: "owner", expectErr: true},
		{name: "case sensitive", input: "Admin", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error for %q, got role %q", tt.input, role)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, role)
			}
		})
	}
}

func TestCanCreateRole(t *testing.T) {
	tests := []struct {
		actor    Role
		create   Role
		expected bool
	}{
		{RoleSuperAdmin, RoleMember, true},
		{RoleSuperAdmin, RoleAdmin, true},
		{RoleSuperAdmin, RoleSuperAdmin, true},
		{RoleAdmin, RoleMember, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleSuperAdmin, false},
		{RoleMember, RoleMember, false},
		{RoleMember, RoleAdmin, false},
		{RoleMember, RoleSuperAdmin, false},
	}

	for _, tt := range tests {
		if got := CanCreateRole(tt.actor, tt.create); got != tt.expected {
			t.Errorf("CanCreateRole(%s, %s) = %v, want %v", tt.actor, tt.create, got, tt.expected)
		}
	}
}

func TestCanChangeRole(t *testing.T) {
	if !CanChangeRole(RoleSuperAdmin) {
		t.Error("super_admin must be able to change roles")
	}
	if CanChangeRole(RoleAdmin) {
		t.Error("admin must not be able to change roles")
	}
	if CanChangeRole(RoleMember) {
		t.Error("member must not be able to change roles")
	}
}

func TestCanRemoveEmail(t *testing.T) {
	tests := []struct {
		actor    Role
		target   Role
		expected bool
	}{
		{RoleSuperAdmin, RoleMember, true},
		{RoleSuperAdmin, RoleAdmin, true},
		{RoleSuperAdmin, RoleSuperAdmin, true},
		{RoleAdmin, RoleMember, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleSuperAdmin, false},
		{RoleMember, RoleMember, false},
		{RoleMember, RoleAdmin, false},
		{RoleMember, RoleSuperAdmin, false},
	}

	for _, tt := range tests {
		if got := CanRemoveEmail(tt.actor, tt.target); got != tt.expected {
			t.Errorf("CanRemoveEmail(%s, %s) = %v, want %v", tt.actor, tt.target, got, tt.expected)
		}
	}
}

func TestIsAdminRole(t *testing.T) {
	if IsAdminRole(RoleMember) {
		t.Error("member is not an admin role")
	}
	if !IsAdminRole(RoleAdmin) || !IsAdminRole(RoleSuperAdmin) {
		t.Error("admin and super_admin are admin roles")
	}
}
