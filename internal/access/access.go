// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package access holds the pure role policy for the allow-list. Every
// function is a total, side-effect free decision over the role space; the
// last-super-admin guard needs a row count and therefore lives with the
// allowlist service, not here.
package access

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleMember     Role = "member"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// ParseRole rejects anything outside the three known roles so that
// free-form input never reaches policy decisions.
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleMember:
		return RoleMember, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleSuperAdmin:
		return RoleSuperAdmin, nil
	default:
		return "", fmt.Errorf("invalid role %q", s)
	}
}

func IsAdminRole(role Role) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// CanCreateRole reports whether actor may add an allow-list entry with the
// given role. Super admins may assign anything, admins only members.
func CanCreateRole(actor, roleToCreate Role) bool {
	switch actor {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return roleToCreate == RoleMember
	default:
		return false
	}
}

// CanChangeRole reports whether actor may change an existing entry's role.
func CanChangeRole(actor Role) bool {
	return actor == RoleSuperAdmin
}

// CanRemoveEmail reports whether actor may remove an entry holding target.
func CanRemoveEmail(actor, target Role) bool {
	switch actor {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return target == RoleMember
	default:
		return false
	}
}
