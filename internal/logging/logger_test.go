// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	l := NewLogger("DEBUG")
	if l.Security() == nil {
		t.Error("expected security logger to be initialized")
	}
}

func TestInvalidLevelFallsBack(t *testing.T) {
	// An invalid level must not panic; it falls back to error.
	l := NewLogger("invalid")
	l.Debugf("suppressed at fallback level")
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Infof("discarded %s", "message")
	l.Security().SystemStartup()
}
