// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit events on a dedicated named logger so that
// they can be filtered out of the application stream downstream.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) LoginSuccess(email string) {
	s.l.Info("login succeeded", zap.String("event", "authn_login_success"), zap.String("email", email))
}

func (s *SecurityLogger) LoginFailure(email string) {
	s.l.Warn("login rejected", zap.String("event", "authn_login_fail"), zap.String("email", email))
}

func (s *SecurityLogger) StepUpSuccess(email string) {
	s.l.Info("admin step-up verified", zap.String("event", "authn_stepup_success"), zap.String("email", email))
}

func (s *SecurityLogger) StepUpFailure(email string) {
	s.l.Warn("admin step-up rejected", zap.String("event", "authn_stepup_fail"), zap.String("email", email))
}
