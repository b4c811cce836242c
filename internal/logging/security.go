// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit events for authentication and authorization
// outcomes, kept separate from application logging so they can be routed
// to a dedicated sink.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("security_event", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("security_event", zap.String("event", "system_shutdown"))
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn("security_event",
		zap.String("event", "authn_failure"),
		zap.String("subject", subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("security_event",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}
