// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	for _, level := range []string{"DEBUG", "info", "warn", "ERROR", "not-a-level", ""} {
		t.Run(level, func(t *testing.T) {
			logger := NewLogger(level)
			if logger == nil {
				t.Fatal("expected a logger")
			}
			if logger.Security() == nil {
				t.Fatal("expected a security logger")
			}
		})
	}
}

func TestNoopLoggerDiscards(t *testing.T) {
	logger := NewNoopLogger()

	logger.Debugf("dropped %s", "debug")
	logger.Errorf("dropped %s", "error")
	logger.Security().SystemStartup()
}
