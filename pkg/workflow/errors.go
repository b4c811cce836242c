// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"errors"
)

// ErrDenied is returned when the actor holds no sufficient permission on
// the target workflow or task.
var ErrDenied = errors.New("access denied")

// ValidationError rejects a request before any write, carrying a
// human-readable reason for the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
