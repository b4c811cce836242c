// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/workflow-service/internal/types"
)

type contextKey struct{}

var employeeContextKey = contextKey{}

// WithEmployee returns a context carrying the acting employee resolved by
// a route guard.
func WithEmployee(ctx context.Context, e *types.Employee) context.Context {
	return context.WithValue(ctx, employeeContextKey, e)
}

// EmployeeFromContext retrieves the acting employee placed by a route guard.
func EmployeeFromContext(ctx context.Context) (*types.Employee, bool) {
	e, ok := ctx.Value(employeeContextKey).(*types.Employee)
	return e, ok && e != nil
}
