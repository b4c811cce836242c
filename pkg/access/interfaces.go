// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/workflow-service/internal/types"
)

type EvaluatorInterface interface {
	// IsInactiveEmployee reports whether the identity has no active or
	// invited membership anywhere.
	IsInactiveEmployee(ctx context.Context, identityID string) (bool, error)
	// ActiveEmployee resolves the identity's active membership in an active
	// company; nil when the active-employee check fails.
	ActiveEmployee(ctx context.Context, identityID string) (*types.Employee, error)
	// AdminEmployee resolves the identity's active admin membership in an
	// active company; nil when the active-admin check fails.
	AdminEmployee(ctx context.Context, identityID string) (*types.Employee, error)
}

// StorageInterface is the subset of the storage layer the evaluator needs.
type StorageInterface interface {
	ListEmployeesByIdentityID(ctx context.Context, identityID string) ([]*types.Employee, error)
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
}
