// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"fmt"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/internal/types"
)

var _ EvaluatorInterface = (*Evaluator)(nil)

type Evaluator struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewEvaluator(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Evaluator {
	return &Evaluator{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (e *Evaluator) IsInactiveEmployee(ctx context.Context, identityID string) (bool, error) {
	ctx, span := e.tracer.Start(ctx, "access.Evaluator.IsInactiveEmployee")
	defer span.End()

	memberships, err := e.storage.ListEmployeesByIdentityID(ctx, identityID)
	if err != nil {
		return false, fmt.Errorf("failed to load memberships: %w", err)
	}

	return InactiveEmployee(memberships), nil
}

func (e *Evaluator) ActiveEmployee(ctx context.Context, identityID string) (*types.Employee, error) {
	ctx, span := e.tracer.Start(ctx, "access.Evaluator.ActiveEmployee")
	defer span.End()

	memberships, companies, err := e.membershipRows(ctx, identityID)
	if err != nil {
		return nil, err
	}

	return ActiveMembership(memberships, companies), nil
}

func (e *Evaluator) AdminEmployee(ctx context.Context, identityID string) (*types.Employee, error) {
	ctx, span := e.tracer.Start(ctx, "access.Evaluator.AdminEmployee")
	defer span.End()

	memberships, companies, err := e.membershipRows(ctx, identityID)
	if err != nil {
		return nil, err
	}

	return AdminMembership(memberships, companies), nil
}

// membershipRows loads the identity's membership rows together with the
// company row of each membership.
func (e *Evaluator) membershipRows(ctx context.Context, identityID string) ([]*types.Employee, map[string]*types.Company, error) {
	memberships, err := e.storage.ListEmployeesByIdentityID(ctx, identityID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load memberships: %w", err)
	}

	companies := make(map[string]*types.Company, len(memberships))
	for _, m := range memberships {
		if _, ok := companies[m.CompanyID]; ok {
			continue
		}
		c, err := e.storage.GetCompanyByID(ctx, m.CompanyID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load company %s: %w", m.CompanyID, err)
		}
		companies[m.CompanyID] = c
	}

	return memberships, companies, nil
}
