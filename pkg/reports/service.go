// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package reports

import (
	"context"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/storage"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Service aggregates read-only counts for company admins. All reports
// are scoped to the actor's company; rows outside it read as missing.
type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	s StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: s,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) EmployeeTurnover(ctx context.Context, actor *types.Employee) (*EmployeeTurnoverReport, error) {
	ctx, span := s.tracer.Start(ctx, "reports.Service.EmployeeTurnover")
	defer span.End()

	counts, err := s.storage.CountEmployeesByStatus(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	return &EmployeeTurnoverReport{
		Invited: counts[types.EmployeeStatusInvited],
		Joined:  counts[types.EmployeeStatusActive],
		Left:    counts[types.EmployeeStatusInactive],
	}, nil
}

func (s *Service) EmployeeActivity(ctx context.Context, actor *types.Employee, employeeID string) (*EmployeeActivityReport, error) {
	ctx, span := s.tracer.Start(ctx, "reports.Service.EmployeeActivity")
	defer span.End()

	e, err := s.storage.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e.CompanyID != actor.CompanyID {
		return nil, storage.ErrNotFound
	}

	created, err := s.storage.CountWorkflowsByCreator(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.storage.CountTasksByAssignee(ctx, e.ID)
	if err != nil {
		return nil, err
	}

	return &EmployeeActivityReport{
		EmployeeID:       e.ID,
		WorkflowsCreated: created,
		TasksByStatus:    tasks,
	}, nil
}

func (s *Service) WorkflowProgress(ctx context.Context, actor *types.Employee, workflowID string) (*WorkflowProgressReport, error) {
	ctx, span := s.tracer.Start(ctx, "reports.Service.WorkflowProgress")
	defer span.End()

	w, err := s.storage.GetWorkflowByID(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	creator, err := s.storage.GetEmployeeByID(ctx, w.CreatorID)
	if err != nil {
		return nil, err
	}
	if creator.CompanyID != actor.CompanyID {
		return nil, storage.ErrNotFound
	}

	tasks, err := s.storage.CountTasksByStatus(ctx, w.ID)
	if err != nil {
		return nil, err
	}

	return &WorkflowProgressReport{
		WorkflowID:    w.ID,
		TasksByStatus: tasks,
	}, nil
}
