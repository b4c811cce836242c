// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/workflow-service/internal/types"
)

type StorageInterface interface {
	CreateCompany(ctx context.Context, name string) (*types.Company, error)
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)

	CreateEmployee(ctx context.Context, e *types.Employee) (*types.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (*types.Employee, error)
	GetEmployeeByInviteToken(ctx context.Context, token string) (*types.Employee, error)
	ListEmployeesByIdentityID(ctx context.Context, identityID string) ([]*types.Employee, error)
	ListEmployeesByCompanyID(ctx context.Context, companyID string) ([]*types.Employee, error)
	SetEmployeeStatus(ctx context.Context, id, status string) error
	ActivateEmployee(ctx context.Context, id, identityID string) error

	ListTemplates(ctx context.Context) ([]*types.WorkflowTemplate, error)
	GetTemplateByID(ctx context.Context, id string) (*types.WorkflowTemplate, error)

	CreateWorkflow(ctx context.Context, w *types.Workflow) (*types.Workflow, error)
	GetWorkflowByID(ctx context.Context, id string) (*types.Workflow, error)
	UpdateWorkflow(ctx context.Context, w *types.Workflow, paths []string) error
	ListWorkflowsByParticipant(ctx context.Context, employeeID string) ([]*types.Workflow, error)

	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	GetTaskByID(ctx context.Context, id string) (*types.Task, error)
	UpdateTask(ctx context.Context, t *types.Task, paths []string) error
	ListTasksByWorkflowID(ctx context.Context, workflowID string) ([]*types.Task, error)

	CreateAccess(ctx context.Context, a *types.WorkflowAccess) (*types.WorkflowAccess, error)
	GetAccessByID(ctx context.Context, id string) (*types.WorkflowAccess, error)
	GetAccessByWorkflowAndEmployee(ctx context.Context, workflowID, employeeID string) (*types.WorkflowAccess, error)
	ListAccessesByWorkflowID(ctx context.Context, workflowID string) ([]*types.WorkflowAccess, error)
	UpdateAccessPermission(ctx context.Context, id, permission string) error

	CountEmployeesByStatus(ctx context.Context, companyID string) (map[string]int64, error)
	CountTasksByAssignee(ctx context.Context, employeeID string) (map[string]int64, error)
	CountWorkflowsByCreator(ctx context.Context, employeeID string) (int64, error)
	CountTasksByStatus(ctx context.Context, workflowID string) (map[string]int64, error)
}
