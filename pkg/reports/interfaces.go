// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package reports

import (
	"context"

	"github.com/canonical/workflow-service/internal/types"
)

type ServiceInterface interface {
	EmployeeTurnover(ctx context.Context, actor *types.Employee) (*EmployeeTurnoverReport, error)
	EmployeeActivity(ctx context.Context, actor *types.Employee, employeeID string) (*EmployeeActivityReport, error)
	WorkflowProgress(ctx context.Context, actor *types.Employee, workflowID string) (*WorkflowProgressReport, error)
}

type StorageInterface interface {
	GetEmployeeByID(ctx context.Context, id string) (*types.Employee, error)
	GetWorkflowByID(ctx context.Context, id string) (*types.Workflow, error)

	CountEmployeesByStatus(ctx context.Context, companyID string) (map[string]int64, error)
	CountTasksByAssignee(ctx context.Context, employeeID string) (map[string]int64, error)
	CountWorkflowsByCreator(ctx context.Context, employeeID string) (int64, error)
	CountTasksByStatus(ctx context.Context, workflowID string) (map[string]int64, error)
}

// EmployeeTurnoverReport counts a company's employees by lifecycle stage:
// invited, joined (active) and left (inactive).
type EmployeeTurnoverReport struct {
	Invited int64 `json:"invited"`
	Joined  int64 `json:"joined"`
	Left    int64 `json:"left"`
}

type EmployeeActivityReport struct {
	EmployeeID       string           `json:"employee_id"`
	WorkflowsCreated int64            `json:"workflows_created"`
	TasksByStatus    map[string]int64 `json:"tasks_by_status"`
}

type WorkflowProgressReport struct {
	WorkflowID    string           `json:"workflow_id"`
	TasksByStatus map[string]int64 `json:"tasks_by_status"`
}
