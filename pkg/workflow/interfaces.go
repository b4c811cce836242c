// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"context"
	"time"

	"github.com/canonical/workflow-service/internal/types"
)

type ServiceInterface interface {
	CreateWorkflow(ctx context.Context, actor *types.Employee, req *CreateWorkflowRequest) (*types.WorkflowDetail, error)
	GetWorkflow(ctx context.Context, actor *types.Employee, id string) (*types.WorkflowDetail, error)
	ListWorkflows(ctx context.Context, actor *types.Employee) ([]*types.Workflow, error)
	UpdateWorkflow(ctx context.Context, actor *types.Employee, id string, req *UpdateWorkflowRequest) (*types.Workflow, error)
	UpdateTask(ctx context.Context, actor *types.Employee, id string, req *UpdateTaskRequest) (*types.Task, error)
	CreateAccess(ctx context.Context, actor *types.Employee, workflowID string, req *CreateAccessRequest) (*types.WorkflowAccess, error)
	UpdateAccess(ctx context.Context, actor *types.Employee, id string, req *UpdateAccessRequest) (*types.WorkflowAccess, error)
}

// StorageInterface is the subset of the storage layer the workflow
// aggregate needs.
type StorageInterface interface {
	GetEmployeeByID(ctx context.Context, id string) (*types.Employee, error)

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
}

// TxRunnerInterface runs a function inside one database transaction.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type TaskDescriptor struct {
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description"`
	AssigneeID  string        `json:"assignee_id" validate:"required,uuid"`
	StartDelta  time.Duration `json:"start_delta" validate:"min=0"`
}

type AccessDescriptor struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	Permission string `json:"permission" validate:"required,oneof=read read_write"`
}

type CreateWorkflowRequest struct {
	TemplateID string             `json:"template_id" validate:"required,uuid"`
	Name       string             `json:"name" validate:"required"`
	StartAt    time.Time          `json:"start_at" validate:"required"`
	Duration   time.Duration      `json:"duration" validate:"min=0"`
	Tasks      []TaskDescriptor   `json:"tasks" validate:"dive"`
	Accessors  []AccessDescriptor `json:"accessors" validate:"dive"`
}

// UpdateWorkflowRequest carries the mutable workflow fields; template and
// creator are immutable after creation.
type UpdateWorkflowRequest struct {
	Name       *string        `json:"name"`
	StartAt    *time.Time     `json:"start_at"`
	CompleteAt *time.Time     `json:"complete_at"`
	Duration   *time.Duration `json:"duration"`
}

type UpdateTaskRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	AssigneeID  *string        `json:"assignee_id" validate:"omitempty,uuid"`
	CompletedAt *time.Time     `json:"completed_at"`
	StartDelta  *time.Duration `json:"start_delta"`
	Status      *string        `json:"status" validate:"omitempty,oneof=upcoming in_progress completed"`
}

type CreateAccessRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	Permission string `json:"permission" validate:"required,oneof=read read_write"`
}

// UpdateAccessRequest may only change the permission; workflow and
// employee are immutable after grant.
type UpdateAccessRequest struct {
	Permission string `json:"permission" validate:"required,oneof=read read_write"`
}
