// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"time"
)

// Company statuses.
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// Employee statuses. An employee row links a user identity to one company.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInvited  = "invited"
	EmployeeStatusInactive = "inactive"
)

// Task statuses.
const (
	TaskStatusUpcoming   = "upcoming"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Workflow access permissions.
const (
	PermissionRead      = "read"
	PermissionReadWrite = "read_write"
)

type Company struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Employee struct {
	ID          string    `db:"id" json:"id"`
	CompanyID   string    `db:"company_id" json:"company_id"`
	IdentityID  string    `db:"identity_id" json:"-"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Status      string    `db:"status" json:"status"`
	IsAdmin     bool      `db:"is_admin" json:"is_admin"`
	InviteToken string    `db:"invite_token" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type WorkflowTemplate struct {
	ID        string          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Structure json.RawMessage `db:"structure" json:"structure"`
	Thumbnail string          `db:"thumbnail" json:"thumbnail"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

type Workflow struct {
	ID         string        `db:"id" json:"id"`
	TemplateID string        `db:"template_id" json:"template_id"`
	Name       string        `db:"name" json:"name"`
	CreatorID  string        `db:"creator_id" json:"creator_id"`
	StartAt    time.Time     `db:"start_at" json:"start_at"`
	CompleteAt *time.Time    `db:"complete_at" json:"complete_at,omitempty"`
	Duration   time.Duration `db:"duration" json:"duration"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
}

type Task struct {
	ID           string        `db:"id" json:"id"`
	WorkflowID   string        `db:"workflow_id" json:"workflow_id"`
	Title        string        `db:"title" json:"title"`
	Description  string        `db:"description" json:"description"`
	ParentTaskID *string       `db:"parent_task_id" json:"parent_task_id,omitempty"`
	AssigneeID   string        `db:"assignee_id" json:"assignee_id"`
	CompletedAt  *time.Time    `db:"completed_at" json:"completed_at,omitempty"`
	StartDelta   time.Duration `db:"start_delta" json:"start_delta"`
	Status       string        `db:"status" json:"status"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
}

type WorkflowAccess struct {
	ID         string    `db:"id" json:"id"`
	WorkflowID string    `db:"workflow_id" json:"workflow_id"`
	EmployeeID string    `db:"employee_id" json:"employee_id"`
	Permission string    `db:"permission" json:"permission"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// WorkflowDetail is a workflow with its task chain and access grants,
// the shape returned by create and retrieve.
type WorkflowDetail struct {
	Workflow
	Tasks     []*Task           `json:"tasks"`
	Accessors []*WorkflowAccess `json:"accessors"`
}

// Participant is an employee touched by a workflow mutation, tagged with
// the roles it fills. Not persisted; rebuilt per mutation.
type Participant struct {
	Employee        *Employee
	IsCreator       bool
	IsShared        bool
	WritePermission bool
	TaskList        []string
}
