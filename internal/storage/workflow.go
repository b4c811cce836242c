// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/workflow-service/internal/types"
)

func (s *Storage) CreateWorkflow(ctx context.Context, w *types.Workflow) (*types.Workflow, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkflow")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate workflow ID: %w", err)
	}

	var created types.Workflow
	err = s.db.Statement(ctx).
		Insert("workflows").
		Columns("id", "template_id", "name", "creator_id", "start_at", "complete_at", "duration_ns").
		Values(id.String(), w.TemplateID, w.Name, w.CreatorID, w.StartAt, w.CompleteAt, int64(w.Duration)).
		Suffix("RETURNING id, template_id, name, creator_id, start_at, complete_at, duration_ns, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TemplateID, &created.Name, &created.CreatorID,
			&created.StartAt, &created.CompleteAt, &created.Duration, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "template or creator does not exist")
		}
		return nil, fmt.Errorf("failed to insert workflow: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetWorkflowByID(ctx context.Context, id string) (*types.Workflow, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkflowByID")
	defer span.End()

	var w types.Workflow
	err := s.db.Statement(ctx).
		Select("id", "template_id", "name", "creator_id", "start_at", "complete_at", "duration_ns", "created_at").
		From("workflows").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&w.ID, &w.TemplateID, &w.Name, &w.CreatorID, &w.StartAt, &w.CompleteAt, &w.Duration, &w.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}

	return &w, nil
}

// UpdateWorkflow updates the fields named in paths. Template and creator
// are immutable after creation and are never part of the update set.
func (s *Storage) UpdateWorkflow(ctx context.Context, w *types.Workflow, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateWorkflow")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = w.Name
		case "start_at":
			updateMap["start_at"] = w.StartAt
		case "complete_at":
			updateMap["complete_at"] = w.CompleteAt
		case "duration":
			updateMap["duration_ns"] = int64(w.Duration)
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("workflows").
		SetMap(updateMap).
		Where(sq.Eq{"id": w.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update workflow: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListWorkflowsByParticipant returns the workflows the employee created,
// holds an access grant on, or is assigned a task within.
func (s *Storage) ListWorkflowsByParticipant(ctx context.Context, employeeID string) ([]*types.Workflow, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkflowsByParticipant")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT w.id", "w.template_id", "w.name", "w.creator_id", "w.start_at", "w.complete_at", "w.duration_ns", "w.created_at").
		From("workflows w").
		LeftJoin("workflow_accesses a ON a.workflow_id = w.id").
		LeftJoin("tasks t ON t.workflow_id = w.id").
		Where(sq.Or{
			sq.Eq{"w.creator_id": employeeID},
			sq.Eq{"a.employee_id": employeeID},
			sq.Eq{"t.assignee_id": employeeID},
		}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	defer rows.Close()

	var workflows []*types.Workflow
	for rows.Next() {
		var w types.Workflow
		if err := rows.Scan(&w.ID, &w.TemplateID, &w.Name, &w.CreatorID, &w.StartAt, &w.CompleteAt, &w.Duration, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workflow: %w", err)
		}
		workflows = append(workflows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workflows, nil
}

func (s *Storage) CreateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTask")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate task ID: %w", err)
	}

	var created types.Task
	err = s.db.Statement(ctx).
		Insert("tasks").
		Columns("id", "workflow_id", "title", "description", "parent_task_id", "assignee_id", "completed_at", "start_delta_ns", "status").
		Values(id.String(), t.WorkflowID, t.Title, t.Description, t.ParentTaskID, t.AssigneeID, t.CompletedAt, int64(t.StartDelta), t.Status).
		Suffix("RETURNING id, workflow_id, title, description, parent_task_id, assignee_id, completed_at, start_delta_ns, status, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.WorkflowID, &created.Title, &created.Description, &created.ParentTaskID,
			&created.AssigneeID, &created.CompletedAt, &created.StartDelta, &created.Status, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "workflow or assignee does not exist")
		}
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetTaskByID(ctx context.Context, id string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTaskByID")
	defer span.End()

	var t types.Task
	err := s.db.Statement(ctx).
		Select("id", "workflow_id", "title", "description", "parent_task_id", "assignee_id", "completed_at", "start_delta_ns", "status", "created_at").
		From("tasks").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.WorkflowID, &t.Title, &t.Description, &t.ParentTaskID, &t.AssigneeID, &t.CompletedAt, &t.StartDelta, &t.Status, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &t, nil
}

func (s *Storage) UpdateTask(ctx context.Context, t *types.Task, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTask")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "title":
			updateMap["title"] = t.Title
		case "description":
			updateMap["description"] = t.Description
		case "assignee":
			updateMap["assignee_id"] = t.AssigneeID
		case "completed_at":
			updateMap["completed_at"] = t.CompletedAt
		case "start_delta":
			updateMap["start_delta_ns"] = int64(t.StartDelta)
		case "status":
			updateMap["status"] = t.Status
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("tasks").
		SetMap(updateMap).
		Where(sq.Eq{"id": t.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListTasksByWorkflowID returns the workflow's tasks in creation order,
// which is also chain order.
func (s *Storage) ListTasksByWorkflowID(ctx context.Context, workflowID string) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTasksByWorkflowID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "workflow_id", "title", "description", "parent_task_id", "assignee_id", "completed_at", "start_delta_ns", "status", "created_at").
		From("tasks").
		Where(sq.Eq{"workflow_id": workflowID}).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*types.Task
	for rows.Next() {
		var t types.Task
		if err := rows.Scan(&t.ID, &t.WorkflowID, &t.Title, &t.Description, &t.ParentTaskID, &t.AssigneeID, &t.CompletedAt, &t.StartDelta, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}

func (s *Storage) CreateAccess(ctx context.Context, a *types.WorkflowAccess) (*types.WorkflowAccess, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAccess")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate access ID: %w", err)
	}

	var created types.WorkflowAccess
	err = s.db.Statement(ctx).
		Insert("workflow_accesses").
		Columns("id", "workflow_id", "employee_id", "permission").
		Values(id.String(), a.WorkflowID, a.EmployeeID, a.Permission).
		Suffix("RETURNING id, workflow_id, employee_id, permission, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.WorkflowID, &created.EmployeeID, &created.Permission, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "employee already has access to workflow")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "workflow or employee does not exist")
		}
		return nil, fmt.Errorf("failed to insert workflow access: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetAccessByID(ctx context.Context, id string) (*types.WorkflowAccess, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccessByID")
	defer span.End()

	return s.getAccess(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetAccessByWorkflowAndEmployee(ctx context.Context, workflowID, employeeID string) (*types.WorkflowAccess, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccessByWorkflowAndEmployee")
	defer span.End()

	return s.getAccess(ctx, sq.Eq{"workflow_id": workflowID, "employee_id": employeeID})
}

func (s *Storage) getAccess(ctx context.Context, pred sq.Eq) (*types.WorkflowAccess, error) {
	var a types.WorkflowAccess
	err := s.db.Statement(ctx).
		Select("id", "workflow_id", "employee_id", "permission", "created_at").
		From("workflow_accesses").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.WorkflowID, &a.EmployeeID, &a.Permission, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow access: %w", err)
	}

	return &a, nil
}

func (s *Storage) ListAccessesByWorkflowID(ctx context.Context, workflowID string) ([]*types.WorkflowAccess, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAccessesByWorkflowID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "workflow_id", "employee_id", "permission", "created_at").
		From("workflow_accesses").
		Where(sq.Eq{"workflow_id": workflowID}).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflow accesses: %w", err)
	}
	defer rows.Close()

	var accesses []*types.WorkflowAccess
	for rows.Next() {
		var a types.WorkflowAccess
		if err := rows.Scan(&a.ID, &a.WorkflowID, &a.EmployeeID, &a.Permission, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workflow access: %w", err)
		}
		accesses = append(accesses, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return accesses, nil
}

func (s *Storage) UpdateAccessPermission(ctx context.Context, id, permission string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAccessPermission")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workflow_accesses").
		Set("permission", permission).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update workflow access: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
