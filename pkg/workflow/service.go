// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/storage"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/internal/types"
	"github.com/canonical/workflow-service/pkg/notify"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	tx         TxRunnerInterface
	dispatcher notify.DispatcherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	s StorageInterface,
	tx TxRunnerInterface,
	dispatcher notify.DispatcherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    s,
		tx:         tx,
		dispatcher: dispatcher,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// CreateWorkflow persists the workflow, its task chain and its access
// grants as one transaction, then notifies every participant. Tasks are
// chained in submission order, each parented on the previous one.
func (s *Service) CreateWorkflow(ctx context.Context, actor *types.Employee, req *CreateWorkflowRequest) (*types.WorkflowDetail, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.CreateWorkflow")
	defer span.End()

	employees := map[string]*types.Employee{actor.ID: actor}
	lookup := func(id string) (*types.Employee, error) {
		if e, ok := employees[id]; ok {
			return e, nil
		}
		e, err := s.storage.GetEmployeeByID(ctx, id)
		if err != nil {
			return nil, err
		}
		employees[id] = e
		return e, nil
	}

	// reject the whole request before any write if an assignee or grantee
	// is outside the creator's company
	for _, td := range req.Tasks {
		assignee, err := lookup(td.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee.CompanyID != actor.CompanyID {
			return nil, NewValidationError("Employee must be of the same company")
		}
	}
	for _, ad := range req.Accessors {
		grantee, err := lookup(ad.EmployeeID)
		if err != nil {
			return nil, err
		}
		if grantee.CompanyID != actor.CompanyID {
			return nil, NewValidationError("Employee must be of the same company")
		}
	}

	participants := newParticipantSet()
	participants.get(actor).IsCreator = true

	var detail *types.WorkflowDetail
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		created, err := s.storage.CreateWorkflow(txCtx, &types.Workflow{
			TemplateID: req.TemplateID,
			Name:       req.Name,
			CreatorID:  actor.ID,
			StartAt:    req.StartAt,
			Duration:   req.Duration,
		})
		if err != nil {
			return err
		}
		detail = &types.WorkflowDetail{Workflow: *created}

		var prev *types.Task
		for _, td := range req.Tasks {
			task := &types.Task{
				WorkflowID:  created.ID,
				Title:       td.Title,
				Description: td.Description,
				AssigneeID:  td.AssigneeID,
				StartDelta:  td.StartDelta,
				Status:      types.TaskStatusUpcoming,
			}
			if prev != nil {
				task.ParentTaskID = &prev.ID
			}

			prev, err = s.storage.CreateTask(txCtx, task)
			if err != nil {
				return err
			}
			detail.Tasks = append(detail.Tasks, prev)

			p := participants.get(employees[prev.AssigneeID])
			p.TaskList = append(p.TaskList, prev.Title)
		}

		for _, ad := range req.Accessors {
			if ad.EmployeeID == actor.ID {
				// the creator is implicit, never a redundant accessor
				continue
			}

			grant, err := s.storage.CreateAccess(txCtx, &types.WorkflowAccess{
				WorkflowID: created.ID,
				EmployeeID: ad.EmployeeID,
				Permission: ad.Permission,
			})
			if err != nil {
				return err
			}
			detail.Accessors = append(detail.Accessors, grant)

			p := participants.get(employees[grant.EmployeeID])
			p.IsShared = true
			p.WritePermission = grant.Permission == types.PermissionReadWrite
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, notify.Event{
		Kind:         notify.WorkflowCreated,
		Workflow:     &detail.Workflow,
		Participants: participants.list(),
	})

	return detail, nil
}

func (s *Service) GetWorkflow(ctx context.Context, actor *types.Employee, id string) (*types.WorkflowDetail, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.GetWorkflow")
	defer span.End()

	w, err := s.storage.GetWorkflowByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tasks, err := s.storage.ListTasksByWorkflowID(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	accesses, err := s.storage.ListAccessesByWorkflowID(ctx, w.ID)
	if err != nil {
		return nil, err
	}

	visible, err := s.canRead(ctx, actor, w, tasks, accesses)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrDenied
	}

	return &types.WorkflowDetail{Workflow: *w, Tasks: tasks, Accessors: accesses}, nil
}

func (s *Service) ListWorkflows(ctx context.Context, actor *types.Employee) ([]*types.Workflow, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.ListWorkflows")
	defer span.End()

	return s.storage.ListWorkflowsByParticipant(ctx, actor.ID)
}

// UpdateWorkflow mutates the allowed fields, then renotifies the full
// participant set recomputed from current state, changed or not.
func (s *Service) UpdateWorkflow(ctx context.Context, actor *types.Employee, id string, req *UpdateWorkflowRequest) (*types.Workflow, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.UpdateWorkflow")
	defer span.End()

	w, err := s.storage.GetWorkflowByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canWrite(ctx, actor, w)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrDenied
	}

	var paths []string
	if req.Name != nil {
		w.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.StartAt != nil {
		w.StartAt = *req.StartAt
		paths = append(paths, "start_at")
	}
	if req.CompleteAt != nil {
		w.CompleteAt = req.CompleteAt
		paths = append(paths, "complete_at")
	}
	if req.Duration != nil {
		w.Duration = *req.Duration
		paths = append(paths, "duration")
	}

	if err := s.storage.UpdateWorkflow(ctx, w, paths); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetWorkflowByID(ctx, id)
	if err != nil {
		return nil, err
	}

	participants, err := s.currentParticipants(ctx, updated)
	if err != nil {
		// the mutation is committed; a failed recompute only costs mails
		s.logger.Errorf("failed to compute participants for workflow %s: %v", updated.ID, err)
		return updated, nil
	}

	s.dispatcher.Dispatch(ctx, notify.Event{
		Kind:         notify.WorkflowUpdated,
		Workflow:     updated,
		Participants: participants,
		Updated:      true,
	})

	return updated, nil
}

// UpdateTask mutates a task. A sole assignee without admin rights or a
// read-write grant cannot reassign the task: the assignee field is
// silently dropped from the payload.
func (s *Service) UpdateTask(ctx context.Context, actor *types.Employee, id string, req *UpdateTaskRequest) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.UpdateTask")
	defer span.End()

	task, err := s.storage.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}
	w, err := s.storage.GetWorkflowByID(ctx, task.WorkflowID)
	if err != nil {
		return nil, err
	}

	elevated, err := s.canWrite(ctx, actor, w)
	if err != nil {
		return nil, err
	}
	if !elevated && task.AssigneeID != actor.ID {
		return nil, ErrDenied
	}

	if req.AssigneeID != nil {
		onlyAssignee := task.AssigneeID == actor.ID && !actor.IsAdmin
		if onlyAssignee {
			grant, err := s.storage.GetAccessByWorkflowAndEmployee(ctx, w.ID, actor.ID)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, err
			}
			onlyAssignee = grant == nil || grant.Permission != types.PermissionReadWrite
		}
		if onlyAssignee {
			req.AssigneeID = nil
		}
	}

	var paths []string
	if req.Title != nil {
		task.Title = *req.Title
		paths = append(paths, "title")
	}
	if req.Description != nil {
		task.Description = *req.Description
		paths = append(paths, "description")
	}
	if req.AssigneeID != nil {
		assignee, err := s.storage.GetEmployeeByID(ctx, *req.AssigneeID)
		if err != nil {
			return nil, err
		}
		creator, err := s.storage.GetEmployeeByID(ctx, w.CreatorID)
		if err != nil {
			return nil, err
		}
		if assignee.CompanyID != creator.CompanyID {
			return nil, NewValidationError("Employee must be of the same company")
		}
		task.AssigneeID = *req.AssigneeID
		paths = append(paths, "assignee")
	}
	if req.CompletedAt != nil {
		task.CompletedAt = req.CompletedAt
		paths = append(paths, "completed_at")
	}
	if req.StartDelta != nil {
		task.StartDelta = *req.StartDelta
		paths = append(paths, "start_delta")
	}
	if req.Status != nil {
		task.Status = *req.Status
		paths = append(paths, "status")
	}

	if err := s.storage.UpdateTask(ctx, task, paths); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assignee, err := s.storage.GetEmployeeByID(ctx, updated.AssigneeID)
	if err != nil {
		s.logger.Errorf("failed to load assignee for task %s: %v", updated.ID, err)
		return updated, nil
	}

	s.dispatcher.Dispatch(ctx, notify.Event{
		Kind:     notify.TaskAssigned,
		Workflow: w,
		Task:     updated,
		Assignee: assignee,
		Updated:  true,
	})

	return updated, nil
}

// CreateAccess grants an employee access to an existing workflow. Both
// the actor and the grantee must belong to the workflow creator's company.
func (s *Service) CreateAccess(ctx context.Context, actor *types.Employee, workflowID string, req *CreateAccessRequest) (*types.WorkflowAccess, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.CreateAccess")
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
		return nil, NewValidationError("workflow does not belong to your company")
	}

	grantee, err := s.storage.GetEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if grantee.CompanyID != creator.CompanyID {
		return nil, NewValidationError("Employee must be of the same company")
	}

	grant, err := s.storage.CreateAccess(ctx, &types.WorkflowAccess{
		WorkflowID: w.ID,
		EmployeeID: grantee.ID,
		Permission: req.Permission,
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, notify.Event{
		Kind:     notify.AccessGranted,
		Workflow: w,
		Access:   grant,
		Grantee:  grantee,
	})

	return grant, nil
}

// UpdateAccess may only change the permission of an existing grant.
func (s *Service) UpdateAccess(ctx context.Context, actor *types.Employee, id string, req *UpdateAccessRequest) (*types.WorkflowAccess, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.UpdateAccess")
	defer span.End()

	grant, err := s.storage.GetAccessByID(ctx, id)
	if err != nil {
		return nil, err
	}
	w, err := s.storage.GetWorkflowByID(ctx, grant.WorkflowID)
	if err != nil {
		return nil, err
	}
	creator, err := s.storage.GetEmployeeByID(ctx, w.CreatorID)
	if err != nil {
		return nil, err
	}
	if creator.CompanyID != actor.CompanyID {
		return nil, NewValidationError("workflow does not belong to your company")
	}

	if err := s.storage.UpdateAccessPermission(ctx, grant.ID, req.Permission); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetAccessByID(ctx, id)
	if err != nil {
		return nil, err
	}

	grantee, err := s.storage.GetEmployeeByID(ctx, updated.EmployeeID)
	if err != nil {
		s.logger.Errorf("failed to load grantee for access %s: %v", updated.ID, err)
		return updated, nil
	}

	s.dispatcher.Dispatch(ctx, notify.Event{
		Kind:     notify.AccessGranted,
		Workflow: w,
		Access:   updated,
		Grantee:  grantee,
		Updated:  true,
	})

	return updated, nil
}

// canWrite reports whether the actor may edit the workflow: its creator,
// an admin of the creator's company, or a read-write grantee.
func (s *Service) canWrite(ctx context.Context, actor *types.Employee, w *types.Workflow) (bool, error) {
	if w.CreatorID == actor.ID {
		return true, nil
	}

	if actor.IsAdmin {
		creator, err := s.storage.GetEmployeeByID(ctx, w.CreatorID)
		if err != nil {
			return false, err
		}
		if creator.CompanyID == actor.CompanyID {
			return true, nil
		}
	}

	grant, err := s.storage.GetAccessByWorkflowAndEmployee(ctx, w.ID, actor.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return grant.Permission == types.PermissionReadWrite, nil
}

// canRead additionally admits read grantees and task assignees.
func (s *Service) canRead(ctx context.Context, actor *types.Employee, w *types.Workflow, tasks []*types.Task, accesses []*types.WorkflowAccess) (bool, error) {
	if w.CreatorID == actor.ID {
		return true, nil
	}
	for _, a := range accesses {
		if a.EmployeeID == actor.ID {
			return true, nil
		}
	}
	for _, t := range tasks {
		if t.AssigneeID == actor.ID {
			return true, nil
		}
	}

	if actor.IsAdmin {
		creator, err := s.storage.GetEmployeeByID(ctx, w.CreatorID)
		if err != nil {
			return false, err
		}
		return creator.CompanyID == actor.CompanyID, nil
	}

	return false, nil
}

// currentParticipants rebuilds the participant set from current state:
// creator, every grantee, every task assignee.
func (s *Service) currentParticipants(ctx context.Context, w *types.Workflow) ([]*types.Participant, error) {
	creator, err := s.storage.GetEmployeeByID(ctx, w.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}

	participants := newParticipantSet()
	participants.get(creator).IsCreator = true

	accesses, err := s.storage.ListAccessesByWorkflowID(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	for _, a := range accesses {
		grantee, err := s.storage.GetEmployeeByID(ctx, a.EmployeeID)
		if err != nil {
			return nil, err
		}
		p := participants.get(grantee)
		p.IsShared = true
		p.WritePermission = p.WritePermission || a.Permission == types.PermissionReadWrite
	}

	tasks, err := s.storage.ListTasksByWorkflowID(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		assignee, err := s.storage.GetEmployeeByID(ctx, t.AssigneeID)
		if err != nil {
			return nil, err
		}
		p := participants.get(assignee)
		p.TaskList = append(p.TaskList, t.Title)
	}

	return participants.list(), nil
}
