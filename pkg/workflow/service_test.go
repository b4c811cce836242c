// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/storage"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/internal/types"
	"github.com/canonical/workflow-service/pkg/notify"
)

//go:generate mockgen -build_flags=--mod=mod -package workflow -destination ./mock_workflow.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package workflow -destination ./mock_notify.go -source=../notify/interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockTxRunnerInterface, *MockDispatcherInterface) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockTx := NewMockTxRunnerInterface(ctrl)
	mockDispatcher := NewMockDispatcherInterface(ctrl)

	svc := NewService(
		mockStorage,
		mockTx,
		mockDispatcher,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return svc, mockStorage, mockTx, mockDispatcher
}

func TestService_CreateWorkflow(t *testing.T) {
	actor := &types.Employee{ID: "emp-1", CompanyID: "comp-1", Name: "Alice", Email: "alice@example.com"}
	assignee := &types.Employee{ID: "emp-2", CompanyID: "comp-1", Name: "Bob", Email: "bob@example.com"}
	grantee := &types.Employee{ID: "emp-3", CompanyID: "comp-1", Name: "Carol", Email: "carol@example.com"}

	req := &CreateWorkflowRequest{
		TemplateID: "tpl-1",
		Name:       "Onboarding",
		StartAt:    time.Now(),
		Duration:   48 * time.Hour,
		Tasks: []TaskDescriptor{
			{Title: "Prepare laptop", AssigneeID: assignee.ID},
			{Title: "Grant accounts", AssigneeID: actor.ID},
		},
		Accessors: []AccessDescriptor{
			{EmployeeID: actor.ID, Permission: types.PermissionRead},
			{EmployeeID: grantee.ID, Permission: types.PermissionReadWrite},
		},
	}

	svc, mockStorage, mockTx, mockDispatcher := newTestService(t)

	mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), assignee.ID).Return(assignee, nil)
	mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), grantee.ID).Return(grantee, nil)

	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})

	mockStorage.EXPECT().CreateWorkflow(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *types.Workflow) (*types.Workflow, error) {
			if w.CreatorID != actor.ID {
				return nil, fmt.Errorf("unexpected creator %q", w.CreatorID)
			}
			created := *w
			created.ID = "wf-1"
			return &created, nil
		})

	taskNum := 0
	mockStorage.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, task *types.Task) (*types.Task, error) {
			taskNum++
			switch taskNum {
			case 1:
				if task.ParentTaskID != nil {
					return nil, errors.New("first task must have no parent")
				}
			case 2:
				if task.ParentTaskID == nil || *task.ParentTaskID != "task-1" {
					return nil, errors.New("second task must be parented on the first")
				}
			}
			if task.Status != types.TaskStatusUpcoming {
				return nil, fmt.Errorf("unexpected task status %q", task.Status)
			}
			created := *task
			created.ID = fmt.Sprintf("task-%d", taskNum)
			return &created, nil
		})

	mockStorage.EXPECT().CreateAccess(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *types.WorkflowAccess) (*types.WorkflowAccess, error) {
			if a.EmployeeID != grantee.ID {
				return nil, fmt.Errorf("unexpected grantee %q, creator grants must be skipped", a.EmployeeID)
			}
			created := *a
			created.ID = "access-1"
			return &created, nil
		})

	mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, e notify.Event) {
			if e.Kind != notify.WorkflowCreated {
				t.Errorf("expected %q event, got %q", notify.WorkflowCreated, e.Kind)
			}
			if len(e.Participants) != 3 {
				t.Fatalf("expected 3 participants, got %d", len(e.Participants))
			}
			creator := e.Participants[0]
			if !creator.IsCreator || creator.Employee.ID != actor.ID {
				t.Errorf("first participant must be the creator")
			}
			if len(creator.TaskList) != 1 || creator.TaskList[0] != "Grant accounts" {
				t.Errorf("unexpected creator task list %v", creator.TaskList)
			}
			for _, p := range e.Participants {
				if p.Employee.ID == grantee.ID && (!p.IsShared || !p.WritePermission) {
					t.Errorf("read-write grantee must be shared with write permission")
				}
			}
		})

	detail, err := svc.CreateWorkflow(context.Background(), actor, req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if detail.ID != "wf-1" {
		t.Errorf("expected workflow ID wf-1, got %q", detail.ID)
	}
	if len(detail.Tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(detail.Tasks))
	}
	if len(detail.Accessors) != 1 {
		t.Errorf("expected 1 access grant, got %d", len(detail.Accessors))
	}
}

func TestService_CreateWorkflowRejectsForeignAssignee(t *testing.T) {
	actor := &types.Employee{ID: "emp-1", CompanyID: "comp-1"}
	outsider := &types.Employee{ID: "emp-9", CompanyID: "comp-2"}

	svc, mockStorage, _, _ := newTestService(t)

	mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), outsider.ID).Return(outsider, nil)

	_, err := svc.CreateWorkflow(context.Background(), actor, &CreateWorkflowRequest{
		TemplateID: "tpl-1",
		Name:       "Onboarding",
		StartAt:    time.Now(),
		Tasks:      []TaskDescriptor{{Title: "Prepare laptop", AssigneeID: outsider.ID}},
	})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Reason != "Employee must be of the same company" {
		t.Errorf("unexpected reason %q", validationErr.Reason)
	}
}

func TestService_UpdateWorkflowAuthorization(t *testing.T) {
	workflow := &types.Workflow{ID: "wf-1", CreatorID: "emp-1", Name: "Onboarding"}
	creator := &types.Employee{ID: "emp-1", CompanyID: "comp-1"}

	testCases := []struct {
		name       string
		actor      *types.Employee
		setupMocks func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:  "denied - no relation to workflow",
			actor: &types.Employee{ID: "emp-5", CompanyID: "comp-1"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetWorkflowByID(gomock.Any(), workflow.ID).Return(workflow, nil)
				mockStorage.EXPECT().GetAccessByWorkflowAndEmployee(gomock.Any(), workflow.ID, "emp-5").
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrDenied,
		},
		{
			name:  "denied - read-only grant",
			actor: &types.Employee{ID: "emp-5", CompanyID: "comp-1"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetWorkflowByID(gomock.Any(), workflow.ID).Return(workflow, nil)
				mockStorage.EXPECT().GetAccessByWorkflowAndEmployee(gomock.Any(), workflow.ID, "emp-5").
					Return(&types.WorkflowAccess{Permission: types.PermissionRead}, nil)
			},
			expectedErr: ErrDenied,
		},
		{
			name:  "denied - admin of another company",
			actor: &types.Employee{ID: "emp-5", CompanyID: "comp-2", IsAdmin: true},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetWorkflowByID(gomock.Any(), workflow.ID).Return(workflow, nil)
				mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), creator.ID).Return(creator, nil)
				mockStorage.EXPECT().GetAccessByWorkflowAndEmployee(gomock.Any(), workflow.ID, "emp-5").
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockStorage, _, _ := newTestService(t)
			tc.setupMocks(mockStorage)

			newName := "Renamed"
			_, err := svc.UpdateWorkflow(context.Background(), tc.actor, workflow.ID, &UpdateWorkflowRequest{Name: &newName})
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_UpdateTaskDropsAssigneeForSoleAssignee(t *testing.T) {
	actor := &types.Employee{ID: "emp-2", CompanyID: "comp-1", Name: "Bob", Email: "bob@example.com"}
	task := &types.Task{ID: "task-1", WorkflowID: "wf-1", AssigneeID: actor.ID, Title: "Prepare laptop", Status: types.TaskStatusUpcoming}
	workflow := &types.Workflow{ID: "wf-1", CreatorID: "emp-1", Name: "Onboarding"}

	svc, mockStorage, _, mockDispatcher := newTestService(t)

	mockStorage.EXPECT().GetTaskByID(gomock.Any(), task.ID).Return(task, nil)
	mockStorage.EXPECT().GetWorkflowByID(gomock.Any(), workflow.ID).Return(workflow, nil)
	// write-elevation probe and the assignee-drop probe both miss
	mockStorage.EXPECT().GetAccessByWorkflowAndEmployee(gomock.Any(), workflow.ID, actor.ID).
		Return(nil, storage.ErrNotFound).Times(2)

	mockStorage.EXPECT().UpdateTask(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *types.Task, paths []string) error {
			for _, p := range paths {
				if p == "assignee" {
					return errors.New("assignee must be dropped from the payload")
				}
			}
			if updated.AssigneeID != actor.ID {
				return errors.New("assignee must stay unchanged")
			}
			return nil
		})

	completed := *task
	completed.Status = types.TaskStatusCompleted
	mockStorage.EXPECT().GetTaskByID(gomock.Any(), task.ID).Return(&completed, nil)
	mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), actor.ID).Return(actor, nil)

	mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, e notify.Event) {
			if e.Kind != notify.TaskAssigned {
				t.Errorf("expected %q event, got %q", notify.TaskAssigned, e.Kind)
			}
			if !e.Updated {
				t.Errorf("task mutation events must be flagged as updates")
			}
		})

	newAssignee := "emp-9"
	newStatus := types.TaskStatusCompleted
	updated, err := svc.UpdateTask(context.Background(), actor, task.ID, &UpdateTaskRequest{
		AssigneeID: &newAssignee,
		Status:     &newStatus,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Status != types.TaskStatusCompleted {
		t.Errorf("expected completed status, got %q", updated.Status)
	}
}

func TestService_UpdateTaskDeniedForUnrelatedEmployee(t *testing.T) {
	actor := &types.Employee{ID: "emp-5", CompanyID: "comp-1"}
	task := &types.Task{ID: "task-1", WorkflowID: "wf-1", AssigneeID: "emp-2"}
	workflow := &types.Workflow{ID: "wf-1", CreatorID: "emp-1"}

	svc, mockStorage, _, _ := newTestService(t)

	mockStorage.EXPECT().GetTaskByID(gomock.Any(), task.ID).Return(task, nil)
	mockStorage.EXPECT().GetWorkflowByID(gomock.Any(), workflow.ID).Return(workflow, nil)
	mockStorage.EXPECT().GetAccessByWorkflowAndEmployee(gomock.Any(), workflow.ID, actor.ID).
		Return(nil, storage.ErrNotFound)

	newTitle := "Hijacked"
	_, err := svc.UpdateTask(context.Background(), actor, task.ID, &UpdateTaskRequest{Title: &newTitle})
	if !errors.Is(err, ErrDenied) {
		t.Fatalf("expected %v, got %v", ErrDenied, err)
	}
}

func TestService_CreateAccess(t *testing.T) {
	workflow := &types.Workflow{ID: "wf-1", CreatorID: "emp-1", Name: "Onboarding"}
	creator := &types.Employee{ID: "emp-1", CompanyID: "comp-1"}

	testCases := []struct {
		name           string
		actor          *types.Employee
		granteeID      string
		setupMocks     func(*MockStorageInterface, *MockDispatcherInterface)
		expectedReason string
	}{
		{
			name:      "success",
			actor:     &types.Employee{ID: "emp-1", CompanyID: "comp-1"},
			granteeID: "emp-3",
			setupMocks: func(mockStorage *MockStorageInterface, mockDispatcher *MockDispatcherInterface) {
				grantee := &types.Employee{ID: "emp-3", CompanyID: "comp-1", Email: "carol@example.com"}
				mockStorage.EXPECT().GetWorkflowByID(gomock.Any(), workflow.ID).Return(workflow, nil)
				mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), creator.ID).Return(creator, nil)
				mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), "emp-3").Return(grantee, nil)
				mockStorage.EXPECT().CreateAccess(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.WorkflowAccess) (*types.WorkflowAccess, error) {
						created := *a
						created.ID = "access-1"
						return &created, nil
					})
				mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(
					func(_ context.Context, e notify.Event) {
						if e.Kind != notify.AccessGranted {
							t.Errorf("expected %q event, got %q", notify.AccessGranted, e.Kind)
						}
					})
			},
		},
		{
			name:      "error - workflow of another company",
			actor:     &types.Employee{ID: "emp-5", CompanyID: "comp-2"},
			granteeID: "emp-3",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockDispatcherInterface) {
				mockStorage.EXPECT().GetWorkflowByID(gomock.Any(), workflow.ID).Return(workflow, nil)
				mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), creator.ID).Return(creator, nil)
			},
			expectedReason: "workflow does not belong to your company",
		},
		{
			name:      "error - grantee of another company",
			actor:     &types.Employee{ID: "emp-1", CompanyID: "comp-1"},
			granteeID: "emp-9",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockDispatcherInterface) {
				outsider := &types.Employee{ID: "emp-9", CompanyID: "comp-2"}
				mockStorage.EXPECT().GetWorkflowByID(gomock.Any(), workflow.ID).Return(workflow, nil)
				mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), creator.ID).Return(creator, nil)
				mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), "emp-9").Return(outsider, nil)
			},
			expectedReason: "Employee must be of the same company",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockStorage, _, mockDispatcher := newTestService(t)
			tc.setupMocks(mockStorage, mockDispatcher)

			grant, err := svc.CreateAccess(context.Background(), tc.actor, workflow.ID, &CreateAccessRequest{
				EmployeeID: tc.granteeID,
				Permission: types.PermissionRead,
			})

			if tc.expectedReason == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if grant.ID != "access-1" {
					t.Errorf("unexpected grant ID %q", grant.ID)
				}
				return
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if validationErr.Reason != tc.expectedReason {
				t.Errorf("expected reason %q, got %q", tc.expectedReason, validationErr.Reason)
			}
		})
	}
}

func TestService_UpdateAccessKeepsGrantTarget(t *testing.T) {
	grant := &types.WorkflowAccess{ID: "access-1", WorkflowID: "wf-1", EmployeeID: "emp-3", Permission: types.PermissionRead}
	workflow := &types.Workflow{ID: "wf-1", CreatorID: "emp-1", Name: "Onboarding"}
	creator := &types.Employee{ID: "emp-1", CompanyID: "comp-1"}
	grantee := &types.Employee{ID: "emp-3", CompanyID: "comp-1", Email: "carol@example.com"}
	actor := &types.Employee{ID: "emp-1", CompanyID: "comp-1"}

	svc, mockStorage, _, mockDispatcher := newTestService(t)

	mockStorage.EXPECT().GetAccessByID(gomock.Any(), grant.ID).Return(grant, nil)
	mockStorage.EXPECT().GetWorkflowByID(gomock.Any(), workflow.ID).Return(workflow, nil)
	mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), creator.ID).Return(creator, nil)
	mockStorage.EXPECT().UpdateAccessPermission(gomock.Any(), grant.ID, types.PermissionReadWrite).Return(nil)

	upgraded := *grant
	upgraded.Permission = types.PermissionReadWrite
	mockStorage.EXPECT().GetAccessByID(gomock.Any(), grant.ID).Return(&upgraded, nil)
	mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), grantee.ID).Return(grantee, nil)

	mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

	updated, err := svc.UpdateAccess(context.Background(), actor, grant.ID, &UpdateAccessRequest{
		Permission: types.PermissionReadWrite,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.EmployeeID != grantee.ID || updated.WorkflowID != workflow.ID {
		t.Errorf("grant target must be immutable")
	}
	if updated.Permission != types.PermissionReadWrite {
		t.Errorf("expected upgraded permission, got %q", updated.Permission)
	}
}
