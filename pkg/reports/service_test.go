// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package reports

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/storage"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package reports -destination ./mock_reports.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)

	svc := NewService(
		mockStorage,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return svc, mockStorage
}

func TestService_EmployeeTurnover(t *testing.T) {
	actor := &types.Employee{ID: "emp-1", CompanyID: "comp-1", IsAdmin: true}

	svc, mockStorage := newTestService(t)

	mockStorage.EXPECT().CountEmployeesByStatus(gomock.Any(), actor.CompanyID).Return(map[string]int64{
		types.EmployeeStatusInvited:  2,
		types.EmployeeStatusActive:   5,
		types.EmployeeStatusInactive: 1,
	}, nil)

	report, err := svc.EmployeeTurnover(context.Background(), actor)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Invited != 2 || report.Joined != 5 || report.Left != 1 {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestService_EmployeeActivity(t *testing.T) {
	actor := &types.Employee{ID: "emp-1", CompanyID: "comp-1", IsAdmin: true}

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expectErr  error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				target := &types.Employee{ID: "emp-2", CompanyID: "comp-1"}
				mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), target.ID).Return(target, nil)
				mockStorage.EXPECT().CountWorkflowsByCreator(gomock.Any(), target.ID).Return(int64(3), nil)
				mockStorage.EXPECT().CountTasksByAssignee(gomock.Any(), target.ID).Return(map[string]int64{
					types.TaskStatusCompleted: 4,
				}, nil)
			},
		},
		{
			name: "employee of another company reads as missing",
			setupMocks: func(mockStorage *MockStorageInterface) {
				outsider := &types.Employee{ID: "emp-2", CompanyID: "comp-2"}
				mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), outsider.ID).Return(outsider, nil)
			},
			expectErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockStorage := newTestService(t)
			tc.setupMocks(mockStorage)

			report, err := svc.EmployeeActivity(context.Background(), actor, "emp-2")
			if tc.expectErr != nil {
				if !errors.Is(err, tc.expectErr) {
					t.Fatalf("expected %v, got %v", tc.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if report.WorkflowsCreated != 3 {
				t.Errorf("expected 3 created workflows, got %d", report.WorkflowsCreated)
			}
			if report.TasksByStatus[types.TaskStatusCompleted] != 4 {
				t.Errorf("unexpected task counts %v", report.TasksByStatus)
			}
		})
	}
}

func TestService_WorkflowProgress(t *testing.T) {
	actor := &types.Employee{ID: "emp-1", CompanyID: "comp-1", IsAdmin: true}
	workflow := &types.Workflow{ID: "wf-1", CreatorID: "emp-2"}

	testCases := []struct {
		name      string
		creator   *types.Employee
		expectErr error
	}{
		{
			name:    "success",
			creator: &types.Employee{ID: "emp-2", CompanyID: "comp-1"},
		},
		{
			name:      "workflow of another company reads as missing",
			creator:   &types.Employee{ID: "emp-2", CompanyID: "comp-2"},
			expectErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockStorage := newTestService(t)

			mockStorage.EXPECT().GetWorkflowByID(gomock.Any(), workflow.ID).Return(workflow, nil)
			mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), workflow.CreatorID).Return(tc.creator, nil)
			if tc.expectErr == nil {
				mockStorage.EXPECT().CountTasksByStatus(gomock.Any(), workflow.ID).Return(map[string]int64{
					types.TaskStatusUpcoming:   2,
					types.TaskStatusInProgress: 1,
				}, nil)
			}

			report, err := svc.WorkflowProgress(context.Background(), actor, workflow.ID)
			if tc.expectErr != nil {
				if !errors.Is(err, tc.expectErr) {
					t.Fatalf("expected %v, got %v", tc.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if report.TasksByStatus[types.TaskStatusUpcoming] != 2 {
				t.Errorf("unexpected task counts %v", report.TasksByStatus)
			}
		})
	}
}
