// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/internal/types"
)

func newTestEvaluator(t *testing.T) (*Evaluator, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)

	evaluator := NewEvaluator(
		mockStorage,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return evaluator, mockStorage
}

func TestEvaluator_ActiveEmployee(t *testing.T) {
	identityID := "identity-1"
	activeCompany := &types.Company{ID: "comp-1", Status: types.CompanyStatusActive}
	suspendedCompany := &types.Company{ID: "comp-2", Status: types.CompanyStatusInactive}

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expectedID string
		expectErr  bool
	}{
		{
			name: "active membership in active company",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListEmployeesByIdentityID(gomock.Any(), identityID).Return(
					[]*types.Employee{
						{ID: "emp-1", CompanyID: activeCompany.ID, IdentityID: identityID, Status: types.EmployeeStatusActive},
					}, nil)
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), activeCompany.ID).Return(activeCompany, nil)
			},
			expectedID: "emp-1",
		},
		{
			name: "membership only in suspended company",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListEmployeesByIdentityID(gomock.Any(), identityID).Return(
					[]*types.Employee{
						{ID: "emp-1", CompanyID: suspendedCompany.ID, IdentityID: identityID, Status: types.EmployeeStatusActive},
					}, nil)
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), suspendedCompany.ID).Return(suspendedCompany, nil)
			},
			expectedID: "",
		},
		{
			name: "no memberships",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListEmployeesByIdentityID(gomock.Any(), identityID).Return(nil, nil)
			},
			expectedID: "",
		},
		{
			name: "storage failure",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListEmployeesByIdentityID(gomock.Any(), identityID).
					Return(nil, errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			evaluator, mockStorage := newTestEvaluator(t)
			tc.setupMocks(mockStorage)

			employee, err := evaluator.ActiveEmployee(context.Background(), identityID)
			if tc.expectErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if tc.expectedID == "" {
				if employee != nil {
					t.Errorf("expected no employee, got %q", employee.ID)
				}
				return
			}
			if employee == nil || employee.ID != tc.expectedID {
				t.Errorf("expected employee %q, got %v", tc.expectedID, employee)
			}
		})
	}
}

func TestEvaluator_AdminEmployee(t *testing.T) {
	identityID := "identity-1"
	activeCompany := &types.Company{ID: "comp-1", Status: types.CompanyStatusActive}

	evaluator, mockStorage := newTestEvaluator(t)

	mockStorage.EXPECT().ListEmployeesByIdentityID(gomock.Any(), identityID).Return(
		[]*types.Employee{
			{ID: "emp-1", CompanyID: activeCompany.ID, IdentityID: identityID, Status: types.EmployeeStatusActive},
		}, nil)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), activeCompany.ID).Return(activeCompany, nil)

	admin, err := evaluator.AdminEmployee(context.Background(), identityID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if admin != nil {
		t.Errorf("a plain member must not pass the admin check")
	}
}
