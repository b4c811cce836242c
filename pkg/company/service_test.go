// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

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

//go:generate mockgen -build_flags=--mod=mod -package company -destination ./mock_company.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package company -destination ./mock_mail.go -source=../../internal/mail/interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockMailClientInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockMail := NewMockMailClientInterface(ctrl)

	svc := NewService(
		mockStorage,
		mockMail,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return svc, mockStorage, mockMail
}

func TestService_CreateCompany(t *testing.T) {
	identityID := "identity-1"
	created := &types.Company{ID: "comp-1", Name: "Acme", Status: types.CompanyStatusActive}

	svc, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().CreateCompany(gomock.Any(), "Acme").Return(created, nil)
	mockStorage.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *types.Employee) (*types.Employee, error) {
			if e.CompanyID != created.ID {
				return nil, errors.New("employee must belong to the new company")
			}
			if e.IdentityID != identityID {
				return nil, errors.New("employee must be bound to the caller's identity")
			}
			if !e.IsAdmin || e.Status != types.EmployeeStatusActive {
				return nil, errors.New("first employee must be an active admin")
			}
			admin := *e
			admin.ID = "emp-1"
			return &admin, nil
		})

	c, admin, err := svc.CreateCompany(context.Background(), identityID, &CreateCompanyRequest{
		Name:          "Acme",
		EmployeeName:  "Alice",
		EmployeeEmail: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.ID != created.ID {
		t.Errorf("unexpected company %q", c.ID)
	}
	if admin.ID != "emp-1" {
		t.Errorf("unexpected employee %q", admin.ID)
	}
}

func TestService_InviteEmployee(t *testing.T) {
	actor := &types.Employee{ID: "emp-1", CompanyID: "comp-1", Name: "Alice", IsAdmin: true}

	testCases := []struct {
		name    string
		mailErr error
	}{
		{name: "success"},
		{name: "mail failure is swallowed", mailErr: errors.New("smtp unreachable")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockStorage, mockMail := newTestService(t)

			mockStorage.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e *types.Employee) (*types.Employee, error) {
					if e.CompanyID != actor.CompanyID {
						return nil, errors.New("invite must target the actor's company")
					}
					if e.Status != types.EmployeeStatusInvited {
						return nil, errors.New("invited employee must start in invited status")
					}
					if e.InviteToken == "" {
						return nil, errors.New("invite token must be set")
					}
					invited := *e
					invited.ID = "emp-2"
					return &invited, nil
				})
			mockMail.EXPECT().Send(gomock.Any(), "bob@example.com", gomock.Any(), gomock.Any()).Return(tc.mailErr)

			invited, err := svc.InviteEmployee(context.Background(), actor, &InviteEmployeeRequest{
				Name:  "Bob",
				Email: "bob@example.com",
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if invited.ID != "emp-2" {
				t.Errorf("unexpected employee %q", invited.ID)
			}
		})
	}
}

func TestService_AcceptInvite(t *testing.T) {
	identityID := "identity-2"
	token := "token-1"
	invited := &types.Employee{ID: "emp-2", CompanyID: "comp-1", Status: types.EmployeeStatusInvited, InviteToken: token}

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expectErr  error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetEmployeeByInviteToken(gomock.Any(), token).Return(invited, nil)
				mockStorage.EXPECT().ActivateEmployee(gomock.Any(), invited.ID, identityID).Return(nil)
				activated := *invited
				activated.Status = types.EmployeeStatusActive
				activated.IdentityID = identityID
				mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), invited.ID).Return(&activated, nil)
			},
		},
		{
			name: "unknown token",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetEmployeeByInviteToken(gomock.Any(), token).Return(nil, storage.ErrNotFound)
			},
			expectErr: storage.ErrNotFound,
		},
		{
			name: "already accepted",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetEmployeeByInviteToken(gomock.Any(), token).Return(invited, nil)
				mockStorage.EXPECT().ActivateEmployee(gomock.Any(), invited.ID, identityID).Return(storage.ErrNotFound)
			},
			expectErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockStorage, _ := newTestService(t)
			tc.setupMocks(mockStorage)

			e, err := svc.AcceptInvite(context.Background(), identityID, token)
			if tc.expectErr != nil {
				if !errors.Is(err, tc.expectErr) {
					t.Fatalf("expected %v, got %v", tc.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if e.Status != types.EmployeeStatusActive || e.IdentityID != identityID {
				t.Errorf("accepted employee must be active and bound to the identity")
			}
		})
	}
}

func TestService_DeactivateEmployee(t *testing.T) {
	actor := &types.Employee{ID: "emp-1", CompanyID: "comp-1", IsAdmin: true}

	testCases := []struct {
		name       string
		target     *types.Employee
		setupMocks func(*MockStorageInterface, *types.Employee)
		expectErr  error
	}{
		{
			name:   "success",
			target: &types.Employee{ID: "emp-2", CompanyID: "comp-1", Status: types.EmployeeStatusActive},
			setupMocks: func(mockStorage *MockStorageInterface, target *types.Employee) {
				mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), target.ID).Return(target, nil)
				mockStorage.EXPECT().SetEmployeeStatus(gomock.Any(), target.ID, types.EmployeeStatusInactive).Return(nil)
			},
		},
		{
			name:   "employee of another company reads as missing",
			target: &types.Employee{ID: "emp-9", CompanyID: "comp-2", Status: types.EmployeeStatusActive},
			setupMocks: func(mockStorage *MockStorageInterface, target *types.Employee) {
				mockStorage.EXPECT().GetEmployeeByID(gomock.Any(), target.ID).Return(target, nil)
			},
			expectErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockStorage, _ := newTestService(t)
			tc.setupMocks(mockStorage, tc.target)

			err := svc.DeactivateEmployee(context.Background(), actor, tc.target.ID)
			if !errors.Is(err, tc.expectErr) {
				t.Fatalf("expected %v, got %v", tc.expectErr, err)
			}
		})
	}
}
