// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"

	"github.com/canonical/workflow-service/internal/types"
)

type ServiceInterface interface {
	CreateCompany(ctx context.Context, identityID string, req *CreateCompanyRequest) (*types.Company, *types.Employee, error)
	InviteEmployee(ctx context.Context, actor *types.Employee, req *InviteEmployeeRequest) (*types.Employee, error)
	AcceptInvite(ctx context.Context, identityID, token string) (*types.Employee, error)
	ListEmployees(ctx context.Context, actor *types.Employee) ([]*types.Employee, error)
	DeactivateEmployee(ctx context.Context, actor *types.Employee, id string) error
}

type StorageInterface interface {
	CreateCompany(ctx context.Context, name string) (*types.Company, error)
	CreateEmployee(ctx context.Context, e *types.Employee) (*types.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (*types.Employee, error)
	GetEmployeeByInviteToken(ctx context.Context, token string) (*types.Employee, error)
	ListEmployeesByCompanyID(ctx context.Context, companyID string) ([]*types.Employee, error)
	SetEmployeeStatus(ctx context.Context, id, status string) error
	ActivateEmployee(ctx context.Context, id, identityID string) error
}

type CreateCompanyRequest struct {
	Name          string `json:"name" validate:"required"`
	EmployeeName  string `json:"employee_name" validate:"required"`
	EmployeeEmail string `json:"employee_email" validate:"required,email"`
}

type InviteEmployeeRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	IsAdmin bool   `json:"is_admin"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" validate:"required"`
}
