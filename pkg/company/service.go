// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/mail"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/storage"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	mail    mail.MailClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	s StorageInterface,
	mailClient mail.MailClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: s,
		mail:    mailClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateCompany creates the company together with its first employee, an
// active admin bound to the caller's identity. The request runs inside
// the per-request transaction, so a failed employee insert rolls the
// company back too.
func (s *Service) CreateCompany(ctx context.Context, identityID string, req *CreateCompanyRequest) (*types.Company, *types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.CreateCompany")
	defer span.End()

	c, err := s.storage.CreateCompany(ctx, req.Name)
	if err != nil {
		return nil, nil, err
	}

	admin, err := s.storage.CreateEmployee(ctx, &types.Employee{
		CompanyID:  c.ID,
		IdentityID: identityID,
		Name:       req.EmployeeName,
		Email:      req.EmployeeEmail,
		Status:     types.EmployeeStatusActive,
		IsAdmin:    true,
	})
	if err != nil {
		return nil, nil, err
	}

	return c, admin, nil
}

// InviteEmployee creates an invited employee row and mails the invite
// token. A failed mail send is logged, never surfaced: the invite exists
// and the token can be re-sent out of band.
func (s *Service) InviteEmployee(ctx context.Context, actor *types.Employee, req *InviteEmployeeRequest) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.InviteEmployee")
	defer span.End()

	token, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite token: %w", err)
	}

	invited, err := s.storage.CreateEmployee(ctx, &types.Employee{
		CompanyID:   actor.CompanyID,
		Name:        req.Name,
		Email:       req.Email,
		Status:      types.EmployeeStatusInvited,
		IsAdmin:     req.IsAdmin,
		InviteToken: token.String(),
	})
	if err != nil {
		return nil, err
	}

	subject := "You have been invited to join your team"
	body := fmt.Sprintf(
		"Hello %s,\n\n%s has invited you to join their company. Use the token below to accept the invite:\n\n%s\n",
		invited.Name, actor.Name, invited.InviteToken,
	)
	if err := s.mail.Send(ctx, invited.Email, subject, body); err != nil {
		s.logger.Errorf("failed to send invite mail to %s: %v", invited.Email, err)
	}

	return invited, nil
}

// AcceptInvite binds the caller's identity to the invited employee row
// and activates it. The token is single use: activation only matches rows
// still in invited status.
func (s *Service) AcceptInvite(ctx context.Context, identityID, token string) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.AcceptInvite")
	defer span.End()

	invited, err := s.storage.GetEmployeeByInviteToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.storage.ActivateEmployee(ctx, invited.ID, identityID); err != nil {
		return nil, err
	}

	return s.storage.GetEmployeeByID(ctx, invited.ID)
}

func (s *Service) ListEmployees(ctx context.Context, actor *types.Employee) ([]*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.ListEmployees")
	defer span.End()

	return s.storage.ListEmployeesByCompanyID(ctx, actor.CompanyID)
}

// DeactivateEmployee soft-deletes an employee of the actor's company.
// Employees of other companies are indistinguishable from missing ones.
func (s *Service) DeactivateEmployee(ctx context.Context, actor *types.Employee, id string) error {
	ctx, span := s.tracer.Start(ctx, "company.Service.DeactivateEmployee")
	defer span.End()

	e, err := s.storage.GetEmployeeByID(ctx, id)
	if err != nil {
		return err
	}
	if e.CompanyID != actor.CompanyID {
		return storage.ErrNotFound
	}

	return s.storage.SetEmployeeStatus(ctx, e.ID, types.EmployeeStatusInactive)
}
