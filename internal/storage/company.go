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

const employeeColumns = "id, company_id, identity_id, name, email, status, is_admin, invite_token, created_at"

func (s *Storage) CreateCompany(ctx context.Context, name string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompany")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate company ID: %w", err)
	}

	var c types.Company
	err = s.db.Statement(ctx).
		Insert("companies").
		Columns("id", "name", "status").
		Values(id.String(), name, types.CompanyStatusActive).
		Suffix("RETURNING id, name, status, created_at").
		QueryRowContext(ctx).
		Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert company: %w", err)
	}

	return &c, nil
}

func (s *Storage) GetCompanyByID(ctx context.Context, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByID")
	defer span.End()

	var c types.Company
	err := s.db.Statement(ctx).
		Select("id", "name", "status", "created_at").
		From("companies").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &c, nil
}

func (s *Storage) CreateEmployee(ctx context.Context, e *types.Employee) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEmployee")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate employee ID: %w", err)
	}

	var created types.Employee
	err = s.db.Statement(ctx).
		Insert("employees").
		Columns("id", "company_id", "identity_id", "name", "email", "status", "is_admin", "invite_token").
		Values(id.String(), e.CompanyID, e.IdentityID, e.Name, e.Email, e.Status, e.IsAdmin, e.InviteToken).
		Suffix("RETURNING " + employeeColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CompanyID, &created.IdentityID, &created.Name, &created.Email,
			&created.Status, &created.IsAdmin, &created.InviteToken, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "employee already exists in company")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "company does not exist")
		}
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetEmployeeByID(ctx context.Context, id string) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEmployeeByID")
	defer span.End()

	return s.getEmployee(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetEmployeeByInviteToken(ctx context.Context, token string) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEmployeeByInviteToken")
	defer span.End()

	return s.getEmployee(ctx, sq.Eq{"invite_token": token})
}

func (s *Storage) getEmployee(ctx context.Context, pred sq.Eq) (*types.Employee, error) {
	var e types.Employee
	err := s.db.Statement(ctx).
		Select("id", "company_id", "identity_id", "name", "email", "status", "is_admin", "invite_token", "created_at").
		From("employees").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&e.ID, &e.CompanyID, &e.IdentityID, &e.Name, &e.Email, &e.Status, &e.IsAdmin, &e.InviteToken, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &e, nil
}

func (s *Storage) ListEmployeesByIdentityID(ctx context.Context, identityID string) ([]*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEmployeesByIdentityID")
	defer span.End()

	return s.listEmployees(ctx, sq.Eq{"identity_id": identityID})
}

func (s *Storage) ListEmployeesByCompanyID(ctx context.Context, companyID string) ([]*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEmployeesByCompanyID")
	defer span.End()

	return s.listEmployees(ctx, sq.Eq{"company_id": companyID})
}

func (s *Storage) listEmployees(ctx context.Context, pred sq.Eq) ([]*types.Employee, error) {
	rows, err := s.db.Statement(ctx).
		Select("id", "company_id", "identity_id", "name", "email", "status", "is_admin", "invite_token", "created_at").
		From("employees").
		Where(pred).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*types.Employee
	for rows.Next() {
		var e types.Employee
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.IdentityID, &e.Name, &e.Email, &e.Status, &e.IsAdmin, &e.InviteToken, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

func (s *Storage) SetEmployeeStatus(ctx context.Context, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetEmployeeStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("employees").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update employee status: %w", err)
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

// ActivateEmployee binds the accepting identity to an invited employee row
// and marks it active, clearing the invite token.
func (s *Storage) ActivateEmployee(ctx context.Context, id, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ActivateEmployee")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("employees").
		SetMap(map[string]interface{}{
			"identity_id":  identityID,
			"status":       types.EmployeeStatusActive,
			"invite_token": "",
		}).
		Where(sq.Eq{"id": id, "status": types.EmployeeStatusInvited}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to activate employee: %w", err)
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
