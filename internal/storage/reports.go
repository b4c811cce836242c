// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

func (s *Storage) CountEmployeesByStatus(ctx context.Context, companyID string) (map[string]int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountEmployeesByStatus")
	defer span.End()

	return s.countGrouped(ctx, "employees", "status", sq.Eq{"company_id": companyID})
}

func (s *Storage) CountTasksByAssignee(ctx context.Context, employeeID string) (map[string]int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountTasksByAssignee")
	defer span.End()

	return s.countGrouped(ctx, "tasks", "status", sq.Eq{"assignee_id": employeeID})
}

func (s *Storage) CountTasksByStatus(ctx context.Context, workflowID string) (map[string]int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountTasksByStatus")
	defer span.End()

	return s.countGrouped(ctx, "tasks", "status", sq.Eq{"workflow_id": workflowID})
}

func (s *Storage) CountWorkflowsByCreator(ctx context.Context, employeeID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountWorkflowsByCreator")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("workflows").
		Where(sq.Eq{"creator_id": employeeID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count workflows: %w", err)
	}

	return count, nil
}

func (s *Storage) countGrouped(ctx context.Context, table, column string, pred sq.Eq) (map[string]int64, error) {
	rows, err := s.db.Statement(ctx).
		Select(column, "COUNT(*)").
		From(table).
		Where(pred).
		GroupBy(column).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", table, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[key] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}
