// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/workflow-service/internal/types"
)

func (s *Storage) ListTemplates(ctx context.Context) ([]*types.WorkflowTemplate, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTemplates")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "structure", "thumbnail", "created_at").
		From("workflow_templates").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []*types.WorkflowTemplate
	for rows.Next() {
		var t types.WorkflowTemplate
		var structure []byte
		if err := rows.Scan(&t.ID, &t.Name, &structure, &t.Thumbnail, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		t.Structure = json.RawMessage(structure)
		templates = append(templates, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return templates, nil
}

func (s *Storage) GetTemplateByID(ctx context.Context, id string) (*types.WorkflowTemplate, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTemplateByID")
	defer span.End()

	var t types.WorkflowTemplate
	var structure []byte
	err := s.db.Statement(ctx).
		Select("id", "name", "structure", "thumbnail", "created_at").
		From("workflow_templates").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &structure, &t.Thumbnail, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	t.Structure = json.RawMessage(structure)
	return &t, nil
}
