// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package templates

import (
	"context"

	"github.com/canonical/workflow-service/internal/types"
)

type ServiceInterface interface {
	ListTemplates(ctx context.Context) ([]*types.WorkflowTemplate, error)
	GetTemplate(ctx context.Context, id string) (*types.WorkflowTemplate, error)
}

type StorageInterface interface {
	ListTemplates(ctx context.Context) ([]*types.WorkflowTemplate, error)
	GetTemplateByID(ctx context.Context, id string) (*types.WorkflowTemplate, error)
}
