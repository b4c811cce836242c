// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package templates

import (
	"context"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Service exposes the read-only template catalog.
type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	s StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: s,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListTemplates(ctx context.Context) ([]*types.WorkflowTemplate, error) {
	ctx, span := s.tracer.Start(ctx, "templates.Service.ListTemplates")
	defer span.End()

	return s.storage.ListTemplates(ctx)
}

func (s *Service) GetTemplate(ctx context.Context, id string) (*types.WorkflowTemplate, error) {
	ctx, span := s.tracer.Start(ctx, "templates.Service.GetTemplate")
	defer span.End()

	return s.storage.GetTemplateByID(ctx, id)
}
