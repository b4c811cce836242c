// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"context"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/mail"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/tracing"
)

var _ DispatcherInterface = (*Dispatcher)(nil)

type Dispatcher struct {
	mail mail.MailClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewDispatcher(
	mailClient mail.MailClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Dispatcher {
	return &Dispatcher{
		mail:    mailClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Dispatch mails every recipient of the event. It is called after the
// owning mutation has been persisted; a failed send must not undo it, so
// errors are only logged.
func (d *Dispatcher) Dispatch(ctx context.Context, e Event) {
	ctx, span := d.tracer.Start(ctx, "notify.Dispatcher.Dispatch")
	defer span.End()

	subject := e.Subject()
	for _, mc := range BuildContexts(e) {
		if mc.RecipientEmail == "" {
			continue
		}
		if err := d.mail.Send(ctx, mc.RecipientEmail, subject, mc.Body()); err != nil {
			d.logger.Errorf("failed to send %s notification to %s: %v", e.Kind, mc.RecipientEmail, err)
		}
	}
}
