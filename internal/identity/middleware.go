// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/pkg/authentication"
)

// HeaderName carries the authenticated identity ID set by the fronting
// authentication proxy.
const HeaderName = "X-Authenticated-Identity-Id"

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware lifts the proxy identity header into the request context.
// Requests without the header stay anonymous; route guards reject them.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if identityID := r.Header.Get(HeaderName); identityID != "" {
			ctx = authentication.WithUserID(ctx, identityID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
