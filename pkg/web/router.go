// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/workflow-service/internal/db"
	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/pkg/access"
	"github.com/canonical/workflow-service/pkg/company"
	"github.com/canonical/workflow-service/pkg/metrics"
	"github.com/canonical/workflow-service/pkg/reports"
	"github.com/canonical/workflow-service/pkg/status"
	"github.com/canonical/workflow-service/pkg/templates"
	"github.com/canonical/workflow-service/pkg/workflow"
)

func NewRouter(
	workflowAPI *workflow.API,
	templatesAPI *templates.API,
	companyAPI *company.API,
	reportsAPI *reports.API,
	accessMiddleware *access.Middleware,
	authenticate func(http.Handler) http.Handler,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authenticate)

		// onboarding mutations commit or roll back as one transaction
		r.Group(func(r chi.Router) {
			r.Use(db.TransactionMiddleware(dbClient, logger))
			companyAPI.RegisterEndpoints(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(accessMiddleware.RequireActiveEmployee)
			workflowAPI.RegisterEndpoints(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(accessMiddleware.RequireActiveAdmin)
			templatesAPI.RegisterEndpoints(r)
			reportsAPI.RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
