// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/canonical/workflow-service/internal/logging"
)

type API struct {
	logger logging.LoggerInterface
}

func NewAPI(logger logging.LoggerInterface) *API {
	return &API{
		logger: logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/metrics", promhttp.Handler().ServeHTTP)
}
