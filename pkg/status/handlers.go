// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/internal/version"
)

type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type API struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	err := json.NewEncoder(w).Encode(statusResponse{
		Status:  "ok",
		Version: version.Version,
	})
	if err != nil {
		a.logger.Errorf("failed to encode status response: %v", err)
	}
}
