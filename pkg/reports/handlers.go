// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package reports

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/storage"
	"github.com/canonical/workflow-service/pkg/access"
)

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/reports/ijl-employees", a.employeeTurnover)
	mux.Get("/api/v0/reports/employees/{id}", a.employeeActivity)
	mux.Get("/api/v0/reports/workflows/{id}", a.workflowProgress)
}

func (a *API) employeeTurnover(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	report, err := a.service.EmployeeTurnover(r.Context(), actor)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, report)
}

func (a *API) employeeActivity(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	report, err := a.service.EmployeeActivity(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, report)
}

func (a *API) workflowProgress(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	report, err := a.service.WorkflowProgress(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, report)
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, storage.ErrNotFound) {
		status = http.StatusNotFound
	} else {
		a.logger.Errorf("request failed: %v", err)
	}

	a.jsonResponse(w, status, map[string]string{"error": err.Error()})
}
