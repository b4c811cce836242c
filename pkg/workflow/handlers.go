// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/storage"
	"github.com/canonical/workflow-service/pkg/access"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/workflows", a.createWorkflow)
	mux.Get("/api/v0/workflows", a.listWorkflows)
	mux.Get("/api/v0/workflows/{id}", a.getWorkflow)
	mux.Patch("/api/v0/workflows/{id}", a.updateWorkflow)
	mux.Post("/api/v0/workflows/{id}/accesses", a.createAccess)
	mux.Patch("/api/v0/accesses/{id}", a.updateAccess)
	mux.Patch("/api/v0/tasks/{id}", a.updateTask)
}

func (a *API) createWorkflow(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	req := new(CreateWorkflowRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	detail, err := a.service.CreateWorkflow(r.Context(), actor, req)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, detail)
}

func (a *API) listWorkflows(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	workflows, err := a.service.ListWorkflows(r.Context(), actor)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, workflows)
}

func (a *API) getWorkflow(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	detail, err := a.service.GetWorkflow(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, detail)
}

func (a *API) updateWorkflow(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	req := new(UpdateWorkflowRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}

	updated, err := a.service.UpdateWorkflow(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, updated)
}

func (a *API) updateTask(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	req := new(UpdateTaskRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	updated, err := a.service.UpdateTask(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, updated)
}

func (a *API) createAccess(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	req := new(CreateAccessRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	grant, err := a.service.CreateAccess(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, grant)
}

func (a *API) updateAccess(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	req := new(UpdateAccessRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	updated, err := a.service.UpdateAccess(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, updated)
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) badRequest(w http.ResponseWriter, message string) {
	a.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": message})
}

func (a *API) errorResponse(w http.ResponseWriter, err error) {
	var validationErr *ValidationError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.Is(err, ErrDenied):
		status = http.StatusForbidden
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateKey):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		a.logger.Errorf("request failed: %v", err)
	}

	a.jsonResponse(w, status, map[string]string{"error": err.Error()})
}
