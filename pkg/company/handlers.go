// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/storage"
	"github.com/canonical/workflow-service/pkg/access"
	"github.com/canonical/workflow-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	access   *access.Middleware
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, accessMiddleware *access.Middleware, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		access:   accessMiddleware,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// RegisterEndpoints mounts the company lifecycle. Onboarding routes are
// gated on the caller having no active membership yet, the rest on
// membership in an active company.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Group(func(r chi.Router) {
		r.Use(a.access.RequireInactiveEmployee)
		r.Post("/api/v0/companies", a.createCompany)
		r.Post("/api/v0/companies/employees/invites/accept", a.acceptInvite)
	})
	mux.Group(func(r chi.Router) {
		r.Use(a.access.RequireActiveAdmin)
		r.Post("/api/v0/companies/employees/invites", a.inviteEmployee)
		r.Delete("/api/v0/companies/employees/{id}", a.deactivateEmployee)
	})
	mux.Group(func(r chi.Router) {
		r.Use(a.access.RequireActiveEmployee)
		r.Get("/api/v0/companies/employees", a.listEmployees)
	})
}

func (a *API) createCompany(w http.ResponseWriter, r *http.Request) {
	identityID, _ := authentication.GetUserID(r.Context())

	req := new(CreateCompanyRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	c, admin, err := a.service.CreateCompany(r.Context(), identityID, req)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, map[string]any{
		"company":  c,
		"employee": admin,
	})
}

func (a *API) inviteEmployee(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	req := new(InviteEmployeeRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	invited, err := a.service.InviteEmployee(r.Context(), actor, req)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, invited)
}

func (a *API) acceptInvite(w http.ResponseWriter, r *http.Request) {
	identityID, _ := authentication.GetUserID(r.Context())

	req := new(AcceptInviteRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	e, err := a.service.AcceptInvite(r.Context(), identityID, req.Token)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, e)
}

func (a *API) listEmployees(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	employees, err := a.service.ListEmployees(r.Context(), actor)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, employees)
}

func (a *API) deactivateEmployee(w http.ResponseWriter, r *http.Request) {
	actor, _ := access.EmployeeFromContext(r.Context())

	if err := a.service.DeactivateEmployee(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		a.errorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateKey):
		status = http.StatusConflict
	case errors.Is(err, storage.ErrForeignKeyViolation):
		status = http.StatusBadRequest
	default:
		a.logger.Errorf("request failed: %v", err)
	}

	a.jsonResponse(w, status, map[string]string{"error": err.Error()})
}
