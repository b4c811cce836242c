// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package templates

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/storage"
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
	mux.Get("/api/v0/templates", a.listTemplates)
	mux.Get("/api/v0/templates/{id}", a.getTemplate)
}

func (a *API) listTemplates(w http.ResponseWriter, r *http.Request) {
	ts, err := a.service.ListTemplates(r.Context())
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, ts)
}

func (a *API) getTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := a.service.GetTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, t)
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
