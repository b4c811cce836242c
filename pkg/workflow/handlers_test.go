// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/storage"
	"github.com/canonical/workflow-service/internal/types"
	"github.com/canonical/workflow-service/pkg/access"
)

func newTestAPI(t *testing.T) (*API, *MockServiceInterface, *chi.Mux) {
	ctrl := gomock.NewController(t)
	mockService := NewMockServiceInterface(ctrl)

	api := NewAPI(mockService, logging.NewNoopLogger())
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	return api, mockService, mux
}

func doRequest(mux *chi.Mux, method, target, body string) *httptest.ResponseRecorder {
	actor := &types.Employee{ID: "emp-1", CompanyID: "comp-1"}

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req = req.WithContext(access.WithEmployee(req.Context(), actor))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAPI_GetWorkflowStatusMapping(t *testing.T) {
	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "denied", serviceErr: ErrDenied, expectedStatus: http.StatusForbidden},
		{name: "not found", serviceErr: storage.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "success", serviceErr: nil, expectedStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, mux := newTestAPI(t)

			var detail *types.WorkflowDetail
			if tc.serviceErr == nil {
				detail = &types.WorkflowDetail{Workflow: types.Workflow{ID: "wf-1"}}
			}
			mockService.EXPECT().GetWorkflow(gomock.Any(), gomock.Any(), "wf-1").Return(detail, tc.serviceErr)

			rec := doRequest(mux, http.MethodGet, "/api/v0/workflows/wf-1", "")
			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}

func TestAPI_CreateWorkflowStatusMapping(t *testing.T) {
	validBody := `{
		"template_id": "0190b8d8-0000-7000-8000-000000000001",
		"name": "Onboarding",
		"start_at": "2026-09-01T09:00:00Z",
		"tasks": [],
		"accessors": []
	}`

	testCases := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "created", body: validBody, expectedStatus: http.StatusCreated},
		{name: "malformed body", body: "{", expectedStatus: http.StatusBadRequest},
		{name: "missing name", body: `{"template_id": "0190b8d8-0000-7000-8000-000000000001", "start_at": "2026-09-01T09:00:00Z"}`, expectedStatus: http.StatusBadRequest},
		{name: "validation error", body: validBody, serviceErr: NewValidationError("Employee must be of the same company"), expectedStatus: http.StatusBadRequest},
		{name: "duplicate", body: validBody, serviceErr: storage.ErrDuplicateKey, expectedStatus: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, mux := newTestAPI(t)

			if tc.expectedStatus == http.StatusCreated || tc.serviceErr != nil {
				var detail *types.WorkflowDetail
				if tc.serviceErr == nil {
					detail = &types.WorkflowDetail{Workflow: types.Workflow{ID: "wf-1"}}
				}
				mockService.EXPECT().CreateWorkflow(gomock.Any(), gomock.Any(), gomock.Any()).Return(detail, tc.serviceErr)
			}

			rec := doRequest(mux, http.MethodPost, "/api/v0/workflows", tc.body)
			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPI_UpdateAccessRejectsUnknownPermission(t *testing.T) {
	_, _, mux := newTestAPI(t)

	rec := doRequest(mux, http.MethodPatch, "/api/v0/accesses/access-1", `{"permission": "owner"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
