// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/internal/types"
	"github.com/canonical/workflow-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_access.go -source=./interfaces.go

func TestMiddleware_RequireActiveEmployee(t *testing.T) {
	employee := &types.Employee{ID: "emp-1", CompanyID: "comp-1", Status: types.EmployeeStatusActive}

	testCases := []struct {
		name           string
		identityID     string
		setupMocks     func(*MockEvaluatorInterface)
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "unauthenticated",
			identityID:     "",
			setupMocks:     func(*MockEvaluatorInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "denied",
			identityID: "identity-1",
			setupMocks: func(mockEvaluator *MockEvaluatorInterface) {
				mockEvaluator.EXPECT().ActiveEmployee(gomock.Any(), "identity-1").Return(nil, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "admitted",
			identityID: "identity-1",
			setupMocks: func(mockEvaluator *MockEvaluatorInterface) {
				mockEvaluator.EXPECT().ActiveEmployee(gomock.Any(), "identity-1").Return(employee, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockEvaluator := NewMockEvaluatorInterface(ctrl)
			tc.setupMocks(mockEvaluator)

			m := NewMiddleware(mockEvaluator, tracing.NewNoopTracer(), logging.NewNoopLogger())

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				actor, ok := EmployeeFromContext(r.Context())
				if !ok || actor.ID != employee.ID {
					t.Errorf("expected the resolved employee in the request context")
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/workflows", nil)
			if tc.identityID != "" {
				req = req.WithContext(authentication.WithUserID(req.Context(), tc.identityID))
			}

			rec := httptest.NewRecorder()
			m.RequireActiveEmployee(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
			if nextCalled != tc.expectNext {
				t.Errorf("expected next called %v, got %v", tc.expectNext, nextCalled)
			}
		})
	}
}

func TestMiddleware_RequireInactiveEmployee(t *testing.T) {
	testCases := []struct {
		name           string
		inactive       bool
		expectedStatus int
	}{
		{name: "admitted", inactive: true, expectedStatus: http.StatusOK},
		{name: "denied - already a member", inactive: false, expectedStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockEvaluator := NewMockEvaluatorInterface(ctrl)
			mockEvaluator.EXPECT().IsInactiveEmployee(gomock.Any(), "identity-1").Return(tc.inactive, nil)

			m := NewMiddleware(mockEvaluator, tracing.NewNoopTracer(), logging.NewNoopLogger())

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
			req := httptest.NewRequest(http.MethodPost, "/api/v0/companies", nil)
			req = req.WithContext(authentication.WithUserID(req.Context(), "identity-1"))

			rec := httptest.NewRecorder()
			m.RequireInactiveEmployee(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}
