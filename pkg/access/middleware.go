// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"net/http"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/pkg/authentication"
)

// Middleware gates routes on the three membership predicates. A failed
// predicate rejects the request before any handler-side data access.
type Middleware struct {
	evaluator EvaluatorInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewMiddleware(evaluator EvaluatorInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		evaluator: evaluator,
		tracer:    tracer,
		logger:    logger,
	}
}

// RequireActiveEmployee admits active employees of active companies and
// stores the resolved employee in the request context.
func (m *Middleware) RequireActiveEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "access.Middleware.RequireActiveEmployee")
		defer span.End()

		identityID, ok := authentication.GetUserID(ctx)
		if !ok || identityID == "" {
			m.deny(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		employee, err := m.evaluator.ActiveEmployee(ctx, identityID)
		if err != nil {
			m.logger.Errorf("active-employee check failed: %v", err)
			m.deny(w, http.StatusInternalServerError, "internal error")
			return
		}
		if employee == nil {
			m.logger.Security().AuthzFailure(identityID, "active_employee")
			m.deny(w, http.StatusForbidden, "active employee required")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithEmployee(ctx, employee)))
	})
}

// RequireActiveAdmin admits active admins of active companies.
func (m *Middleware) RequireActiveAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "access.Middleware.RequireActiveAdmin")
		defer span.End()

		identityID, ok := authentication.GetUserID(ctx)
		if !ok || identityID == "" {
			m.deny(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		admin, err := m.evaluator.AdminEmployee(ctx, identityID)
		if err != nil {
			m.logger.Errorf("active-admin check failed: %v", err)
			m.deny(w, http.StatusInternalServerError, "internal error")
			return
		}
		if admin == nil {
			m.logger.Security().AuthzFailure(identityID, "active_admin")
			m.deny(w, http.StatusForbidden, "company admin required")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithEmployee(ctx, admin)))
	})
}

// RequireInactiveEmployee admits identities with no active or invited
// membership anywhere.
func (m *Middleware) RequireInactiveEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "access.Middleware.RequireInactiveEmployee")
		defer span.End()

		identityID, ok := authentication.GetUserID(ctx)
		if !ok || identityID == "" {
			m.deny(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		inactive, err := m.evaluator.IsInactiveEmployee(ctx, identityID)
		if err != nil {
			m.logger.Errorf("inactive-employee check failed: %v", err)
			m.deny(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !inactive {
			m.logger.Security().AuthzFailure(identityID, "inactive_employee")
			m.deny(w, http.StatusForbidden, "identity already belongs to a company")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) deny(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
