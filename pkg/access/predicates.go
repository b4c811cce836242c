// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"github.com/canonical/workflow-service/internal/types"
)

// The predicates below are pure functions of the membership and company
// rows attached to one authenticated identity. They never touch storage;
// the Evaluator loads the rows and applies them.

// InactiveEmployee reports whether the identity has no active or invited
// membership in any company. Gates join/create-company actions.
func InactiveEmployee(memberships []*types.Employee) bool {
	for _, m := range memberships {
		if m.Status == types.EmployeeStatusActive || m.Status == types.EmployeeStatusInvited {
			return false
		}
	}
	return true
}

// ActiveMembership returns the identity's active membership in an active
// company, or nil when there is none.
func ActiveMembership(memberships []*types.Employee, companies map[string]*types.Company) *types.Employee {
	for _, m := range memberships {
		if m.Status != types.EmployeeStatusActive {
			continue
		}
		if c, ok := companies[m.CompanyID]; ok && c.Status == types.CompanyStatusActive {
			return m
		}
	}
	return nil
}

// AdminMembership returns the identity's active admin membership in an
// active company, or nil. All three conditions are required.
func AdminMembership(memberships []*types.Employee, companies map[string]*types.Company) *types.Employee {
	for _, m := range memberships {
		if m.Status != types.EmployeeStatusActive || !m.IsAdmin {
			continue
		}
		if c, ok := companies[m.CompanyID]; ok && c.Status == types.CompanyStatusActive {
			return m
		}
	}
	return nil
}
