// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"testing"

	"github.com/canonical/workflow-service/internal/types"
)

func TestInactiveEmployee(t *testing.T) {
	testCases := []struct {
		name        string
		memberships []*types.Employee
		expected    bool
	}{
		{
			name:        "no memberships at all",
			memberships: nil,
			expected:    true,
		},
		{
			name: "only a deactivated membership",
			memberships: []*types.Employee{
				{ID: "emp-1", Status: types.EmployeeStatusInactive},
			},
			expected: true,
		},
		{
			name: "active membership",
			memberships: []*types.Employee{
				{ID: "emp-1", Status: types.EmployeeStatusActive},
			},
			expected: false,
		},
		{
			name: "pending invite counts as membership",
			memberships: []*types.Employee{
				{ID: "emp-1", Status: types.EmployeeStatusInvited},
			},
			expected: false,
		},
		{
			name: "deactivated plus active",
			memberships: []*types.Employee{
				{ID: "emp-1", Status: types.EmployeeStatusInactive},
				{ID: "emp-2", Status: types.EmployeeStatusActive},
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InactiveEmployee(tc.memberships); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestActiveMembership(t *testing.T) {
	activeCompany := &types.Company{ID: "comp-1", Status: types.CompanyStatusActive}
	suspendedCompany := &types.Company{ID: "comp-2", Status: types.CompanyStatusInactive}
	companies := map[string]*types.Company{
		activeCompany.ID:    activeCompany,
		suspendedCompany.ID: suspendedCompany,
	}

	testCases := []struct {
		name        string
		memberships []*types.Employee
		expectedID  string
	}{
		{
			name: "active employee in active company",
			memberships: []*types.Employee{
				{ID: "emp-1", CompanyID: activeCompany.ID, Status: types.EmployeeStatusActive},
			},
			expectedID: "emp-1",
		},
		{
			name: "active employee in suspended company",
			memberships: []*types.Employee{
				{ID: "emp-1", CompanyID: suspendedCompany.ID, Status: types.EmployeeStatusActive},
			},
			expectedID: "",
		},
		{
			name: "invited employee in active company",
			memberships: []*types.Employee{
				{ID: "emp-1", CompanyID: activeCompany.ID, Status: types.EmployeeStatusInvited},
			},
			expectedID: "",
		},
		{
			name: "picks the membership in the active company",
			memberships: []*types.Employee{
				{ID: "emp-1", CompanyID: suspendedCompany.ID, Status: types.EmployeeStatusActive},
				{ID: "emp-2", CompanyID: activeCompany.ID, Status: types.EmployeeStatusActive},
			},
			expectedID: "emp-2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ActiveMembership(tc.memberships, companies)
			if tc.expectedID == "" {
				if got != nil {
					t.Errorf("expected no membership, got %q", got.ID)
				}
				return
			}
			if got == nil || got.ID != tc.expectedID {
				t.Errorf("expected membership %q, got %v", tc.expectedID, got)
			}
		})
	}
}

func TestAdminMembership(t *testing.T) {
	activeCompany := &types.Company{ID: "comp-1", Status: types.CompanyStatusActive}
	companies := map[string]*types.Company{activeCompany.ID: activeCompany}

	testCases := []struct {
		name        string
		memberships []*types.Employee
		expectedID  string
	}{
		{
			name: "active admin",
			memberships: []*types.Employee{
				{ID: "emp-1", CompanyID: activeCompany.ID, Status: types.EmployeeStatusActive, IsAdmin: true},
			},
			expectedID: "emp-1",
		},
		{
			name: "active non-admin",
			memberships: []*types.Employee{
				{ID: "emp-1", CompanyID: activeCompany.ID, Status: types.EmployeeStatusActive},
			},
			expectedID: "",
		},
		{
			name: "deactivated admin",
			memberships: []*types.Employee{
				{ID: "emp-1", CompanyID: activeCompany.ID, Status: types.EmployeeStatusInactive, IsAdmin: true},
			},
			expectedID: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AdminMembership(tc.memberships, companies)
			if tc.expectedID == "" {
				if got != nil {
					t.Errorf("expected no membership, got %q", got.ID)
				}
				return
			}
			if got == nil || got.ID != tc.expectedID {
				t.Errorf("expected membership %q, got %v", tc.expectedID, got)
			}
		})
	}
}
