// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"strings"
	"testing"

	"github.com/canonical/workflow-service/internal/types"
)

func TestBuildContextsWorkflowCreated(t *testing.T) {
	workflow := &types.Workflow{ID: "wf-1", Name: "Onboarding"}

	event := Event{
		Kind:     WorkflowCreated,
		Workflow: workflow,
		Participants: []*types.Participant{
			{
				Employee:  &types.Employee{Name: "Alice", Email: "alice@example.com"},
				IsCreator: true,
				TaskList:  []string{"Grant accounts"},
			},
			{
				Employee: &types.Employee{Name: "Bob", Email: "bob@example.com"},
				TaskList: []string{"Prepare laptop"},
			},
			{
				Employee:        &types.Employee{Name: "Carol", Email: "carol@example.com"},
				IsShared:        true,
				WritePermission: true,
			},
		},
	}

	contexts := BuildContexts(event)
	if len(contexts) != 3 {
		t.Fatalf("expected 3 contexts, got %d", len(contexts))
	}

	creator := contexts[0]
	if !creator.WritePermission {
		t.Errorf("the creator always has write permission")
	}
	if creator.IsUpdated {
		t.Errorf("a created workflow must not render as an update")
	}

	assignee := contexts[1]
	if assignee.WritePermission {
		t.Errorf("a plain assignee has no write permission")
	}
	if len(assignee.TaskList) != 1 || assignee.TaskList[0] != "Prepare laptop" {
		t.Errorf("unexpected task list %v", assignee.TaskList)
	}

	grantee := contexts[2]
	if !grantee.IsShared || !grantee.WritePermission {
		t.Errorf("a read-write grantee must be shared with write permission")
	}
}

func TestBuildContextsTaskAssigned(t *testing.T) {
	event := Event{
		Kind:     TaskAssigned,
		Workflow: &types.Workflow{ID: "wf-1", Name: "Onboarding"},
		Task:     &types.Task{ID: "task-1", Title: "Prepare laptop"},
		Assignee: &types.Employee{Name: "Bob", Email: "bob@example.com"},
		Updated:  true,
	}

	contexts := BuildContexts(event)
	if len(contexts) != 1 {
		t.Fatalf("expected 1 context, got %d", len(contexts))
	}
	if contexts[0].RecipientEmail != "bob@example.com" {
		t.Errorf("unexpected recipient %q", contexts[0].RecipientEmail)
	}
	if len(contexts[0].TaskList) != 1 || contexts[0].TaskList[0] != "Prepare laptop" {
		t.Errorf("unexpected task list %v", contexts[0].TaskList)
	}
}

func TestBuildContextsAccessGranted(t *testing.T) {
	testCases := []struct {
		name       string
		permission string
		wantWrite  bool
	}{
		{name: "read grant", permission: types.PermissionRead, wantWrite: false},
		{name: "read-write grant", permission: types.PermissionReadWrite, wantWrite: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := Event{
				Kind:     AccessGranted,
				Workflow: &types.Workflow{ID: "wf-1", Name: "Onboarding"},
				Access:   &types.WorkflowAccess{Permission: tc.permission},
				Grantee:  &types.Employee{Name: "Carol", Email: "carol@example.com"},
			}

			contexts := BuildContexts(event)
			if len(contexts) != 1 {
				t.Fatalf("expected 1 context, got %d", len(contexts))
			}
			if contexts[0].WritePermission != tc.wantWrite {
				t.Errorf("expected write permission %v, got %v", tc.wantWrite, contexts[0].WritePermission)
			}
			if !contexts[0].IsShared {
				t.Errorf("access grants always render as shared")
			}
		})
	}
}

func TestMailContextBody(t *testing.T) {
	body := MailContext{
		RecipientName: "Bob",
		WorkflowName:  "Onboarding",
		IsShared:      true,
		TaskList:      []string{"Prepare laptop"},
	}.Body()

	for _, want := range []string{"Hi Bob,", "Onboarding", "Prepare laptop", "You can view this workflow."} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}
