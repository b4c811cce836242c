// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"fmt"
	"strings"

	"github.com/canonical/workflow-service/internal/types"
)

type Kind string

const (
	WorkflowCreated Kind = "workflow_created"
	WorkflowUpdated Kind = "workflow_updated"
	TaskAssigned    Kind = "task_assigned"
	AccessGranted   Kind = "access_granted"
)

// Event is a tagged workflow mutation to be announced by mail. Which
// fields are set depends on the kind: workflow events carry the full
// participant list, task and access events a single recipient.
type Event struct {
	Kind     Kind
	Workflow *types.Workflow

	Participants []*types.Participant

	Task     *types.Task
	Assignee *types.Employee

	Access  *types.WorkflowAccess
	Grantee *types.Employee

	Updated bool
}

// MailContext is the rendered per-recipient view of an event.
type MailContext struct {
	RecipientName   string
	RecipientEmail  string
	WorkflowName    string
	WritePermission bool
	IsCreator       bool
	IsShared        bool
	IsUpdated       bool
	TaskList        []string
}

// BuildContexts renders one MailContext per recipient for the event.
// Each event kind has its own builder; there is no dispatch-by-caller-type.
func BuildContexts(e Event) []MailContext {
	switch e.Kind {
	case WorkflowCreated, WorkflowUpdated:
		return workflowContexts(e)
	case TaskAssigned:
		return taskAssignedContexts(e)
	case AccessGranted:
		return accessGrantedContexts(e)
	}
	return nil
}

func workflowContexts(e Event) []MailContext {
	contexts := make([]MailContext, 0, len(e.Participants))
	for _, p := range e.Participants {
		contexts = append(contexts, MailContext{
			RecipientName:  p.Employee.Name,
			RecipientEmail: p.Employee.Email,
			WorkflowName:   e.Workflow.Name,
			// the creator can always edit, grants only with read-write
			WritePermission: p.WritePermission || p.IsCreator,
			IsCreator:       p.IsCreator,
			IsShared:        p.IsShared,
			IsUpdated:       e.Updated,
			TaskList:        p.TaskList,
		})
	}
	return contexts
}

func taskAssignedContexts(e Event) []MailContext {
	return []MailContext{{
		RecipientName:  e.Assignee.Name,
		RecipientEmail: e.Assignee.Email,
		WorkflowName:   e.Workflow.Name,
		IsUpdated:      e.Updated,
		TaskList:       []string{e.Task.Title},
	}}
}

func accessGrantedContexts(e Event) []MailContext {
	return []MailContext{{
		RecipientName:   e.Grantee.Name,
		RecipientEmail:  e.Grantee.Email,
		WorkflowName:    e.Workflow.Name,
		WritePermission: e.Access.Permission == types.PermissionReadWrite,
		IsShared:        true,
		IsUpdated:       e.Updated,
	}}
}

// Subject renders the mail subject for the event kind.
func (e Event) Subject() string {
	switch e.Kind {
	case WorkflowCreated:
		return fmt.Sprintf("Workflow %q created", e.Workflow.Name)
	case WorkflowUpdated:
		return fmt.Sprintf("Workflow %q updated", e.Workflow.Name)
	case TaskAssigned:
		return fmt.Sprintf("Task %q in workflow %q", e.Task.Title, e.Workflow.Name)
	case AccessGranted:
		return fmt.Sprintf("Workflow %q shared with you", e.Workflow.Name)
	}
	return ""
}

// Body renders a plain-text mail body for one recipient.
func (c MailContext) Body() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", c.RecipientName)

	switch {
	case c.IsCreator && !c.IsUpdated:
		fmt.Fprintf(&b, "You created the workflow %q.\n", c.WorkflowName)
	case c.IsUpdated:
		fmt.Fprintf(&b, "The workflow %q was updated.\n", c.WorkflowName)
	default:
		fmt.Fprintf(&b, "You were added to the workflow %q.\n", c.WorkflowName)
	}

	if len(c.TaskList) > 0 {
		b.WriteString("\nTasks assigned to you:\n")
		for _, title := range c.TaskList {
			fmt.Fprintf(&b, "  - %s\n", title)
		}
	}

	if c.IsShared {
		if c.WritePermission {
			b.WriteString("\nYou can view and edit this workflow.\n")
		} else {
			b.WriteString("\nYou can view this workflow.\n")
		}
	}

	return b.String()
}
