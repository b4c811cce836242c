// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/monitoring"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package notify -destination ./mock_mail.go -source=../../internal/mail/interfaces.go

func newTestDispatcher(t *testing.T) (*Dispatcher, *MockMailClientInterface) {
	ctrl := gomock.NewController(t)
	mockMail := NewMockMailClientInterface(ctrl)

	d := NewDispatcher(
		mockMail,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return d, mockMail
}

func TestDispatcher_Dispatch(t *testing.T) {
	event := Event{
		Kind:     WorkflowCreated,
		Workflow: &types.Workflow{ID: "wf-1", Name: "Onboarding"},
		Participants: []*types.Participant{
			{Employee: &types.Employee{Name: "Alice", Email: "alice@example.com"}, IsCreator: true},
			{Employee: &types.Employee{Name: "Ghost", Email: ""}},
			{Employee: &types.Employee{Name: "Bob", Email: "bob@example.com"}},
		},
	}

	d, mockMail := newTestDispatcher(t)

	// recipients without an address are skipped
	mockMail.EXPECT().Send(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Any()).Return(nil)
	mockMail.EXPECT().Send(gomock.Any(), "bob@example.com", gomock.Any(), gomock.Any()).Return(nil)

	d.Dispatch(context.Background(), event)
}

func TestDispatcher_DispatchKeepsGoingOnSendFailure(t *testing.T) {
	event := Event{
		Kind:     WorkflowUpdated,
		Workflow: &types.Workflow{ID: "wf-1", Name: "Onboarding"},
		Participants: []*types.Participant{
			{Employee: &types.Employee{Name: "Alice", Email: "alice@example.com"}, IsCreator: true},
			{Employee: &types.Employee{Name: "Bob", Email: "bob@example.com"}},
		},
		Updated: true,
	}

	d, mockMail := newTestDispatcher(t)

	mockMail.EXPECT().Send(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Any()).
		Return(errors.New("smtp unreachable"))
	mockMail.EXPECT().Send(gomock.Any(), "bob@example.com", gomock.Any(), gomock.Any()).Return(nil)

	d.Dispatch(context.Background(), event)
}
