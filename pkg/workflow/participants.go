// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"github.com/canonical/workflow-service/internal/types"
)

// participantSet accumulates the distinct employees touched by a workflow
// mutation. An employee filling several roles gets one entry with the
// flags of every role merged onto it. Insertion order is preserved so
// notification order is deterministic.
type participantSet struct {
	order   []string
	members map[string]*types.Participant
}

func newParticipantSet() *participantSet {
	return &participantSet{
		members: make(map[string]*types.Participant),
	}
}

// get returns the employee's entry, creating it on first sight.
func (s *participantSet) get(e *types.Employee) *types.Participant {
	if p, ok := s.members[e.ID]; ok {
		return p
	}
	p := &types.Participant{Employee: e}
	s.members[e.ID] = p
	s.order = append(s.order, e.ID)
	return p
}

func (s *participantSet) list() []*types.Participant {
	participants := make([]*types.Participant, 0, len(s.order))
	for _, id := range s.order {
		participants = append(participants, s.members[id])
	}
	return participants
}
