// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"sync"

	"github.com/duelarena/duel-core/pkg/coordinator"
	"github.com/duelarena/duel-core/pkg/envelope"
	"github.com/duelarena/duel-core/pkg/models"
	"github.com/duelarena/duel-core/pkg/presence"
)

// StubIdentityProvider serves profiles from a fixed map.
type StubIdentityProvider struct {
	Profiles map[string]models.PlayerSnapshot
}

func (s StubIdentityProvider) GetUserProfile(scope *envelope.Scope, userID string) (models.PlayerSnapshot, error) {
	profile, ok := s.Profiles[userID]
	if !ok {
		return models.PlayerSnapshot{}, models.ErrUserNotFound
	}
	return profile, nil
}

// RecordingSink captures every delivered event for assertions.
type RecordingSink struct {
	mu     sync.Mutex
	events []coordinator.Event
}

func (s *RecordingSink) Deliver(scope *envelope.Scope, handle presence.ConnectionHandle, event coordinator.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns a copy of everything delivered so far.
func (s *RecordingSink) Events() []coordinator.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]coordinator.Event, len(s.events))
	copy(out, s.events)
	return out
}

// EventsOfType filters delivered events by type.
func (s *RecordingSink) EventsOfType(eventType string) []coordinator.Event {
	var out []coordinator.Event
	for _, e := range s.Events() {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// MemoryDuelStore keeps finished-duel records in memory.
type MemoryDuelStore struct {
	mu      sync.Mutex
	records []models.FinishedDuel
}

func (s *MemoryDuelStore) SaveFinishedDuel(scope *envelope.Scope, record models.FinishedDuel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// Records returns a copy of everything saved so far.
func (s *MemoryDuelStore) Records() []models.FinishedDuel {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FinishedDuel, len(s.records))
	copy(out, s.records)
	return out
}
