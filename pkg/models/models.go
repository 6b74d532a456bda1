// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package models holds the data objects shared by the queue, registry and
// coordinator packages.
package models

import (
	"reflect"
	"time"

	"github.com/mitchellh/copystructure"
)

func init() {
	// copystructure cannot walk time.Time's unexported fields; it is a value
	// type, so copying by assignment is enough.
	copystructure.Copiers[reflect.TypeOf(time.Time{})] = func(v interface{}) (interface{}, error) {
		return v.(time.Time), nil
	}
}

// Choice is a hidden vote a duel participant casts against their opponent.
type Choice string

const (
	ChoiceLike      Choice = "like"
	ChoiceSuperLike Choice = "super_like"
	ChoiceSkip      Choice = "skip"
)

// IsValid reports whether c is one of the three castable choices.
func (c Choice) IsValid() bool {
	switch c {
	case ChoiceLike, ChoiceSuperLike, ChoiceSkip:
		return true
	}

	return false
}

// OutcomeTag classifies how a duel ended.
type OutcomeTag string

const (
	OutcomeMatch   OutcomeTag = "match"
	OutcomeNoMatch OutcomeTag = "no_match"
	OutcomeTimeout OutcomeTag = "timeout"
)

// DuelStatus is the duel state machine: voting is initial, resolved is
// terminal, and the transition happens exactly once.
type DuelStatus string

const (
	DuelStatusVoting   DuelStatus = "voting"
	DuelStatusResolved DuelStatus = "resolved"
)

// PlayerSnapshot is the profile data captured when a player enters the
// queue. It is frozen for the lifetime of the entry and any duel made from it.
type PlayerSnapshot struct {
	UserID string `json:"user_id" x-nullable:"false"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Level  int    `json:"level"`
}

// QueueEntry is one waiting player in the match queue.
type QueueEntry struct {
	PlayerSnapshot
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Outcome is the single collective result of a duel.
type Outcome struct {
	Tag     OutcomeTag `json:"tag"`
	Message string     `json:"message"`
	Reward  int        `json:"reward"`
	Winner  string     `json:"winner"`
}

// Duel is a two-party voting session.
type Duel struct {
	DuelID    string            `json:"duel_id" x-nullable:"false"`
	Players   [2]PlayerSnapshot `json:"players"`
	Votes     map[string]Choice `json:"votes"`
	Status    DuelStatus        `json:"status"`
	Outcome   *Outcome          `json:"outcome,omitempty"`
	CreatedAt time.Time         `json:"created_at"`

	// ResolvedAt is zero while Status is voting.
	ResolvedAt time.Time `json:"resolved_at,omitempty"`
}

// HasParticipant reports whether userID is one of the duel's two players.
func (d *Duel) HasParticipant(userID string) bool {
	return d.Players[0].UserID == userID || d.Players[1].UserID == userID
}

// Opponent returns the snapshot of the other participant.
func (d *Duel) Opponent(userID string) (PlayerSnapshot, bool) {
	switch userID {
	case d.Players[0].UserID:
		return d.Players[1], true
	case d.Players[1].UserID:
		return d.Players[0], true
	}

	return PlayerSnapshot{}, false
}

// ChoiceOf returns the recorded choice for userID, absent when the player
// has not voted.
func (d *Duel) ChoiceOf(userID string) (Choice, bool) {
	c, ok := d.Votes[userID]

	return c, ok
}

// BothVoted is true exactly when both participants have a recorded choice.
func (d *Duel) BothVoted() bool {
	return len(d.Votes) == 2
}

// Copy returns a deep copy of the duel so callers can read it without
// holding the registry lock.
func (d *Duel) Copy() *Duel {
	copied, err := copystructure.Copy(d)
	if err != nil {
		duplicate := *d
		duplicate.Votes = make(map[string]Choice, len(d.Votes))
		for k, v := range d.Votes {
			duplicate.Votes[k] = v
		}

		return &duplicate
	}

	return copied.(*Duel)
}

// FinishedPlayer is one participant's final line in a finished-duel record.
type FinishedPlayer struct {
	PlayerSnapshot
	Choice Choice `json:"choice,omitempty"`
	Reward int    `json:"reward"`
}

// FinishedDuel is the persisted shape handed to the storage collaborator
// once a duel resolves.
type FinishedDuel struct {
	DuelID          string            `json:"duel_id"`
	Players         [2]FinishedPlayer `json:"players"`
	Outcome         Outcome           `json:"outcome"`
	DurationSeconds int               `json:"duration_seconds"`
	CreatedAt       time.Time         `json:"created_at"`
	ResolvedAt      time.Time         `json:"resolved_at"`
}
