// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package duel

import (
	"math/rand"
	"sync"
	"time"

	ulid "github.com/oklog/ulid/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/duelarena/duel-core/pkg/envelope"
	"github.com/duelarena/duel-core/pkg/models"
)

// Registry owns the set of in-flight duels. Voting duels live in a locked
// map; resolved duels move into a TTL cache whose expiry is the grace delay,
// so late outcome reads keep working until eviction. A duel is never evicted
// while it is still voting.
type Registry struct {
	mu     sync.Mutex
	voting map[string]*models.Duel

	resolved *gocache.Cache

	entropyMu sync.Mutex
	entropy   *ulid.MonotonicEntropy
}

func NewRegistry(removeDelay time.Duration) *Registry {
	return &Registry{
		voting:   make(map[string]*models.Duel),
		resolved: gocache.New(removeDelay, removeDelay),
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// newDuelID generates a collision-free duel identifier. ULIDs combine a
// millisecond timestamp with monotonic random entropy, the entropy source is
// not safe for concurrent use so it is guarded.
func (r *Registry) newDuelID(now time.Time) string {
	r.entropyMu.Lock()
	defer r.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(now), r.entropy).String()
}

// Create stores a new duel in voting state with an empty vote map.
func (r *Registry) Create(scope *envelope.Scope, a, b models.PlayerSnapshot) *models.Duel {
	now := time.Now()
	d := &models.Duel{
		DuelID:    r.newDuelID(now),
		Players:   [2]models.PlayerSnapshot{a, b},
		Votes:     make(map[string]models.Choice, 2),
		Status:    models.DuelStatusVoting,
		CreatedAt: now,
	}

	r.mu.Lock()
	r.voting[d.DuelID] = d
	r.mu.Unlock()

	scope.SetAttributes(envelope.DuelIDTag, d.DuelID)
	scope.SetAttributes(envelope.ParticipantsTag, []string{a.UserID, b.UserID})
	scope.Log.WithField("duelID", d.DuelID).Info("duel created")

	return d.Copy()
}

// SubmitVote records or overwrites the choice of a participant. Overwriting
// is allowed while the duel is still voting, a player may change their mind
// until the peer's vote closes the duel. Returns whether both participants
// now have a recorded choice.
func (r *Registry) SubmitVote(scope *envelope.Scope, duelID, userID string, choice models.Choice) (bothVoted bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.voting[duelID]
	if !ok {
		if _, resolved := r.resolved.Get(duelID); resolved {
			return false, models.ErrDuelAlreadyResolved
		}

		return false, models.ErrDuelNotFound
	}

	if !d.HasParticipant(userID) {
		return false, models.ErrUserNotInDuel
	}

	d.Votes[userID] = choice
	scope.Log.WithField("duelID", duelID).WithField("userID", userID).Info("vote recorded")

	return d.BothVoted(), nil
}

// Resolve transitions a duel to resolved exactly once and returns its
// outcome. A second call, for example when the vote-completion path races
// the timeout sweep, returns the previously computed outcome unchanged with
// resolvedNow false, so a reward can never be granted twice.
func (r *Registry) Resolve(scope *envelope.Scope, duelID string) (outcome models.Outcome, resolvedNow bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.voting[duelID]
	if !ok {
		if cached, resolved := r.resolved.Get(duelID); resolved {
			return *cached.(*models.Duel).Outcome, false, nil
		}

		return models.Outcome{}, false, models.ErrDuelNotFound
	}

	choiceA := choicePtr(d, d.Players[0].UserID)
	choiceB := choicePtr(d, d.Players[1].UserID)
	outcome = ResolveChoices(choiceA, choiceB)

	d.Status = models.DuelStatusResolved
	d.Outcome = &outcome
	d.ResolvedAt = time.Now()

	delete(r.voting, duelID)
	r.resolved.SetDefault(duelID, d)

	scope.SetAttributes(envelope.OutcomeTag, string(outcome.Tag))
	scope.Log.WithField("duelID", duelID).WithField("outcome", outcome.Tag).Info("duel resolved")

	return outcome, true, nil
}

func choicePtr(d *models.Duel, userID string) *models.Choice {
	if c, ok := d.Votes[userID]; ok {
		return &c
	}

	return nil
}

// Get returns a copy of a duel, voting or resolved. Resolved duels are
// readable until the grace delay expires.
func (r *Registry) Get(duelID string) (*models.Duel, bool) {
	r.mu.Lock()
	if d, ok := r.voting[duelID]; ok {
		defer r.mu.Unlock()

		return d.Copy(), true
	}
	r.mu.Unlock()

	if cached, ok := r.resolved.Get(duelID); ok {
		return cached.(*models.Duel).Copy(), true
	}

	return nil, false
}

// Remove evicts a resolved duel. Voting duels are never removed, the state
// machine only exits through Resolve.
func (r *Registry) Remove(duelID string) {
	r.resolved.Delete(duelID)
}

// ExpiredVoting returns the ids of duels still in voting whose age exceeds
// the vote time limit. The timeout sweep feeds these to Resolve.
func (r *Registry) ExpiredVoting(limit time.Duration) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-limit)
	ids := make([]string, 0)
	for id, d := range r.voting {
		if d.CreatedAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}

	return ids
}

// VotingCount returns the number of duels currently collecting votes.
func (r *Registry) VotingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.voting)
}
