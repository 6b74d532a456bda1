// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package coordinator glues the presence registry, match queue, matcher and
// duel registry together behind the public duel operations, and emits the
// outward events the transport collaborator pushes to clients.
package coordinator

import (
	"context"
	"time"

	"github.com/elliotchance/pie/v2"

	"github.com/duelarena/duel-core/pkg/config"
	"github.com/duelarena/duel-core/pkg/constants"
	"github.com/duelarena/duel-core/pkg/duel"
	"github.com/duelarena/duel-core/pkg/envelope"
	"github.com/duelarena/duel-core/pkg/metrics"
	"github.com/duelarena/duel-core/pkg/models"
	"github.com/duelarena/duel-core/pkg/presence"
	"github.com/duelarena/duel-core/pkg/queue"
)

// Coordinator is constructed once at process start and lives for the
// process lifetime. It exclusively owns the match queue and duel registry;
// collaborators are injected so tests can run independent instances.
type Coordinator struct {
	cfg      *config.Config
	queue    *queue.MatchQueue
	matcher  queue.Matcher
	duels    *duel.Registry
	presence *presence.Registry
	identity IdentityProvider
	store    FinishedDuelStore
	sink     EventSink
	metrics  metrics.DuelMetrics

	voteTimeLimit time.Duration
	removeDelay   time.Duration
}

func New(
	cfg *config.Config,
	presenceRegistry *presence.Registry,
	identity IdentityProvider,
	store FinishedDuelStore,
	sink EventSink,
	duelMetrics metrics.DuelMetrics,
) *Coordinator {
	removeDelay := time.Duration(cfg.RemoveDelaySecond) * time.Second

	return &Coordinator{
		cfg:           cfg,
		queue:         queue.NewMatchQueue(cfg.QueueWaitBaseSecond, cfg.QueueWaitPerPositionSecond),
		matcher:       queue.NewMatcher(cfg.RatingWindow),
		duels:         duel.NewRegistry(removeDelay),
		presence:      presenceRegistry,
		identity:      identity,
		store:         store,
		sink:          sink,
		metrics:       duelMetrics,
		voteTimeLimit: time.Duration(cfg.VoteTimeLimitSecond) * time.Second,
		removeDelay:   removeDelay,
	}
}

// JoinResult is what the transport returns to a joining client. DuelID is
// set when the join produced an immediate pairing, in which case Position
// is 0 and the duel_found event already went out.
type JoinResult struct {
	Position             int    `json:"position"`
	EstimatedWaitSeconds int    `json:"estimated_wait_seconds"`
	OnlineCount          int    `json:"online_count"`
	DuelID               string `json:"duel_id,omitempty"`
}

// JoinQueue enqueues an online user and immediately re-evaluates the queue
// for a compatible pair. The presence handshake must have completed before
// this is called, an offline user cannot be matched.
func (c *Coordinator) JoinQueue(rootScope *envelope.Scope, userID string) (JoinResult, error) {
	scope := rootScope.NewChildScope("Coordinator.JoinQueue")
	defer scope.Finish()

	if _, online := c.presence.Lookup(userID); !online {
		return JoinResult{}, models.ErrUserOffline
	}

	profile, err := c.identity.GetUserProfile(scope, userID)
	if err != nil {
		return JoinResult{}, err
	}

	c.queue.Enqueue(models.QueueEntry{
		PlayerSnapshot: profile,
		EnqueuedAt:     time.Now(),
	})
	c.metrics.SetQueueDepth(c.queue.Len())
	c.metrics.SetOnlinePlayers(c.presence.OnlineCount())
	scope.SetAttributes(envelope.QueueDepthTag, c.queue.Len())

	result := JoinResult{OnlineCount: c.presence.OnlineCount()}

	anchor, candidate, found := c.matcher.FindPair(c.queue)
	if found {
		d := c.duels.Create(scope, anchor.PlayerSnapshot, candidate.PlayerSnapshot)
		c.metrics.AddDuelCreated()
		c.metrics.SetQueueDepth(c.queue.Len())
		c.notifyDuelFound(scope, d)

		if d.HasParticipant(userID) {
			result.DuelID = d.DuelID

			return result, nil
		}
	}

	position := c.queue.PositionOf(userID)
	result.Position = position
	result.EstimatedWaitSeconds = c.queue.EstimatedWaitSeconds(position)

	c.notify(scope, userID, Event{
		Type:   constants.EventQueuePositionUpdated,
		UserID: userID,
		Payload: QueuePositionPayload{
			Position:             position,
			EstimatedWaitSeconds: result.EstimatedWaitSeconds,
			OnlineCount:          result.OnlineCount,
		},
	})

	return result, nil
}

// LeaveQueue removes the user from the waiting pool. Idempotent.
func (c *Coordinator) LeaveQueue(rootScope *envelope.Scope, userID string) {
	scope := rootScope.NewChildScope("Coordinator.LeaveQueue")
	defer scope.Finish()

	c.queue.Dequeue(userID)
	c.metrics.SetQueueDepth(c.queue.Len())
}

// SubmitVote records a participant's choice. The peer gets an immediate
// opponent_voted notification; once both choices are in, the duel resolves
// on the spot and both participants receive the duel_result event.
func (c *Coordinator) SubmitVote(rootScope *envelope.Scope, duelID, userID string, choice models.Choice) (bothVoted bool, err error) {
	scope := rootScope.NewChildScope("Coordinator.SubmitVote")
	defer scope.Finish()

	if !choice.IsValid() {
		return false, models.ErrInvalidChoice
	}

	bothVoted, err = c.duels.SubmitVote(scope, duelID, userID, choice)
	if err != nil {
		return false, err
	}

	if d, ok := c.duels.Get(duelID); ok {
		if opponent, exists := d.Opponent(userID); exists {
			c.notify(scope, opponent.UserID, Event{
				Type:   constants.EventOpponentVoted,
				UserID: opponent.UserID,
				Payload: OpponentVotedPayload{
					DuelID: duelID,
					Choice: choice,
				},
			})
		}
	}

	if bothVoted {
		c.finishDuel(scope, duelID)
	}

	return bothVoted, nil
}

// Disconnect drops the user from the queue and marks them offline. A duel
// the user was mid-voting in is left alone, the timeout sweep resolves it.
func (c *Coordinator) Disconnect(rootScope *envelope.Scope, userID string) {
	scope := rootScope.NewChildScope("Coordinator.Disconnect")
	defer scope.Finish()

	c.queue.Dequeue(userID)
	c.presence.SetOffline(userID)
	c.metrics.SetQueueDepth(c.queue.Len())
	c.metrics.SetOnlinePlayers(c.presence.OnlineCount())
}

// SweepTimeouts force-resolves every voting duel older than the vote time
// limit and returns how many it resolved. It is safe to race with the
// vote-triggered resolution path because Resolve is idempotent.
func (c *Coordinator) SweepTimeouts(rootScope *envelope.Scope) int {
	scope := rootScope.NewChildScope("Coordinator.SweepTimeouts")
	defer scope.Finish()

	expired := c.duels.ExpiredVoting(c.voteTimeLimit)
	resolved := 0
	for _, duelID := range expired {
		if c.finishDuel(scope, duelID) {
			resolved++
		}
	}

	if resolved > 0 {
		scope.Log.WithField("count", resolved).Info("timeout sweep resolved duels")
	}

	return resolved
}

// GetDuel returns a copy of a duel, readable through the post-resolution
// grace window.
func (c *Coordinator) GetDuel(duelID string) (*models.Duel, bool) {
	return c.duels.Get(duelID)
}

// QueueSnapshot returns a read-only copy of the waiting pool.
func (c *Coordinator) QueueSnapshot() []models.QueueEntry {
	return c.queue.Snapshot()
}

// QueueStats returns rating statistics over the waiting pool.
func (c *Coordinator) QueueStats() queue.Stats {
	return c.queue.Stats()
}

// finishDuel resolves a duel, persists the finished record, notifies both
// participants and schedules eviction after the grace delay. Returns false
// when another path already resolved the duel; the loser of that race emits
// nothing, so clients see a single result.
func (c *Coordinator) finishDuel(scope *envelope.Scope, duelID string) bool {
	outcome, resolvedNow, err := c.duels.Resolve(scope, duelID)
	if err != nil {
		scope.Log.WithField("duelID", duelID).WithError(err).Warn("resolve failed")

		return false
	}
	if !resolvedNow {
		return false
	}

	d, ok := c.duels.Get(duelID)
	if !ok {
		return false
	}

	c.metrics.AddDuelResolved(string(outcome.Tag))
	c.metrics.AddDuelResolveElapsedTimeMs(d.ResolvedAt.Sub(d.CreatedAt))

	if err := c.store.SaveFinishedDuel(scope, buildFinishedDuel(d)); err != nil {
		scope.Log.WithField("duelID", duelID).WithError(err).Error("failed to persist finished duel")
	}

	for _, p := range d.Players {
		c.notify(scope, p.UserID, Event{
			Type:   constants.EventDuelResult,
			UserID: p.UserID,
			Payload: DuelResultPayload{
				DuelID:  duelID,
				Outcome: outcome,
				Choices: d.Votes,
			},
		})
	}

	participants := pie.Map(d.Players[:], func(p models.PlayerSnapshot) string { return p.UserID })
	time.AfterFunc(c.removeDelay, func() {
		c.removeDuel(duelID, participants)
	})

	return true
}

// removeDuel runs on the eviction timer, after the grace delay.
func (c *Coordinator) removeDuel(duelID string, participants []string) {
	scope := envelope.NewRootScope(context.Background(), "Coordinator.removeDuel", "")
	defer scope.Finish()

	c.duels.Remove(duelID)
	for _, userID := range participants {
		c.notify(scope, userID, Event{
			Type:    constants.EventDuelRemoved,
			UserID:  userID,
			Payload: DuelRemovedPayload{DuelID: duelID},
		})
	}
}

func buildFinishedDuel(d *models.Duel) models.FinishedDuel {
	record := models.FinishedDuel{
		DuelID:          d.DuelID,
		Outcome:         *d.Outcome,
		DurationSeconds: int(d.ResolvedAt.Sub(d.CreatedAt).Seconds()),
		CreatedAt:       d.CreatedAt,
		ResolvedAt:      d.ResolvedAt,
	}
	for i, p := range d.Players {
		fp := models.FinishedPlayer{
			PlayerSnapshot: p,
			Reward:         d.Outcome.Reward,
		}
		if choice, voted := d.ChoiceOf(p.UserID); voted {
			fp.Choice = choice
		}
		record.Players[i] = fp
	}

	return record
}

// notifyDuelFound sends the asymmetric duel_found events: each participant
// sees the other as the opponent.
func (c *Coordinator) notifyDuelFound(scope *envelope.Scope, d *models.Duel) {
	for _, p := range d.Players {
		opponent, _ := d.Opponent(p.UserID)
		c.notify(scope, p.UserID, Event{
			Type:   constants.EventDuelFound,
			UserID: p.UserID,
			Payload: DuelFoundPayload{
				DuelID:   d.DuelID,
				Opponent: opponent,
			},
		})
	}
}

// notify resolves the user's connection handle and hands the event to the
// sink. A missing handle is logged and counted, never retried.
func (c *Coordinator) notify(scope *envelope.Scope, userID string, event Event) {
	handle, ok := c.presence.Lookup(userID)
	if !ok {
		scope.Log.WithField("userID", userID).WithField("event", event.Type).Warn("connection handle not found, dropping notification")
		c.metrics.AddDroppedNotification(event.Type)

		return
	}

	c.sink.Deliver(scope, handle, event)
}
