// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package queue provides the ordered waiting pool of players wanting a duel
// and the pairing algorithm that forms duels from compatible entries.
package queue

import (
	"sync"

	"github.com/elliotchance/pie/v2"
	"github.com/mitchellh/copystructure"
	"gonum.org/v1/gonum/stat"

	"github.com/duelarena/duel-core/pkg/mathutil"
	"github.com/duelarena/duel-core/pkg/models"
)

// MatchQueue is an ordered sequence of queue entries. Insertion order is
// matching priority. At most one entry per user id exists at any time.
type MatchQueue struct {
	mu      sync.Mutex
	entries []models.QueueEntry

	baseWaitSecond        int
	waitPerPositionSecond int
}

func NewMatchQueue(baseWaitSecond, waitPerPositionSecond int) *MatchQueue {
	return &MatchQueue{
		entries:               make([]models.QueueEntry, 0, 16),
		baseWaitSecond:        baseWaitSecond,
		waitPerPositionSecond: waitPerPositionSecond,
	}
}

// Enqueue adds an entry to the back of the queue. A re-join removes the
// prior entry first, so the player's position resets instead of duplicating.
// Returns the 1-based position of the new entry.
func (q *MatchQueue) Enqueue(entry models.QueueEntry) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.removeLocked(entry.UserID)
	q.entries = append(q.entries, entry)

	return len(q.entries)
}

// Dequeue removes the entry for a user. It is a no-op when absent.
func (q *MatchQueue) Dequeue(userID string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.removeLocked(userID)
}

func (q *MatchQueue) removeLocked(userID string) {
	q.entries = pie.FilterNot(q.entries, func(e models.QueueEntry) bool {
		return e.UserID == userID
	})
}

// PositionOf returns the 1-based queue position of a user, 0 when absent.
func (q *MatchQueue) PositionOf(userID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	index := pie.FindFirstUsing(q.entries, func(e models.QueueEntry) bool {
		return e.UserID == userID
	})

	return index + 1
}

// Len returns the number of waiting entries.
func (q *MatchQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.entries)
}

// EstimatedWaitSeconds is a deliberately simple linear wait model. The
// constants are tunables, not a correctness property.
func (q *MatchQueue) EstimatedWaitSeconds(position int) int {
	return mathutil.Max(q.baseWaitSecond, position*q.waitPerPositionSecond)
}

// Snapshot returns a read-only deep copy of the queue for diagnostics.
func (q *MatchQueue) Snapshot() []models.QueueEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	copied, err := copystructure.Copy(q.entries)
	if err != nil {
		out := make([]models.QueueEntry, len(q.entries))
		copy(out, q.entries)

		return out
	}

	return copied.([]models.QueueEntry)
}

// Stats summarizes the rating distribution of the waiting pool.
type Stats struct {
	Size         int     `json:"size"`
	MeanRating   float64 `json:"mean_rating"`
	RatingStdDev float64 `json:"rating_std_dev"`
}

// Stats computes rating statistics over the current queue contents.
func (q *MatchQueue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.entries) == 0 {
		return Stats{}
	}

	ratings := pie.Map(q.entries, func(e models.QueueEntry) float64 {
		return float64(e.Rating)
	})

	s := Stats{
		Size:       len(q.entries),
		MeanRating: stat.Mean(ratings, nil),
	}
	if len(ratings) > 1 {
		s.RatingStdDev = stat.StdDev(ratings, nil)
	}

	return s
}
