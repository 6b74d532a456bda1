// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duelarena/duel-core/pkg/models"
)

func newTestQueue() *MatchQueue {
	return NewMatchQueue(5, 2)
}

func entry(userID string, rating int) models.QueueEntry {
	return models.QueueEntry{
		PlayerSnapshot: models.PlayerSnapshot{
			UserID: userID,
			Name:   userID,
			Rating: rating,
			Level:  1,
		},
		EnqueuedAt: time.Now(),
	}
}

func TestQueue_EnqueueIsUniquePerUser(t *testing.T) {
	t.Parallel()
	q := newTestQueue()

	q.Enqueue(entry("alice", 1500))
	q.Enqueue(entry("alice", 1500))
	q.Enqueue(entry("alice", 1510))

	assert.Equal(t, 1, q.Len(), "re-joining must replace, never duplicate")
	assert.Equal(t, 1, q.PositionOf("alice"))
}

func TestQueue_RejoinResetsPosition(t *testing.T) {
	t.Parallel()
	q := newTestQueue()

	q.Enqueue(entry("alice", 1500))
	q.Enqueue(entry("bob", 1600))
	q.Enqueue(entry("alice", 1500))

	assert.Equal(t, 1, q.PositionOf("bob"), "bob moves to the head once alice re-joins")
	assert.Equal(t, 2, q.PositionOf("alice"))
}

func TestQueue_PositionMonotonicity(t *testing.T) {
	t.Parallel()
	q := newTestQueue()

	q.Enqueue(entry("a", 1500))
	q.Enqueue(entry("b", 1500))
	q.Enqueue(entry("c", 1500))

	require.Equal(t, 1, q.PositionOf("a"))
	require.Equal(t, 2, q.PositionOf("b"))
	require.Equal(t, 3, q.PositionOf("c"))

	q.Dequeue("a")

	assert.Equal(t, 0, q.PositionOf("a"))
	assert.Equal(t, 1, q.PositionOf("b"))
	assert.Equal(t, 2, q.PositionOf("c"))
}

func TestQueue_DequeueAbsentIsNoop(t *testing.T) {
	t.Parallel()
	q := newTestQueue()

	q.Enqueue(entry("alice", 1500))
	q.Dequeue("ghost")

	assert.Equal(t, 1, q.Len())
}

func TestQueue_EstimatedWaitSeconds(t *testing.T) {
	t.Parallel()
	q := newTestQueue()

	assert.Equal(t, 5, q.EstimatedWaitSeconds(1), "wait never drops below the base")
	assert.Equal(t, 5, q.EstimatedWaitSeconds(2))
	assert.Equal(t, 6, q.EstimatedWaitSeconds(3))
	assert.Equal(t, 20, q.EstimatedWaitSeconds(10))
}

func TestQueue_SnapshotIsIndependentCopy(t *testing.T) {
	t.Parallel()
	q := newTestQueue()

	q.Enqueue(entry("alice", 1500))

	snapshot := q.Snapshot()
	require.Len(t, snapshot, 1)

	snapshot[0].UserID = "mallory"

	assert.Equal(t, 1, q.PositionOf("alice"), "mutating the snapshot must not touch the queue")
	assert.Equal(t, 0, q.PositionOf("mallory"))
}

func TestQueue_Stats(t *testing.T) {
	t.Parallel()
	q := newTestQueue()

	assert.Equal(t, Stats{}, q.Stats(), "empty queue has zero stats")

	q.Enqueue(entry("alice", 1500))
	q.Enqueue(entry("bob", 1700))

	stats := q.Stats()
	assert.Equal(t, 2, stats.Size)
	assert.InDelta(t, 1600.0, stats.MeanRating, 0.001)
	assert.InDelta(t, 141.421, stats.RatingStdDev, 0.01)
}
