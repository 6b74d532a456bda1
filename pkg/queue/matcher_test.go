// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_EmptyQueueNeverMatches(t *testing.T) {
	t.Parallel()
	q := newTestQueue()
	m := NewMatcher(150)

	_, _, found := m.FindPair(q)
	assert.False(t, found)
}

func TestMatcher_SingleEntryNeverMatches(t *testing.T) {
	t.Parallel()
	q := newTestQueue()
	m := NewMatcher(150)

	q.Enqueue(entry("alone", 1500))

	_, _, found := m.FindPair(q)
	assert.False(t, found, "a queue of size 1 trivially has no pair")
	assert.Equal(t, 1, q.Len(), "a failed scan leaves the queue untouched")
}

func TestMatcher_FIFOWithinRatingWindow(t *testing.T) {
	t.Parallel()
	q := newTestQueue()
	m := NewMatcher(150)

	// A(1500) and C(1800) are 300 apart, outside the window: no pair yet.
	q.Enqueue(entry("a", 1500))
	q.Enqueue(entry("c", 1800))
	_, _, found := m.FindPair(q)
	require.False(t, found)

	// B(1520) lands within A's window even though C enqueued earlier.
	q.Enqueue(entry("b", 1520))
	anchor, candidate, found := m.FindPair(q)
	require.True(t, found)
	assert.Equal(t, "a", anchor.UserID)
	assert.Equal(t, "b", candidate.UserID, "compatibility beats C's older enqueue time")

	assert.Equal(t, 1, q.PositionOf("c"), "the unmatched entry keeps waiting at the head")
	assert.Equal(t, 1, q.Len())
}

func TestMatcher_FirstEligibleInQueueOrderWins(t *testing.T) {
	t.Parallel()
	q := newTestQueue()
	m := NewMatcher(150)

	q.Enqueue(entry("anchor", 1500))
	q.Enqueue(entry("older", 1540))
	q.Enqueue(entry("newer", 1500))

	_, candidate, found := m.FindPair(q)
	require.True(t, found)
	assert.Equal(t, "older", candidate.UserID, "oldest among eligible preserves FIFO fairness")
}

func TestMatcher_WindowBoundaryIsInclusive(t *testing.T) {
	t.Parallel()
	m := NewMatcher(150)

	q := newTestQueue()
	q.Enqueue(entry("a", 1500))
	q.Enqueue(entry("b", 1650))
	_, _, found := m.FindPair(q)
	assert.True(t, found, "a difference of exactly 150 is compatible")

	q = newTestQueue()
	q.Enqueue(entry("a", 1500))
	q.Enqueue(entry("b", 1651))
	_, _, found = m.FindPair(q)
	assert.False(t, found, "a difference of 151 is not")
}

func TestMatcher_NoSelfPairing(t *testing.T) {
	t.Parallel()
	q := newTestQueue()
	m := NewMatcher(150)

	q.Enqueue(entry("x", 1500))
	q.Enqueue(entry("x", 1500))

	require.Equal(t, 1, q.Len(), "re-joining replaces, so no duplicate to self-pair with")

	_, _, found := m.FindPair(q)
	assert.False(t, found)
}
