// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package queue

import (
	"github.com/duelarena/duel-core/pkg/mathutil"
	"github.com/duelarena/duel-core/pkg/models"
)

// Matcher is a greedy nearest-window pairing algorithm. The oldest waiting
// entry is the anchor; the rest of the queue is scanned in order for the
// first entry within the rating window. It is not an optimal assignment,
// duplicate scans are cheap because queue sizes are small.
type Matcher struct {
	ratingWindow int
}

func NewMatcher(ratingWindow int) Matcher {
	return Matcher{ratingWindow: ratingWindow}
}

// FindPair scans the queue and, when a compatible pair exists, removes both
// entries and returns them. The scan and removal happen under the queue
// lock, so a concurrent Enqueue or Dequeue never observes a half-formed
// pairing. A queue of size 1 never matches.
func (m Matcher) FindPair(q *MatchQueue) (anchor, candidate models.QueueEntry, found bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.entries) < 2 {
		return models.QueueEntry{}, models.QueueEntry{}, false
	}

	anchor = q.entries[0]
	for i := 1; i < len(q.entries); i++ {
		other := q.entries[i]
		if other.UserID == anchor.UserID {
			continue
		}
		if mathutil.Abs(anchor.Rating, other.Rating) > m.ratingWindow {
			continue
		}

		// First in queue order wins, keeping FIFO fairness secondary to
		// rating compatibility.
		q.entries = append(q.entries[1:i:i], q.entries[i+1:]...)

		return anchor, other, true
	}

	return models.QueueEntry{}, models.QueueEntry{}, false
}
