// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package coordinator

import (
	"github.com/duelarena/duel-core/pkg/envelope"
	"github.com/duelarena/duel-core/pkg/models"
	"github.com/duelarena/duel-core/pkg/presence"
)

// IdentityProvider resolves a verified user id to a profile snapshot. The
// core trusts the id, authentication happened upstream.
type IdentityProvider interface {
	GetUserProfile(scope *envelope.Scope, userID string) (models.PlayerSnapshot, error)
}

// FinishedDuelStore persists finished-duel records. The core emits exactly
// one record per duel, the store owns the on-disk format.
type FinishedDuelStore interface {
	SaveFinishedDuel(scope *envelope.Scope, record models.FinishedDuel) error
}

// EventSink pushes an event to a user through a resolved connection handle.
// Delivery is fire-and-forget, the sink must not block on a network
// round-trip.
type EventSink interface {
	Deliver(scope *envelope.Scope, handle presence.ConnectionHandle, event Event)
}
