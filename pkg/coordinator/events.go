// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package coordinator

import (
	"github.com/duelarena/duel-core/pkg/models"
)

// Event is an outward notification addressed to a single user. The
// transport collaborator maps the user's connection handle to a push.
type Event struct {
	Type    string      `json:"type"`
	UserID  string      `json:"user_id"`
	Payload interface{} `json:"payload"`
}

// QueuePositionPayload tells a waiting player where they stand.
type QueuePositionPayload struct {
	Position             int `json:"position"`
	EstimatedWaitSeconds int `json:"estimated_wait_seconds"`
	OnlineCount          int `json:"online_count"`
}

// DuelFoundPayload is asymmetric: each participant sees the other as the
// opponent, never their own data.
type DuelFoundPayload struct {
	DuelID   string                `json:"duel_id"`
	Opponent models.PlayerSnapshot `json:"opponent"`
}

// OpponentVotedPayload carries the literal choice value the peer cast.
// Revealing the value before resolution mirrors the original behavior and
// is a known fairness tension, recorded in DESIGN.md.
type OpponentVotedPayload struct {
	DuelID string        `json:"duel_id"`
	Choice models.Choice `json:"choice"`
}

// DuelResultPayload is symmetric: both participants receive the same
// outcome annotated with both players' choices.
type DuelResultPayload struct {
	DuelID  string                   `json:"duel_id"`
	Outcome models.Outcome           `json:"outcome"`
	Choices map[string]models.Choice `json:"choices"`
}

// DuelRemovedPayload signals the duel left the registry after the grace
// delay and late reads will no longer find it.
type DuelRemovedPayload struct {
	DuelID string `json:"duel_id"`
}
