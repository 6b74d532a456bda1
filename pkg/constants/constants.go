// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

// Duel rewards.
const (
	RewardNone       = 0
	RewardMatch      = 50
	RewardSuperMatch = 100
)

// Event types pushed to the transport collaborator.
const (
	EventQueuePositionUpdated = "queue_position_updated"
	EventDuelFound            = "duel_found"
	EventOpponentVoted        = "opponent_voted"
	EventDuelResult           = "duel_result"
	EventDuelRemoved          = "duel_removed"
)

// Outcome messages shown to both participants.
const (
	MessageMatch      = "It's a match!"
	MessageSuperMatch = "Super match! You both went all in."
	MessageNoMatch    = "No match this time."
	MessageTimeout    = "Time expired before both votes were in."
)

// Winner designations. Duels have no single-winner outcome, a match is
// mutual by definition.
const (
	WinnerBoth = "both"
	WinnerNone = "none"
)
