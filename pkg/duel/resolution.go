// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package duel owns the in-flight duel sessions: the voting state machine,
// vote collection and the outcome table.
package duel

import (
	"github.com/duelarena/duel-core/pkg/constants"
	"github.com/duelarena/duel-core/pkg/models"
)

// ResolveChoices computes the collective outcome of a duel from the two
// submitted choices. A nil choice means the participant never voted before
// the time limit. The table is total over the 4-valued domain
// {like, super_like, skip, absent} squared.
func ResolveChoices(a, b *models.Choice) models.Outcome {
	if a == nil || b == nil {
		return models.Outcome{
			Tag:     models.OutcomeTimeout,
			Message: constants.MessageTimeout,
			Reward:  constants.RewardNone,
			Winner:  constants.WinnerNone,
		}
	}

	if *a == models.ChoiceSkip || *b == models.ChoiceSkip {
		return models.Outcome{
			Tag:     models.OutcomeNoMatch,
			Message: constants.MessageNoMatch,
			Reward:  constants.RewardNone,
			Winner:  constants.WinnerNone,
		}
	}

	if *a == models.ChoiceSuperLike && *b == models.ChoiceSuperLike {
		return models.Outcome{
			Tag:     models.OutcomeMatch,
			Message: constants.MessageSuperMatch,
			Reward:  constants.RewardSuperMatch,
			Winner:  constants.WinnerBoth,
		}
	}

	if (*a == models.ChoiceLike || *a == models.ChoiceSuperLike) &&
		(*b == models.ChoiceLike || *b == models.ChoiceSuperLike) {
		return models.Outcome{
			Tag:     models.OutcomeMatch,
			Message: constants.MessageMatch,
			Reward:  constants.RewardMatch,
			Winner:  constants.WinnerBoth,
		}
	}

	// Unreachable with the 3-valued choice domain, kept so the table stays
	// total if a new choice value ever appears.
	return models.Outcome{
		Tag:     models.OutcomeNoMatch,
		Message: constants.MessageNoMatch,
		Reward:  constants.RewardNone,
		Winner:  constants.WinnerNone,
	}
}
