// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
)

var (
	ErrUserOffline         = errors.New("user has no live connection")
	ErrUserNotFound        = errors.New("user profile not found")
	ErrDuelNotFound        = errors.New("duel not found")
	ErrUserNotInDuel       = errors.New("user is not a participant of the duel")
	ErrDuelAlreadyResolved = errors.New("duel already resolved")
	ErrInvalidChoice       = errors.New("choice must be like, super_like or skip")
)

var duelErrorCodeMap = map[error]int{
	ErrUserOffline:         520101,
	ErrUserNotFound:        520102,
	ErrDuelNotFound:        520103,
	ErrUserNotInDuel:       520104,
	ErrDuelAlreadyResolved: 520105,
	ErrInvalidChoice:       520106,
}

// DuelErrorCode returns a stable numeric code for the error.
// It returns 20002 if the error is not registered in the map.
func DuelErrorCode(err error) int {
	for registered, code := range duelErrorCodeMap {
		if errors.Is(err, registered) {
			return code
		}
	}

	return 20002
}
