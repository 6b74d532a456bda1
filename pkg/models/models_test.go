// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models_test

import (
	"testing"
	"time"

	"github.com/onsi/gomega"

	"github.com/duelarena/duel-core/pkg/models"
	"github.com/duelarena/duel-core/pkg/testsetup"
)

func sampleDuel() *models.Duel {
	return &models.Duel{
		DuelID: "01HTESTDUEL",
		Players: [2]models.PlayerSnapshot{
			{UserID: "alice", Name: "Alice", Rating: 1500, Level: 3},
			{UserID: "bob", Name: "Bob", Rating: 1520, Level: 4},
		},
		Votes:     map[string]models.Choice{"alice": models.ChoiceLike},
		Status:    models.DuelStatusVoting,
		CreatedAt: time.Now(),
	}
}

func TestChoiceIsValid(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	g.Expect(models.ChoiceLike.IsValid()).To(gomega.BeTrue())
	g.Expect(models.ChoiceSuperLike.IsValid()).To(gomega.BeTrue())
	g.Expect(models.ChoiceSkip.IsValid()).To(gomega.BeTrue())
	g.Expect(models.Choice("love").IsValid()).To(gomega.BeFalse())
	g.Expect(models.Choice("").IsValid()).To(gomega.BeFalse())
}

func TestDuelParticipantHelpers(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)
	d := sampleDuel()

	g.Expect(d.HasParticipant("alice")).To(gomega.BeTrue())
	g.Expect(d.HasParticipant("mallory")).To(gomega.BeFalse())

	opponent, ok := d.Opponent("alice")
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(opponent.UserID).To(gomega.Equal("bob"))

	_, ok = d.Opponent("mallory")
	g.Expect(ok).To(gomega.BeFalse())

	g.Expect(d.BothVoted()).To(gomega.BeFalse())
	d.Votes["bob"] = models.ChoiceSkip
	g.Expect(d.BothVoted()).To(gomega.BeTrue())
}

func TestDuelCopyIsDeep(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)
	d := sampleDuel()

	copied := d.Copy()
	copied.Votes["bob"] = models.ChoiceSuperLike
	copied.Players[0].UserID = "mallory"

	g.Expect(d.Votes).NotTo(gomega.HaveKey("bob"))
	g.Expect(d.Players[0].UserID).To(gomega.Equal("alice"))
}

func TestDuelErrorCode(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	g.Expect(models.DuelErrorCode(models.ErrUserOffline)).To(gomega.Equal(520101))
	g.Expect(models.DuelErrorCode(models.ErrDuelNotFound)).To(gomega.Equal(520103))
	g.Expect(models.DuelErrorCode(models.ErrInvalidChoice)).To(gomega.Equal(520106))
	g.Expect(models.DuelErrorCode(assertionError{})).To(gomega.Equal(20002))
}

type assertionError struct{}

func (assertionError) Error() string { return "unregistered" }
