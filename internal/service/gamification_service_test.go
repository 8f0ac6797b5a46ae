package service

import (
	"context"
	"testing"

	"aventura-gamer-service/internal/gamification"
	"aventura-gamer-service/internal/model"
	"aventura-gamer-service/internal/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGamificationFixture(t *testing.T) (*GamificationService, *fakeProfileRepo, *fakeAchievementRepo, *fakeOrderRepo) {
	t.Helper()
	profiles := newFakeProfileRepo()
	achievements := newFakeAchievementRepo()
	orders := newFakeOrderRepo()

	require.NoError(t, profiles.Save(context.Background(), &model.UserProfile{
		UserID: "user-1",
		Role:   "customer",
		Points: 80,
		Level:  1,
	}))

	return NewGamificationService(profiles, achievements, orders), profiles, achievements, orders
}

func TestAwardPointsPersistsAndCelebrates(t *testing.T) {
	svc, profiles, _, _ := newGamificationFixture(t)

	out, err := svc.AwardPoints(context.Background(), "user-1", 30, "compra aprobada")
	require.NoError(t, err)

	assert.Equal(t, 110, out.Profile.Points)
	assert.Equal(t, 2, out.Profile.Level)
	assert.True(t, out.LeveledUp)
	assert.Equal(t, 1, out.FromLevel)
	assert.Equal(t, 2, out.ToLevel)

	// Exactamente dos celebraciones, en orden: puntos y después nivel
	require.Len(t, out.Celebrations, 2)
	assert.Equal(t, gamification.CelebrationPointsGained, out.Celebrations[0].Type)
	assert.Equal(t, 30, out.Celebrations[0].Points)
	assert.Equal(t, gamification.CelebrationLevelUp, out.Celebrations[1].Type)
	assert.Equal(t, 2, out.Celebrations[1].Level)

	persisted, err := profiles.FindByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 110, persisted.Points)
	assert.Equal(t, 2, persisted.Level)
}

func TestAwardPointsNegativeRejected(t *testing.T) {
	svc, profiles, _, _ := newGamificationFixture(t)

	_, err := svc.AwardPoints(context.Background(), "user-1", -5, "bug")
	assert.ErrorIs(t, err, gamification.ErrInvalidArgument)

	persisted, _ := profiles.FindByUserID(context.Background(), "user-1")
	assert.Equal(t, 80, persisted.Points, "el perfil no debe cambiar")
}

func seedAchievement(t *testing.T, repo *fakeAchievementRepo, id string, condType string, value, reward int) {
	t.Helper()
	require.NoError(t, repo.Save(context.Background(), &model.Achievement{
		AchievementID:  id,
		Title:          id,
		ConditionType:  condType,
		ConditionValue: value,
		XPReward:       reward,
		Active:         true,
	}))
}

func TestEvaluateAchievementsMergesClaims(t *testing.T) {
	svc, _, achievements, orders := newGamificationFixture(t)
	seedAchievement(t, achievements, "primera-compra", gamification.ConditionPurchaseCount, 1, 50)
	seedAchievement(t, achievements, "nivel-5", gamification.ConditionLevelReached, 5, 200)

	require.NoError(t, orders.Save(context.Background(), &model.Order{
		OrderID: "o1", UserID: "user-1", ShippingStatus: status.StatusPending,
	}))

	out, err := svc.EvaluateAchievements(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, out, 2)

	byID := map[string]gamification.AchievementProgress{}
	for _, p := range out {
		byID[p.Definition.ID] = p
	}

	assert.True(t, byID["primera-compra"].Unlocked)
	assert.False(t, byID["primera-compra"].Claimed)
	assert.False(t, byID["nivel-5"].Unlocked)
	assert.Equal(t, 1, byID["nivel-5"].Progress)
}

func TestClaimAchievementGrantsOnce(t *testing.T) {
	svc, profiles, achievements, orders := newGamificationFixture(t)
	seedAchievement(t, achievements, "primera-compra", gamification.ConditionPurchaseCount, 1, 50)
	require.NoError(t, orders.Save(context.Background(), &model.Order{
		OrderID: "o1", UserID: "user-1", ShippingStatus: status.StatusPending,
	}))

	out, err := svc.ClaimAchievement(context.Background(), "user-1", "primera-compra")
	require.NoError(t, err)
	assert.Equal(t, 130, out.Profile.Points)

	// El segundo reclamo falla y no vuelve a otorgar
	_, err = svc.ClaimAchievement(context.Background(), "user-1", "primera-compra")
	assert.ErrorIs(t, err, gamification.ErrAlreadyClaimed)

	persisted, _ := profiles.FindByUserID(context.Background(), "user-1")
	assert.Equal(t, 130, persisted.Points)
}

func TestClaimAchievementNotUnlocked(t *testing.T) {
	svc, _, achievements, _ := newGamificationFixture(t)
	seedAchievement(t, achievements, "comprador-frecuente", gamification.ConditionPurchaseCount, 5, 100)

	_, err := svc.ClaimAchievement(context.Background(), "user-1", "comprador-frecuente")
	assert.ErrorIs(t, err, gamification.ErrNotUnlocked)
}
