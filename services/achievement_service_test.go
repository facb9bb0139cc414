package services

import (
	"testing"
	"wellspring/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardAchievementOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewAchievementService(db)

	user := createUser(t, db, "alice", 0, 1)

	achievement := models.Achievement{
		Name:         "First Workout",
		Description:  "Complete your first workout",
		Category:     "Fitness",
		Tier:         "Bronze",
		CreditReward: 25,
	}
	require.NoError(t, db.Create(&achievement).Error)

	result, err := svc.Award(user.ID, achievement.ID)
	require.NoError(t, err)
	assert.Equal(t, achievement.ID, result.Award.AchievementID)
	assert.False(t, result.Award.AwardedAt.IsZero())

	// Reward credited with a ledger entry
	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, 25, updated.Credits)

	var rewards []models.CreditTransaction
	require.NoError(t, db.Where("user_id = ? AND type = ?", user.ID, models.TransactionReward).Find(&rewards).Error)
	require.Len(t, rewards, 1)
	assert.Equal(t, 25, rewards[0].Amount)

	// Second award attempt is rejected, not double-counted
	_, err = svc.Award(user.ID, achievement.ID)
	assert.ErrorIs(t, err, ErrAlreadyAwarded)

	var count int64
	require.NoError(t, db.Model(&models.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", user.ID, achievement.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, 25, updated.Credits)
}

func TestAwardMissingAchievement(t *testing.T) {
	db := newTestDB(t)
	svc := NewAchievementService(db)

	user := createUser(t, db, "alice", 0, 1)

	_, err := svc.Award(user.ID, 9999)
	assert.ErrorIs(t, err, ErrAchievementNotFound)
}

func TestGetUserAchievements(t *testing.T) {
	db := newTestDB(t)
	svc := NewAchievementService(db)

	user := createUser(t, db, "alice", 0, 1)

	bronze := models.Achievement{Name: "Starter", Description: "d", Category: "Special", Tier: "Bronze"}
	gold := models.Achievement{Name: "Veteran", Description: "d", Category: "Special", Tier: "Gold"}
	require.NoError(t, db.Create(&bronze).Error)
	require.NoError(t, db.Create(&gold).Error)

	_, err := svc.Award(user.ID, bronze.ID)
	require.NoError(t, err)

	all, unlocked, err := svc.GetUserAchievements(user.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	require.Len(t, unlocked, 1)
	assert.Equal(t, bronze.ID, unlocked[0].AchievementID)
}
