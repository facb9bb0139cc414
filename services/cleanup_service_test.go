package services

import (
	"testing"
	"time"
	"wellspring/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createGuest(t *testing.T, db *gorm.DB, username string, lastLogin time.Time) models.User {
	t.Helper()

	user := models.User{
		Username:  username,
		Password:  "",
		IsGuest:   true,
		Level:     1,
		Credits:   100,
		LastLogin: lastLogin,
	}
	require.NoError(t, db.Create(&user).Error)

	// Every account gets a welcome-bonus ledger row at signup
	bonus := models.NewRewardTransaction(user.ID, 100, "welcome bonus")
	require.NoError(t, db.Create(&bonus).Error)

	return user
}

func TestCleanupStaleGuestsRemovesDependents(t *testing.T) {
	db := newTestDB(t)
	svc := NewCleanupService(db)

	longAgo := time.Now().AddDate(0, 0, -40)

	stale := createGuest(t, db, "stale_guest", longAgo)
	seedStreak(t, db, stale.ID, 3, 3, longAgo)

	purchaser := createGuest(t, db, "purchasing_guest", longAgo)
	item := createItem(t, db, models.ShopItem{Name: "Sticker", Price: 10, IsAvailable: true})
	require.NoError(t, db.Create(&models.UserItem{
		UserID: purchaser.ID, ItemID: item.ID, PurchaseDate: longAgo, IsActive: true,
	}).Error)

	active := createGuest(t, db, "active_guest", time.Now())

	require.NoError(t, svc.CleanupStaleGuests())

	// The idle non-purchaser is gone, welcome bonus and streak included
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", stale.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, db.Model(&models.CreditTransaction{}).Where("user_id = ?", stale.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, db.Model(&models.Streak{}).Where("user_id = ?", stale.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// Purchasers keep their account and ledger history
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", purchaser.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	require.NoError(t, db.Model(&models.CreditTransaction{}).Where("user_id = ?", purchaser.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Recently active guests are untouched
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", active.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCleanupStaleGuestsNoCandidates(t *testing.T) {
	db := newTestDB(t)
	svc := NewCleanupService(db)

	createGuest(t, db, "fresh_guest", time.Now())

	require.NoError(t, svc.CleanupStaleGuests())

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCloseExpiredChallenges(t *testing.T) {
	db := newTestDB(t)
	svc := NewCleanupService(db)

	expired := models.SeasonalChallenge{
		Name:        "Winter Walks",
		Season:      "2025-winter",
		TargetValue: 50000,
		StartDate:   time.Now().AddDate(0, -3, 0),
		EndDate:     time.Now().AddDate(0, -1, 0),
		IsActive:    true,
	}
	running := models.SeasonalChallenge{
		Name:        "Summer Steps",
		Season:      "2026-summer",
		TargetValue: 100000,
		StartDate:   time.Now().AddDate(0, 0, -7),
		EndDate:     time.Now().AddDate(0, 1, 0),
		IsActive:    true,
	}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&running).Error)

	require.NoError(t, svc.CloseExpiredChallenges())

	var updated models.SeasonalChallenge
	require.NoError(t, db.First(&updated, expired.ID).Error)
	assert.False(t, updated.IsActive)

	var updatedRunning models.SeasonalChallenge
	require.NoError(t, db.First(&updatedRunning, running.ID).Error)
	assert.True(t, updatedRunning.IsActive)
}
