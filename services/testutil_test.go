package services

import (
	"testing"
	"wellspring/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory store with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Avatar{},
		&models.AvatarFeature{},
		&models.ShopItem{},
		&models.UserItem{},
		&models.CreditTransaction{},
		&models.UserAvatar{},
		&models.UserAvatarFeature{},
		&models.Streak{},
		&models.Quest{},
		&models.UserQuestProgress{},
		&models.SeasonalChallenge{},
		&models.UserSeasonalChallengeProgress{},
		&models.Achievement{},
		&models.UserAchievement{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, credits, level int) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Password: "hashed",
		Credits:  credits,
		Level:    level,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createItem(t *testing.T, db *gorm.DB, item models.ShopItem) models.ShopItem {
	t.Helper()

	require.NoError(t, db.Create(&item).Error)
	return item
}
