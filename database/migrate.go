// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"wellspring/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	// Create indexes for core tables
	createCoreIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createCoreIndexes creates indexes for core tables
func createCoreIndexes() {
	db := GetDB()
	log.Println("Creating core indexes...")

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_level ON users(level DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")

	// Shop indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_shop_items_available ON shop_items(is_available)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_shop_items_category ON shop_items(category)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_items_user ON user_items(user_id)")

	// Ledger indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_credit_transactions_user ON credit_transactions(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_credit_transactions_created ON credit_transactions(created_at DESC)")

	// Avatar indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_avatars_user ON user_avatars(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_avatars_active ON user_avatars(user_id, is_active)")

	// Progress indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_streaks_user ON streaks(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quest_progress_user ON user_quest_progress(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenge_progress_user ON user_seasonal_challenge_progress(user_id)")

	// Achievement indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_achievement ON user_achievements(achievement_id)")

	log.Println("✅ Core indexes created successfully")
}
