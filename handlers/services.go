// handlers/services.go - Shared service instances for the handler package
package handlers

import (
	"wellspring/database"
	"wellspring/services"
)

var (
	shopService        *services.ShopService
	avatarService      *services.AvatarService
	progressService    *services.ProgressService
	achievementService *services.AchievementService
)

// InitHandlers wires the handler package to the database-backed services.
// Must be called after database.InitDB().
func InitHandlers() {
	db := database.GetDB()
	shopService = services.NewShopService(db)
	avatarService = services.NewAvatarService(db)
	progressService = services.NewProgressService(db)
	achievementService = services.NewAchievementService(db)
}
