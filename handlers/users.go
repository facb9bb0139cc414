// handlers/users.go - User Profile & Wallet Endpoints
package handlers

import (
	"wellspring/database"
	"wellspring/middleware"
	"wellspring/models"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser returns the authenticated user's profile
// GET /users/me
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// GetWallet returns the user's balance and recent ledger entries
// GET /users/wallet
func GetWallet(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var transactions []models.CreditTransaction
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(20).
		Find(&transactions).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"credits":      user.Credits,
		"level":        user.Level,
		"xp":           user.XP,
		"transactions": transactions,
	})
}
