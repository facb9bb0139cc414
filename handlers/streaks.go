// handlers/streaks.go - Daily Streak Endpoints
package handlers

import (
	"wellspring/middleware"
	"wellspring/models"

	"github.com/gofiber/fiber/v2"
)

// UpdateStreak records today's activity for one streak type
// POST /streaks/:type/update
func UpdateStreak(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	}

	streakType := models.StreakType(c.Params("type"))

	result, err := progressService.UpdateStreak(userID, streakType)
	if err != nil {
		return serviceErrorResponse(c, err, "message")
	}

	message := "Streak updated"
	if !result.Updated {
		message = "Streak already updated today"
	} else if result.IsNewRecord {
		message = "New personal record!"
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"type":             result.Streak.Type,
		"current_streak":   result.Streak.CurrentStreak,
		"longest_streak":   result.Streak.LongestStreak,
		"last_update_date": result.Streak.LastUpdateDate,
		"isNewRecord":      result.IsNewRecord,
		"message":          message,
	})
}

// GetStreaks lists the user's streaks across all activity types
// GET /streaks
func GetStreaks(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	}

	streaks, err := progressService.GetStreaks(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to fetch streaks"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"streaks": streaks,
		"types":   models.StreakTypes,
	})
}
