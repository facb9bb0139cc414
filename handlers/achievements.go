// handlers/achievements.go - Achievement Endpoints
package handlers

import (
	"strconv"
	"wellspring/middleware"
	"wellspring/models"

	"github.com/gofiber/fiber/v2"
)

// AwardAchievement grants a named achievement to the user, once
// POST /achievements/:achievementId/award
func AwardAchievement(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	}

	achievementID, err := strconv.ParseUint(c.Params("achievementId"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid achievement ID"})
	}

	result, err := achievementService.Award(userID, uint(achievementID))
	if err != nil {
		return serviceErrorResponse(c, err, "message")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"awarded_at":  result.Award.AwardedAt,
		"achievement": result.Achievement,
		"message":     "Achievement unlocked: " + result.Achievement.Name,
	})
}

// GetUserAchievements lists every achievement with the user's unlock state
// GET /achievements
func GetUserAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	}

	all, unlocked, err := achievementService.GetUserAchievements(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to fetch achievements"})
	}

	unlockedMap := make(map[uint]models.UserAchievement)
	for _, ua := range unlocked {
		unlockedMap[ua.AchievementID] = ua
	}

	achievements := make([]fiber.Map, 0, len(all))
	for _, achievement := range all {
		achData := fiber.Map{
			"id":            achievement.ID,
			"name":          achievement.Name,
			"description":   achievement.Description,
			"category":      achievement.Category,
			"tier":          achievement.Tier,
			"icon":          achievement.Icon,
			"xp_reward":     achievement.XPReward,
			"credit_reward": achievement.CreditReward,
			"unlocked":      false,
		}

		if ua, ok := unlockedMap[achievement.ID]; ok {
			achData["unlocked"] = true
			achData["awarded_at"] = ua.AwardedAt
		}

		achievements = append(achievements, achData)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": achievements,
		"total":        len(all),
		"unlocked":     len(unlocked),
	})
}
