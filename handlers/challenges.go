// handlers/challenges.go - Seasonal Challenge Endpoints
package handlers

import (
	"strconv"
	"wellspring/middleware"

	"github.com/gofiber/fiber/v2"
)

// JoinSeasonalChallenge enrolls the user in a seasonal challenge
// POST /seasonal-challenges/:challengeId/join
func JoinSeasonalChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	}

	challengeID, err := strconv.ParseUint(c.Params("challengeId"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid challenge ID"})
	}

	result, err := progressService.JoinChallenge(userID, uint(challengeID))
	if err != nil {
		return serviceErrorResponse(c, err, "message")
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"current_value": result.Progress.CurrentValue,
		"is_completed":  result.Progress.IsCompleted,
		"joined_at":     result.Progress.JoinedAt,
		"challenge":     result.Challenge,
		"message":       "Joined challenge " + result.Challenge.Name,
	})
}

// GetSeasonalChallenges lists active challenges with the user's enrollment
// GET /seasonal-challenges
func GetSeasonalChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	}

	challenges, progressByChallenge, err := progressService.GetChallenges(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to fetch challenges"})
	}

	entries := make([]fiber.Map, 0, len(challenges))
	for _, challenge := range challenges {
		entry := fiber.Map{
			"challenge": challenge,
			"joined":    false,
		}

		if p, ok := progressByChallenge[challenge.ID]; ok {
			entry["joined"] = true
			entry["current_value"] = p.CurrentValue
			entry["is_completed"] = p.IsCompleted
			entry["joined_at"] = p.JoinedAt
		}

		entries = append(entries, entry)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"challenges": entries,
		"count":      len(entries),
	})
}
