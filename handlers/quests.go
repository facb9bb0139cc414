// handlers/quests.go - Quest Progress Endpoints
package handlers

import (
	"strconv"
	"wellspring/middleware"
	"wellspring/services"

	"github.com/gofiber/fiber/v2"
)

type IncrementQuestRequest struct {
	IncrementBy int `json:"incrementBy"`
}

// IncrementQuestProgress advances the user's counter on a quest
// POST /quests/:questId/progress
func IncrementQuestProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	}

	questID, err := strconv.ParseUint(c.Params("questId"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid quest ID"})
	}

	// Body is optional; incrementBy defaults to 1
	req := IncrementQuestRequest{IncrementBy: 1}
	_ = c.BodyParser(&req)
	if req.IncrementBy == 0 {
		req.IncrementBy = 1
	}

	result, err := progressService.IncrementQuest(userID, uint(questID), req.IncrementBy)
	if err != nil {
		return serviceErrorResponse(c, err, "message")
	}

	message := "Quest progress updated"
	if result.Progress.IsCompleted {
		message = "Quest completed! Rewards granted."
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"current_value": result.Progress.CurrentValue,
		"is_completed":  result.Progress.IsCompleted,
		"completed_at":  result.Progress.CompletedAt,
		"quest":         result.Quest,
		"progress":      result.Percent,
		"message":       message,
	})
}

// GetQuests lists active quests with the user's progress
// GET /quests
func GetQuests(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	}

	quests, progressByQuest, err := progressService.GetQuests(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to fetch quests"})
	}

	entries := make([]fiber.Map, 0, len(quests))
	for _, quest := range quests {
		entry := fiber.Map{
			"quest":         quest,
			"current_value": 0,
			"is_completed":  false,
			"progress":      0,
		}

		if p, ok := progressByQuest[quest.ID]; ok {
			entry["current_value"] = p.CurrentValue
			entry["is_completed"] = p.IsCompleted
			entry["progress"] = services.ProgressPercent(p.CurrentValue, quest.TargetValue)
		}

		entries = append(entries, entry)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"quests":  entries,
		"count":   len(entries),
	})
}
