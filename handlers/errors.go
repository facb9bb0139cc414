// handlers/errors.go - Service error to HTTP response mapping
package handlers

import (
	"errors"
	"log"
	"wellspring/services"

	"github.com/gofiber/fiber/v2"
)

var notFoundErrors = []error{
	services.ErrUserNotFound,
	services.ErrItemNotFound,
	services.ErrAvatarNotFound,
	services.ErrFeatureNotFound,
	services.ErrQuestNotFound,
	services.ErrChallengeNotFound,
	services.ErrAchievementNotFound,
}

var rejectedErrors = []error{
	services.ErrItemUnavailable,
	services.ErrItemSoldOut,
	services.ErrQuestNotActive,
	services.ErrChallengeNotActive,
	services.ErrAlreadyOwned,
	services.ErrAlreadyAttached,
	services.ErrAlreadyJoined,
	services.ErrAlreadyAwarded,
	services.ErrAlreadyCompleted,
	services.ErrInvalidIncrement,
	services.ErrInvalidStreakType,
}

// serviceErrorResponse maps a service failure onto an HTTP status and a
// JSON body keyed by errKey ("error" or "message", the shop and progress
// routes differ). Unexpected errors are logged and reported generically.
func serviceErrorResponse(c *fiber.Ctx, err error, errKey string) error {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return c.Status(404).JSON(fiber.Map{"success": false, errKey: err.Error()})
		}
	}

	var levelErr *services.LevelTooLowError
	if errors.As(err, &levelErr) {
		return c.Status(400).JSON(fiber.Map{
			"success":  false,
			errKey:     "Level too low to purchase this item",
			"required": levelErr.Required,
			"current":  levelErr.Actual,
		})
	}

	var creditsErr *services.InsufficientCreditsError
	if errors.As(err, &creditsErr) {
		return c.Status(400).JSON(fiber.Map{
			"success":   false,
			errKey:      "Insufficient credits",
			"required":  creditsErr.Required,
			"available": creditsErr.Available,
		})
	}

	for _, target := range rejectedErrors {
		if errors.Is(err, target) {
			return c.Status(400).JSON(fiber.Map{"success": false, errKey: err.Error()})
		}
	}

	log.Printf("Unexpected service error: %v", err)
	return c.Status(500).JSON(fiber.Map{"success": false, errKey: "An error occurred. Please try again later."})
}
