// handlers/avatars.go - Avatar Equip Endpoints
package handlers

import (
	"wellspring/middleware"

	"github.com/gofiber/fiber/v2"
)

type SetActiveAvatarRequest struct {
	AvatarID uint `json:"avatarId"`
}

type AddFeatureRequest struct {
	UserAvatarID uint `json:"userAvatarId"`
	FeatureID    uint `json:"featureId"`
}

// SetActiveAvatar equips one of the user's avatars
// POST /user-avatars/set-active
func SetActiveAvatar(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req SetActiveAvatarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.AvatarID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "avatarId is required"})
	}

	if err := avatarService.SetActive(userID, req.AvatarID); err != nil {
		return serviceErrorResponse(c, err, "error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Avatar set as active",
	})
}

// AddAvatarFeature attaches a cosmetic feature to one of the user's avatars
// POST /user-avatars/add-feature
func AddAvatarFeature(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req AddFeatureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.UserAvatarID == 0 || req.FeatureID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "userAvatarId and featureId are required"})
	}

	if err := avatarService.AddFeature(userID, req.UserAvatarID, req.FeatureID); err != nil {
		return serviceErrorResponse(c, err, "error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Feature added to avatar",
	})
}

// GetUserAvatars lists the user's avatar instances
// GET /user-avatars
func GetUserAvatars(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	avatars, err := avatarService.GetUserAvatars(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch avatars"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"avatars": avatars,
		"count":   len(avatars),
	})
}
