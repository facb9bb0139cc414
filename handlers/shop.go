// handlers/shop.go - Avatar Shop Endpoints
package handlers

import (
	"fmt"
	"wellspring/middleware"

	"github.com/gofiber/fiber/v2"
)

type PurchaseRequest struct {
	ItemID uint `json:"itemId"`
}

// PurchaseItem buys a shop item for the authenticated user
// POST /avatar-shop/purchase
func PurchaseItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.ItemID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "itemId is required"})
	}

	result, err := shopService.Purchase(userID, req.ItemID)
	if err != nil {
		return serviceErrorResponse(c, err, "error")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"itemName":   result.ItemName,
		"newBalance": result.NewBalance,
		"message":    fmt.Sprintf("Successfully purchased %s", result.ItemName),
	})
}

// GetShopItems lists the purchasable catalog
// GET /avatar-shop/items
func GetShopItems(c *fiber.Ctx) error {
	if _, err := middleware.GetUserID(c); err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	items, err := shopService.GetCatalog()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shop items"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"items":   items,
		"count":   len(items),
	})
}
