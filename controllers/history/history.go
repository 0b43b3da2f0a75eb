package historyController

import (
	"log"

	"neuroscan/database"
	"neuroscan/middleware"

	"github.com/gofiber/fiber/v2"
)

// List returns the user's past checkups, newest first.
func List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID", nil)
	}

	records, err := database.ListPredictionsForUser(userID)
	if err != nil {
		log.Printf("Error fetching prediction history: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "History fetched successfully!", fiber.Map{
		"records": records,
	})
}
