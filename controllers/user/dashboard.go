package userController

import (
	"log"

	"neuroscan/database"
	"neuroscan/middleware"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns the aggregate stats shown after login.
func Dashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID", nil)
	}

	user, err := database.GetUserByID(userID)
	if err != nil {
		// Session references a user that no longer resolves; the client logs out
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Could not retrieve user data. Please try logging in again.", nil)
	}

	stats, err := database.GetUserStats(userID)
	if err != nil {
		log.Printf("Error fetching user stats: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"name":             user.Name,
		"email":            user.Email,
		"totalAnalyses":    stats.TotalAnalyses,
		"lastAnalysisDate": stats.LastAnalysisDate,
	})
}
