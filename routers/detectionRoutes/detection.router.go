package detectionRoutes

import (
	detectionController "neuroscan/controllers/detection"
	"neuroscan/middleware"
	detectionValidator "neuroscan/validators/detection"

	"github.com/gofiber/fiber/v2"
)

func SetupDetectionRoutes(app *fiber.App) {
	detectionGroup := app.Group("/detection")

	detectionGroup.Post("/analyze", detectionValidator.Analyze(), middleware.JWTMiddleware, detectionController.Analyze)
}
