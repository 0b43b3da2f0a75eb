package historyRoutes

import (
	historyController "neuroscan/controllers/history"
	"neuroscan/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupHistoryRoutes(app *fiber.App) {
	historyGroup := app.Group("/history")

	historyGroup.Get("/", middleware.JWTMiddleware, historyController.List)
}
