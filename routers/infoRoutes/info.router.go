package infoRoutes

import (
	infoController "neuroscan/controllers/info"

	"github.com/gofiber/fiber/v2"
)

func SetupInfoRoutes(app *fiber.App) {
	app.Get("/health", infoController.Health)
	app.Get("/about", infoController.About)
}
