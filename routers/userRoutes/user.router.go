package userRoutes

import (
	userController "neuroscan/controllers/user"
	"neuroscan/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/dashboard", middleware.JWTMiddleware, userController.Dashboard)
}
