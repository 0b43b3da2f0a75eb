package chatRoutes

import (
	chatController "neuroscan/controllers/chat"
	"neuroscan/middleware"
	chatValidator "neuroscan/validators/chat"

	"github.com/gofiber/fiber/v2"
)

func SetupChatRoutes(app *fiber.App) {
	chatGroup := app.Group("/chat")

	chatGroup.Post("/ask", chatValidator.Ask(), middleware.JWTMiddleware, chatController.Ask)
}
