package main

import (
	"log"

	"neuroscan/config"
	"neuroscan/database"
	"neuroscan/inference"
	authRoutes "neuroscan/routers/authRoutes"
	chatRoutes "neuroscan/routers/chatRoutes"
	detectionRoutes "neuroscan/routers/detectionRoutes"
	historyRoutes "neuroscan/routers/historyRoutes"
	infoRoutes "neuroscan/routers/infoRoutes"
	userRoutes "neuroscan/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	inference.Init()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	detectionRoutes.SetupDetectionRoutes(app)
	historyRoutes.SetupHistoryRoutes(app)
	chatRoutes.SetupChatRoutes(app)
	infoRoutes.SetupInfoRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
