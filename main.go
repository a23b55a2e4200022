package main

import (
	"log"

	"movieflix/config"
	"movieflix/database"
	"movieflix/handler"
	"movieflix/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
		MaxAge:       600,
	}))

	database.ConnectDB()
	database.ConnectRedis()
	database.SeedMovies(database.DB)

	handler.StartShowtimeScheduler()
	defer handler.StopShowtimeScheduler()

	router.SetupRoutes(app)

	port := config.ConfigOr("PORT", "5000")
	log.Fatal(app.Listen(":" + port))
}
