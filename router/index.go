package router

import (
	"movieflix/handler"
	"movieflix/middleware"
	"movieflix/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/register", validate.RegisterCustomer(), handler.RegisterCustomer)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Get("/me", middleware.Protected(), handler.Me)

	movie := api.Group("/movies")
	movie.Get("/", handler.GetMovies)
	movie.Get("/slug/:slug", handler.GetMovieBySlug)
	movie.Get("/:movieId", validate.GetById("movieId"), handler.GetMovieById)
	movie.Post("/", middleware.Protected(), validate.CreateMovie(), handler.CreateMovie)

	booking := api.Group("/bookings")
	booking.Post("/create-order", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	booking.Post("/verify-payment", middleware.Protected(), validate.VerifyPayment(), handler.VerifyPayment)
	booking.Get("/my-bookings", middleware.Protected(), handler.GetMyBookings)

	receipt := api.Group("/receipts")
	receipt.Get("/my-receipts", middleware.Protected(), handler.GetMyReceipts)
	receipt.Get("/:receiptId/qr", middleware.Protected(), validate.GetById("receiptId"), handler.GetReceiptQRCode)
	receipt.Get("/:receiptId", middleware.Protected(), validate.GetById("receiptId"), handler.GetReceiptById)

	api.Post("/seed", handler.SeedMovies)
}
