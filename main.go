package main

import (
	"log"

	"messfeed/config"
	authController "messfeed/controllers/auth"
	complaintController "messfeed/controllers/complaint"
	hallController "messfeed/controllers/hall"
	reviewController "messfeed/controllers/review"
	"messfeed/database"
	"messfeed/middleware"
	authRoutes "messfeed/routers/authRoutes"
	complaintRoutes "messfeed/routers/complaintRoutes"
	hallRoutes "messfeed/routers/hallRoutes"
	reviewRoutes "messfeed/routers/reviewRoutes"
	"messfeed/scheduler"
	"messfeed/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	db := database.Connect()
	s := store.New(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authLimiter := middleware.AuthRateLimiter()
	complaintLimiter := middleware.ComplaintRateLimiter()

	authRoutes.SetupAuthRoutes(app, authController.NewHandler(s), authLimiter)
	reviewRoutes.SetupReviewRoutes(app, reviewController.NewHandler(s))
	complaintRoutes.SetupComplaintRoutes(app, complaintController.NewHandler(s), complaintLimiter)
	hallRoutes.SetupHallRoutes(app, hallController.NewHandler(s))

	scheduler.InitializeDigestScheduler(s)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
