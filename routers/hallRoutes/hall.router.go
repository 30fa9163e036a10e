package hallRoutes

import (
	hallController "messfeed/controllers/hall"
	"messfeed/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupHallRoutes(app *fiber.App, h *hallController.Handler) {
	hallGroup := app.Group("/api/halls", middleware.JWTMiddleware)

	hallGroup.Get("/", h.List)
	hallGroup.Get("/:code/stats/today", h.StatsToday)
	hallGroup.Get("/:code/stats/weekly", h.StatsWeekly)
	hallGroup.Get("/:code/reviews/recent", h.RecentReviews)
	hallGroup.Get("/:code/complaints/recent", h.RecentComplaints)
}
