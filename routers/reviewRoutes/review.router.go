package reviewRoutes

import (
	reviewController "messfeed/controllers/review"
	"messfeed/middleware"
	reviewValidator "messfeed/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App, h *reviewController.Handler) {
	reviewGroup := app.Group("/api/reviews", middleware.JWTMiddleware)

	reviewGroup.Get("/today", h.Today)
	reviewGroup.Get("/my", h.My)
	reviewGroup.Post("/", reviewValidator.Create(), h.Create)
	reviewGroup.Put("/:id", reviewValidator.Update(), h.Update)
}
