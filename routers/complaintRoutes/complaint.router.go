package complaintRoutes

import (
	complaintController "messfeed/controllers/complaint"
	"messfeed/middleware"
	complaintValidator "messfeed/validators/complaint"

	"github.com/gofiber/fiber/v2"
)

func SetupComplaintRoutes(app *fiber.App, h *complaintController.Handler, limiter fiber.Handler) {
	complaintGroup := app.Group("/api/complaints", middleware.JWTMiddleware)

	complaintGroup.Post("/", limiter, complaintValidator.Create(), h.Create)
	complaintGroup.Get("/my", h.My)
}
