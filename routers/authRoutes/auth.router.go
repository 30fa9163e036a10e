package authRoutes

import (
	authController "messfeed/controllers/auth"
	"messfeed/middleware"
	authValidator "messfeed/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, h *authController.Handler, limiter fiber.Handler) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/signup", limiter, authValidator.Signup(), h.Signup)
	authGroup.Post("/login", limiter, authValidator.Login(), h.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, h.Me)
}
