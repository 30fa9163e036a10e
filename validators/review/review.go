package reviewValidator

import (
	"messfeed/middleware"
	"messfeed/utils"

	"github.com/gofiber/fiber/v2"
)

func validRating(r *int) bool {
	return r == nil || (*r >= 1 && *r <= 5)
}

type ratingFields struct {
	BreakfastRating *int `json:"breakfastRating"`
	LunchRating     *int `json:"lunchRating"`
	SnacksRating    *int `json:"snacksRating"`
	DinnerRating    *int `json:"dinnerRating"`
}

func checkRatings(r ratingFields, errors map[string]string) {
	if !validRating(r.BreakfastRating) {
		errors["breakfastRating"] = "Rating must be between 1 and 5!"
	}
	if !validRating(r.LunchRating) {
		errors["lunchRating"] = "Rating must be between 1 and 5!"
	}
	if !validRating(r.SnacksRating) {
		errors["snacksRating"] = "Rating must be between 1 and 5!"
	}
	if !validRating(r.DinnerRating) {
		errors["dinnerRating"] = "Rating must be between 1 and 5!"
	}
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			HallCode   string `json:"hallCode"`
			ReviewDate string `json:"reviewDate"`
			ratingFields
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.HallCode == "" {
			errors["hallCode"] = "Hall code is required!"
		}
		if reqData.ReviewDate == "" || !utils.IsValidDate(reqData.ReviewDate) {
			errors["reviewDate"] = "Review date must be a valid YYYY-MM-DD day!"
		}
		checkRatings(reqData.ratingFields, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// Update validator middleware. Everything is optional on an update; only
// shape is checked here, ownership and the same-day rule live in the
// controller.
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ratingFields)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		checkRatings(*reqData, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
