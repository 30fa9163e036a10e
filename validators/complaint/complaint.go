package complaintValidator

import (
	"strings"

	"messfeed/middleware"
	"messfeed/models"
	"messfeed/utils"

	"github.com/gofiber/fiber/v2"
)

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			HallCode      string `json:"hallCode"`
			MealType      string `json:"mealType"`
			Category      string `json:"category"`
			Text          string `json:"text"`
			ComplaintDate string `json:"complaintDate"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.HallCode == "" {
			errors["hallCode"] = "Hall code is required!"
		}
		if !models.IsValidMealType(reqData.MealType) {
			errors["mealType"] = "Meal type must be one of " + strings.Join(models.ValidMealTypes, ", ") + "!"
		}
		if !models.IsValidCategory(reqData.Category) {
			errors["category"] = "Category must be one of " + strings.Join(models.ValidCategories, ", ") + "!"
		}
		if len(reqData.Text) < 10 {
			errors["text"] = "Complaint must be at least 10 characters!"
		}
		if reqData.ComplaintDate == "" || !utils.IsValidDate(reqData.ComplaintDate) {
			errors["complaintDate"] = "Complaint date must be a valid YYYY-MM-DD day!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
