package complaintController

import (
	"log"

	"messfeed/middleware"
	"messfeed/models"
	"messfeed/store"
	"messfeed/utils"

	"github.com/gofiber/fiber/v2"
)

// Handler carries the injected store.
type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

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

	complaint := models.Complaint{
		UserID:        userID,
		HallCode:      reqData.HallCode,
		MealType:      reqData.MealType,
		Category:      reqData.Category,
		Text:          reqData.Text,
		ComplaintDate: reqData.ComplaintDate,
	}

	if err := h.Store.CreateComplaint(&complaint); err != nil {
		log.Printf("Error saving complaint: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit complaint!", nil)
	}

	utils.NotifyComplaintWebhook(complaint)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Complaint submitted successfully!", complaint)
}

// My returns the caller's own complaints, newest first.
func (h *Handler) My(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	complaints, err := h.Store.ComplaintsByUser(userID)
	if err != nil {
		log.Printf("Error fetching complaints for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch complaints!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Complaints fetched!", complaints)
}
