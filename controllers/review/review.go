package reviewController

import (
	"errors"
	"log"
	"strconv"

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

// Today returns the caller's review for the current day, 404 when none.
func (h *Handler) Today(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	review, err := h.Store.ReviewByUserAndDate(userID, utils.Today())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No review found for today!", nil)
		}
		log.Printf("Error fetching today's review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review fetched!", review)
}

// My returns all of the caller's reviews, newest day first.
func (h *Handler) My(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reviews, err := h.Store.ReviewsByUser(userID)
	if err != nil {
		log.Printf("Error fetching reviews for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", reviews)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData := new(struct {
		HallCode         string `json:"hallCode"`
		ReviewDate       string `json:"reviewDate"`
		BreakfastRating  *int   `json:"breakfastRating"`
		BreakfastComment string `json:"breakfastComment"`
		LunchRating      *int   `json:"lunchRating"`
		LunchComment     string `json:"lunchComment"`
		SnacksRating     *int   `json:"snacksRating"`
		SnacksComment    string `json:"snacksComment"`
		DinnerRating     *int   `json:"dinnerRating"`
		DinnerComment    string `json:"dinnerComment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// One review per user per day
	if _, err := h.Store.ReviewByUserAndDate(userID, reqData.ReviewDate); err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You've already submitted a review for this date!", nil)
	}

	review := models.Review{
		UserID:           userID,
		HallCode:         reqData.HallCode,
		ReviewDate:       reqData.ReviewDate,
		BreakfastRating:  reqData.BreakfastRating,
		BreakfastComment: reqData.BreakfastComment,
		LunchRating:      reqData.LunchRating,
		LunchComment:     reqData.LunchComment,
		SnacksRating:     reqData.SnacksRating,
		SnacksComment:    reqData.SnacksComment,
		DinnerRating:     reqData.DinnerRating,
		DinnerComment:    reqData.DinnerComment,
	}

	if err := h.Store.CreateReview(&review); err != nil {
		// Losing the insert race lands here, not in the lookup above.
		if errors.Is(err, store.ErrDuplicate) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You've already submitted a review for this date!", nil)
		}
		log.Printf("Error saving review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reviewID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	review, err := h.Store.ReviewByID(uint(reviewID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
		}
		log.Printf("Error fetching review %d: %v", reviewID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch review!", nil)
	}

	if review.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only edit your own reviews!", nil)
	}

	// Edits close once the calendar day rolls over.
	if review.ReviewDate != utils.Today() {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You can only edit today's review!", nil)
	}

	reqData := new(struct {
		BreakfastRating  *int    `json:"breakfastRating"`
		BreakfastComment *string `json:"breakfastComment"`
		LunchRating      *int    `json:"lunchRating"`
		LunchComment     *string `json:"lunchComment"`
		SnacksRating     *int    `json:"snacksRating"`
		SnacksComment    *string `json:"snacksComment"`
		DinnerRating     *int    `json:"dinnerRating"`
		DinnerComment    *string `json:"dinnerComment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Merge only the provided fields
	if reqData.BreakfastRating != nil {
		review.BreakfastRating = reqData.BreakfastRating
	}
	if reqData.BreakfastComment != nil {
		review.BreakfastComment = *reqData.BreakfastComment
	}
	if reqData.LunchRating != nil {
		review.LunchRating = reqData.LunchRating
	}
	if reqData.LunchComment != nil {
		review.LunchComment = *reqData.LunchComment
	}
	if reqData.SnacksRating != nil {
		review.SnacksRating = reqData.SnacksRating
	}
	if reqData.SnacksComment != nil {
		review.SnacksComment = *reqData.SnacksComment
	}
	if reqData.DinnerRating != nil {
		review.DinnerRating = reqData.DinnerRating
	}
	if reqData.DinnerComment != nil {
		review.DinnerComment = *reqData.DinnerComment
	}

	if err := h.Store.UpdateReview(review); err != nil {
		log.Printf("Error updating review %d: %v", reviewID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
}
