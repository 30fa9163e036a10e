package hallController

import (
	"log"

	"messfeed/middleware"
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

// List returns every active hall.
func (h *Handler) List(c *fiber.Ctx) error {
	halls, err := h.Store.Halls()
	if err != nil {
		log.Printf("Error fetching halls: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch halls!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Halls fetched!", halls)
}

// StatsToday returns today's per-meal averages for a hall.
func (h *Handler) StatsToday(c *fiber.Ctx) error {
	hallCode := c.Params("code")

	stats, err := h.Store.DailyStats(hallCode, utils.Today())
	if err != nil {
		log.Printf("Error computing daily stats for %s: %v", hallCode, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily stats computed!", stats)
}

// StatsWeekly returns per-day averages over the trailing 7-day window.
func (h *Handler) StatsWeekly(c *fiber.Ctx) error {
	hallCode := c.Params("code")

	stats, err := h.Store.WeeklyStats(hallCode)
	if err != nil {
		log.Printf("Error computing weekly stats for %s: %v", hallCode, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Weekly stats computed!", stats)
}

// RecentReviews returns the hall's latest reviews (at most 10).
func (h *Handler) RecentReviews(c *fiber.Ctx) error {
	hallCode := c.Params("code")

	reviews, err := h.Store.ReviewsByHall(hallCode, 10)
	if err != nil {
		log.Printf("Error fetching recent reviews for %s: %v", hallCode, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", reviews)
}

// RecentComplaints returns the hall's latest complaints (at most 10),
// without submitter identity.
func (h *Handler) RecentComplaints(c *fiber.Ctx) error {
	hallCode := c.Params("code")

	complaints, err := h.Store.ComplaintsByHall(hallCode, 10)
	if err != nil {
		log.Printf("Error fetching recent complaints for %s: %v", hallCode, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch complaints!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Complaints fetched!", complaints)
}
