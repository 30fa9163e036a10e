package store

import (
	"messfeed/models"
	"messfeed/utils"
)

// DailyStats carries the per-meal mean ratings for one hall on one day.
// A nil mean says no rating was given for that meal, distinct from zero.
// TotalReviews counts review rows, whichever meals they populate.
type DailyStats struct {
	Breakfast    *float64 `json:"breakfast"`
	Lunch        *float64 `json:"lunch"`
	Snacks       *float64 `json:"snacks"`
	Dinner       *float64 `json:"dinner"`
	TotalReviews int      `json:"totalReviews"`
}

// WeeklyStats is one day's means inside the trailing 7-day window.
type WeeklyStats struct {
	Date      string   `json:"date"`
	Breakfast *float64 `json:"breakfast"`
	Lunch     *float64 `json:"lunch"`
	Snacks    *float64 `json:"snacks"`
	Dinner    *float64 `json:"dinner"`
}

// DailyStats computes the per-meal mean ratings for a hall on a given day.
// SQL AVG skips NULLs, so absent ratings drop out of both numerator and
// denominator. A day with no reviews yields four nil means and a zero count.
func (s *Store) DailyStats(hallCode, date string) (*DailyStats, error) {
	var stats DailyStats
	err := s.db.Model(&models.Review{}).
		Select("AVG(breakfast_rating) AS breakfast, AVG(lunch_rating) AS lunch, AVG(snacks_rating) AS snacks, AVG(dinner_rating) AS dinner, COUNT(*) AS total_reviews").
		Where("hall_code = ? AND review_date = ?", hallCode, date).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// WeeklyStats groups a hall's reviews by day over the inclusive trailing
// 7-day window ending today, newest day first. Days without a single review
// row produce no entry at all; days whose rows carry only NULL ratings still
// appear, with nil means.
func (s *Store) WeeklyStats(hallCode string) ([]WeeklyStats, error) {
	var stats []WeeklyStats
	err := s.db.Model(&models.Review{}).
		Select("review_date AS date, AVG(breakfast_rating) AS breakfast, AVG(lunch_rating) AS lunch, AVG(snacks_rating) AS snacks, AVG(dinner_rating) AS dinner").
		Where("hall_code = ? AND review_date BETWEEN ? AND ?", hallCode, utils.WeekStart(), utils.Today()).
		Group("review_date").
		Order("review_date DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
