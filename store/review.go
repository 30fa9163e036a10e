package store

import (
	"messfeed/models"
)

// ReviewByID fetches a review by primary key.
func (s *Store) ReviewByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.Where("id = ?", id).First(&review).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

// ReviewByUserAndDate fetches the single review a user filed for a calendar
// day, or ErrNotFound.
func (s *Store) ReviewByUserAndDate(userID uint, date string) (*models.Review, error) {
	var review models.Review
	if err := s.db.Where("user_id = ? AND review_date = ?", userID, date).First(&review).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

// ReviewsByUser returns all of a user's reviews, newest review day first.
func (s *Store) ReviewsByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("user_id = ?", userID).
		Order("review_date DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ReviewsByHall returns the most recently submitted reviews for a hall.
func (s *Store) ReviewsByHall(hallCode string, limit int) ([]models.Review, error) {
	if limit < 1 {
		limit = 10
	}
	var reviews []models.Review
	if err := s.db.Where("hall_code = ?", hallCode).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview persists a new review. The (user_id, review_date) unique
// index makes concurrent creates for the same day race safely: exactly one
// insert wins and the loser gets ErrDuplicate.
func (s *Store) CreateReview(review *models.Review) error {
	return translate(s.db.Create(review).Error)
}

// UpdateReview saves a mutated review row and bumps updated_at.
func (s *Store) UpdateReview(review *models.Review) error {
	return translate(s.db.Save(review).Error)
}
