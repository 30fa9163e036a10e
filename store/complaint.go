package store

import (
	"messfeed/models"
)

// CreateComplaint persists a new complaint. Complaints are append-only;
// there is deliberately no update or delete method.
func (s *Store) CreateComplaint(complaint *models.Complaint) error {
	return translate(s.db.Create(complaint).Error)
}

// ComplaintsByHall returns the most recent complaints for a hall.
func (s *Store) ComplaintsByHall(hallCode string, limit int) ([]models.Complaint, error) {
	if limit < 1 {
		limit = 10
	}
	var complaints []models.Complaint
	if err := s.db.Where("hall_code = ?", hallCode).
		Order("created_at DESC").
		Limit(limit).
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// ComplaintsByUser returns a user's own complaints, newest first.
func (s *Store) ComplaintsByUser(userID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}
