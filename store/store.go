package store

import (
	"errors"

	"messfeed/models"

	"gorm.io/gorm"
)

// Sentinel errors controllers map onto HTTP statuses.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the relational access layer for users, halls, reviews and
// complaints. It owns every query the controllers run.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// UserByID fetches a user by primary key.
func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UserByEmail fetches a user by unique email.
func (s *Store) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// CreateUser persists a new user. Returns ErrDuplicate when the email is
// already registered.
func (s *Store) CreateUser(user *models.User) error {
	return translate(s.db.Create(user).Error)
}

// Halls returns every active hall.
func (s *Store) Halls() ([]models.Hall, error) {
	var halls []models.Hall
	if err := s.db.Where("is_active = ?", true).Order("hall_code").Find(&halls).Error; err != nil {
		return nil, err
	}
	return halls, nil
}

// HallByCode fetches a hall by its short code.
func (s *Store) HallByCode(code string) (*models.Hall, error) {
	var hall models.Hall
	if err := s.db.Where("hall_code = ?", code).First(&hall).Error; err != nil {
		return nil, translate(err)
	}
	return &hall, nil
}

// CreateHall persists a new hall.
func (s *Store) CreateHall(hall *models.Hall) error {
	return translate(s.db.Create(hall).Error)
}
