package models

import "gorm.io/gorm"

// Review holds one student's meal ratings for one calendar day.
// Ratings are pointers: a nil rating means the student skipped that meal,
// which is not the same thing as rating it zero.
type Review struct {
	gorm.Model
	UserID     uint   `json:"userId" gorm:"not null;uniqueIndex:idx_reviews_user_date"`
	HallCode   string `json:"hallCode" gorm:"size:10;not null;index"`
	ReviewDate string `json:"reviewDate" gorm:"size:10;not null;uniqueIndex:idx_reviews_user_date"` // YYYY-MM-DD

	BreakfastRating  *int   `json:"breakfastRating" gorm:"check:breakfast_rating BETWEEN 1 AND 5"`
	BreakfastComment string `json:"breakfastComment" gorm:"type:text;default:''"`
	LunchRating      *int   `json:"lunchRating" gorm:"check:lunch_rating BETWEEN 1 AND 5"`
	LunchComment     string `json:"lunchComment" gorm:"type:text;default:''"`
	SnacksRating     *int   `json:"snacksRating" gorm:"check:snacks_rating BETWEEN 1 AND 5"`
	SnacksComment    string `json:"snacksComment" gorm:"type:text;default:''"`
	DinnerRating     *int   `json:"dinnerRating" gorm:"check:dinner_rating BETWEEN 1 AND 5"`
	DinnerComment    string `json:"dinnerComment" gorm:"type:text;default:''"`
}
