package models

import "gorm.io/gorm"

// Meal type values accepted on a complaint.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealSnacks    = "Snacks"
	MealDinner    = "Dinner"
	MealGeneral   = "General"
)

// Complaint category values.
const (
	CategoryHygiene   = "Hygiene"
	CategoryTaste     = "Taste"
	CategoryQuantity  = "Quantity"
	CategoryBehaviour = "Behaviour"
	CategoryOther     = "Other"
)

var (
	ValidMealTypes  = []string{MealBreakfast, MealLunch, MealSnacks, MealDinner, MealGeneral}
	ValidCategories = []string{CategoryHygiene, CategoryTaste, CategoryQuantity, CategoryBehaviour, CategoryOther}
)

// Complaint is append-only: no handler updates or deletes one.
// UserID is kept for abuse tracing but never serialized.
type Complaint struct {
	gorm.Model
	UserID        uint   `json:"-" gorm:"not null;index"`
	HallCode      string `json:"hallCode" gorm:"size:10;not null;index"`
	MealType      string `json:"mealType" gorm:"size:20;not null"`
	Category      string `json:"category" gorm:"size:20;not null"`
	Text          string `json:"text" gorm:"type:text;not null"`
	ComplaintDate string `json:"complaintDate" gorm:"size:10;not null"` // YYYY-MM-DD
}

// IsValidMealType reports whether v is one of the accepted meal types.
func IsValidMealType(v string) bool {
	for _, m := range ValidMealTypes {
		if m == v {
			return true
		}
	}
	return false
}

// IsValidCategory reports whether v is one of the accepted categories.
func IsValidCategory(v string) bool {
	for _, c := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}
