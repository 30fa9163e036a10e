package models

import "gorm.io/gorm"

// Hall is a meal-serving unit. Single row ("RK") today, a table so more
// halls can be onboarded without a schema change.
type Hall struct {
	gorm.Model
	HallCode string `json:"hallCode" gorm:"size:10;unique;not null"`
	HallName string `json:"hallName" gorm:"not null"`
	IsActive bool   `json:"isActive" gorm:"not null"`
}
