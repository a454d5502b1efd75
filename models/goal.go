package models

import (
	"gorm.io/gorm"
)

// UserGoal holds each user's daily nutrition targets.
type UserGoal struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null"`
	Calories float64 // kcal
	Protein  float64 // g
	Carbs    float64 // g
	Fat      float64 // g
	Water    float64 // mL
}

// DefaultUserGoal is applied when a user has not set targets yet.
func DefaultUserGoal(userID uint) UserGoal {
	return UserGoal{
		UserID:   userID,
		Calories: 2200,
		Protein:  130,
		Carbs:    280,
		Fat:      75,
		Water:    2500,
	}
}
