package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	DisplayName string
	FirstName   string
	LastName    string
	PhotoURL    string

	// Physical profile, used for goal auto-calculation.
	WeightKg      float64
	HeightCm      float64
	Birthday      time.Time
	Gender        string // "male" | "female" | "other"
	ActivityLevel string // sedentary | light | moderate | active | veryActive
	WeightGoal    string // lose | maintain | gain

	Onboarded bool
	Disabled  bool
}
