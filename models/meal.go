package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged meal with its nutrition snapshot. The snapshot is computed once
// at logging time (per-100g values scaled by the portion) and never mutated.
type Meal struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Type   string `gorm:"not null"` // breakfast | lunch | dinner | snack

	Name   string
	Emoji  string
	Source string // search | barcode | photo | manual

	Barcode      string
	PortionGrams float64

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64

	Date  time.Time `gorm:"index;not null"` // truncated to local midnight
	AteAt time.Time                         // timestamp of the meal
}
