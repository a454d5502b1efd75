package models

import (
	"time"

	"gorm.io/gorm"
)

// HydrationEntry is one logged drink. Amount is millilitres and must be > 0.
type HydrationEntry struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	DrinkType string // water | coffee | tea | juice | milk | soda | other
	Name      string
	Emoji     string
	AmountML  int `gorm:"not null"`

	Date time.Time `gorm:"index;not null"` // truncated to local midnight
	Time string    // HH:MM, for display
}
