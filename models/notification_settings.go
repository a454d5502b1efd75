package models

import (
	"gorm.io/gorm"
)

// NotificationSettings stores the user's reminder preferences. This repo only
// persists the toggles; scheduling and delivery happen elsewhere.
type NotificationSettings struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	Enabled      bool
	Hydration    bool
	Meals        bool
	DailySummary bool
	Streak       bool
	Goals        bool
}

func DefaultNotificationSettings(userID uint) NotificationSettings {
	return NotificationSettings{
		UserID:       userID,
		Enabled:      true,
		Hydration:    true,
		Meals:        true,
		DailySummary: true,
		Streak:       true,
		Goals:        false,
	}
}
