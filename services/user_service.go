package services

import (
	"errors"
	"fmt"
	"time"

	"nutritrack/config"
	"nutritrack/models"
	"nutritrack/utils"
)

type ProfileInput struct {
	DisplayName    string  `json:"display_name"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Birthday       string  `json:"birthday"` // YYYY-MM-DD
	HeightCm       float64 `json:"height_cm"`
	WeightKg       float64 `json:"weight_kg"`
	Gender         string  `json:"gender"`
	ActivityLevel  string  `json:"activity_level"`
	WeightGoal     string  `json:"weight_goal"`
	ProfilePicture string  `json:"profile_picture"` // base64 data URI
	Onboarded      bool    `json:"onboarded"`
}

func GetUserProfile(userID uint, today time.Time) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday, today)
	}

	profile := map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"display_name":   user.DisplayName,
		"first_name":     user.FirstName,
		"last_name":      user.LastName,
		"photo_url":      user.PhotoURL,
		"weight_kg":      user.WeightKg,
		"height_cm":      user.HeightCm,
		"age":            age,
		"gender":         user.Gender,
		"activity_level": user.ActivityLevel,
		"weight_goal":    user.WeightGoal,
		"onboarded":      user.Onboarded,
		"can_auto_calculate": user.WeightKg > 0 && user.HeightCm > 0 &&
			!user.Birthday.IsZero() && utils.CanAutoCalculate(user.Gender),
	}

	if !user.Birthday.IsZero() {
		profile["birthday"] = user.Birthday.Format("2006-01-02")
	}
	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		profile["bmi"] = round1(bmi)
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.ActivityLevel != "" {
		if _, ok := utils.ActivityMultipliers[input.ActivityLevel]; !ok {
			return fmt.Errorf("unknown activity level %q", input.ActivityLevel)
		}
		user.ActivityLevel = input.ActivityLevel
	}
	if input.WeightGoal != "" {
		if _, ok := utils.GoalAdjustments[input.WeightGoal]; !ok {
			return fmt.Errorf("unknown weight goal %q", input.WeightGoal)
		}
		user.WeightGoal = input.WeightGoal
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		user.PhotoURL = url
	}
	user.Onboarded = input.Onboarded

	return config.DB.Save(&user).Error
}

// GetNotificationSettings falls back to defaults when the user never saved any.
func GetNotificationSettings(userID uint) (models.NotificationSettings, error) {
	var settings models.NotificationSettings
	err := config.DB.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		return models.DefaultNotificationSettings(userID), nil
	}
	return settings, nil
}

func UpdateNotificationSettings(userID uint, updated models.NotificationSettings) error {
	var settings models.NotificationSettings
	err := config.DB.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		settings = models.DefaultNotificationSettings(userID)
	}

	settings.UserID = userID
	settings.Enabled = updated.Enabled
	settings.Hydration = updated.Hydration
	settings.Meals = updated.Meals
	settings.DailySummary = updated.DailySummary
	settings.Streak = updated.Streak
	settings.Goals = updated.Goals

	return config.DB.Save(&settings).Error
}
