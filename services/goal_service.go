package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nutritrack/models"
	"nutritrack/utils"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

// GetGoals returns the user's targets, or the defaults when none are saved.
func (s *GoalService) GetGoals(ctx context.Context, userID uint) (models.UserGoal, error) {
	var goal models.UserGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultUserGoal(userID), nil
		}
		return models.UserGoal{}, err
	}
	return goal, nil
}

func (s *GoalService) UpsertGoals(ctx context.Context, userID uint, calories, protein, carbs, fat, water float64) (models.UserGoal, error) {
	var goal models.UserGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserGoal{}, err
	}

	goal.UserID = userID
	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat
	goal.Water = water

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return goal, s.db.WithContext(ctx).Create(&goal).Error
	}
	return goal, s.db.WithContext(ctx).Save(&goal).Error
}

// AutoCalculate derives targets from the user's physical profile and persists
// them. Only available when the profile is complete and the gender has a
// defined BMR formula.
func (s *GoalService) AutoCalculate(ctx context.Context, userID uint, today time.Time) (*utils.GoalResult, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("id = ? AND disabled = ?", userID, false).
		First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	if user.WeightKg <= 0 || user.HeightCm <= 0 || user.Birthday.IsZero() {
		return nil, fmt.Errorf("profile is missing weight, height or birthday")
	}
	if !utils.CanAutoCalculate(user.Gender) {
		return nil, fmt.Errorf("goal auto-calculation requires a male or female profile")
	}

	activity := user.ActivityLevel
	if activity == "" {
		activity = "moderate"
	}
	weightGoal := user.WeightGoal
	if weightGoal == "" {
		weightGoal = "maintain"
	}

	result, err := utils.CalculateGoals(utils.GoalInput{
		WeightKg:      user.WeightKg,
		HeightCm:      user.HeightCm,
		AgeYears:      utils.CalculateAge(user.Birthday, today),
		Gender:        user.Gender,
		ActivityLevel: activity,
		WeightGoal:    weightGoal,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.UpsertGoals(ctx, userID,
		float64(result.Calories),
		float64(result.Protein),
		float64(result.Carbs),
		float64(result.Fat),
		float64(result.Water),
	); err != nil {
		return nil, err
	}
	return &result, nil
}
