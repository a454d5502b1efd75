package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"nutritrack/models"

	"gorm.io/gorm"
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

var mealTypes = map[string]struct{}{
	"breakfast": {},
	"lunch":     {},
	"dinner":    {},
	"snack":     {},
}

// Nutrition is a calories/macros snapshot, either per 100 g (food products)
// or per portion (logged meals).
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// ScaleNutrition converts per-100g values to a portion. Calories round to the
// nearest kcal, macros to one decimal.
func ScaleNutrition(per100g Nutrition, portionGrams float64) Nutrition {
	factor := portionGrams / 100
	return Nutrition{
		Calories: math.Round(per100g.Calories * factor),
		Protein:  math.Round(per100g.Protein*factor*10) / 10,
		Carbs:    math.Round(per100g.Carbs*factor*10) / 10,
		Fat:      math.Round(per100g.Fat*factor*10) / 10,
	}
}

type AddMealInput struct {
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	Emoji        string    `json:"emoji"`
	Source       string    `json:"source"` // search | barcode | photo | manual
	Barcode      string    `json:"barcode"`
	PortionGrams float64   `json:"portion_grams"`
	Per100g      Nutrition `json:"nutrition_per_100g"`
	AteAt        time.Time `json:"ate_at"`
}

func (s *MealService) AddMeal(ctx context.Context, userID uint, in AddMealInput) (*models.Meal, error) {
	if _, ok := mealTypes[in.Type]; !ok {
		return nil, fmt.Errorf("invalid meal type %q", in.Type)
	}
	if in.PortionGrams <= 0 {
		in.PortionGrams = 100
	}
	if in.AteAt.IsZero() {
		return nil, fmt.Errorf("ate_at is required")
	}

	nut := ScaleNutrition(in.Per100g, in.PortionGrams)
	meal := &models.Meal{
		UserID:       userID,
		Type:         in.Type,
		Name:         in.Name,
		Emoji:        in.Emoji,
		Source:       in.Source,
		Barcode:      in.Barcode,
		PortionGrams: in.PortionGrams,
		Calories:     nut.Calories,
		Protein:      nut.Protein,
		Carbs:        nut.Carbs,
		Fat:          nut.Fat,
		Date:         dayStart(in.AteAt),
		AteAt:        in.AteAt,
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) ListMealsByDate(ctx context.Context, userID uint, date time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, dayStart(date)).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListRecentMeals(ctx context.Context, userID uint, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 10
	}
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

// UpdateMealType re-categorizes a meal. The nutrition snapshot and calendar
// date are immutable once logged.
func (s *MealService) UpdateMealType(ctx context.Context, userID, mealID uint, mealType string) (*models.Meal, error) {
	if _, ok := mealTypes[mealType]; !ok {
		return nil, fmt.Errorf("invalid meal type %q", mealType)
	}

	var meal models.Meal
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}
	meal.Type = mealType
	if err := s.db.WithContext(ctx).Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uint) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
}
