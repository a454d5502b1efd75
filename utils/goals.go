package utils

import (
	"fmt"
	"math"
	"time"
)

// Activity multipliers applied to BMR to estimate total daily expenditure.
var ActivityMultipliers = map[string]float64{
	"sedentary":  1.2,
	"light":      1.375,
	"moderate":   1.55,
	"active":     1.725,
	"veryActive": 1.9,
}

// Daily calorie adjustment per weight goal: a 500 kcal deficit to lose,
// a 300 kcal surplus to gain.
var GoalAdjustments = map[string]float64{
	"lose":     -500,
	"maintain": 0,
	"gain":     300,
}

// CalculateBMR estimates basal metabolic rate with the Mifflin-St Jeor
// formula. The result is deliberately unrounded; rounding happens downstream
// in CalculateTDEE and CalculateGoals.
func CalculateBMR(weightKg, heightCm float64, ageYears int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "male" {
		return base + 5
	}
	return base - 161
}

// CalculateTDEE scales BMR by the activity multiplier.
func CalculateTDEE(bmr float64, activityLevel string) (int, error) {
	mult, ok := ActivityMultipliers[activityLevel]
	if !ok {
		return 0, fmt.Errorf("unknown activity level %q", activityLevel)
	}
	return int(math.Round(bmr * mult)), nil
}

// CanAutoCalculate reports whether goal auto-calculation is available for the
// given gender. Mifflin-St Jeor only defines male and female constants; other
// values keep manual goal entry instead of guessing a formula.
func CanAutoCalculate(gender string) bool {
	return gender == "male" || gender == "female"
}

type GoalInput struct {
	WeightKg      float64
	HeightCm      float64
	AgeYears      int
	Gender        string
	ActivityLevel string
	WeightGoal    string
}

type GoalResult struct {
	Calories int     `json:"calories"` // kcal
	Protein  int     `json:"protein"`  // g
	Carbs    int     `json:"carbs"`    // g
	Fat      int     `json:"fat"`      // g
	Water    int     `json:"water"`    // mL
	BMR      float64 `json:"bmr"`
	TDEE     int     `json:"tdee"`
}

// CalculateGoals derives daily targets from physical attributes.
// Protein is 2 g per kg of body weight, fat takes 25% of calories, carbs get
// whatever calories remain at 4 kcal/g, and water is 33 mL per kg.
func CalculateGoals(in GoalInput) (GoalResult, error) {
	if !CanAutoCalculate(in.Gender) {
		return GoalResult{}, fmt.Errorf("goal auto-calculation requires a male or female profile")
	}

	bmr := CalculateBMR(in.WeightKg, in.HeightCm, in.AgeYears, in.Gender)
	tdee, err := CalculateTDEE(bmr, in.ActivityLevel)
	if err != nil {
		return GoalResult{}, err
	}

	adj, ok := GoalAdjustments[in.WeightGoal]
	if !ok {
		return GoalResult{}, fmt.Errorf("unknown weight goal %q", in.WeightGoal)
	}
	calories := int(math.Round(float64(tdee) + adj))

	protein := int(math.Round(in.WeightKg * 2))
	fat := int(math.Round(float64(calories) * 0.25 / 9))
	carbs := int(math.Round(float64(calories-protein*4-fat*9) / 4))
	water := int(math.Round(in.WeightKg * 33))

	return GoalResult{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Water:    water,
		BMR:      bmr,
		TDEE:     tdee,
	}, nil
}

// CalculateAge returns full calendar years between birthday and today,
// decrementing when the birthday has not occurred yet this year.
func CalculateAge(birthday, today time.Time) int {
	age := today.Year() - birthday.Year()
	if today.Month() < birthday.Month() ||
		(today.Month() == birthday.Month() && today.Day() < birthday.Day()) {
		age--
	}
	return age
}
