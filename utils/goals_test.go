package utils

import (
	"math"
	"testing"
	"time"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		age      int
		gender   string
		want     float64
	}{
		{"male", 70, 175, 30, "male", 1648.75},
		{"female", 70, 175, 30, "female", 1482.75},
		{"heavier male", 90, 180, 45, "male", 1805},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBMR(tt.weight, tt.height, tt.age, tt.gender)
			if got != tt.want {
				t.Errorf("CalculateBMR = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateTDEE(t *testing.T) {
	got, err := CalculateTDEE(1648.75, "moderate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2556 {
		t.Errorf("TDEE = %d, want 2556", got)
	}

	if _, err := CalculateTDEE(1648.75, "couch"); err == nil {
		t.Error("expected error for unknown activity level")
	}
}

func TestCalculateGoals(t *testing.T) {
	in := GoalInput{
		WeightKg:      70,
		HeightCm:      175,
		AgeYears:      30,
		Gender:        "male",
		ActivityLevel: "moderate",
		WeightGoal:    "maintain",
	}

	got, err := CalculateGoals(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.BMR != 1648.75 {
		t.Errorf("BMR = %v, want 1648.75", got.BMR)
	}
	if got.TDEE != 2556 {
		t.Errorf("TDEE = %d, want 2556", got.TDEE)
	}
	if got.Calories != 2556 {
		t.Errorf("Calories = %d, want 2556", got.Calories)
	}
	if got.Protein != 140 {
		t.Errorf("Protein = %d, want 140", got.Protein)
	}
	if got.Fat != 71 {
		t.Errorf("Fat = %d, want 71", got.Fat)
	}
	if got.Carbs != 339 {
		t.Errorf("Carbs = %d, want 339", got.Carbs)
	}
	if got.Water != 2310 {
		t.Errorf("Water = %d, want 2310", got.Water)
	}

	// Macros should re-sum to the calorie target within rounding error.
	sum := float64(got.Protein*4 + got.Carbs*4 + got.Fat*9)
	if math.Abs(sum-float64(got.Calories)) > 4 {
		t.Errorf("macro calories %v too far from target %d", sum, got.Calories)
	}
}

func TestCalculateGoalsAdjustments(t *testing.T) {
	base := GoalInput{
		WeightKg: 70, HeightCm: 175, AgeYears: 30,
		Gender: "male", ActivityLevel: "moderate",
	}

	tests := []struct {
		goal string
		want int
	}{
		{"lose", 2056},
		{"maintain", 2556},
		{"gain", 2856},
	}
	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			in := base
			in.WeightGoal = tt.goal
			got, err := CalculateGoals(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Calories != tt.want {
				t.Errorf("Calories = %d, want %d", got.Calories, tt.want)
			}
		})
	}
}

func TestCalculateGoalsRequiresKnownGender(t *testing.T) {
	in := GoalInput{
		WeightKg: 70, HeightCm: 175, AgeYears: 30,
		Gender: "other", ActivityLevel: "moderate", WeightGoal: "maintain",
	}
	if _, err := CalculateGoals(in); err == nil {
		t.Error("expected error for gender without a formula")
	}

	if CanAutoCalculate("other") {
		t.Error("CanAutoCalculate(other) = true, want false")
	}
	if !CanAutoCalculate("male") || !CanAutoCalculate("female") {
		t.Error("CanAutoCalculate should accept male and female")
	}
}

func TestCalculateAge(t *testing.T) {
	birthday := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"day before birthday", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), 29},
		{"on birthday", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 30},
		{"day after birthday", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), 30},
		{"earlier month", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAge(birthday, tt.today); got != tt.want {
				t.Errorf("CalculateAge = %d, want %d", got, tt.want)
			}
		})
	}
}
