package services

import (
	"testing"
	"time"

	"nutritrack/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeDailyStats(t *testing.T) {
	date := day(2025, 3, 15)
	meals := []models.Meal{
		{Calories: 450.4, Protein: 30.25, Carbs: 55, Fat: 12.5},
		{Calories: 320.2, Protein: 12.5, Carbs: 40.1, Fat: 9.9},
	}
	drinks := []models.HydrationEntry{
		{AmountML: 250},
		{AmountML: 500},
	}
	goals := models.UserGoal{Calories: 2000, Protein: 130, Carbs: 280, Fat: 75, Water: 2500}

	got := ComputeDailyStats(date, meals, drinks, goals)

	if got.Date != "2025-03-15" {
		t.Errorf("Date = %s, want 2025-03-15", got.Date)
	}
	if got.Calories.Consumed != 771 {
		t.Errorf("Calories.Consumed = %d, want 771", got.Calories.Consumed)
	}
	if got.Calories.Percentage != 39 {
		t.Errorf("Calories.Percentage = %d, want 39", got.Calories.Percentage)
	}
	if got.Macros.Protein.Value != 42.8 {
		t.Errorf("Protein = %v, want 42.8", got.Macros.Protein.Value)
	}
	if got.Macros.Carbs.Value != 95.1 {
		t.Errorf("Carbs = %v, want 95.1", got.Macros.Carbs.Value)
	}
	if got.Macros.Fat.Value != 22.4 {
		t.Errorf("Fat = %v, want 22.4", got.Macros.Fat.Value)
	}
	if got.Water.Consumed != 750 || got.Water.Percentage != 30 {
		t.Errorf("Water = %d (%d%%), want 750 (30%%)", got.Water.Consumed, got.Water.Percentage)
	}
	if got.MealsCount != 2 {
		t.Errorf("MealsCount = %d, want 2", got.MealsCount)
	}
}

func TestComputeDailyStatsOrderIndependent(t *testing.T) {
	date := day(2025, 3, 15)
	meals := []models.Meal{
		{Calories: 450.4, Protein: 30.25, Carbs: 55, Fat: 12.5},
		{Calories: 320.2, Protein: 12.5, Carbs: 40.1, Fat: 9.9},
		{Calories: 110, Protein: 4, Carbs: 20, Fat: 1},
	}
	reversed := []models.Meal{meals[2], meals[1], meals[0]}
	goals := models.DefaultUserGoal(1)

	a := ComputeDailyStats(date, meals, nil, goals)
	b := ComputeDailyStats(date, reversed, nil, goals)
	if a != b {
		t.Errorf("stats depend on meal order:\n%+v\n%+v", a, b)
	}
}

func TestComputeDailyStatsZeroGoal(t *testing.T) {
	date := day(2025, 3, 15)
	meals := []models.Meal{{Calories: 500}}
	got := ComputeDailyStats(date, meals, nil, models.UserGoal{})

	if got.Calories.Percentage != 0 {
		t.Errorf("Percentage with zero goal = %d, want 0", got.Calories.Percentage)
	}
	if got.Water.Percentage != 0 {
		t.Errorf("Water.Percentage with zero goal = %d, want 0", got.Water.Percentage)
	}
}

func TestComputeDailyStatsOvershootNotClamped(t *testing.T) {
	date := day(2025, 3, 15)
	meals := []models.Meal{{Calories: 2500}}
	goals := models.UserGoal{Calories: 2000}

	got := ComputeDailyStats(date, meals, nil, goals)
	if got.Calories.Percentage != 125 {
		t.Errorf("Percentage = %d, want 125", got.Calories.Percentage)
	}
}

func TestComputeDailyStatsEmptyDay(t *testing.T) {
	got := ComputeDailyStats(day(2025, 3, 15), nil, nil, models.DefaultUserGoal(1))
	if got.Calories.Consumed != 0 || got.Calories.Percentage != 0 || got.MealsCount != 0 {
		t.Errorf("empty day not zeroed: %+v", got)
	}
}

func TestComputeWeeklyStats(t *testing.T) {
	// 2025-03-15 is a Saturday; the window runs Sunday the 9th through Saturday.
	today := day(2025, 3, 15)
	start := day(2025, 3, 9)

	buckets := make([]DayBucket, 7)
	for i := range buckets {
		buckets[i] = DayBucket{Date: start.AddDate(0, 0, i)}
	}
	buckets[1].Calories, buckets[1].Meals = 2100, 3
	buckets[3].Calories, buckets[3].Meals = 1800.4, 2
	buckets[6].Calories, buckets[6].Meals = 2400, 4

	got := ComputeWeeklyStats(today, buckets)

	if len(got.Days) != 7 {
		t.Fatalf("len(Days) = %d, want 7", len(got.Days))
	}
	wantNames := []string{"D", "L", "M", "M", "J", "V", "S"}
	for i, d := range got.Days {
		if d.DayName != wantNames[i] {
			t.Errorf("Days[%d].DayName = %s, want %s", i, d.DayName, wantNames[i])
		}
	}
	if !got.Days[6].IsToday {
		t.Error("last day should be flagged as today")
	}
	for i := 0; i < 6; i++ {
		if got.Days[i].IsToday {
			t.Errorf("Days[%d] wrongly flagged as today", i)
		}
	}
	if got.Days[3].Calories != 1800 {
		t.Errorf("Days[3].Calories = %d, want 1800", got.Days[3].Calories)
	}

	// Zero days stay in the average: (2100+1800.4+2400)/7.
	if got.AverageCalories != 900 {
		t.Errorf("AverageCalories = %d, want 900", got.AverageCalories)
	}
	if got.TotalMeals != 9 {
		t.Errorf("TotalMeals = %d, want 9", got.TotalMeals)
	}
}

func TestComputeWeeklyStatsEmpty(t *testing.T) {
	got := ComputeWeeklyStats(day(2025, 3, 15), nil)
	if len(got.Days) != 0 || got.AverageCalories != 0 || got.TotalMeals != 0 {
		t.Errorf("empty window not zeroed: %+v", got)
	}
}
