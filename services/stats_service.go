package services

import (
	"context"
	"errors"
	"math"
	"time"

	"nutritrack/models"

	"gorm.io/gorm"
)

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// ---------- Daily ----------

type CalorieProgress struct {
	Consumed   int     `json:"consumed"`
	Goal       float64 `json:"goal"`
	Percentage int     `json:"percentage"`
}

type MacroProgress struct {
	Value float64 `json:"value"`
	Goal  float64 `json:"goal"`
}

type WaterProgress struct {
	Consumed   int     `json:"consumed"` // mL
	Goal       float64 `json:"goal"`     // mL
	Percentage int     `json:"percentage"`
}

type DailyStats struct {
	Date     string          `json:"date"`
	Calories CalorieProgress `json:"calories"`
	Macros   struct {
		Protein MacroProgress `json:"protein"`
		Carbs   MacroProgress `json:"carbs"`
		Fat     MacroProgress `json:"fat"`
	} `json:"macros"`
	Water      WaterProgress `json:"water"`
	MealsCount int           `json:"meals_count"`
}

// ComputeDailyStats folds one day's meals and drinks into goal-relative
// progress. Inputs are assumed pre-filtered to a single calendar date; no
// filtering happens here. Percentages are never clamped: values over 100
// mean the goal was exceeded, and any capping is a display concern.
func ComputeDailyStats(date time.Time, meals []models.Meal, drinks []models.HydrationEntry, goals models.UserGoal) DailyStats {
	var cals, prot, carbs, fat float64
	for _, m := range meals {
		cals += m.Calories
		prot += m.Protein
		carbs += m.Carbs
		fat += m.Fat
	}

	water := 0
	for _, e := range drinks {
		water += e.AmountML
	}

	out := DailyStats{
		Date: date.Format("2006-01-02"),
		Calories: CalorieProgress{
			Consumed:   int(math.Round(cals)),
			Goal:       goals.Calories,
			Percentage: pct(cals, goals.Calories),
		},
		Water: WaterProgress{
			Consumed:   water,
			Goal:       goals.Water,
			Percentage: pct(float64(water), goals.Water),
		},
		MealsCount: len(meals),
	}
	out.Macros.Protein = MacroProgress{Value: round1(prot), Goal: goals.Protein}
	out.Macros.Carbs = MacroProgress{Value: round1(carbs), Goal: goals.Carbs}
	out.Macros.Fat = MacroProgress{Value: round1(fat), Goal: goals.Fat}
	return out
}

// DailyStats aggregates the requested calendar date for one user.
func (s *StatsService) DailyStats(ctx context.Context, userID uint, date time.Time) (*DailyStats, error) {
	day := dayStart(date)

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	var drinks []models.HydrationEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		Find(&drinks).Error; err != nil {
		return nil, err
	}

	goals, err := s.goalSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := ComputeDailyStats(day, meals, drinks, goals)
	return &out, nil
}

// ---------- Weekly ----------

// DayBucket is one pre-fetched day of the weekly window.
type DayBucket struct {
	Date     time.Time
	Calories float64
	Meals    int
}

type WeekDay struct {
	Date     string `json:"date"`
	DayName  string `json:"day_name"`
	Calories int    `json:"calories"`
	IsToday  bool   `json:"is_today"`
}

type WeeklyStats struct {
	Days            []WeekDay `json:"days"`
	AverageCalories int       `json:"average_calories"`
	TotalMeals      int       `json:"total_meals"`
}

// Abbreviated day names, Sunday first (the client is French).
var weekDayNames = [7]string{"D", "L", "M", "M", "J", "V", "S"}

// ComputeWeeklyStats maps 7 contiguous day buckets (oldest first, ending
// today) into the weekly summary. Days without meals count as zero-calorie
// days in the average, not as missing data.
func ComputeWeeklyStats(today time.Time, buckets []DayBucket) WeeklyStats {
	out := WeeklyStats{Days: make([]WeekDay, 0, len(buckets))}
	if len(buckets) == 0 {
		return out
	}

	todayKey := dayStart(today).Format("2006-01-02")
	var total float64
	for _, b := range buckets {
		key := b.Date.Format("2006-01-02")
		out.Days = append(out.Days, WeekDay{
			Date:     key,
			DayName:  weekDayNames[b.Date.Weekday()],
			Calories: int(math.Round(b.Calories)),
			IsToday:  key == todayKey,
		})
		total += b.Calories
		out.TotalMeals += b.Meals
	}
	out.AverageCalories = int(math.Round(total / float64(len(buckets))))
	return out
}

// WeeklyStats covers the 7 calendar days ending at today. The whole window is
// fetched with a single range query and bucketed in memory.
func (s *StatsService) WeeklyStats(ctx context.Context, userID uint, today time.Time) (*WeeklyStats, error) {
	end := dayStart(today)
	start := end.AddDate(0, 0, -6)

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	byDate := make(map[string]*DayBucket, 7)
	buckets := make([]DayBucket, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		buckets[i] = DayBucket{Date: d}
		byDate[d.Format("2006-01-02")] = &buckets[i]
	}
	for _, m := range meals {
		if b, ok := byDate[m.Date.Format("2006-01-02")]; ok {
			b.Calories += m.Calories
			b.Meals++
		}
	}

	out := ComputeWeeklyStats(end, buckets)
	return &out, nil
}

// ---------- Streak ----------

// Streak computes the user's meal-logging streak from one bulk query over the
// lookback window. This replaces querying each of the last 365 days
// individually; all the date math happens in memory.
func (s *StatsService) Streak(ctx context.Context, userID uint, today time.Time) (StreakState, error) {
	from := dayStart(today).AddDate(0, 0, -(streakLookbackDays - 1))

	var dates []time.Time
	if err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Distinct("date").
		Where("user_id = ? AND date >= ?", userID, from).
		Pluck("date", &dates).Error; err != nil {
		return StreakState{}, err
	}

	return ComputeStreak(today, dates), nil
}

// ---------- internals ----------

func (s *StatsService) goalSnapshot(ctx context.Context, userID uint) (models.UserGoal, error) {
	var g models.UserGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultUserGoal(userID), nil
		}
		return models.UserGoal{}, err
	}
	return g, nil
}

// pct reports goal-relative progress. A zero or negative goal yields 0 rather
// than a division error; overshoot past 100 is preserved.
func pct(consumed, goal float64) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(consumed / goal * 100))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
