package services

import (
	"sort"
	"time"
)

// Days of history considered when computing streaks.
const streakLookbackDays = 365

type StreakState struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

const dayKey = "2006-01-02"

// ComputeStreak derives the current and longest consecutive-day streaks from
// the set of calendar dates on which the user logged at least one meal.
// `today` is injected by the caller so the computation stays deterministic.
//
// The current streak starts at today when today has a meal, otherwise at
// yesterday: a day still in progress never breaks a streak.
func ComputeStreak(today time.Time, datesWithMeals []time.Time) StreakState {
	if len(datesWithMeals) == 0 {
		return StreakState{}
	}

	seen := make(map[string]struct{}, len(datesWithMeals))
	days := make([]time.Time, 0, len(datesWithMeals))
	for _, d := range datesWithMeals {
		key := d.Format(dayKey)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, dayStart(d))
	}

	start := dayStart(today)
	if _, ok := seen[start.Format(dayKey)]; !ok {
		start = start.AddDate(0, 0, -1)
	}
	current := 0
	for d := start; ; d = d.AddDate(0, 0, -1) {
		if _, ok := seen[d.Format(dayKey)]; !ok {
			break
		}
		current++
	}

	// Longest run: sort once, then scan for maximal stretches of dates exactly
	// one day apart. The active streak is itself one of the runs.
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	longest, run := 0, 0
	for i, d := range days {
		if i > 0 && days[i-1].AddDate(0, 0, -1).Format(dayKey) == d.Format(dayKey) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return StreakState{Current: current, Longest: longest}
}
