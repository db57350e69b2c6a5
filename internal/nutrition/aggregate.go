package nutrition

import (
	"time"

	"uqifeed/internal/models"
)

// Window is a half-open time interval [Start, End) used to select food
// entries. Windows are always built from local dates in an explicit
// timezone so day boundaries follow the user, not the server.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// DayWindow returns the window covering one local calendar day in loc.
func DayWindow(date time.Time, loc *time.Location) Window {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// WeekWindow returns the window covering the seven days starting at the
// Monday of the week containing date, in loc.
func WeekWindow(date time.Time, loc *time.Location) Window {
	start := StartOfWeek(date, loc)
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// StartOfWeek normalizes date to the preceding (or same) Monday at local
// midnight in loc.
func StartOfWeek(date time.Time, loc *time.Location) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// Aggregate elementwise-sums the totals of every entry whose ConsumedAt
// falls inside window. The result is independent of entry order, and an
// empty selection yields a zero vector rather than an error.
func Aggregate(entries []models.FoodEntry, window Window) models.NutrientVector {
	totals := models.NutrientVector{}
	for i := range entries {
		if window.Contains(entries[i].ConsumedAt) {
			totals = totals.Add(entries[i].Totals)
		}
	}
	return totals
}

// RemainingBudget returns how much of the daily target is still open after
// the given intake, floored at zero per nutrient. An overshot nutrient
// reads as zero remaining, never as a negative allowance.
func RemainingBudget(target *models.NutritionTarget, consumed models.NutrientVector) models.NutrientVector {
	return target.AsVector().SubFloor(consumed)
}
