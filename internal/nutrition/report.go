package nutrition

import (
	"sort"
	"time"

	"uqifeed/internal/models"
)

// BuildDailyReport aggregates the given entries for one local calendar day
// and compares the result against target. Past days are compared against
// the full-day target; if date is today in loc, the target is pro-rated by
// the elapsed fraction of the day so a half-finished day is not flagged as
// underfed. now doubles as the generation timestamp, which keeps the
// builder deterministic: identical inputs produce a byte-identical report.
func BuildDailyReport(userID uint, date time.Time, entries []models.FoodEntry, target *models.NutritionTarget, loc *time.Location, now time.Time) (*models.DailyReport, error) {
	window := DayWindow(date, loc)
	totals := Aggregate(entries, window)

	scale := 1.0
	localNow := now.In(loc)
	if sameLocalDay(date, localNow, loc) {
		scale = elapsedDayFraction(localNow, loc)
	}

	comparison, err := Compare(totals, target, scale)
	if err != nil {
		return nil, err
	}

	ids := make(models.UintList, 0, len(entries))
	for i := range entries {
		if window.Contains(entries[i].ConsumedAt) {
			ids = append(ids, entries[i].ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return &models.DailyReport{
		UserID:      userID,
		ReportDate:  window.Start.Format(models.DateLayout),
		Timezone:    loc.String(),
		Totals:      totals,
		Comparison:  comparison,
		EntryIDs:    ids,
		NoData:      len(ids) == 0,
		Score:       comparison.Score,
		GeneratedAt: now,
	}, nil
}

// BuildWeeklyReport rolls the given daily reports up into the week starting
// at the Monday of weekStart's week. Days without a daily report are kept
// as no-data slots and excluded from the score average; a week with fewer
// than seven data days is flagged partial rather than treated as complete.
func BuildWeeklyReport(userID uint, weekStart time.Time, dailies []models.DailyReport, loc *time.Location, now time.Time) (*models.WeeklyReport, error) {
	start := StartOfWeek(weekStart, loc)

	byDate := make(map[string]*models.DailyReport, len(dailies))
	for i := range dailies {
		byDate[dailies[i].ReportDate] = &dailies[i]
	}

	days := make(models.WeeklyDayList, 0, 7)
	totals := models.NutrientVector{}
	scoreSum := 0
	withData := 0
	bestDay, worstDay := "", ""
	bestScore, worstScore := -1, 101

	for offset := 0; offset < 7; offset++ {
		date := start.AddDate(0, 0, offset).Format(models.DateLayout)
		daily, ok := byDate[date]
		if !ok || daily.NoData {
			days = append(days, models.WeeklyDay{Date: date, NoData: true})
			continue
		}

		days = append(days, models.WeeklyDay{
			Date:     date,
			Score:    daily.Score,
			Calories: daily.Totals.Get(models.NutrientCalories),
		})
		totals = totals.Add(daily.Totals)
		scoreSum += daily.Score
		withData++

		if daily.Score > bestScore {
			bestScore, bestDay = daily.Score, date
		}
		if daily.Score < worstScore {
			worstScore, worstDay = daily.Score, date
		}
	}

	report := &models.WeeklyReport{
		UserID:        userID,
		WeekStartDate: start.Format(models.DateLayout),
		Timezone:      loc.String(),
		Days:          days,
		Totals:        totals,
		DailyAverages: models.NutrientVector{},
		BestDay:       bestDay,
		WorstDay:      worstDay,
		DaysWithData:  withData,
		IsPartial:     withData < 7,
		GeneratedAt:   now,
	}
	if withData > 0 {
		report.AverageScore = float64(scoreSum) / float64(withData)
		report.DailyAverages = totals.Scale(1 / float64(withData))
	}
	return report, nil
}

func sameLocalDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// elapsedDayFraction measures against the actual local-day length, which
// is 23 or 25 hours on DST transition days.
func elapsedDayFraction(localNow time.Time, loc *time.Location) float64 {
	midnight := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)
	nextMidnight := time.Date(localNow.Year(), localNow.Month(), localNow.Day()+1, 0, 0, 0, 0, loc)
	fraction := localNow.Sub(midnight).Seconds() / nextMidnight.Sub(midnight).Seconds()
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}
