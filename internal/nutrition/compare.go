package nutrition

import (
	"math"
	"sort"

	"uqifeed/internal/models"
)

// Deviation thresholds in percent. Within the band a nutrient counts as
// on target; beyond it the entry is classified under or over.
const (
	UnderThresholdPct = -10.0
	OverThresholdPct  = 10.0
)

// Wider bands used for the strength/weakness commentary.
const (
	strongDeficitPct = -30.0
	strongExcessPct  = 30.0
)

// Per-nutrient score weights. Calories dominate; any nutrient not listed
// (micronutrients, open keys) gets the default weight.
var scoreWeights = map[string]float64{
	models.NutrientCalories: 0.30,
	models.NutrientProtein:  0.20,
	models.NutrientFiber:    0.20,
	models.NutrientFat:      0.15,
	models.NutrientCarbs:    0.15,
}

const defaultScoreWeight = 0.05

// Cap on the penalty a single nutrient can contribute to the score.
const maxPenaltyPerNutrient = 50.0

// Compare evaluates actual intake against a target, pro-rated by scale.
// scale 1.0 compares a full period; a fraction compares intake-so-far
// against the elapsed share of the day. Every nutrient present in either
// operand yields a row; a zero scaled target with positive intake is
// reported with the unbounded flag rather than a division error.
func Compare(actual models.NutrientVector, target *models.NutritionTarget, scale float64) (models.ComparisonResult, error) {
	if target == nil || target.Calories <= 0 {
		return models.ComparisonResult{}, &InvalidTargetError{Reason: "calories must be positive"}
	}
	if scale < 0 {
		return models.ComparisonResult{}, &InvalidTargetError{Reason: "scale must be non-negative"}
	}

	scaled := target.AsVector().Scale(scale)

	keys := make([]string, 0, len(scaled))
	seen := make(map[string]bool, len(scaled))
	for k := range scaled {
		keys = append(keys, k)
		seen[k] = true
	}
	for k := range actual {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	result := models.ComparisonResult{
		Scale: scale,
		Items: make([]models.NutrientComparison, 0, len(keys)),
	}

	penalty := 0.0
	for _, key := range keys {
		item := compareNutrient(key, actual.Get(key), scaled.Get(key))
		result.Items = append(result.Items, item)

		weight := defaultScoreWeight
		if w, ok := scoreWeights[key]; ok {
			weight = w
		}
		if item.DeltaPctUnbounded {
			// min(50, inf * weight) saturates the cap.
			penalty += maxPenaltyPerNutrient
		} else {
			penalty += math.Min(maxPenaltyPerNutrient, math.Abs(item.DeltaPct)*weight)
		}
	}

	score := math.Round(100 - penalty)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	result.Score = int(score)
	result.Strengths = strengths(result.Items)
	result.Weaknesses = weaknesses(result.Items)
	return result, nil
}

func compareNutrient(key string, actual, scaledTarget float64) models.NutrientComparison {
	item := models.NutrientComparison{
		Nutrient: key,
		Unit:     models.UnitFor(key),
		Actual:   actual,
		Target:   scaledTarget,
		Delta:    actual - scaledTarget,
	}

	switch {
	case scaledTarget == 0 && actual == 0:
		item.DeltaPct = 0
	case scaledTarget == 0:
		item.DeltaPctUnbounded = true
	default:
		item.DeltaPct = item.Delta / scaledTarget * 100
	}

	switch {
	case item.DeltaPctUnbounded:
		item.Category = models.CategoryOver
	case item.DeltaPct < UnderThresholdPct:
		item.Category = models.CategoryUnder
	case item.DeltaPct > OverThresholdPct:
		item.Category = models.CategoryOver
	default:
		item.Category = models.CategoryOnTarget
	}
	return item
}

func strengths(items []models.NutrientComparison) []string {
	out := []string{}
	for i := range items {
		item := &items[i]
		if item.Category != models.CategoryOnTarget {
			continue
		}
		switch item.Nutrient {
		case models.NutrientCalories:
			out = append(out, "Appropriate caloric content")
		case models.NutrientProtein:
			out = append(out, "Appropriate protein content")
		case models.NutrientFat:
			out = append(out, "Well-balanced fat content")
		case models.NutrientCarbs:
			out = append(out, "Good carbohydrate balance")
		case models.NutrientFiber:
			out = append(out, "Good fiber content")
		}
	}
	if len(out) == 0 {
		out = append(out, "Contributes to your daily nutrition")
	}
	return out
}

func weaknesses(items []models.NutrientComparison) []string {
	out := []string{}
	for i := range items {
		item := &items[i]
		severe := item.DeltaPctUnbounded ||
			item.DeltaPct < strongDeficitPct || item.DeltaPct > strongExcessPct
		if !severe {
			continue
		}
		switch item.Nutrient {
		case models.NutrientCalories:
			if item.Delta > 0 {
				out = append(out, "High caloric content")
			} else {
				out = append(out, "Very low caloric content")
			}
		case models.NutrientProtein:
			if item.Delta > 0 {
				out = append(out, "Excessive protein content")
			} else {
				out = append(out, "Low protein content")
			}
		case models.NutrientFat:
			if item.Delta > 0 {
				out = append(out, "High fat content")
			}
		case models.NutrientCarbs:
			if item.Delta > 0 {
				out = append(out, "High carbohydrate content")
			} else {
				out = append(out, "Low carbohydrate content")
			}
		case models.NutrientFiber:
			if item.Delta < 0 {
				out = append(out, "Low fiber content")
			}
		}
		if len(out) == 3 {
			break
		}
	}
	if len(out) == 0 {
		out = append(out, "No significant nutritional concerns")
	}
	return out
}
