package nutrition

import (
	"testing"

	"uqifeed/internal/models"

	"github.com/stretchr/testify/assert"
)

func comparisonWith(categories map[string]string) models.ComparisonResult {
	result := models.ComparisonResult{}
	for _, key := range []string{models.NutrientCalories, models.NutrientCarbs, models.NutrientFat, models.NutrientFiber, models.NutrientProtein, models.NutrientSodium, models.NutrientSugar} {
		category, ok := categories[key]
		if !ok {
			category = models.CategoryOnTarget
		}
		result.Items = append(result.Items, models.NutrientComparison{
			Nutrient: key,
			Category: category,
		})
	}
	return result
}

func TestClassifyAdviceBalanced(t *testing.T) {
	categories := ClassifyAdvice(comparisonWith(nil))
	assert.Equal(t, []models.AdviceCategory{models.AdviceBalancedGoodJob}, categories)
}

func TestClassifyAdviceSingleDeviation(t *testing.T) {
	tests := []struct {
		name     string
		nutrient string
		category string
		expected models.AdviceCategory
	}{
		{"calorie excess", models.NutrientCalories, models.CategoryOver, models.AdviceReduceCalories},
		{"calorie deficit", models.NutrientCalories, models.CategoryUnder, models.AdviceIncreaseCalories},
		{"protein deficit", models.NutrientProtein, models.CategoryUnder, models.AdviceIncreaseProtein},
		{"fat excess", models.NutrientFat, models.CategoryOver, models.AdviceReduceFat},
		{"fiber deficit", models.NutrientFiber, models.CategoryUnder, models.AdviceIncreaseFiber},
		{"sugar excess", models.NutrientSugar, models.CategoryOver, models.AdviceReduceSugar},
		{"sodium excess", models.NutrientSodium, models.CategoryOver, models.AdviceReduceSodium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := comparisonWith(map[string]string{tt.nutrient: tt.category})
			assert.Equal(t, []models.AdviceCategory{tt.expected}, ClassifyAdvice(result))
		})
	}
}

func TestClassifyAdviceMultipleDeviations(t *testing.T) {
	result := comparisonWith(map[string]string{
		models.NutrientCalories: models.CategoryOver,
		models.NutrientProtein:  models.CategoryUnder,
		models.NutrientFiber:    models.CategoryUnder,
	})

	categories := ClassifyAdvice(result)
	assert.Equal(t, []models.AdviceCategory{
		models.AdviceReduceCalories,
		models.AdviceIncreaseFiber,
		models.AdviceIncreaseProtein,
	}, categories)
	assert.NotContains(t, categories, models.AdviceBalancedGoodJob)
}

func TestClassifyAdviceNonActionableDirectionsIgnored(t *testing.T) {
	// Fiber excess and sugar/sodium deficits carry no advice.
	result := comparisonWith(map[string]string{
		models.NutrientFiber:  models.CategoryOver,
		models.NutrientSugar:  models.CategoryUnder,
		models.NutrientSodium: models.CategoryUnder,
	})
	assert.Equal(t, []models.AdviceCategory{models.AdviceBalancedGoodJob}, ClassifyAdvice(result))
}

func TestClassifyAdviceDeterministic(t *testing.T) {
	result := comparisonWith(map[string]string{
		models.NutrientCalories: models.CategoryOver,
		models.NutrientCarbs:    models.CategoryOver,
	})
	first := ClassifyAdvice(result)
	second := ClassifyAdvice(result)
	assert.Equal(t, first, second)
}
