package nutrition

import "uqifeed/internal/models"

type adviceRule struct {
	nutrient string
	category string
}

// Rule table mapping per-nutrient deviation categories to advice classes.
// Fiber only triggers on deficit and sugar/sodium only on excess; the other
// direction is not actionable guidance.
var adviceRules = map[adviceRule][]models.AdviceCategory{
	{models.NutrientCalories, models.CategoryOver}:  {models.AdviceReduceCalories},
	{models.NutrientCalories, models.CategoryUnder}: {models.AdviceIncreaseCalories},
	{models.NutrientProtein, models.CategoryOver}:   {models.AdviceReduceProtein},
	{models.NutrientProtein, models.CategoryUnder}:  {models.AdviceIncreaseProtein},
	{models.NutrientFat, models.CategoryOver}:       {models.AdviceReduceFat},
	{models.NutrientFat, models.CategoryUnder}:      {models.AdviceIncreaseFat},
	{models.NutrientCarbs, models.CategoryOver}:     {models.AdviceReduceCarbs},
	{models.NutrientCarbs, models.CategoryUnder}:    {models.AdviceIncreaseCarbs},
	{models.NutrientFiber, models.CategoryUnder}:    {models.AdviceIncreaseFiber},
	{models.NutrientSugar, models.CategoryOver}:     {models.AdviceReduceSugar},
	{models.NutrientSodium, models.CategoryOver}:    {models.AdviceReduceSodium},
}

// ClassifyAdvice maps a comparison to its advice categories. The output is
// deterministic and duplicate-free, following the comparison's sorted
// nutrient order. A fully on-target comparison yields the single
// congratulatory category.
func ClassifyAdvice(result models.ComparisonResult) []models.AdviceCategory {
	out := []models.AdviceCategory{}
	seen := make(map[models.AdviceCategory]bool)
	for i := range result.Items {
		item := &result.Items[i]
		if item.Category == models.CategoryOnTarget {
			continue
		}
		for _, category := range adviceRules[adviceRule{item.Nutrient, item.Category}] {
			if !seen[category] {
				seen[category] = true
				out = append(out, category)
			}
		}
	}
	if len(out) == 0 {
		return []models.AdviceCategory{models.AdviceBalancedGoodJob}
	}
	return out
}
