package models

// AdviceCategory is one class of qualitative guidance derived from a
// comparison. Free-text phrasing is delegated to the external advice text
// generator; the category set itself is fixed.
type AdviceCategory string

const (
	AdviceReduceCalories   AdviceCategory = "REDUCE_CALORIES"
	AdviceIncreaseCalories AdviceCategory = "INCREASE_CALORIES"
	AdviceIncreaseProtein  AdviceCategory = "INCREASE_PROTEIN"
	AdviceReduceProtein    AdviceCategory = "REDUCE_PROTEIN"
	AdviceReduceFat        AdviceCategory = "REDUCE_FAT"
	AdviceIncreaseFat      AdviceCategory = "INCREASE_FAT"
	AdviceReduceCarbs      AdviceCategory = "REDUCE_CARBS"
	AdviceIncreaseCarbs    AdviceCategory = "INCREASE_CARBS"
	AdviceIncreaseFiber    AdviceCategory = "INCREASE_FIBER"
	AdviceReduceSugar      AdviceCategory = "REDUCE_SUGAR"
	AdviceReduceSodium     AdviceCategory = "REDUCE_SODIUM"
	AdviceBalancedGoodJob  AdviceCategory = "BALANCED_GOOD_JOB"
)
