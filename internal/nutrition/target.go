package nutrition

import (
	"math"
	"time"

	"uqifeed/internal/models"
)

// Activity multipliers applied to BMR, keyed by profile activity level.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// Calorie adjustment per goal: a fixed deficit for losing weight, a fixed
// surplus for gaining.
var goalCalorieAdjustment = map[string]float64{
	models.GoalLose:     -500,
	models.GoalMaintain: 0,
	models.GoalGain:     500,
}

// Protein grams per kilogram of body weight, per goal. Cutting diets get
// more protein to preserve muscle.
var goalProteinPerKg = map[string]float64{
	models.GoalLose:     2.0,
	models.GoalMaintain: 1.6,
	models.GoalGain:     1.8,
}

// Fraction of target calories allocated to fat before carbs take the
// remainder.
const fatCalorieShare = 0.30

// Energy densities in kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Supported age range in years.
const (
	minAge = 1
	maxAge = 120
)

// ComputeTarget derives a daily nutrition target from a profile snapshot.
// BMR uses the Mifflin-St Jeor equation, scaled by the activity multiplier
// and adjusted for the weight goal. Protein is tied to body weight, fat to
// a calorie share, and carbs take the caloric remainder, so the macro
// calorie identity (4p + 4c + 9f = calories) holds by construction.
// The result is deterministic for a given profile and clock.
func ComputeTarget(profile *models.UserProfile, now time.Time) (*models.NutritionTarget, error) {
	if err := validateProfile(profile, now); err != nil {
		return nil, err
	}

	age := profile.Age(now)
	bmr := (10 * profile.WeightKg) + (6.25 * profile.HeightCm) - (5 * float64(age))
	if profile.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	bmr = math.Round(bmr)

	tdee := math.Round(bmr * activityMultipliers[profile.ActivityLevel])
	calories := tdee + goalCalorieAdjustment[profile.Goal]

	proteinG := math.Round(profile.WeightKg * goalProteinPerKg[profile.Goal])
	fatG := math.Round(calories * fatCalorieShare / kcalPerGramFat)

	carbCalories := calories - proteinG*kcalPerGramProtein - fatG*kcalPerGramFat
	if carbCalories < 0 {
		return nil, &InvalidProfileError{Field: "weight_kg", Reason: "yields protein and fat targets exceeding the calorie budget"}
	}
	carbsG := math.Round(carbCalories / kcalPerGramCarbs)

	return &models.NutritionTarget{
		UserID:        profile.UserID,
		EffectiveFrom: now,
		BMR:           bmr,
		TDEE:          tdee,
		Calories:      calories,
		ProteinG:      proteinG,
		CarbsG:        carbsG,
		FatG:          fatG,
		FiberG:        fiberTarget(age, profile.Gender),
		WaterML:       math.Round(profile.WeightKg * 30),
	}, nil
}

func validateProfile(profile *models.UserProfile, now time.Time) error {
	if profile == nil {
		return &InvalidProfileError{Field: "profile", Reason: "is required"}
	}
	if profile.Gender != models.GenderMale && profile.Gender != models.GenderFemale {
		return &InvalidProfileError{Field: "gender", Reason: "must be male or female"}
	}
	if profile.BirthDate.IsZero() {
		return &InvalidProfileError{Field: "birth_date", Reason: "is required"}
	}
	if age := profile.Age(now); age < minAge || age > maxAge {
		return &InvalidProfileError{Field: "birth_date", Reason: "yields an age outside the supported range"}
	}
	if profile.HeightCm <= 0 {
		return &InvalidProfileError{Field: "height_cm", Reason: "must be positive"}
	}
	if profile.WeightKg <= 0 {
		return &InvalidProfileError{Field: "weight_kg", Reason: "must be positive"}
	}
	if _, ok := activityMultipliers[profile.ActivityLevel]; !ok {
		return &InvalidProfileError{Field: "activity_level", Reason: "is not a recognized level"}
	}
	if _, ok := goalCalorieAdjustment[profile.Goal]; !ok {
		return &InvalidProfileError{Field: "goal", Reason: "must be lose, maintain or gain"}
	}
	return nil
}

// fiberTarget follows the dietary guideline table by age and sex.
func fiberTarget(age int, gender string) float64 {
	male := gender == models.GenderMale
	switch {
	case age <= 3:
		return 19
	case age <= 8:
		return 25
	case age <= 13:
		if male {
			return 26
		}
		return 24
	case age < 18:
		if male {
			return 38
		}
		return 26
	case age <= 50:
		if male {
			return 38
		}
		return 25
	default:
		if male {
			return 30
		}
		return 21
	}
}
