package nutrition

import "math"

// BMI category cutoffs follow the WHO classification.
const (
	bmiUnderweightMax = 18.5
	bmiNormalMax      = 25
	bmiOverweightMax  = 30
)

// BMICategory labels a body mass index with its WHO weight class.
func BMICategory(bmi float64) string {
	switch {
	case bmi < bmiUnderweightMax:
		return "Underweight"
	case bmi < bmiNormalMax:
		return "Normal weight"
	case bmi < bmiOverweightMax:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// WeightProjection is a linear week-by-week path from the current weight to
// a desired weight over a fixed goal duration.
type WeightProjection struct {
	StartWeightKg     float64            `json:"start_weight_kg" example:"80"`
	DesiredWeightKg   float64            `json:"desired_weight_kg" example:"74"`
	GoalDurationWeeks int                `json:"goal_duration_weeks" example:"12"`
	WeeklyChangeKg    float64            `json:"weekly_change_kg" example:"-0.5"`
	WeeklyProjections []WeightCheckpoint `json:"weekly_projections"`
}

// WeightCheckpoint is one week's expected weight along the projection.
type WeightCheckpoint struct {
	Week     int     `json:"week" example:"4"`
	WeightKg float64 `json:"weight_kg" example:"78"`
}

// ProjectWeight interpolates linearly between the start and desired weight.
// Week zero is the start weight and the final week lands exactly on the
// desired weight. weeks must be positive.
func ProjectWeight(startKg, desiredKg float64, weeks int) (*WeightProjection, error) {
	if weeks <= 0 {
		return nil, &InvalidProfileError{Field: "goal_duration_weeks", Reason: "must be positive"}
	}
	if startKg <= 0 {
		return nil, &InvalidProfileError{Field: "weight_kg", Reason: "must be positive"}
	}
	if desiredKg <= 0 {
		return nil, &InvalidProfileError{Field: "desired_weight_kg", Reason: "must be positive"}
	}

	weeklyChange := (desiredKg - startKg) / float64(weeks)

	checkpoints := make([]WeightCheckpoint, 0, weeks+1)
	for week := 0; week <= weeks; week++ {
		checkpoints = append(checkpoints, WeightCheckpoint{
			Week:     week,
			WeightKg: math.Round((startKg+weeklyChange*float64(week))*10) / 10,
		})
	}

	return &WeightProjection{
		StartWeightKg:     startKg,
		DesiredWeightKg:   desiredKg,
		GoalDurationWeeks: weeks,
		WeeklyChangeKg:    math.Round(weeklyChange*100) / 100,
		WeeklyProjections: checkpoints,
	}, nil
}
