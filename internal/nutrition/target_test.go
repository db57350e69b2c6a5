package nutrition

import (
	"testing"
	"time"

	"uqifeed/internal/models"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

func validProfile() *models.UserProfile {
	return &models.UserProfile{
		UserID:        1,
		Gender:        models.GenderFemale,
		BirthDate:     time.Date(1995, 5, 1, 0, 0, 0, 0, time.UTC),
		HeightCm:      165,
		WeightKg:      60,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalMaintain,
	}
}

func TestComputeTargetReferenceProfile(t *testing.T) {
	target, err := ComputeTarget(validProfile(), testNow)

	assert.NoError(t, err)
	assert.InDelta(t, 1320, target.BMR, 1)
	assert.GreaterOrEqual(t, target.Calories, 1800.0)
	assert.LessOrEqual(t, target.Calories, 2200.0)
	assert.InDelta(t, 60*1.6, target.ProteinG, 1)
	assert.Equal(t, 25.0, target.FiberG)
	assert.Equal(t, 1800.0, target.WaterML)
}

func TestComputeTargetMacroCalorieConsistency(t *testing.T) {
	profiles := []*models.UserProfile{}
	for _, gender := range []string{models.GenderMale, models.GenderFemale} {
		for _, level := range []string{models.ActivitySedentary, models.ActivityLight, models.ActivityModerate, models.ActivityActive, models.ActivityVeryActive} {
			for _, goal := range []string{models.GoalLose, models.GoalMaintain, models.GoalGain} {
				p := validProfile()
				p.Gender = gender
				p.ActivityLevel = level
				p.Goal = goal
				profiles = append(profiles, p)

				heavy := validProfile()
				heavy.Gender = gender
				heavy.ActivityLevel = level
				heavy.Goal = goal
				heavy.WeightKg = 95
				heavy.HeightCm = 185
				profiles = append(profiles, heavy)
			}
		}
	}

	for _, p := range profiles {
		target, err := ComputeTarget(p, testNow)
		assert.NoError(t, err)

		macroCalories := target.ProteinG*4 + target.CarbsG*4 + target.FatG*9
		assert.InEpsilon(t, target.Calories, macroCalories, 0.05,
			"macro calories must stay within 5%% of target calories for %s/%s/%s", p.Gender, p.ActivityLevel, p.Goal)
	}
}

func TestComputeTargetGoalAdjustments(t *testing.T) {
	maintain := validProfile()
	lose := validProfile()
	lose.Goal = models.GoalLose
	gain := validProfile()
	gain.Goal = models.GoalGain

	tMaintain, err := ComputeTarget(maintain, testNow)
	assert.NoError(t, err)
	tLose, err := ComputeTarget(lose, testNow)
	assert.NoError(t, err)
	tGain, err := ComputeTarget(gain, testNow)
	assert.NoError(t, err)

	assert.Equal(t, tMaintain.Calories-500, tLose.Calories)
	assert.Equal(t, tMaintain.Calories+500, tGain.Calories)
	assert.Greater(t, tLose.ProteinG, tMaintain.ProteinG)
}

func TestComputeTargetActivityMonotonic(t *testing.T) {
	levels := []string{models.ActivitySedentary, models.ActivityLight, models.ActivityModerate, models.ActivityActive, models.ActivityVeryActive}

	previous := 0.0
	for _, level := range levels {
		p := validProfile()
		p.ActivityLevel = level
		target, err := ComputeTarget(p, testNow)
		assert.NoError(t, err)
		assert.Greater(t, target.TDEE, previous, "TDEE must increase with activity level %s", level)
		previous = target.TDEE
	}
}

func TestComputeTargetDeterministic(t *testing.T) {
	first, err := ComputeTarget(validProfile(), testNow)
	assert.NoError(t, err)
	second, err := ComputeTarget(validProfile(), testNow)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeTargetInvalidProfiles(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*models.UserProfile)
		field string
	}{
		{"missing gender", func(p *models.UserProfile) { p.Gender = "" }, "gender"},
		{"zero weight", func(p *models.UserProfile) { p.WeightKg = 0 }, "weight_kg"},
		{"negative height", func(p *models.UserProfile) { p.HeightCm = -170 }, "height_cm"},
		{"missing birth date", func(p *models.UserProfile) { p.BirthDate = time.Time{} }, "birth_date"},
		{"born in the future", func(p *models.UserProfile) { p.BirthDate = testNow.AddDate(1, 0, 0) }, "birth_date"},
		{"unknown activity", func(p *models.UserProfile) { p.ActivityLevel = "couch" }, "activity_level"},
		{"unknown goal", func(p *models.UserProfile) { p.Goal = "bulk" }, "goal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.edit(p)

			_, err := ComputeTarget(p, testNow)
			assert.Error(t, err)

			var profileErr *InvalidProfileError
			assert.ErrorAs(t, err, &profileErr)
			assert.Equal(t, tt.field, profileErr.Field)
		})
	}
}
