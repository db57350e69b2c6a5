package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserProfileAge(t *testing.T) {
	profile := &UserProfile{BirthDate: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)}

	beforeBirthday := time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC)
	onBirthday := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 29, profile.Age(beforeBirthday))
	assert.Equal(t, 30, profile.Age(onBirthday))
}

func TestUserProfileBMI(t *testing.T) {
	profile := &UserProfile{HeightCm: 165, WeightKg: 60}
	assert.InDelta(t, 22.04, profile.BMI(), 0.01)

	missingHeight := &UserProfile{WeightKg: 60}
	assert.Equal(t, 0.0, missingHeight.BMI())
}
