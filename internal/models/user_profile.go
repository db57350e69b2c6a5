package models

import (
	"time"

	"gorm.io/gorm"
)

// Gender values accepted on a profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Activity levels, ordered from least to most active.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// Weight goals.
const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// UserProfile holds the biometric and goal data a nutrition target is
// derived from. The target calculator consumes it as an immutable snapshot.
type UserProfile struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `gorm:"unique" json:"user_id" example:"1"`
	Gender        string         `json:"gender" example:"female"`
	BirthDate     time.Time      `json:"birth_date" example:"1995-04-12T00:00:00Z"`
	HeightCm      float64        `json:"height_cm" example:"165"`
	WeightKg      float64        `json:"weight_kg" example:"60"`
	ActivityLevel string         `json:"activity_level" example:"moderate"`
	Goal          string         `json:"goal" example:"maintain"`
	DietaryTags   StringList     `gorm:"type:jsonb" json:"dietary_tags" swaggertype:"array,string"`
}

// Age returns the profile's age in whole years at the given moment.
func (p *UserProfile) Age(now time.Time) int {
	age := now.Year() - p.BirthDate.Year()
	anniversary := p.BirthDate.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}
	return age
}

// BMI returns the body mass index (kg/m²), or zero when height is unset.
func (p *UserProfile) BMI() float64 {
	if p.HeightCm <= 0 {
		return 0
	}
	heightM := p.HeightCm / 100
	return p.WeightKg / (heightM * heightM)
}
