package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionTarget is a user's personalized daily goal. A user has one
// active target at a time; recalculations insert a new row versioned by
// EffectiveFrom instead of mutating the old one.
type NutritionTarget struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `gorm:"index" json:"user_id" example:"1"`
	EffectiveFrom time.Time      `gorm:"index" json:"effective_from" example:"2023-01-01T00:00:00Z"`
	BMR           float64        `json:"bmr" example:"1320"`
	TDEE          float64        `json:"tdee" example:"2046"`
	Calories      float64        `json:"calories" example:"2046"`
	ProteinG      float64        `json:"protein_g" example:"96"`
	CarbsG        float64        `json:"carbs_g" example:"262"`
	FatG          float64        `json:"fat_g" example:"68"`
	FiberG        float64        `json:"fiber_g" example:"25"`
	WaterML       float64        `json:"water_ml" example:"1800"`
}

// AsVector returns the comparable nutrient targets as a vector. Water, BMR
// and TDEE are informational and excluded from intake comparisons.
func (t *NutritionTarget) AsVector() NutrientVector {
	return NutrientVector{
		NutrientCalories: t.Calories,
		NutrientProtein:  t.ProteinG,
		NutrientCarbs:    t.CarbsG,
		NutrientFat:      t.FatG,
		NutrientFiber:    t.FiberG,
	}
}
