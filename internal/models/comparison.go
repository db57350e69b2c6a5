package models

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

// Per-nutrient comparison categories.
const (
	CategoryUnder    = "under"
	CategoryOnTarget = "on_target"
	CategoryOver     = "over"
)

// NutrientComparison is the deviation of one nutrient from its scaled
// target. DeltaPct is expressed in percent. When the scaled target is zero
// and the actual intake positive the percentage is unbounded; that case is
// flagged instead of encoded as infinity, which JSON cannot carry.
type NutrientComparison struct {
	Nutrient          string  `json:"nutrient"`
	Unit              string  `json:"unit"`
	Actual            float64 `json:"actual"`
	Target            float64 `json:"target"`
	Delta             float64 `json:"delta"`
	DeltaPct          float64 `json:"delta_pct"`
	DeltaPctUnbounded bool    `json:"delta_pct_unbounded,omitempty"`
	Category          string  `json:"category"`
}

// ComparisonResult is the outcome of comparing an actual nutrient vector
// against a (possibly scaled) target. Items are sorted by nutrient key.
type ComparisonResult struct {
	Scale      float64              `json:"scale"`
	Items      []NutrientComparison `json:"items"`
	Score      int                  `json:"score"`
	Strengths  []string             `json:"strengths"`
	Weaknesses []string             `json:"weaknesses"`
}

// Item returns the comparison row for a nutrient key, or nil.
func (r *ComparisonResult) Item(key string) *NutrientComparison {
	for i := range r.Items {
		if r.Items[i].Nutrient == key {
			return &r.Items[i]
		}
	}
	return nil
}

// Balanced reports whether every nutrient landed on target.
func (r *ComparisonResult) Balanced() bool {
	for i := range r.Items {
		if r.Items[i].Category != CategoryOnTarget {
			return false
		}
	}
	return true
}

func (r ComparisonResult) Value() (driver.Value, error) {
	return jsonValue(r)
}

func (r *ComparisonResult) Scan(value interface{}) error {
	return scanJSON(value, r, "ComparisonResult")
}

// Comparison is a persisted, immutable comparison referenced by id for
// later advice and review lookups.
type Comparison struct {
	ID          uint             `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time        `json:"created_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint             `gorm:"index" json:"user_id" example:"1"`
	FoodEntryID *uint            `gorm:"index" json:"food_entry_id,omitempty" example:"1"`
	TargetID    uint             `json:"target_id" example:"1"`
	Result      ComparisonResult `gorm:"type:jsonb" json:"result" swaggertype:"object"`
}
