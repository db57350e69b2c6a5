package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal types accepted on a food entry.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
	MealLightMeal = "light_meal"
	MealDrinks    = "drinks"
)

// Ingredient is one component of a food entry. Nutrients holds the
// per-100-unit nutrient vector (per 100 g for solids, per 100 ml for
// liquids), as delivered by the recognition service or manual entry.
type Ingredient struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	FoodEntryID uint           `gorm:"index" json:"food_entry_id" example:"1"`
	Name        string         `json:"name" example:"chicken breast"`
	Quantity    float64        `json:"quantity" example:"150"`
	Unit        string         `json:"unit" example:"g"`
	Nutrients   NutrientVector `gorm:"type:jsonb" json:"nutrients" swaggertype:"object,number"`
}

// Contribution returns the ingredient's absolute nutrient amounts for its
// quantity, scaling the per-100-unit vector.
func (i *Ingredient) Contribution() NutrientVector {
	return i.Nutrients.Scale(i.Quantity / 100.0)
}

// FoodEntry is one logged meal. Totals is the cached elementwise sum over
// the current ingredient list; every ingredient mutation must go through
// RecomputeTotals inside the same transaction so stale totals are never
// observable.
type FoodEntry struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID     uint           `gorm:"index" json:"user_id" example:"1"`
	User       User           `gorm:"foreignKey:UserID" json:"-" swaggerignore:"true"`
	Name       string         `json:"name" example:"Grilled chicken salad"`
	MealType   string         `json:"meal_type" example:"lunch"`
	ConsumedAt time.Time      `gorm:"index" json:"consumed_at" example:"2023-01-01T12:30:00Z"`
	Ingredients []Ingredient  `gorm:"foreignKey:FoodEntryID" json:"ingredients"`
	Totals     NutrientVector `gorm:"type:jsonb" json:"totals" swaggertype:"object,number"`
}

// RecomputeTotals rebuilds the cached totals from the current ingredients.
func (e *FoodEntry) RecomputeTotals() {
	totals := NutrientVector{}
	for i := range e.Ingredients {
		totals = totals.Add(e.Ingredients[i].Contribution())
	}
	e.Totals = totals
}
