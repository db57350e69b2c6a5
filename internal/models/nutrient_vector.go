package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Well-known nutrient keys. The key set is open: vectors may carry keys
// that are not listed here and the arithmetic treats them uniformly.
const (
	NutrientCalories = "calories"
	NutrientProtein  = "protein_g"
	NutrientCarbs    = "carbs_g"
	NutrientFat      = "fat_g"
	NutrientFiber    = "fiber_g"
	NutrientSugar    = "sugar_g"
	NutrientSodium   = "sodium_mg"
	NutrientWater    = "water_ml"
)

// NutrientUnits maps known nutrient keys to their measurement unit.
// Unknown keys default to grams.
var NutrientUnits = map[string]string{
	NutrientCalories: "kcal",
	NutrientProtein:  "g",
	NutrientCarbs:    "g",
	NutrientFat:      "g",
	NutrientFiber:    "g",
	NutrientSugar:    "g",
	NutrientSodium:   "mg",
	NutrientWater:    "ml",
}

// UnitFor returns the measurement unit for a nutrient key. Open keys carry
// their unit as a suffix (`vitamin_c_mg`); keys without a recognized suffix
// default to grams.
func UnitFor(key string) string {
	if unit, ok := NutrientUnits[key]; ok {
		return unit
	}
	switch {
	case strings.HasSuffix(key, "_mcg"):
		return "mcg"
	case strings.HasSuffix(key, "_mg"):
		return "mg"
	case strings.HasSuffix(key, "_ml"):
		return "ml"
	}
	return "g"
}

// NutrientVector maps nutrient keys to non-negative quantities. It is used
// uniformly for ingredient values, entry totals, targets and report totals.
type NutrientVector map[string]float64

// Clone returns an independent copy of the vector.
func (v NutrientVector) Clone() NutrientVector {
	out := make(NutrientVector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Add returns the elementwise sum of v and other. Neither operand is modified.
func (v NutrientVector) Add(other NutrientVector) NutrientVector {
	out := v.Clone()
	for k, val := range other {
		out[k] += val
	}
	return out
}

// Scale returns v with every quantity multiplied by factor.
func (v NutrientVector) Scale(factor float64) NutrientVector {
	out := make(NutrientVector, len(v))
	for k, val := range v {
		out[k] = val * factor
	}
	return out
}

// SubFloor returns v minus other, with every element floored at zero.
func (v NutrientVector) SubFloor(other NutrientVector) NutrientVector {
	out := v.Clone()
	for k, val := range other {
		diff := out[k] - val
		if diff < 0 {
			diff = 0
		}
		out[k] = diff
	}
	return out
}

// Get returns the quantity for key, zero when absent.
func (v NutrientVector) Get(key string) float64 {
	return v[key]
}

// IsZero reports whether every quantity in the vector is zero.
func (v NutrientVector) IsZero() bool {
	for _, val := range v {
		if val != 0 {
			return false
		}
	}
	return true
}

// Value implements driver.Valuer so vectors are stored as JSONB.
func (v NutrientVector) Value() (driver.Value, error) {
	if v == nil {
		v = NutrientVector{}
	}
	return json.Marshal(v)
}

// Scan implements sql.Scanner for JSONB columns.
func (v *NutrientVector) Scan(value interface{}) error {
	if value == nil {
		*v = NutrientVector{}
		return nil
	}
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return fmt.Errorf("unsupported type %T for NutrientVector", value)
	}
}
