package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a record in the shared recipe library. Macro values are
// per 100g of the finished dish; ingredients and instructions are kept
// as free text the way they arrive from the import formats.
type Recipe struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	Title           string           `gorm:"size:500;not null" json:"title"`
	Tags            JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	CookingTime     string           `gorm:"size:100" json:"cooking_time,omitempty"`
	Difficulty      string           `gorm:"size:50" json:"difficulty,omitempty"`
	CaloriesPer100g float64          `gorm:"type:float;not null" json:"calories_per_100g"`
	ProteinPer100g  float64          `gorm:"type:float;not null" json:"protein_per_100g"`
	FatPer100g      float64          `gorm:"type:float;not null" json:"fat_per_100g"`
	CarbsPer100g    float64          `gorm:"type:float;not null" json:"carbs_per_100g"`
	Ingredients     string           `gorm:"type:text;not null" json:"ingredients"`
	Instructions    string           `gorm:"type:text;not null" json:"instructions"`
	Notes           string           `gorm:"type:text" json:"notes,omitempty"`
}

// PerHundredGrams returns the recipe's macro vector per 100g.
func (r *Recipe) PerHundredGrams() Macros {
	return Macros{
		Calories: r.CaloriesPer100g,
		Protein:  r.ProteinPer100g,
		Fat:      r.FatPer100g,
		Carbs:    r.CarbsPer100g,
	}
}

// FormattedMacros renders the per-100g profile in the library's
// customary "165 ккал 31.0/3.6/0.0" form.
func (r *Recipe) FormattedMacros() string {
	return fmt.Sprintf("%.0f ккал %.1f/%.1f/%.1f",
		r.CaloriesPer100g, r.ProteinPer100g, r.FatPer100g, r.CarbsPer100g)
}
