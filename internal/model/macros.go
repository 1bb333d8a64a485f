package model

import "math"

// Macros represents a nutrition vector: calories plus grams of
// protein, fat and carbs. Depending on context the values are either
// per 100g of product or absolute for a portion/meal/day.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Add returns the component-wise sum of m and other.
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Fat:      m.Fat + other.Fat,
		Carbs:    m.Carbs + other.Carbs,
	}
}

// Scale returns m multiplied by factor. Negative results are clamped
// to zero: corrupted inputs must never produce negative nutrition.
func (m Macros) Scale(factor float64) Macros {
	return Macros{
		Calories: clampNonNegative(m.Calories * factor),
		Protein:  clampNonNegative(m.Protein * factor),
		Fat:      clampNonNegative(m.Fat * factor),
		Carbs:    clampNonNegative(m.Carbs * factor),
	}
}

// Rounded returns m with every component rounded to one decimal place.
// Rounding happens only at the display boundary; intermediate sums are
// kept at full precision.
func (m Macros) Rounded() Macros {
	return Macros{
		Calories: round1(m.Calories),
		Protein:  round1(m.Protein),
		Fat:      round1(m.Fat),
		Carbs:    round1(m.Carbs),
	}
}

// MacroTarget is a desired per-100g macro profile for recipe matching.
// Calories is mandatory; the other components are optional and ignored
// when zero or negative.
type MacroTarget struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampNonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
