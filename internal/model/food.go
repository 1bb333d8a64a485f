package model

// FoodItem is one proposed ingredient from the generation step: a raw
// product name with the portion weight in grams. The name is untrusted
// free text and is resolved against the catalog before any nutrition
// is credited to it.
type FoodItem struct {
	Name        string  `json:"name"`
	WeightGrams float64 `json:"weight_g"`
}

// MealProposal is one meal of a proposed daily plan as emitted by the
// generation step. Nutrition claims that arrive alongside it, if any,
// are discarded and recomputed from the catalog.
type MealProposal struct {
	Name  string     `json:"meal_name"`
	Foods []FoodItem `json:"foods"`
}
