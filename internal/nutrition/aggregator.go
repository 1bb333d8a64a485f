// Package nutrition recomputes authoritative nutrition totals for
// proposed meals. The generation step's own arithmetic is never
// trusted: every ingredient is resolved against the catalog and its
// contribution scaled from per-100g values, so displayed numbers are
// reproducible from the catalog alone.
package nutrition

import (
	"math"

	"github.com/platefit/nutrition-engine/internal/catalog"
	"github.com/platefit/nutrition-engine/internal/model"
	"github.com/platefit/nutrition-engine/internal/resolver"
)

// UnresolvedItem is an ingredient no catalog entry could be found
// for. It contributes zero nutrition and is reported so the caller can
// warn, substitute or re-prompt.
type UnresolvedItem struct {
	Name        string  `json:"name"`
	WeightGrams float64 `json:"weight_g"`
}

// ItemNutrition is the scaled contribution of a single food item.
// CatalogKey identifies the entry the nutrition was taken from, which
// may differ from Name when the resolver substituted a similar
// product.
type ItemNutrition struct {
	Name        string             `json:"name"`
	CatalogKey  string             `json:"catalog_key,omitempty"`
	Match       resolver.MatchKind `json:"match"`
	WeightGrams float64            `json:"weight_g"`
	Macros      model.Macros       `json:"macros"`
	Resolved    bool               `json:"resolved"`
}

// MealResult holds per-item contributions and their full-precision
// sum for one meal (or one whole recipe).
type MealResult struct {
	Items      []ItemNutrition  `json:"items"`
	Totals     model.Macros     `json:"totals"`
	Unresolved []UnresolvedItem `json:"unresolved,omitempty"`
}

// RoundedTotals returns the meal totals rounded to one decimal place
// for display.
func (r MealResult) RoundedTotals() model.Macros {
	return r.Totals.Rounded()
}

// MealNutrition is a named MealResult inside a daily plan.
type MealNutrition struct {
	Name string `json:"meal_name"`
	MealResult
}

// PlanResult holds recomputed nutrition for a whole daily plan.
type PlanResult struct {
	Meals      []MealNutrition  `json:"meals"`
	DayTotals  model.Macros     `json:"day_totals"`
	Unresolved []UnresolvedItem `json:"unresolved,omitempty"`
}

// RoundedDayTotals returns the daily totals rounded to one decimal
// place for display.
func (r PlanResult) RoundedDayTotals() model.Macros {
	return r.DayTotals.Rounded()
}

// Aggregator turns food item lists into nutrition totals. It is pure
// over the immutable catalog snapshot and safe for concurrent use.
type Aggregator struct {
	catalog  *catalog.Catalog
	resolver *resolver.Resolver
}

// New creates an Aggregator over the given catalog and resolver.
func New(c *catalog.Catalog, r *resolver.Resolver) *Aggregator {
	return &Aggregator{catalog: c, resolver: r}
}

// Aggregate resolves every item, scales the matched per-100g vectors
// by the item weight and sums the contributions at full precision. An
// unresolved item contributes zero and lands in the unresolved list;
// it never fails the call. An empty input yields zero totals.
func (a *Aggregator) Aggregate(items []model.FoodItem) MealResult {
	result := MealResult{Items: make([]ItemNutrition, 0, len(items))}

	for _, item := range items {
		weight := item.WeightGrams
		if weight < 0 || math.IsNaN(weight) {
			weight = 0
		}

		res := a.resolver.Resolve(item.Name)
		if res.Match == resolver.MatchNone {
			result.Items = append(result.Items, ItemNutrition{
				Name:        item.Name,
				Match:       resolver.MatchNone,
				WeightGrams: weight,
			})
			result.Unresolved = append(result.Unresolved, UnresolvedItem{
				Name:        item.Name,
				WeightGrams: weight,
			})
			continue
		}

		entry, ok := a.catalog.Lookup(res.Key)
		if !ok {
			// A resolved key always exists in the catalog; treat a
			// miss like an unresolved item rather than guessing.
			result.Unresolved = append(result.Unresolved, UnresolvedItem{
				Name:        item.Name,
				WeightGrams: weight,
			})
			result.Items = append(result.Items, ItemNutrition{
				Name:        item.Name,
				Match:       resolver.MatchNone,
				WeightGrams: weight,
			})
			continue
		}

		contribution := entry.Macros.Scale(weight / 100)
		result.Items = append(result.Items, ItemNutrition{
			Name:        item.Name,
			CatalogKey:  res.Key,
			Match:       res.Match,
			WeightGrams: weight,
			Macros:      contribution,
			Resolved:    true,
		})
		result.Totals = result.Totals.Add(contribution)
	}

	return result
}

// AggregatePlan recomputes nutrition for every meal of a proposed
// daily plan and sums the full-precision meal totals into day totals.
func (a *Aggregator) AggregatePlan(meals []model.MealProposal) PlanResult {
	plan := PlanResult{Meals: make([]MealNutrition, 0, len(meals))}

	for _, meal := range meals {
		mealResult := a.Aggregate(meal.Foods)
		plan.Meals = append(plan.Meals, MealNutrition{
			Name:       meal.Name,
			MealResult: mealResult,
		})
		plan.DayTotals = plan.DayTotals.Add(mealResult.Totals)
		plan.Unresolved = append(plan.Unresolved, mealResult.Unresolved...)
	}

	return plan
}
