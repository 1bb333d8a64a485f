// Package matching scores recipe library entries against a target
// per-100g macro profile. A calorie band prefilters candidates, then a
// weighted relative-error sum orders the survivors; the sort is stable
// so equal distances keep library insertion order.
package matching

import (
	"errors"
	"sort"

	"github.com/platefit/nutrition-engine/internal/model"
)

// ErrNoCalorieTarget is returned when the target calorie value is
// missing or non-positive. Calories anchor both the prefilter band and
// the primary distance term, so matching without them is a contract
// violation by the caller.
var ErrNoCalorieTarget = errors.New("matching: calorie target must be positive")

const (
	// DefaultTolerance is the fractional calorie band applied before
	// scoring: candidates outside target±20% are discarded.
	DefaultTolerance = 0.2
	// DefaultLimit is the number of matches returned when the caller
	// does not ask for a specific count.
	DefaultLimit = 5
)

// Component weights of the distance metric. Calorie accuracy matters
// most to users, protein second, carbs third, fat least.
const (
	weightCalories = 1.0
	weightProtein  = 0.8
	weightFat      = 0.6
	weightCarbs    = 0.7
)

// FindNearest returns up to limit recipes closest to target, best
// first. Optional target components (zero or negative) contribute no
// distance term, so an absent target never penalizes a candidate.
// recipes must already be in library insertion order; it is not
// modified. An empty library yields an empty result.
func FindNearest(recipes []model.Recipe, target model.MacroTarget, tolerance float64, limit int) ([]model.Recipe, error) {
	if target.Calories <= 0 {
		return nil, ErrNoCalorieTarget
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	calMin := target.Calories * (1 - tolerance)
	calMax := target.Calories * (1 + tolerance)

	type scored struct {
		recipe   model.Recipe
		distance float64
	}

	candidates := make([]scored, 0, len(recipes))
	for _, r := range recipes {
		if r.CaloriesPer100g < calMin || r.CaloriesPer100g > calMax {
			continue
		}
		candidates = append(candidates, scored{recipe: r, distance: Distance(r, target)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]model.Recipe, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.recipe)
	}
	return result, nil
}

// Distance computes the weighted relative-error distance between a
// recipe's per-100g profile and the target. Lower is closer.
func Distance(r model.Recipe, target model.MacroTarget) float64 {
	distance := weightCalories * relativeError(r.CaloriesPer100g, target.Calories)

	if target.Protein > 0 {
		distance += weightProtein * relativeError(r.ProteinPer100g, target.Protein)
	}
	if target.Fat > 0 {
		distance += weightFat * relativeError(r.FatPer100g, target.Fat)
	}
	if target.Carbs > 0 {
		distance += weightCarbs * relativeError(r.CarbsPer100g, target.Carbs)
	}

	return distance
}

func relativeError(actual, target float64) float64 {
	diff := actual - target
	if diff < 0 {
		diff = -diff
	}
	return diff / target
}
