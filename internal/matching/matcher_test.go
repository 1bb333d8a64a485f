package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefit/nutrition-engine/internal/model"
)

func recipeWithCalories(title string, calories float64) model.Recipe {
	return model.Recipe{Title: title, CaloriesPer100g: calories}
}

func TestFindNearestPrefilterBand(t *testing.T) {
	library := []model.Recipe{
		recipeWithCalories("low", 150),
		recipeWithCalories("near-low", 175),
		recipeWithCalories("near-high", 200),
		recipeWithCalories("high", 230),
	}

	matches, err := FindNearest(library, model.MacroTarget{Calories: 180}, 0.2, 5)
	require.NoError(t, err)

	// 150 and 230 fall outside 180±20% (144..216).
	require.Len(t, matches, 2)
	assert.Equal(t, "near-low", matches[0].Title)
	assert.Equal(t, "near-high", matches[1].Title)
}

func TestFindNearestOrdersByDistance(t *testing.T) {
	library := []model.Recipe{
		recipeWithCalories("farther", 210),
		recipeWithCalories("closest", 182),
		recipeWithCalories("close", 170),
	}

	matches, err := FindNearest(library, model.MacroTarget{Calories: 180}, 0.2, 5)
	require.NoError(t, err)

	require.Len(t, matches, 3)
	assert.Equal(t, "closest", matches[0].Title)
	assert.Equal(t, "close", matches[1].Title)
	assert.Equal(t, "farther", matches[2].Title)
}

func TestFindNearestStableOnTies(t *testing.T) {
	// Same calorie error on both sides of the target: the earlier
	// library entry must stay first.
	library := []model.Recipe{
		recipeWithCalories("first", 170),
		recipeWithCalories("second", 190),
	}

	matches, err := FindNearest(library, model.MacroTarget{Calories: 180}, 0.2, 5)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, "first", matches[0].Title)
}

func TestFindNearestOptionalTargetsDoNotPenalize(t *testing.T) {
	library := []model.Recipe{
		{Title: "lean", CaloriesPer100g: 180, ProteinPer100g: 30},
		{Title: "fatty", CaloriesPer100g: 180, ProteinPer100g: 5, FatPer100g: 20},
	}

	// Without a protein target both recipes tie; insertion order holds.
	matches, err := FindNearest(library, model.MacroTarget{Calories: 180}, 0.2, 5)
	require.NoError(t, err)
	assert.Equal(t, "lean", matches[0].Title)

	// With a protein target the lean recipe must win.
	matches, err = FindNearest(library, model.MacroTarget{Calories: 180, Protein: 30}, 0.2, 5)
	require.NoError(t, err)
	assert.Equal(t, "lean", matches[0].Title)
}

func TestFindNearestLimitAndDefaults(t *testing.T) {
	var library []model.Recipe
	for i := 0; i < 10; i++ {
		library = append(library, recipeWithCalories("r", 200))
	}

	// limit<=0 falls back to the default of 5.
	matches, err := FindNearest(library, model.MacroTarget{Calories: 200}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, matches, DefaultLimit)

	matches, err = FindNearest(library, model.MacroTarget{Calories: 200}, 0.2, 3)
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestFindNearestEmptyLibrary(t *testing.T) {
	matches, err := FindNearest(nil, model.MacroTarget{Calories: 200}, 0.2, 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindNearestRequiresCalorieTarget(t *testing.T) {
	_, err := FindNearest(nil, model.MacroTarget{}, 0.2, 5)
	assert.ErrorIs(t, err, ErrNoCalorieTarget)

	_, err = FindNearest(nil, model.MacroTarget{Calories: -10}, 0.2, 5)
	assert.ErrorIs(t, err, ErrNoCalorieTarget)
}

func TestFindNearestDeterministic(t *testing.T) {
	library := []model.Recipe{
		recipeWithCalories("a", 170),
		recipeWithCalories("b", 190),
		recipeWithCalories("c", 182),
	}
	target := model.MacroTarget{Calories: 180, Protein: 20}

	first, err := FindNearest(library, target, 0.2, 5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := FindNearest(library, target, 0.2, 5)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDistanceMonotonicInProteinError(t *testing.T) {
	target := model.MacroTarget{Calories: 200, Protein: 25}
	base := model.Recipe{CaloriesPer100g: 200, ProteinPer100g: 25}

	prev := Distance(base, target)
	for _, protein := range []float64{26, 28, 32, 40, 60} {
		r := base
		r.ProteinPer100g = protein
		d := Distance(r, target)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestDistanceWeights(t *testing.T) {
	target := model.MacroTarget{Calories: 100, Protein: 10, Fat: 10, Carbs: 10}

	// Equal 10% relative error on each component isolates the weights.
	calOff := model.Recipe{CaloriesPer100g: 110, ProteinPer100g: 10, FatPer100g: 10, CarbsPer100g: 10}
	proteinOff := model.Recipe{CaloriesPer100g: 100, ProteinPer100g: 11, FatPer100g: 10, CarbsPer100g: 10}
	fatOff := model.Recipe{CaloriesPer100g: 100, ProteinPer100g: 10, FatPer100g: 11, CarbsPer100g: 10}
	carbsOff := model.Recipe{CaloriesPer100g: 100, ProteinPer100g: 10, FatPer100g: 10, CarbsPer100g: 11}

	assert.InDelta(t, 0.1*1.0, Distance(calOff, target), 1e-9)
	assert.InDelta(t, 0.1*0.8, Distance(proteinOff, target), 1e-9)
	assert.InDelta(t, 0.1*0.6, Distance(fatOff, target), 1e-9)
	assert.InDelta(t, 0.1*0.7, Distance(carbsOff, target), 1e-9)
}
