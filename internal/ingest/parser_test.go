package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefit/nutrition-engine/internal/model"
)

const sampleRecipe = `Сырники из творога

Теги: завтрак, творог
Время приготовления: ~25 мин
Сложность: легко

КБЖУ на 100 г:
178 ккал 17.5/5.5/14.5

Ингредиенты:
Творог 5% — 400 г
Яйцо — 1 шт
Мука рисовая — 60 г

Приготовление:
Смешать творог с яйцом.
Добавить муку и сформировать сырники.
Обжарить по 3-4 минуты с каждой стороны.

Приятного аппетита!
* Можно запечь в духовке вместо жарки
`

func TestParseRecipe(t *testing.T) {
	recipe, err := ParseRecipe(sampleRecipe)
	require.NoError(t, err)

	assert.Equal(t, "Сырники из творога", recipe.Title)
	assert.Equal(t, model.JSONBStringArray{"завтрак", "творог"}, recipe.Tags)
	assert.Equal(t, "~25 мин", recipe.CookingTime)
	assert.Equal(t, "легко", recipe.Difficulty)

	assert.Equal(t, 178.0, recipe.CaloriesPer100g)
	assert.Equal(t, 17.5, recipe.ProteinPer100g)
	assert.Equal(t, 5.5, recipe.FatPer100g)
	assert.Equal(t, 14.5, recipe.CarbsPer100g)

	assert.Contains(t, recipe.Ingredients, "Творог 5% — 400 г")
	assert.Contains(t, recipe.Ingredients, "Мука рисовая — 60 г")
	assert.NotContains(t, recipe.Ingredients, "Смешать")

	assert.Contains(t, recipe.Instructions, "Смешать творог с яйцом.")
	assert.NotContains(t, recipe.Instructions, "Приятного")
	assert.NotContains(t, recipe.Instructions, "духовке")

	assert.Equal(t, "* Можно запечь в духовке вместо жарки", recipe.Notes)

	assert.NoError(t, Validate(recipe))
}

func TestParseRecipeWithoutMacrosFails(t *testing.T) {
	_, err := ParseRecipe("Просто название\n\nИнгредиенты:\nчто-то")
	assert.ErrorIs(t, err, ErrUnparsable)
}

func TestParseRecipeEmptyTextFails(t *testing.T) {
	_, err := ParseRecipe("   \n\n  ")
	assert.ErrorIs(t, err, ErrUnparsable)
}

func TestParseRecipeMacrosOnSameHeaderDistance(t *testing.T) {
	text := "Гречка с грибами\n\nКБЖУ на 100 г:\n\n\n112 ккал 4.2/3.1/18.0\n\nИнгредиенты:\nГречка\nПриготовление:\nСварить."
	recipe, err := ParseRecipe(text)
	require.NoError(t, err)
	assert.Equal(t, 112.0, recipe.CaloriesPer100g)
	assert.Equal(t, 18.0, recipe.CarbsPer100g)
}

func TestValidateIncomplete(t *testing.T) {
	recipe := &model.Recipe{Title: "Без КБЖУ", Ingredients: "x", Instructions: "y"}
	assert.ErrorIs(t, Validate(recipe), ErrIncomplete)

	recipe = &model.Recipe{Title: "Без инструкций", CaloriesPer100g: 100, Ingredients: "x"}
	assert.ErrorIs(t, Validate(recipe), ErrIncomplete)
}
