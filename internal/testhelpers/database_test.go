package testhelpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefit/nutrition-engine/internal/catalog"
	"github.com/platefit/nutrition-engine/internal/model"
	"github.com/platefit/nutrition-engine/internal/service"
)

func TestDatabaseSetup(t *testing.T) {
	db := SetupTestDatabase(t)
	assert.NotNil(t, db)

	// Catalog table round trip.
	product := &model.Product{Name: "курица грудка", Calories: 165, Protein: 31, Fat: 3.6, Category: "myaso"}
	require.NoError(t, db.Create(product).Error)

	cat, err := catalog.LoadDB(db)
	require.NoError(t, err)
	entry, ok := cat.Lookup("курица грудка")
	assert.True(t, ok)
	assert.Equal(t, 165.0, entry.Macros.Calories)

	// Recipe library round trip through the service, including the
	// postgres branch of the tag filter.
	svc := service.NewRecipeService(db)
	recipe, err := svc.CreateRecipe(context.Background(), &model.Recipe{
		Title:           "Куриные котлеты",
		Tags:            model.JSONBStringArray{"обед", "курица"},
		CaloriesPer100g: 145,
		ProteinPer100g:  18,
		FatPer100g:      6,
		CarbsPer100g:    4,
		Ingredients:     "Курица, яйцо",
		Instructions:    "Смешать и обжарить",
	})
	require.NoError(t, err)
	assert.NotZero(t, recipe.ID)

	found, err := svc.FindByTags(context.Background(), []string{"обед"}, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, recipe.ID, found[0].ID)

	matches, err := svc.FindNearest(context.Background(), model.MacroTarget{Calories: 150}, 0.2, 5)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Куриные котлеты", matches[0].Title)
}
