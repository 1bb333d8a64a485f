package service

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefit/nutrition-engine/internal/model"
	"github.com/platefit/nutrition-engine/internal/nutrition"
)

func draftRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping Redis-backed test")
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}

func TestDraftRoundTrip(t *testing.T) {
	svc := NewDraftService(draftRedisClient(t))
	ctx := context.Background()

	draft := &PlanDraft{
		Meals: []nutrition.MealNutrition{{
			Name: "Завтрак",
			MealResult: nutrition.MealResult{
				Totals: model.Macros{Calories: 412.5, Protein: 30.1},
			},
		}},
		DayTotals: model.Macros{Calories: 412.5, Protein: 30.1},
	}

	require.NoError(t, svc.SaveDraft(ctx, draft))
	require.NotEmpty(t, draft.ID)

	loaded, err := svc.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.DayTotals, loaded.DayTotals)
	assert.Equal(t, "Завтрак", loaded.Meals[0].Name)

	require.NoError(t, svc.DeleteDraft(ctx, draft.ID))
	_, err = svc.GetDraft(ctx, draft.ID)
	assert.Error(t, err)
}
