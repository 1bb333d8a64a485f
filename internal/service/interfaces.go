package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/platefit/nutrition-engine/internal/model"
	"github.com/platefit/nutrition-engine/internal/nutrition"
)

// IRecipeService defines the interface for recipe library operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	TitleExists(ctx context.Context, title string) (bool, error)
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	FindNearest(ctx context.Context, target model.MacroTarget, tolerance float64, limit int) ([]model.Recipe, error)
	FindByTags(ctx context.Context, tags []string, limit int) ([]model.Recipe, error)
	FindByTitle(ctx context.Context, query string, limit int) ([]model.Recipe, error)
	RandomRecipes(ctx context.Context, limit int) ([]model.Recipe, error)
}

// IPlanService defines the interface for nutrition recomputation of
// generator proposals
type IPlanService interface {
	RecomputeRecipe(items []model.FoodItem) nutrition.MealResult
	RecomputePlan(meals []model.MealProposal) nutrition.PlanResult
	ProposePlan(ctx context.Context, meals []model.MealProposal) (*PlanDraft, error)
}

// IDraftService defines the interface for pending plan draft storage
type IDraftService interface {
	SaveDraft(ctx context.Context, draft *PlanDraft) error
	GetDraft(ctx context.Context, id string) (*PlanDraft, error)
	DeleteDraft(ctx context.Context, id string) error
}
