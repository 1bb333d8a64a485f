package service

import (
	"context"

	"github.com/platefit/nutrition-engine/internal/model"
	"github.com/platefit/nutrition-engine/internal/nutrition"
)

// PlanService recomputes nutrition for generator proposals and parks
// the results as drafts. The proposal's own nutrition claims are
// ignored; only catalog-derived numbers leave this service.
type PlanService struct {
	aggregator *nutrition.Aggregator
	drafts     *DraftService
}

// NewPlanService creates a new PlanService instance. drafts may be
// nil when draft storage is not configured.
func NewPlanService(aggregator *nutrition.Aggregator, drafts *DraftService) *PlanService {
	return &PlanService{aggregator: aggregator, drafts: drafts}
}

// RecomputeRecipe recomputes nutrition for a single proposed recipe.
func (s *PlanService) RecomputeRecipe(items []model.FoodItem) nutrition.MealResult {
	return s.aggregator.Aggregate(items)
}

// RecomputePlan recomputes nutrition for a proposed daily plan.
func (s *PlanService) RecomputePlan(meals []model.MealProposal) nutrition.PlanResult {
	return s.aggregator.AggregatePlan(meals)
}

// ProposePlan recomputes a daily plan and, when draft storage is
// configured, saves the result as a pending draft. The returned draft
// carries an empty ID when no draft store is wired.
func (s *PlanService) ProposePlan(ctx context.Context, meals []model.MealProposal) (*PlanDraft, error) {
	result := s.aggregator.AggregatePlan(meals)

	draft := &PlanDraft{
		Meals:      result.Meals,
		DayTotals:  result.DayTotals,
		Unresolved: result.Unresolved,
	}

	if s.drafts != nil {
		if err := s.drafts.SaveDraft(ctx, draft); err != nil {
			return nil, err
		}
	}

	return draft, nil
}
