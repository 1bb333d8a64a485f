package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/platefit/nutrition-engine/internal/model"
	"github.com/platefit/nutrition-engine/internal/nutrition"
)

// draftTTL is how long a pending plan draft survives before the
// caller either persists or abandons it.
const draftTTL = 24 * time.Hour

// PlanDraft is a recomputed meal plan held in Redis while the caller
// decides whether to keep it.
type PlanDraft struct {
	ID         string                     `json:"id"`
	Meals      []nutrition.MealNutrition  `json:"meals"`
	DayTotals  model.Macros               `json:"day_totals"`
	Unresolved []nutrition.UnresolvedItem `json:"unresolved,omitempty"`
	CreatedAt  time.Time                  `json:"created_at"`
}

// DraftService stores plan drafts in Redis
type DraftService struct {
	redis *redis.Client
}

// NewDraftService creates a new DraftService instance
func NewDraftService(client *redis.Client) *DraftService {
	return &DraftService{redis: client}
}

// SaveDraft assigns an ID to the draft and stores it with a TTL
func (s *DraftService) SaveDraft(ctx context.Context, draft *PlanDraft) error {
	draft.ID = uuid.New().String()
	draft.CreatedAt = time.Now()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	key := fmt.Sprintf("plan:draft:%s", draft.ID)
	if err := s.redis.Set(ctx, key, data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft to Redis: %w", err)
	}

	return nil
}

// GetDraft retrieves a plan draft from Redis
func (s *DraftService) GetDraft(ctx context.Context, id string) (*PlanDraft, error) {
	key := fmt.Sprintf("plan:draft:%s", id)
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var draft PlanDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	return &draft, nil
}

// DeleteDraft removes a plan draft from Redis
func (s *DraftService) DeleteDraft(ctx context.Context, id string) error {
	key := fmt.Sprintf("plan:draft:%s", id)
	if err := s.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}
	return nil
}
