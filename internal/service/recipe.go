package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefit/nutrition-engine/internal/matching"
	"github.com/platefit/nutrition-engine/internal/model"
)

// defaultSearchLimit bounds tag and title lookups when the caller
// does not ask for a specific count.
const defaultSearchLimit = 10

// RecipeService handles recipe library operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe inserts a recipe into the library
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// TitleExists reports whether a recipe with exactly this title is
// already in the library. Imports use it to skip duplicates.
func (s *RecipeService) TitleExists(ctx context.Context, title string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("title = ?", title).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListRecipes returns the whole library in insertion order. The
// matcher relies on this order for its stable tie-break.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Order("created_at ASC").Order("id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindNearest returns up to limit recipes whose per-100g profile is
// closest to target, best first. tolerance<=0 and limit<=0 fall back
// to the matcher defaults.
func (s *RecipeService) FindNearest(ctx context.Context, target model.MacroTarget, tolerance float64, limit int) ([]model.Recipe, error) {
	recipes, err := s.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return matching.FindNearest(recipes, target, tolerance, limit)
}

// FindByTags returns recipes whose tags contain any of the given
// strings, case-insensitive, deduplicated by id in first-seen order.
func (s *RecipeService) FindByTags(ctx context.Context, tags []string, limit int) ([]model.Recipe, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	seen := make(map[uuid.UUID]bool)
	var unique []model.Recipe

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}

		var found []model.Recipe
		query := s.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Limit(limit)
		like := "%" + strings.ToLower(tag) + "%"
		if s.db.Dialector.Name() == "postgres" {
			query = query.Where("LOWER(tags::text) LIKE ?", like)
		} else {
			query = query.Where("LOWER(tags) LIKE ?", like)
		}
		if err := query.Find(&found).Error; err != nil {
			return nil, err
		}

		for _, recipe := range found {
			if seen[recipe.ID] {
				continue
			}
			seen[recipe.ID] = true
			unique = append(unique, recipe)
		}
	}

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique, nil
}

// FindByTitle returns recipes whose title contains the query,
// case-insensitive.
func (s *RecipeService) FindByTitle(ctx context.Context, query string, limit int) ([]model.Recipe, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("created_at ASC").Order("id ASC").
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// RandomRecipes returns an unweighted random sample of up to limit
// recipes for callers with no macro criteria at all.
func (s *RecipeService) RandomRecipes(ctx context.Context, limit int) ([]model.Recipe, error) {
	if limit <= 0 {
		limit = matching.DefaultLimit
	}

	recipes, err := s.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipes) <= limit {
		return recipes, nil
	}

	sample := make([]model.Recipe, 0, limit)
	for _, i := range rand.Perm(len(recipes))[:limit] {
		sample = append(sample, recipes[i])
	}
	return sample, nil
}
