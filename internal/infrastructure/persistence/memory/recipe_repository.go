package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// RecipeRepository implements in-memory recipe catalog persistence
type RecipeRepository struct {
	recipes map[uuid.UUID]*recipe.Recipe
	mutex   sync.RWMutex
}

// NewRecipeRepository creates a new in-memory recipe repository
func NewRecipeRepository() outbound.RecipeRepository {
	return &RecipeRepository{
		recipes: make(map[uuid.UUID]*recipe.Recipe),
	}
}

// Save stores a recipe
func (r *RecipeRepository) Save(ctx context.Context, entity *recipe.Recipe) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.recipes[entity.ID()] = entity
	return nil
}

// Update replaces an existing recipe
func (r *RecipeRepository) Update(ctx context.Context, entity *recipe.Recipe) error {
	return r.Save(ctx, entity)
}

// Delete removes a recipe
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.recipes, id)
	return nil
}

// FindByID returns a recipe by ID, nil when absent
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.recipes[id], nil
}

// FindAll returns the catalog ordered by title for stable output
func (r *RecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	recipes := make([]*recipe.Recipe, 0, len(r.recipes))
	for _, entity := range r.recipes {
		recipes = append(recipes, entity)
	}
	sortRecipes(recipes)
	return recipes, nil
}

// FindByMealType returns recipes that fit the given meal slot
func (r *RecipeRepository) FindByMealType(ctx context.Context, mealType recipe.MealType) ([]*recipe.Recipe, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	recipes := make([]*recipe.Recipe, 0)
	for _, entity := range r.recipes {
		if entity.HasMealType(mealType) {
			recipes = append(recipes, entity)
		}
	}
	sortRecipes(recipes)
	return recipes, nil
}

func sortRecipes(recipes []*recipe.Recipe) {
	sort.Slice(recipes, func(i, j int) bool {
		if recipes[i].Title() != recipes[j].Title() {
			return recipes[i].Title() < recipes[j].Title()
		}
		return recipes[i].ID().String() < recipes[j].ID().String()
	})
}
