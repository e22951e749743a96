// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
)

// PantryRepository defines the interface for inventory persistence
type PantryRepository interface {
	Save(ctx context.Context, item pantry.InventoryItem) error
	Update(ctx context.Context, item pantry.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*pantry.InventoryItem, error)
	FindAll(ctx context.Context) ([]pantry.InventoryItem, error)
	FindByCategory(ctx context.Context, category pantry.Category) ([]pantry.InventoryItem, error)
	FindExpiringBefore(ctx context.Context, cutoff time.Time) ([]pantry.InventoryItem, error)
}

// RecipeRepository defines the interface for recipe catalog persistence
type RecipeRepository interface {
	Save(ctx context.Context, r *recipe.Recipe) error
	Update(ctx context.Context, r *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindAll(ctx context.Context) ([]*recipe.Recipe, error)
	FindByMealType(ctx context.Context, mealType recipe.MealType) ([]*recipe.Recipe, error)
}

// SuggestionMetrics records suggestion pipeline observations
type SuggestionMetrics interface {
	ObserveSuggestion(duration time.Duration, cacheHit bool)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
