// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pantrysage/v2/internal/matching"
)

// SuggestionService defines the use cases for recipe suggestions
// This is the primary port that HTTP handlers and other driving adapters will use
type SuggestionService interface {
	// SuggestFromPantry ranks the catalog against the stored inventory snapshot.
	SuggestFromPantry(ctx context.Context, query SuggestQuery) (*SuggestionResponse, error)

	// SuggestFromIngredients ranks the catalog against an explicit ingredient
	// name list, bypassing the stored inventory.
	SuggestFromIngredients(ctx context.Context, query CustomSuggestQuery) (*SuggestionResponse, error)
}

// PantryService defines the use cases for inventory management
type PantryService interface {
	AddItem(ctx context.Context, cmd AddItemCommand) (*InventoryItemDTO, error)
	UpdateItem(ctx context.Context, cmd UpdateItemCommand) (*InventoryItemDTO, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error
	GetItem(ctx context.Context, id uuid.UUID) (*InventoryItemDTO, error)
	ListItems(ctx context.Context) ([]InventoryItemDTO, error)
	ListExpiring(ctx context.Context, within time.Duration) ([]InventoryItemDTO, error)
}

// RecipeService defines the use cases for recipe catalog management
type RecipeService interface {
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	GetRecipe(ctx context.Context, id uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context) ([]RecipeDTO, error)
}

// Query objects

// SuggestFilters carries the caller-supplied ranking constraints.
// Every field is optional; absence means no constraint.
type SuggestFilters struct {
	MinMatchPercentage  *float64 `json:"min_match_percentage,omitempty" validate:"omitempty,gte=0,lte=1"`
	MaxPrepTime         *int     `json:"max_prep_time,omitempty" validate:"omitempty,gte=0"`
	MaxCookTime         *int     `json:"max_cook_time,omitempty" validate:"omitempty,gte=0"`
	Difficulty          []string `json:"difficulty,omitempty" validate:"omitempty,dive,oneof=easy medium hard"`
	MealTypes           []string `json:"meal_types,omitempty" validate:"omitempty,dive,oneof=breakfast lunch dinner snack dessert"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	ExcludeIngredients  []string `json:"exclude_ingredients,omitempty"`
	MaxSuggestions      int      `json:"max_suggestions,omitempty" validate:"omitempty,gte=1,lte=50"`
	PrioritizeExpiring  bool     `json:"prioritize_expiring,omitempty"`
}

// SuggestQuery asks for suggestions against the stored pantry.
type SuggestQuery struct {
	Filters SuggestFilters `json:"filters"`
	Debug   bool           `json:"debug,omitempty"`
}

// CustomSuggestQuery asks for suggestions against an ad-hoc ingredient list.
type CustomSuggestQuery struct {
	Ingredients []string       `json:"ingredients" validate:"required,min=1,dive,required"`
	Filters     SuggestFilters `json:"filters"`
	Debug       bool           `json:"debug,omitempty"`
}

// Command objects

// AddItemCommand contains data for adding an inventory item
type AddItemCommand struct {
	Name       string     `json:"name" validate:"required"`
	Category   string     `json:"category,omitempty"`
	Quantity   float64    `json:"quantity" validate:"gte=0"`
	Unit       string     `json:"unit,omitempty"`
	Expiration *time.Time `json:"expiration,omitempty"`
	Location   string     `json:"location,omitempty"`
}

// UpdateItemCommand contains data for updating an inventory item
type UpdateItemCommand struct {
	ID         uuid.UUID  `json:"-"`
	Name       *string    `json:"name,omitempty"`
	Category   *string    `json:"category,omitempty"`
	Quantity   *float64   `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit       *string    `json:"unit,omitempty"`
	Expiration *time.Time `json:"expiration,omitempty"`
	Location   *string    `json:"location,omitempty"`
}

// CreateRecipeCommand contains data for creating a recipe
type CreateRecipeCommand struct {
	Title         string                    `json:"title" validate:"required,min=3,max=200"`
	Ingredients   []RecipeIngredientCommand `json:"ingredients" validate:"required,min=1,dive"`
	PrepTime      int                       `json:"prep_time" validate:"gte=0"`
	CookTime      int                       `json:"cook_time" validate:"gte=0"`
	Difficulty    string                    `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	MealTypes     []string                  `json:"meal_types,omitempty"`
	DietaryTags   []string                  `json:"dietary_tags,omitempty"`
	EstimatedCost *float64                  `json:"estimated_cost,omitempty" validate:"omitempty,gte=0"`
}

// RecipeIngredientCommand describes one required ingredient
type RecipeIngredientCommand struct {
	Name     string   `json:"name" validate:"required"`
	Quantity *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit     string   `json:"unit,omitempty"`
	Optional bool     `json:"optional,omitempty"`
}

// Response DTOs

// MatchedIngredientDTO reports one resolved ingredient of a suggestion
type MatchedIngredientDTO struct {
	Name               string   `json:"name"`
	MatchedWith        string   `json:"matched_with,omitempty"`
	MatchType          string   `json:"match_type"`
	Confidence         float64  `json:"confidence"`
	RequiredQuantity   *float64 `json:"required_quantity,omitempty"`
	RequiredUnit       string   `json:"required_unit,omitempty"`
	AvailableQuantity  *float64 `json:"available_quantity,omitempty"`
	AvailableUnit      string   `json:"available_unit,omitempty"`
	QuantitySufficient bool     `json:"quantity_sufficient"`
}

// MissingIngredientDTO reports one unresolved ingredient of a suggestion
type MissingIngredientDTO struct {
	Name             string   `json:"name"`
	RequiredQuantity *float64 `json:"required_quantity,omitempty"`
	RequiredUnit     string   `json:"required_unit,omitempty"`
	EstimatedCost    *float64 `json:"estimated_cost,omitempty"`
}

// SuggestionDTO is one ranked candidate recipe
type SuggestionDTO struct {
	RecipeID              uuid.UUID                `json:"recipe_id"`
	Title                 string                   `json:"title"`
	MatchScore            float64                  `json:"match_score"`
	PantryUsagePercentage int                      `json:"pantry_usage_percentage"`
	PrepTime              int                      `json:"prep_time"`
	CookTime              int                      `json:"cook_time"`
	Difficulty            string                   `json:"difficulty"`
	MatchedIngredients    []MatchedIngredientDTO   `json:"matched_ingredients"`
	MissingIngredients    []MissingIngredientDTO   `json:"missing_ingredients"`
	ScoreBreakdown        *matching.ScoreBreakdown `json:"score_breakdown,omitempty"`
}

// SuggestionResponse is the ordered suggestion list with the applied
// filters echoed back for caller transparency.
type SuggestionResponse struct {
	Suggestions []SuggestionDTO        `json:"suggestions"`
	Filters     SuggestFilters         `json:"filters"`
	Timings     *matching.StageTimings `json:"timings,omitempty"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// InventoryItemDTO is the data transfer object for inventory items
type InventoryItemDTO struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Category   string     `json:"category,omitempty"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit,omitempty"`
	Expiration *time.Time `json:"expiration,omitempty"`
	Location   string     `json:"location,omitempty"`
	AddedAt    time.Time  `json:"added_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// RecipeIngredientDTO for ingredient data
type RecipeIngredientDTO struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Optional bool     `json:"optional"`
}

// RecipeDTO is the data transfer object for recipes
type RecipeDTO struct {
	ID            uuid.UUID             `json:"id"`
	Title         string                `json:"title"`
	Ingredients   []RecipeIngredientDTO `json:"ingredients"`
	PrepTime      int                   `json:"prep_time"`
	CookTime      int                   `json:"cook_time"`
	TotalTime     int                   `json:"total_time"`
	Difficulty    string                `json:"difficulty"`
	MealTypes     []string              `json:"meal_types,omitempty"`
	DietaryTags   []string              `json:"dietary_tags,omitempty"`
	EstimatedCost *float64              `json:"estimated_cost,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}
