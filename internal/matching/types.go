// Package matching implements the leftover-to-recipe matching and ranking
// engine: it resolves a recipe's required ingredients against a pantry
// snapshot, scores the result, and ranks candidate recipes.
//
// The engine is synchronous and side-effect-free. One invocation reads an
// immutable snapshot of inventory and recipes and returns a fresh result;
// concurrent invocations share only the read-only lookup tables.
package matching

import (
	"time"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
)

// MatchType identifies the strategy that resolved a required ingredient
// against inventory.
type MatchType string

const (
	MatchExact      MatchType = "exact"
	MatchFuzzy      MatchType = "fuzzy"
	MatchCategory   MatchType = "category"
	MatchSubstitute MatchType = "substitute"
	MatchNone       MatchType = "none"
)

// IngredientMatch reports how one required ingredient was resolved against
// the inventory snapshot. Derived per request, never persisted.
type IngredientMatch struct {
	Required recipe.RequiredIngredient

	// Item is the inventory item that satisfied the requirement, nil when
	// Type is MatchNone or when an optional ingredient was absent.
	Item *pantry.InventoryItem

	Type       MatchType
	Confidence float64

	// QuantitySufficient is true when the available quantity covers the
	// required quantity after unit normalization. Defaults to true when
	// either quantity is unspecified.
	QuantitySufficient bool

	// QuantityUnknown flags a cross-dimension comparison (for example cups
	// required against pieces available). The match still counts but the
	// sufficiency verdict is a benefit-of-the-doubt guess.
	QuantityUnknown bool
}

// ScoreBreakdown exposes the named scoring components for debug output.
type ScoreBreakdown struct {
	Coverage    float64 `json:"coverage"`
	Urgency     float64 `json:"urgency"`
	CostSavings float64 `json:"cost_savings"`

	CoverageWeight float64 `json:"coverage_weight"`
	UrgencyWeight  float64 `json:"urgency_weight"`
	CostWeight     float64 `json:"cost_weight"`

	// LowConfidenceQuantities counts matched ingredients whose sufficiency
	// verdict came from a cross-dimension comparison.
	LowConfidenceQuantities int `json:"low_confidence_quantities"`

	Final float64 `json:"final"`
}

// SuggestionResult is one scored, ranked candidate recipe.
type SuggestionResult struct {
	Recipe          *recipe.Recipe
	MatchPercentage float64
	Matched         []IngredientMatch
	Missing         []IngredientMatch
	FinalScore      float64
	Breakdown       ScoreBreakdown
}

// StageTimings records per-stage wall time for one pipeline run. Only
// populated in debug mode.
type StageTimings struct {
	Evaluate time.Duration `json:"evaluate"`
	Score    time.Duration `json:"score"`
	Filter   time.Duration `json:"filter"`
	Sort     time.Duration `json:"sort"`
}

// FilterOptions are the caller-supplied constraints applied before ranking.
// A nil or zero field means no constraint.
type FilterOptions struct {
	MinMatchPercentage  *float64
	MaxPrepTime         *int
	MaxCookTime         *int
	Difficulties        []recipe.DifficultyLevel
	MealTypes           []recipe.MealType
	DietaryRestrictions []recipe.DietaryTag
	ExcludeIngredients  []string

	// MaxSuggestions caps the result list; zero means DefaultMaxSuggestions.
	MaxSuggestions int

	// PrioritizeExpiring doubles the expiration-urgency weight and
	// renormalizes, biasing the ranking toward at-risk stock.
	PrioritizeExpiring bool
}

// DefaultMaxSuggestions bounds the result list when the caller does not.
const DefaultMaxSuggestions = 10
