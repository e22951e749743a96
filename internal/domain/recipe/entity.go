// Package recipe contains the core domain logic for recipe management.
// This follows Domain-Driven Design principles with rich domain models.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Recipe represents the core recipe entity in our domain.
// It is immutable for the duration of a matching run; the suggestion
// engine only reads it.
type Recipe struct {
	id    uuid.UUID
	title string

	ingredients []RequiredIngredient

	// Timing, in minutes
	prepTime int
	cookTime int

	difficulty  DifficultyLevel
	mealTypes   []MealType
	dietaryTags []DietaryTag

	// estimatedCost is the approximate ingredient cost in dollars, used
	// for the savings estimate; nil when unknown.
	estimatedCost *float64

	createdAt time.Time
	updatedAt time.Time
}

// NewRecipe creates a new Recipe with validation. A recipe must carry at
// least one non-optional ingredient; a recipe made only of optional
// ingredients is rejected here and never reaches the matching pipeline.
func NewRecipe(title string, ingredients []RequiredIngredient, opts ...Option) (*Recipe, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	required := 0
	for _, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			return nil, err
		}
		if !ing.Optional {
			required++
		}
	}
	if required == 0 {
		return nil, ErrNoRequiredIngredients
	}

	now := time.Now()
	r := &Recipe{
		id:          uuid.New(),
		title:       title,
		ingredients: append([]RequiredIngredient(nil), ingredients...),
		difficulty:  DifficultyMedium,
		createdAt:   now,
		updatedAt:   now,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Option configures optional recipe attributes at construction time
type Option func(*Recipe) error

// WithTimings sets prep and cook time in minutes
func WithTimings(prepTime, cookTime int) Option {
	return func(r *Recipe) error {
		if prepTime < 0 || cookTime < 0 {
			return ErrNegativeTime
		}
		r.prepTime = prepTime
		r.cookTime = cookTime
		return nil
	}
}

// WithDifficulty sets the difficulty level
func WithDifficulty(difficulty DifficultyLevel) Option {
	return func(r *Recipe) error {
		if !difficulty.IsValid() {
			return ErrInvalidDifficulty
		}
		r.difficulty = difficulty
		return nil
	}
}

// WithMealTypes sets the meal slots this recipe fits
func WithMealTypes(mealTypes ...MealType) Option {
	return func(r *Recipe) error {
		r.mealTypes = append([]MealType(nil), mealTypes...)
		return nil
	}
}

// WithDietaryTags sets the dietary properties this recipe satisfies
func WithDietaryTags(tags ...DietaryTag) Option {
	return func(r *Recipe) error {
		r.dietaryTags = append([]DietaryTag(nil), tags...)
		return nil
	}
}

// WithEstimatedCost sets the approximate ingredient cost in dollars
func WithEstimatedCost(cost float64) Option {
	return func(r *Recipe) error {
		if cost < 0 {
			return ErrNegativeEstimatedCost
		}
		r.estimatedCost = &cost
		return nil
	}
}

// WithID overrides the generated identifier, used when rehydrating a
// recipe from storage
func WithID(id uuid.UUID) Option {
	return func(r *Recipe) error {
		r.id = id
		return nil
	}
}

// WithTimestamps overrides creation metadata, used when rehydrating a
// recipe from storage
func WithTimestamps(createdAt, updatedAt time.Time) Option {
	return func(r *Recipe) error {
		r.createdAt = createdAt
		r.updatedAt = updatedAt
		return nil
	}
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Title returns the recipe's title
func (r *Recipe) Title() string {
	return r.title
}

// Ingredients returns the recipe's ingredient list
func (r *Recipe) Ingredients() []RequiredIngredient {
	return r.ingredients
}

// RequiredIngredients returns only the non-optional ingredients
func (r *Recipe) RequiredIngredients() []RequiredIngredient {
	required := make([]RequiredIngredient, 0, len(r.ingredients))
	for _, ing := range r.ingredients {
		if !ing.Optional {
			required = append(required, ing)
		}
	}
	return required
}

// PrepTime returns the preparation time in minutes
func (r *Recipe) PrepTime() int {
	return r.prepTime
}

// CookTime returns the cooking time in minutes
func (r *Recipe) CookTime() int {
	return r.cookTime
}

// TotalTime returns prep plus cook time in minutes
func (r *Recipe) TotalTime() int {
	return r.prepTime + r.cookTime
}

// Difficulty returns the recipe's difficulty level
func (r *Recipe) Difficulty() DifficultyLevel {
	return r.difficulty
}

// MealTypes returns the meal slots this recipe fits
func (r *Recipe) MealTypes() []MealType {
	return r.mealTypes
}

// DietaryTags returns the dietary properties this recipe satisfies
func (r *Recipe) DietaryTags() []DietaryTag {
	return r.dietaryTags
}

// EstimatedCost returns the approximate ingredient cost, nil when unknown
func (r *Recipe) EstimatedCost() *float64 {
	return r.estimatedCost
}

// HasMealType reports whether the recipe fits the given meal slot
func (r *Recipe) HasMealType(mt MealType) bool {
	for _, t := range r.mealTypes {
		if t == mt {
			return true
		}
	}
	return false
}

// HasDietaryTag reports whether the recipe satisfies the given dietary tag
func (r *Recipe) HasDietaryTag(tag DietaryTag) bool {
	for _, t := range r.dietaryTags {
		if t == tag {
			return true
		}
	}
	return false
}

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last updated
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// validateTitle validates recipe title
func validateTitle(title string) error {
	if len(title) < 3 {
		return ErrTitleTooShort
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}
