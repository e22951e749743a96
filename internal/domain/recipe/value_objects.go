package recipe

import (
	"errors"
	"strings"
)

// Value Objects - Immutable objects that describe aspects of the domain

// RequiredIngredient represents one ingredient a recipe calls for.
// Quantity and Unit are optional: "to taste" ingredients carry neither.
type RequiredIngredient struct {
	Name     string
	Quantity *float64
	Unit     string
	Optional bool
}

// Validate validates the required ingredient
func (i RequiredIngredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.New("ingredient name is required")
	}
	if i.Quantity != nil && *i.Quantity < 0 {
		return errors.New("ingredient quantity cannot be negative")
	}
	return nil
}

// DifficultyLevel represents recipe difficulty
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// IsValid reports whether the difficulty is a known value
func (d DifficultyLevel) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// MealType represents the meal slot a recipe fits
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
	MealTypeDessert   MealType = "dessert"
)

// DietaryTag represents a dietary property a recipe satisfies
type DietaryTag string

const (
	DietaryVegetarian DietaryTag = "vegetarian"
	DietaryVegan      DietaryTag = "vegan"
	DietaryGlutenFree DietaryTag = "gluten_free"
	DietaryDairyFree  DietaryTag = "dairy_free"
	DietaryNutFree    DietaryTag = "nut_free"
	DietaryLowCarb    DietaryTag = "low_carb"
)
