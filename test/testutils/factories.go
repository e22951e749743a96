// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
)

// ItemBuilder provides a fluent interface for building test inventory items
type ItemBuilder struct {
	item pantry.InventoryItem
}

// NewItemBuilder creates an item builder with sensible defaults
func NewItemBuilder() *ItemBuilder {
	faker := gofakeit.New(time.Now().UnixNano())
	now := time.Now().UTC()
	return &ItemBuilder{
		item: pantry.InventoryItem{
			ID:        uuid.New(),
			Name:      faker.Vegetable(),
			Category:  pantry.CategoryProduce,
			Quantity:  float64(faker.Number(1, 10)),
			Unit:      "piece",
			Location:  "fridge",
			AddedAt:   now,
			UpdatedAt: now,
		},
	}
}

// WithName sets the item name
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.item.Name = name
	return b
}

// WithCategory sets the item category
func (b *ItemBuilder) WithCategory(category pantry.Category) *ItemBuilder {
	b.item.Category = category
	return b
}

// WithQuantity sets the quantity and unit
func (b *ItemBuilder) WithQuantity(quantity float64, unit string) *ItemBuilder {
	b.item.Quantity = quantity
	b.item.Unit = unit
	return b
}

// WithExpiration sets the expiration timestamp
func (b *ItemBuilder) WithExpiration(expiration time.Time) *ItemBuilder {
	b.item.Expiration = &expiration
	return b
}

// WithLocation sets the storage location
func (b *ItemBuilder) WithLocation(location string) *ItemBuilder {
	b.item.Location = location
	return b
}

// Build returns the constructed item
func (b *ItemBuilder) Build() pantry.InventoryItem {
	return b.item
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	title       string
	ingredients []recipe.RequiredIngredient
	prepTime    int
	cookTime    int
	difficulty  recipe.DifficultyLevel
	mealTypes   []recipe.MealType
	dietaryTags []recipe.DietaryTag
	cost        *float64
}

// NewRecipeBuilder creates a recipe builder with sensible defaults
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(time.Now().UnixNano())
	return &RecipeBuilder{
		title: faker.Dinner(),
		ingredients: []recipe.RequiredIngredient{
			{Name: faker.Vegetable()},
		},
		prepTime:   15,
		cookTime:   30,
		difficulty: recipe.DifficultyMedium,
	}
}

// WithTitle sets the recipe title
func (b *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	b.title = title
	return b
}

// WithIngredients replaces the ingredient list
func (b *RecipeBuilder) WithIngredients(ingredients ...recipe.RequiredIngredient) *RecipeBuilder {
	b.ingredients = ingredients
	return b
}

// WithTimings sets prep and cook time in minutes
func (b *RecipeBuilder) WithTimings(prepTime, cookTime int) *RecipeBuilder {
	b.prepTime = prepTime
	b.cookTime = cookTime
	return b
}

// WithDifficulty sets the difficulty level
func (b *RecipeBuilder) WithDifficulty(difficulty recipe.DifficultyLevel) *RecipeBuilder {
	b.difficulty = difficulty
	return b
}

// WithMealTypes sets the meal type tags
func (b *RecipeBuilder) WithMealTypes(mealTypes ...recipe.MealType) *RecipeBuilder {
	b.mealTypes = mealTypes
	return b
}

// WithDietaryTags sets the dietary tags
func (b *RecipeBuilder) WithDietaryTags(tags ...recipe.DietaryTag) *RecipeBuilder {
	b.dietaryTags = tags
	return b
}

// WithEstimatedCost sets the estimated cost of missing ingredients
func (b *RecipeBuilder) WithEstimatedCost(cost float64) *RecipeBuilder {
	b.cost = &cost
	return b
}

// Build constructs the recipe, panicking on invalid input so test setup
// mistakes surface immediately.
func (b *RecipeBuilder) Build() *recipe.Recipe {
	opts := []recipe.Option{
		recipe.WithTimings(b.prepTime, b.cookTime),
		recipe.WithDifficulty(b.difficulty),
	}
	if len(b.mealTypes) > 0 {
		opts = append(opts, recipe.WithMealTypes(b.mealTypes...))
	}
	if len(b.dietaryTags) > 0 {
		opts = append(opts, recipe.WithDietaryTags(b.dietaryTags...))
	}
	if b.cost != nil {
		opts = append(opts, recipe.WithEstimatedCost(*b.cost))
	}
	r, err := recipe.NewRecipe(b.title, b.ingredients, opts...)
	if err != nil {
		panic(err)
	}
	return r
}
