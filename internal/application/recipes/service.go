// Package recipes provides the application layer for recipe catalog management
package recipes

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// RecipeService implements the recipe catalog use cases
type RecipeService struct {
	repo   outbound.RecipeRepository
	logger *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(repo outbound.RecipeRepository, logger *zap.Logger) inbound.RecipeService {
	return &RecipeService{
		repo:   repo,
		logger: logger.Named("recipe-service"),
	}
}

// CreateRecipe creates a new catalog recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	ingredients := make([]recipe.RequiredIngredient, 0, len(cmd.Ingredients))
	for _, ing := range cmd.Ingredients {
		ingredients = append(ingredients, recipe.RequiredIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Optional: ing.Optional,
		})
	}

	opts := []recipe.Option{recipe.WithTimings(cmd.PrepTime, cmd.CookTime)}
	if cmd.Difficulty != "" {
		opts = append(opts, recipe.WithDifficulty(recipe.DifficultyLevel(cmd.Difficulty)))
	}
	if len(cmd.MealTypes) > 0 {
		mealTypes := make([]recipe.MealType, 0, len(cmd.MealTypes))
		for _, mt := range cmd.MealTypes {
			mealTypes = append(mealTypes, recipe.MealType(mt))
		}
		opts = append(opts, recipe.WithMealTypes(mealTypes...))
	}
	if len(cmd.DietaryTags) > 0 {
		tags := make([]recipe.DietaryTag, 0, len(cmd.DietaryTags))
		for _, tag := range cmd.DietaryTags {
			tags = append(tags, recipe.DietaryTag(tag))
		}
		opts = append(opts, recipe.WithDietaryTags(tags...))
	}
	if cmd.EstimatedCost != nil {
		opts = append(opts, recipe.WithEstimatedCost(*cmd.EstimatedCost))
	}

	entity, err := recipe.NewRecipe(cmd.Title, ingredients, opts...)
	if err != nil {
		return nil, errors.NewInvalidRecipeError(err.Error())
	}

	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("save recipe", err)
	}

	s.logger.Info("Recipe created",
		zap.String("recipe_id", entity.ID().String()),
		zap.String("title", entity.Title()),
	)
	dto := entityToDTO(entity)
	return &dto, nil
}

// DeleteRecipe removes a recipe from the catalog
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.NewDatabaseError("load recipe", err)
	}
	if existing == nil {
		return errors.NewRecipeNotFoundError(id.String())
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}
	s.logger.Info("Recipe deleted", zap.String("recipe_id", id.String()))
	return nil
}

// GetRecipe returns a single recipe
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("load recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(id.String())
	}
	dto := entityToDTO(entity)
	return &dto, nil
}

// ListRecipes returns the full catalog
func (s *RecipeService) ListRecipes(ctx context.Context) ([]inbound.RecipeDTO, error) {
	entities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}
	dtos := make([]inbound.RecipeDTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, entityToDTO(entity))
	}
	return dtos, nil
}

func entityToDTO(r *recipe.Recipe) inbound.RecipeDTO {
	ingredients := make([]inbound.RecipeIngredientDTO, 0, len(r.Ingredients()))
	for _, ing := range r.Ingredients() {
		ingredients = append(ingredients, inbound.RecipeIngredientDTO{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Optional: ing.Optional,
		})
	}
	mealTypes := make([]string, 0, len(r.MealTypes()))
	for _, mt := range r.MealTypes() {
		mealTypes = append(mealTypes, string(mt))
	}
	tags := make([]string, 0, len(r.DietaryTags()))
	for _, tag := range r.DietaryTags() {
		tags = append(tags, string(tag))
	}
	return inbound.RecipeDTO{
		ID:            r.ID(),
		Title:         r.Title(),
		Ingredients:   ingredients,
		PrepTime:      r.PrepTime(),
		CookTime:      r.CookTime(),
		TotalTime:     r.TotalTime(),
		Difficulty:    string(r.Difficulty()),
		MealTypes:     mealTypes,
		DietaryTags:   tags,
		EstimatedCost: r.EstimatedCost(),
		CreatedAt:     r.CreatedAt(),
	}
}
