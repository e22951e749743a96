package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// RecipeRepository implements recipe catalog persistence on PostgreSQL.
// The ingredient list is stored as a JSONB column; meal types and dietary
// tags as text arrays.
type RecipeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *pgxpool.Pool, logger *zap.Logger) outbound.RecipeRepository {
	return &RecipeRepository{
		db:     db,
		logger: logger,
	}
}

// ingredientRecord is the JSONB shape of one required ingredient
type ingredientRecord struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Optional bool     `json:"optional,omitempty"`
}

// Save inserts a recipe
func (r *RecipeRepository) Save(ctx context.Context, entity *recipe.Recipe) error {
	return r.upsert(ctx, entity, `
		INSERT INTO recipes (id, title, ingredients, prep_time, cook_time, difficulty, meal_types, dietary_tags, estimated_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)
}

// Update replaces an existing recipe
func (r *RecipeRepository) Update(ctx context.Context, entity *recipe.Recipe) error {
	return r.upsert(ctx, entity, `
		UPDATE recipes
		SET title = $2, ingredients = $3, prep_time = $4, cook_time = $5, difficulty = $6,
		    meal_types = $7, dietary_tags = $8, estimated_cost = $9, created_at = $10, updated_at = $11
		WHERE id = $1`)
}

func (r *RecipeRepository) upsert(ctx context.Context, entity *recipe.Recipe, query string) error {
	records := make([]ingredientRecord, 0, len(entity.Ingredients()))
	for _, ing := range entity.Ingredients() {
		records = append(records, ingredientRecord{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Optional: ing.Optional,
		})
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}

	mealTypes := make([]string, 0, len(entity.MealTypes()))
	for _, mt := range entity.MealTypes() {
		mealTypes = append(mealTypes, string(mt))
	}
	tags := make([]string, 0, len(entity.DietaryTags()))
	for _, tag := range entity.DietaryTags() {
		tags = append(tags, string(tag))
	}

	_, err = r.db.Exec(ctx, query,
		entity.ID(), entity.Title(), payload, entity.PrepTime(), entity.CookTime(),
		string(entity.Difficulty()), mealTypes, tags, entity.EstimatedCost(),
		entity.CreatedAt(), entity.UpdatedAt(),
	)
	if err != nil {
		r.logger.Error("Failed to persist recipe",
			zap.String("recipe_id", entity.ID().String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Delete removes a recipe
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete recipe",
			zap.String("recipe_id", id.String()),
			zap.Error(err),
		)
	}
	return err
}

// FindByID retrieves a recipe by ID, nil when absent
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	query := `
		SELECT id, title, ingredients, prep_time, cook_time, difficulty, meal_types, dietary_tags, estimated_cost, created_at, updated_at
		FROM recipes WHERE id = $1`

	entity, err := scanRecipe(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// FindAll retrieves the full catalog
func (r *RecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	query := `
		SELECT id, title, ingredients, prep_time, cook_time, difficulty, meal_types, dietary_tags, estimated_cost, created_at, updated_at
		FROM recipes ORDER BY title, id`

	return r.queryRecipes(ctx, query)
}

// FindByMealType retrieves recipes fitting the given meal slot
func (r *RecipeRepository) FindByMealType(ctx context.Context, mealType recipe.MealType) ([]*recipe.Recipe, error) {
	query := `
		SELECT id, title, ingredients, prep_time, cook_time, difficulty, meal_types, dietary_tags, estimated_cost, created_at, updated_at
		FROM recipes WHERE $1 = ANY(meal_types) ORDER BY title, id`

	return r.queryRecipes(ctx, query, string(mealType))
}

func (r *RecipeRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]*recipe.Recipe, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := make([]*recipe.Recipe, 0)
	for rows.Next() {
		entity, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, entity)
	}
	return recipes, rows.Err()
}

func scanRecipe(row pgx.Row) (*recipe.Recipe, error) {
	var (
		id            uuid.UUID
		title         string
		payload       []byte
		prepTime      int
		cookTime      int
		difficulty    string
		mealTypes     []string
		tags          []string
		estimatedCost *float64
		createdAt     time.Time
		updatedAt     time.Time
	)
	err := row.Scan(&id, &title, &payload, &prepTime, &cookTime, &difficulty,
		&mealTypes, &tags, &estimatedCost, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var records []ingredientRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}
	ingredients := make([]recipe.RequiredIngredient, 0, len(records))
	for _, rec := range records {
		ingredients = append(ingredients, recipe.RequiredIngredient{
			Name:     rec.Name,
			Quantity: rec.Quantity,
			Unit:     rec.Unit,
			Optional: rec.Optional,
		})
	}

	opts := []recipe.Option{
		recipe.WithID(id),
		recipe.WithTimings(prepTime, cookTime),
		recipe.WithDifficulty(recipe.DifficultyLevel(difficulty)),
		recipe.WithTimestamps(createdAt, updatedAt),
	}
	if len(mealTypes) > 0 {
		mts := make([]recipe.MealType, 0, len(mealTypes))
		for _, mt := range mealTypes {
			mts = append(mts, recipe.MealType(mt))
		}
		opts = append(opts, recipe.WithMealTypes(mts...))
	}
	if len(tags) > 0 {
		dts := make([]recipe.DietaryTag, 0, len(tags))
		for _, tag := range tags {
			dts = append(dts, recipe.DietaryTag(tag))
		}
		opts = append(opts, recipe.WithDietaryTags(dts...))
	}
	if estimatedCost != nil {
		opts = append(opts, recipe.WithEstimatedCost(*estimatedCost))
	}

	return recipe.NewRecipe(title, ingredients, opts...)
}
