package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

func floatPtr(v float64) *float64 {
	return &v
}

// TestRecipeCreation tests recipe creation scenarios
func (suite *RecipeTestSuite) TestRecipeCreation() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		// Arrange
		title := "Spaghetti Carbonara"
		ingredients := []RequiredIngredient{
			{Name: "spaghetti", Quantity: floatPtr(400), Unit: "g"},
			{Name: "eggs", Quantity: floatPtr(4), Unit: "piece"},
			{Name: "parmesan", Optional: true},
		}

		// Act
		r, err := NewRecipe(title, ingredients,
			WithTimings(10, 15),
			WithDifficulty(DifficultyEasy),
			WithMealTypes(MealTypeDinner),
		)

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), r)

		assert.Equal(suite.T(), title, r.Title())
		assert.NotEqual(suite.T(), uuid.Nil, r.ID())
		assert.Len(suite.T(), r.Ingredients(), 3)
		assert.Len(suite.T(), r.RequiredIngredients(), 2)
		assert.Equal(suite.T(), 10, r.PrepTime())
		assert.Equal(suite.T(), 15, r.CookTime())
		assert.Equal(suite.T(), 25, r.TotalTime())
		assert.Equal(suite.T(), DifficultyEasy, r.Difficulty())
		assert.True(suite.T(), r.HasMealType(MealTypeDinner))
		assert.False(suite.T(), r.HasMealType(MealTypeBreakfast))
		assert.NotZero(suite.T(), r.createdAt)
		assert.NotZero(suite.T(), r.updatedAt)
	})

	suite.Run("TitleTooShort_ShouldReturnError", func() {
		// Arrange
		title := "AB" // Less than 3 characters
		ingredients := []RequiredIngredient{{Name: "flour"}}

		// Act
		r, err := NewRecipe(title, ingredients)

		// Assert
		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrTitleTooShort, err)
	})

	suite.Run("TitleTooLong_ShouldReturnError", func() {
		// Arrange
		title := string(make([]byte, 201)) // More than 200 characters
		ingredients := []RequiredIngredient{{Name: "flour"}}

		// Act
		r, err := NewRecipe(title, ingredients)

		// Assert
		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrTitleTooLong, err)
	})

	suite.Run("OnlyOptionalIngredients_ShouldReturnError", func() {
		// Arrange
		ingredients := []RequiredIngredient{
			{Name: "parsley", Optional: true},
			{Name: "chili flakes", Optional: true},
		}

		// Act
		r, err := NewRecipe("Garnish Plate", ingredients)

		// Assert
		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrNoRequiredIngredients, err)
	})

	suite.Run("NoIngredients_ShouldReturnError", func() {
		// Act
		r, err := NewRecipe("Empty Plate", nil)

		// Assert
		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrNoRequiredIngredients, err)
	})

	suite.Run("NegativeTiming_ShouldReturnError", func() {
		// Arrange
		ingredients := []RequiredIngredient{{Name: "flour"}}

		// Act
		r, err := NewRecipe("Flatbread", ingredients, WithTimings(-5, 10))

		// Assert
		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrNegativeTime, err)
	})

	suite.Run("InvalidDifficulty_ShouldReturnError", func() {
		// Arrange
		ingredients := []RequiredIngredient{{Name: "flour"}}

		// Act
		r, err := NewRecipe("Flatbread", ingredients, WithDifficulty("impossible"))

		// Assert
		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrInvalidDifficulty, err)
	})

	suite.Run("NegativeEstimatedCost_ShouldReturnError", func() {
		// Arrange
		ingredients := []RequiredIngredient{{Name: "flour"}}

		// Act
		r, err := NewRecipe("Flatbread", ingredients, WithEstimatedCost(-1))

		// Assert
		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrNegativeEstimatedCost, err)
	})

	suite.Run("WithID_ShouldOverrideGeneratedID", func() {
		// Arrange
		id := uuid.New()
		ingredients := []RequiredIngredient{{Name: "flour"}}

		// Act
		r, err := NewRecipe("Flatbread", ingredients, WithID(id))

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), id, r.ID())
	})
}

// TestRecipeAttributes tests derived attribute accessors
func (suite *RecipeTestSuite) TestRecipeAttributes() {
	suite.Run("DefaultDifficulty_ShouldBeMedium", func() {
		// Arrange
		ingredients := []RequiredIngredient{{Name: "flour"}}

		// Act
		r, err := NewRecipe("Flatbread", ingredients)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), DifficultyMedium, r.Difficulty())
	})

	suite.Run("DietaryTags_ShouldBeQueryable", func() {
		// Arrange
		ingredients := []RequiredIngredient{{Name: "chickpeas"}}

		// Act
		r, err := NewRecipe("Chana Masala", ingredients,
			WithDietaryTags(DietaryVegan, DietaryGlutenFree),
		)

		// Assert
		require.NoError(suite.T(), err)
		assert.True(suite.T(), r.HasDietaryTag(DietaryVegan))
		assert.True(suite.T(), r.HasDietaryTag(DietaryGlutenFree))
		assert.False(suite.T(), r.HasDietaryTag(DietaryNutFree))
	})

	suite.Run("EstimatedCost_ShouldRoundTrip", func() {
		// Arrange
		ingredients := []RequiredIngredient{{Name: "salmon"}}

		// Act
		r, err := NewRecipe("Seared Salmon", ingredients, WithEstimatedCost(14.50))

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), r.EstimatedCost())
		assert.Equal(suite.T(), 14.50, *r.EstimatedCost())
	})

	suite.Run("IngredientsCopy_ShouldNotAliasInput", func() {
		// Arrange
		ingredients := []RequiredIngredient{{Name: "flour"}}

		// Act
		r, err := NewRecipe("Flatbread", ingredients)
		ingredients[0].Name = "mutated"

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "flour", r.Ingredients()[0].Name)
	})
}

// TestRequiredIngredientValidation tests ingredient value object validation
func (suite *RecipeTestSuite) TestRequiredIngredientValidation() {
	suite.Run("BlankName_ShouldReturnError", func() {
		ing := RequiredIngredient{Name: "   "}
		assert.Error(suite.T(), ing.Validate())
	})

	suite.Run("NegativeQuantity_ShouldReturnError", func() {
		ing := RequiredIngredient{Name: "flour", Quantity: floatPtr(-1)}
		assert.Error(suite.T(), ing.Validate())
	})

	suite.Run("QuantityLessIngredient_ShouldBeValid", func() {
		// "to taste" ingredients carry no quantity or unit
		ing := RequiredIngredient{Name: "salt"}
		assert.NoError(suite.T(), ing.Validate())
	})
}

// TestRecipeTestSuite runs the test suite
func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
