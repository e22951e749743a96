package recipes

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/pkg/errors"
)

type RecipeServiceTestSuite struct {
	suite.Suite

	service inbound.RecipeService
	ctx     context.Context
}

func (s *RecipeServiceTestSuite) SetupTest() {
	s.service = NewRecipeService(memory.NewRecipeRepository(), zap.NewNop())
	s.ctx = context.Background()
}

func (s *RecipeServiceTestSuite) validCommand() inbound.CreateRecipeCommand {
	quantity := 200.0
	return inbound.CreateRecipeCommand{
		Title: "Tomato Pasta",
		Ingredients: []inbound.RecipeIngredientCommand{
			{Name: "pasta", Quantity: &quantity, Unit: "g"},
			{Name: "tomatoes", Quantity: &quantity, Unit: "g"},
			{Name: "basil", Optional: true},
		},
		PrepTime:   10,
		CookTime:   20,
		Difficulty: "easy",
		MealTypes:  []string{"dinner"},
	}
}

func (s *RecipeServiceTestSuite) TestCreateRecipe_ShouldPersist() {
	// Act
	created, err := s.service.CreateRecipe(s.ctx, s.validCommand())

	// Assert
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, created.ID)
	s.Equal("Tomato Pasta", created.Title)
	s.Equal(30, created.TotalTime)
	s.Equal("easy", created.Difficulty)
	s.Len(created.Ingredients, 3)

	fetched, err := s.service.GetRecipe(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Title, fetched.Title)
}

func (s *RecipeServiceTestSuite) TestCreateRecipe_OnlyOptionalIngredientsShouldFail() {
	// Arrange
	cmd := s.validCommand()
	cmd.Ingredients = []inbound.RecipeIngredientCommand{
		{Name: "basil", Optional: true},
	}

	// Act
	_, err := s.service.CreateRecipe(s.ctx, cmd)

	// Assert
	s.Require().Error(err)
	s.True(errors.Is(err, errors.CodeInvalidRecipe))
}

func (s *RecipeServiceTestSuite) TestCreateRecipe_ShortTitleShouldFail() {
	// Arrange
	cmd := s.validCommand()
	cmd.Title = "ab"

	// Act
	_, err := s.service.CreateRecipe(s.ctx, cmd)

	// Assert
	s.Require().Error(err)
	s.True(errors.Is(err, errors.CodeInvalidRecipe))
}

func (s *RecipeServiceTestSuite) TestGetRecipe_UnknownIDShouldFail() {
	// Act
	_, err := s.service.GetRecipe(s.ctx, uuid.New())

	// Assert
	s.Require().Error(err)
	s.True(errors.Is(err, errors.CodeRecipeNotFound))
}

func (s *RecipeServiceTestSuite) TestDeleteRecipe_ShouldRemoveFromCatalog() {
	// Arrange
	created, err := s.service.CreateRecipe(s.ctx, s.validCommand())
	s.Require().NoError(err)

	// Act
	err = s.service.DeleteRecipe(s.ctx, created.ID)

	// Assert
	s.Require().NoError(err)
	_, err = s.service.GetRecipe(s.ctx, created.ID)
	s.True(errors.Is(err, errors.CodeRecipeNotFound))
}

func (s *RecipeServiceTestSuite) TestDeleteRecipe_UnknownIDShouldFail() {
	// Act
	err := s.service.DeleteRecipe(s.ctx, uuid.New())

	// Assert
	s.True(errors.Is(err, errors.CodeRecipeNotFound))
}

func (s *RecipeServiceTestSuite) TestListRecipes_ShouldReturnCatalog() {
	// Arrange
	_, err := s.service.CreateRecipe(s.ctx, s.validCommand())
	s.Require().NoError(err)
	second := s.validCommand()
	second.Title = "Basil Soup"
	_, err = s.service.CreateRecipe(s.ctx, second)
	s.Require().NoError(err)

	// Act
	listed, err := s.service.ListRecipes(s.ctx)

	// Assert
	s.Require().NoError(err)
	s.Len(listed, 2)
}

func TestRecipeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceTestSuite))
}
