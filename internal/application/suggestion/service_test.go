package suggestion

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrysage/v2/internal/matching"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// metricsRecorder counts observations for assertions.
type metricsRecorder struct {
	computed  int
	cacheHits int
}

func (m *metricsRecorder) ObserveSuggestion(_ time.Duration, cacheHit bool) {
	if cacheHit {
		m.cacheHits++
		return
	}
	m.computed++
}

type SuggestionServiceTestSuite struct {
	suite.Suite

	pantryRepo outbound.PantryRepository
	recipeRepo outbound.RecipeRepository
	metrics    *metricsRecorder
	service    *SuggestionService
	now        time.Time
	ctx        context.Context
}

func (s *SuggestionServiceTestSuite) SetupTest() {
	s.pantryRepo = memory.NewPantryRepository()
	s.recipeRepo = memory.NewRecipeRepository()
	s.metrics = &metricsRecorder{}
	s.now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.ctx = context.Background()

	engine := matching.NewEngine(matching.DefaultScoreConfig(), matching.DefaultTables())
	svc := NewSuggestionService(s.pantryRepo, s.recipeRepo, memory.NewCacheRepository(), engine, s.metrics, zap.NewNop())
	s.service = svc.(*SuggestionService)
	s.service.now = func() time.Time { return s.now }
}

func (s *SuggestionServiceTestSuite) addItem(name string, quantity float64, unit string) {
	item := pantry.InventoryItem{
		ID:        uuid.New(),
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		AddedAt:   s.now,
		UpdatedAt: s.now,
	}
	s.Require().NoError(s.pantryRepo.Save(s.ctx, item))
}

func (s *SuggestionServiceTestSuite) addRecipe(title string, ingredientNames ...string) {
	ingredients := make([]recipe.RequiredIngredient, 0, len(ingredientNames))
	for _, name := range ingredientNames {
		ingredients = append(ingredients, recipe.RequiredIngredient{Name: name})
	}
	r, err := recipe.NewRecipe(title, ingredients)
	s.Require().NoError(err)
	s.Require().NoError(s.recipeRepo.Save(s.ctx, r))
}

func (s *SuggestionServiceTestSuite) TestSuggestFromPantry_ShouldRankFullMatchFirst() {
	// Arrange
	s.addItem("chicken breast", 500, "g")
	s.addItem("rice", 1, "kg")
	s.addRecipe("Chicken and Rice", "chicken breast", "rice")
	s.addRecipe("Beef Stew", "beef", "potatoes")

	// Act
	resp, err := s.service.SuggestFromPantry(s.ctx, inbound.SuggestQuery{})

	// Assert
	s.Require().NoError(err)
	s.Require().Len(resp.Suggestions, 2)
	s.Equal("Chicken and Rice", resp.Suggestions[0].Title)
	s.Equal(100, resp.Suggestions[0].PantryUsagePercentage)
	s.Equal(s.now, resp.GeneratedAt)
}

func (s *SuggestionServiceTestSuite) TestSuggestFromPantry_ShouldServeRepeatFromCache() {
	// Arrange
	s.addItem("eggs", 6, "piece")
	s.addRecipe("Omelette", "eggs")

	// Act
	first, err := s.service.SuggestFromPantry(s.ctx, inbound.SuggestQuery{})
	s.Require().NoError(err)
	second, err := s.service.SuggestFromPantry(s.ctx, inbound.SuggestQuery{})

	// Assert
	s.Require().NoError(err)
	s.Equal(first.GeneratedAt, second.GeneratedAt)
	s.Equal(1, s.metrics.computed)
	s.Equal(1, s.metrics.cacheHits)
}

func (s *SuggestionServiceTestSuite) TestSuggestFromPantry_PantryChangeShouldBypassCache() {
	// Arrange
	s.addItem("eggs", 6, "piece")
	s.addRecipe("Omelette", "eggs")
	_, err := s.service.SuggestFromPantry(s.ctx, inbound.SuggestQuery{})
	s.Require().NoError(err)

	// Act
	s.addItem("milk", 1, "l")
	_, err = s.service.SuggestFromPantry(s.ctx, inbound.SuggestQuery{})

	// Assert
	s.Require().NoError(err)
	s.Equal(2, s.metrics.computed)
	s.Equal(0, s.metrics.cacheHits)
}

func (s *SuggestionServiceTestSuite) TestSuggestFromPantry_DebugShouldIncludeTimingsAndBreakdown() {
	// Arrange
	s.addItem("eggs", 6, "piece")
	s.addRecipe("Omelette", "eggs")

	// Act
	resp, err := s.service.SuggestFromPantry(s.ctx, inbound.SuggestQuery{Debug: true})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(resp.Timings)
	s.Require().Len(resp.Suggestions, 1)
	s.Require().NotNil(resp.Suggestions[0].ScoreBreakdown)
	s.InDelta(1.0, resp.Suggestions[0].ScoreBreakdown.Coverage, 1e-9)
}

func (s *SuggestionServiceTestSuite) TestSuggestFromPantry_ShouldEchoFilters() {
	// Arrange
	s.addRecipe("Omelette", "eggs")
	minMatch := 0.5
	filters := inbound.SuggestFilters{MinMatchPercentage: &minMatch, PrioritizeExpiring: true}

	// Act
	resp, err := s.service.SuggestFromPantry(s.ctx, inbound.SuggestQuery{Filters: filters})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(resp.Filters.MinMatchPercentage)
	s.InDelta(0.5, *resp.Filters.MinMatchPercentage, 1e-9)
	s.True(resp.Filters.PrioritizeExpiring)
}

func (s *SuggestionServiceTestSuite) TestSuggestFromIngredients_ShouldMatchByNameOnly() {
	// Arrange
	s.addItem("beef", 300, "g") // stored pantry must not leak into custom suggestions
	s.addRecipe("Tomato Pasta", "tomatoes", "pasta")

	// Act
	resp, err := s.service.SuggestFromIngredients(s.ctx, inbound.CustomSuggestQuery{
		Ingredients: []string{"tomatoes", "pasta"},
	})

	// Assert
	s.Require().NoError(err)
	s.Require().Len(resp.Suggestions, 1)
	s.Equal(100, resp.Suggestions[0].PantryUsagePercentage)
	for _, m := range resp.Suggestions[0].MatchedIngredients {
		s.True(m.QuantitySufficient)
	}
}

func (s *SuggestionServiceTestSuite) TestSuggestFromIngredients_EmptyListShouldFail() {
	// Act
	_, err := s.service.SuggestFromIngredients(s.ctx, inbound.CustomSuggestQuery{})

	// Assert
	s.Require().Error(err)
	s.True(errors.Is(err, errors.CodeInvalidSuggestQuery))
}

func (s *SuggestionServiceTestSuite) TestSuggestFromIngredients_BlankNamesAreIgnored() {
	// Arrange
	s.addRecipe("Omelette", "eggs")

	// Act
	resp, err := s.service.SuggestFromIngredients(s.ctx, inbound.CustomSuggestQuery{
		Ingredients: []string{"  eggs  ", "   "},
	})

	// Assert
	s.Require().NoError(err)
	s.Require().Len(resp.Suggestions, 1)
	s.Equal("eggs", resp.Suggestions[0].MatchedIngredients[0].MatchedWith)
}

func TestSuggestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SuggestionServiceTestSuite))
}
