package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
)

// MatcherTestSuite provides a test suite for the ingredient matcher
type MatcherTestSuite struct {
	suite.Suite
	matcher *Matcher
	now     time.Time
}

func (suite *MatcherTestSuite) SetupSuite() {
	suite.matcher = NewMatcher(DefaultTables(), DefaultFuzzyThreshold)
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *MatcherTestSuite) expiringIn(days int) *time.Time {
	t := suite.now.Add(time.Duration(days) * 24 * time.Hour)
	return &t
}

func qty(v float64) *float64 {
	return &v
}

func (suite *MatcherTestSuite) TestMatchStrategies() {
	suite.Run("ExactName_ShouldMatchWithFullConfidence", func() {
		// Arrange
		inventory := []pantry.InventoryItem{
			{Name: "Chicken Breast", Category: pantry.CategoryMeat, Quantity: 2.5, Unit: "lb", Expiration: suite.expiringIn(5)},
		}
		required := recipe.RequiredIngredient{Name: "chicken breast", Quantity: qty(2), Unit: "lb"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		assert.Equal(suite.T(), MatchExact, match.Type)
		assert.Equal(suite.T(), 1.0, match.Confidence)
		require.NotNil(suite.T(), match.Item)
		assert.Equal(suite.T(), "Chicken Breast", match.Item.Name)
		assert.True(suite.T(), match.QuantitySufficient)
		assert.False(suite.T(), match.QuantityUnknown)
	})

	suite.Run("NearSpelling_ShouldFuzzyMatch", func() {
		// Arrange
		inventory := []pantry.InventoryItem{
			{Name: "Chicken Breasts", Category: pantry.CategoryMeat, Quantity: 4, Unit: "piece"},
		}
		required := recipe.RequiredIngredient{Name: "chicken breast"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		assert.Equal(suite.T(), MatchFuzzy, match.Type)
		assert.GreaterOrEqual(suite.T(), match.Confidence, DefaultFuzzyThreshold)
		assert.Less(suite.T(), match.Confidence, 1.0)
	})

	suite.Run("KnownIngredientWithCategoryStock_ShouldCategoryMatch", func() {
		// Arrange: no pasta by name, but a grains item is on hand
		inventory := []pantry.InventoryItem{
			{Name: "Orzo", Category: pantry.CategoryGrains, Quantity: 1, Unit: "box"},
		}
		required := recipe.RequiredIngredient{Name: "penne"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		assert.Equal(suite.T(), MatchCategory, match.Type)
		assert.Equal(suite.T(), 0.6, match.Confidence)
		require.NotNil(suite.T(), match.Item)
		assert.Equal(suite.T(), "Orzo", match.Item.Name)
	})

	suite.Run("SubstituteOnHand_ShouldSubstituteMatch", func() {
		// Arrange: no butter, margarine in stock. Margarine carries no
		// category so the category strategy cannot fire first.
		inventory := []pantry.InventoryItem{
			{Name: "Margarine", Quantity: 200, Unit: "g"},
		}
		required := recipe.RequiredIngredient{Name: "Butter", Quantity: qty(50), Unit: "g"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		assert.Equal(suite.T(), MatchSubstitute, match.Type)
		assert.Equal(suite.T(), 0.5, match.Confidence)
		require.NotNil(suite.T(), match.Item)
		assert.Equal(suite.T(), "Margarine", match.Item.Name)
		assert.True(suite.T(), match.QuantitySufficient)
	})

	suite.Run("NothingSuitable_ShouldReturnNone", func() {
		// Arrange
		inventory := []pantry.InventoryItem{
			{Name: "Chicken Breast", Category: pantry.CategoryMeat, Quantity: 2, Unit: "piece"},
		}
		required := recipe.RequiredIngredient{Name: "saffron"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		assert.Equal(suite.T(), MatchNone, match.Type)
		assert.Equal(suite.T(), 0.0, match.Confidence)
		assert.Nil(suite.T(), match.Item)
	})

	suite.Run("AbsentOptional_ShouldShortCircuitToConfidentMatch", func() {
		// Arrange
		inventory := []pantry.InventoryItem{
			{Name: "Flour", Category: pantry.CategoryBaking, Quantity: 1, Unit: "kg"},
		}
		required := recipe.RequiredIngredient{Name: "saffron", Optional: true}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		assert.Equal(suite.T(), 1.0, match.Confidence)
		assert.Nil(suite.T(), match.Item)
		assert.True(suite.T(), match.QuantitySufficient)
	})

	suite.Run("ExactBeatsFuzzy_WhenBothQualify", func() {
		// Arrange
		inventory := []pantry.InventoryItem{
			{Name: "Chicken Breasts", Category: pantry.CategoryMeat, Quantity: 10, Unit: "piece"},
			{Name: "Chicken Breast", Category: pantry.CategoryMeat, Quantity: 1, Unit: "piece"},
		}
		required := recipe.RequiredIngredient{Name: "chicken breast"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		assert.Equal(suite.T(), MatchExact, match.Type)
		assert.Equal(suite.T(), "Chicken Breast", match.Item.Name)
	})
}

func (suite *MatcherTestSuite) TestCandidatePreference() {
	suite.Run("NearerExpiration_ShouldWin", func() {
		// Arrange
		inventory := []pantry.InventoryItem{
			{Name: "Milk", Category: pantry.CategoryDairy, Quantity: 2, Unit: "l", Expiration: suite.expiringIn(10), Location: "fridge door"},
			{Name: "Milk", Category: pantry.CategoryDairy, Quantity: 1, Unit: "l", Expiration: suite.expiringIn(1), Location: "fridge back"},
		}
		required := recipe.RequiredIngredient{Name: "milk"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		require.NotNil(suite.T(), match.Item)
		assert.Equal(suite.T(), "fridge back", match.Item.Location)
	})

	suite.Run("SameExpiration_LargerQuantityWins", func() {
		// Arrange
		exp := suite.expiringIn(3)
		inventory := []pantry.InventoryItem{
			{Name: "Milk", Category: pantry.CategoryDairy, Quantity: 1, Unit: "l", Expiration: exp, Location: "small"},
			{Name: "Milk", Category: pantry.CategoryDairy, Quantity: 2, Unit: "l", Expiration: exp, Location: "large"},
		}
		required := recipe.RequiredIngredient{Name: "milk"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		require.NotNil(suite.T(), match.Item)
		assert.Equal(suite.T(), "large", match.Item.Location)
	})

	suite.Run("ExpiringItem_BeatsNonExpiring", func() {
		// Arrange
		inventory := []pantry.InventoryItem{
			{Name: "Milk", Category: pantry.CategoryDairy, Quantity: 5, Unit: "l", Location: "shelf stable"},
			{Name: "Milk", Category: pantry.CategoryDairy, Quantity: 1, Unit: "l", Expiration: suite.expiringIn(6), Location: "fresh"},
		}
		required := recipe.RequiredIngredient{Name: "milk"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		require.NotNil(suite.T(), match.Item)
		assert.Equal(suite.T(), "fresh", match.Item.Location)
	})
}

func (suite *MatcherTestSuite) TestQuantitySufficiency() {
	suite.Run("EnoughOnHand_ShouldBeSufficient", func() {
		// Arrange: 1 kg flour covers 500 g required
		inventory := []pantry.InventoryItem{
			{Name: "Flour", Category: pantry.CategoryBaking, Quantity: 1, Unit: "kg"},
		}
		required := recipe.RequiredIngredient{Name: "flour", Quantity: qty(500), Unit: "g"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		assert.Equal(suite.T(), MatchExact, match.Type)
		assert.True(suite.T(), match.QuantitySufficient)
	})

	suite.Run("NotEnoughOnHand_ShouldBeInsufficientButStillMatched", func() {
		// Arrange
		inventory := []pantry.InventoryItem{
			{Name: "Flour", Category: pantry.CategoryBaking, Quantity: 100, Unit: "g"},
		}
		required := recipe.RequiredIngredient{Name: "flour", Quantity: qty(500), Unit: "g"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		assert.Equal(suite.T(), MatchExact, match.Type)
		assert.False(suite.T(), match.QuantitySufficient)
	})

	suite.Run("CrossDimension_ShouldAssumeSufficientAndFlag", func() {
		// Arrange: cups required against pieces available
		inventory := []pantry.InventoryItem{
			{Name: "Breadcrumbs", Category: pantry.CategoryGrains, Quantity: 3, Unit: "piece"},
		}
		required := recipe.RequiredIngredient{Name: "breadcrumbs", Quantity: qty(1), Unit: "cup"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		assert.Equal(suite.T(), MatchExact, match.Type)
		assert.True(suite.T(), match.QuantitySufficient)
		assert.True(suite.T(), match.QuantityUnknown)
	})

	suite.Run("NoRequiredQuantity_ShouldDefaultSufficient", func() {
		// Arrange: "to taste" ingredient
		inventory := []pantry.InventoryItem{
			{Name: "Salt", Category: pantry.CategorySpices, Quantity: 500, Unit: "g"},
		}
		required := recipe.RequiredIngredient{Name: "salt"}

		// Act
		match := suite.matcher.Match(required, inventory, suite.now)

		// Assert
		assert.True(suite.T(), match.QuantitySufficient)
		assert.False(suite.T(), match.QuantityUnknown)
	})
}

func TestMatcherTestSuite(t *testing.T) {
	suite.Run(t, new(MatcherTestSuite))
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		atLeast  float64
		lessThan float64
	}{
		{"identical", "chicken breast", "chicken breast", 1.0, 1.01},
		{"plural", "chicken breast", "chicken breasts", 0.9, 1.0},
		{"reordered tokens", "breast chicken", "chicken breast", 0.99, 1.01},
		{"unrelated", "saffron", "chicken breast", 0, 0.5},
		{"empty", "", "chicken", 0, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := similarity(normalizeName(tt.a), normalizeName(tt.b))
			assert.GreaterOrEqual(t, got, tt.atLeast)
			assert.Less(t, got, tt.lessThan)
		})
	}
}

func BenchmarkMatcherExact(b *testing.B) {
	matcher := NewMatcher(DefaultTables(), DefaultFuzzyThreshold)
	now := time.Now()
	inventory := make([]pantry.InventoryItem, 100)
	for i := range inventory {
		inventory[i] = pantry.InventoryItem{Name: "Item", Category: pantry.CategoryOther, Quantity: 1, Unit: "piece"}
	}
	inventory[50].Name = "Chicken Breast"
	required := recipe.RequiredIngredient{Name: "chicken breast"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Match(required, inventory, now)
	}
}
