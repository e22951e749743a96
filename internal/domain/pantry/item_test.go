package pantry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInventoryItemValidate(t *testing.T) {
	t.Run("ValidItem", func(t *testing.T) {
		item := InventoryItem{Name: "Milk", Category: CategoryDairy, Quantity: 1, Unit: "l"}
		assert.NoError(t, item.Validate())
	})

	t.Run("MissingName", func(t *testing.T) {
		item := InventoryItem{Quantity: 1}
		assert.Error(t, item.Validate())
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		item := InventoryItem{Name: "Milk", Quantity: -1}
		assert.Error(t, item.Validate())
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		item := InventoryItem{Name: "Milk", Category: "potions", Quantity: 1}
		assert.Error(t, item.Validate())
	})

	t.Run("EmptyCategoryAllowed", func(t *testing.T) {
		// Ad-hoc items carry no category
		item := InventoryItem{Name: "Milk", Quantity: 1}
		assert.NoError(t, item.Validate())
	})
}

func TestExpiration(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("NoExpirationNeverExpires", func(t *testing.T) {
		item := InventoryItem{Name: "Salt"}
		assert.False(t, item.Expired(now))

		_, ok := item.DaysUntilExpiration(now)
		assert.False(t, ok)
	})

	t.Run("PastDateIsExpired", func(t *testing.T) {
		exp := now.Add(-24 * time.Hour)
		item := InventoryItem{Name: "Milk", Expiration: &exp}
		assert.True(t, item.Expired(now))

		days, ok := item.DaysUntilExpiration(now)
		assert.True(t, ok)
		assert.InDelta(t, -1.0, days, 1e-9)
	})

	t.Run("FutureDateCountsDown", func(t *testing.T) {
		exp := now.Add(36 * time.Hour)
		item := InventoryItem{Name: "Milk", Expiration: &exp}
		assert.False(t, item.Expired(now))

		days, ok := item.DaysUntilExpiration(now)
		assert.True(t, ok)
		assert.InDelta(t, 1.5, days, 1e-9)
	})
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid())
	}
	assert.False(t, Category("potions").IsValid())
}
