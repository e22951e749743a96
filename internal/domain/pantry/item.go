// Package pantry contains the domain model for household inventory.
package pantry

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Category classifies a pantry item
type Category string

const (
	CategoryProduce    Category = "produce"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategorySeafood    Category = "seafood"
	CategoryGrains     Category = "grains"
	CategoryCanned     Category = "canned"
	CategoryFrozen     Category = "frozen"
	CategoryCondiments Category = "condiments"
	CategorySpices     Category = "spices"
	CategoryBaking     Category = "baking"
	CategoryOther      Category = "other"
)

// Categories lists every valid category value
var Categories = []Category{
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategorySeafood,
	CategoryGrains,
	CategoryCanned,
	CategoryFrozen,
	CategoryCondiments,
	CategorySpices,
	CategoryBaking,
	CategoryOther,
}

// IsValid reports whether the category is one of the known values
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// InventoryItem represents one item in a household's pantry.
// The matching engine reads immutable snapshots of these and never
// mutates them; quantity changes go through the pantry service.
type InventoryItem struct {
	ID         uuid.UUID
	Name       string
	Category   Category
	Quantity   float64
	Unit       string
	Expiration *time.Time // nil means the item never expires
	Location   string
	AddedAt    time.Time
	UpdatedAt  time.Time
}

// Validate validates the inventory item
func (i InventoryItem) Validate() error {
	if i.Name == "" {
		return errors.New("inventory item name is required")
	}
	if i.Quantity < 0 {
		return errors.New("inventory item quantity cannot be negative")
	}
	if i.Category != "" && !i.Category.IsValid() {
		return errors.New("unknown inventory category")
	}
	return nil
}

// Expired reports whether the item has passed its expiration date as of now.
// Items without an expiration date never expire.
func (i InventoryItem) Expired(now time.Time) bool {
	if i.Expiration == nil {
		return false
	}
	return i.Expiration.Before(now)
}

// DaysUntilExpiration returns the number of days until the item expires,
// negative when already expired. The second return value is false when the
// item has no expiration date.
func (i InventoryItem) DaysUntilExpiration(now time.Time) (float64, bool) {
	if i.Expiration == nil {
		return 0, false
	}
	return i.Expiration.Sub(now).Hours() / 24, true
}
