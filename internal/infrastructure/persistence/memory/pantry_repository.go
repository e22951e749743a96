package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// PantryRepository implements in-memory inventory persistence
type PantryRepository struct {
	items map[uuid.UUID]pantry.InventoryItem
	mutex sync.RWMutex
}

// NewPantryRepository creates a new in-memory pantry repository
func NewPantryRepository() outbound.PantryRepository {
	return &PantryRepository{
		items: make(map[uuid.UUID]pantry.InventoryItem),
	}
}

// Save stores an inventory item
func (r *PantryRepository) Save(ctx context.Context, item pantry.InventoryItem) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.items[item.ID] = item
	return nil
}

// Update replaces an existing inventory item
func (r *PantryRepository) Update(ctx context.Context, item pantry.InventoryItem) error {
	return r.Save(ctx, item)
}

// Delete removes an inventory item
func (r *PantryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.items, id)
	return nil
}

// FindByID returns an item by ID, nil when absent
func (r *PantryRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.InventoryItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// FindAll returns every item ordered by name for stable output
func (r *PantryRepository) FindAll(ctx context.Context) ([]pantry.InventoryItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	items := make([]pantry.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sortItems(items)
	return items, nil
}

// FindByCategory returns items of the given category
func (r *PantryRepository) FindByCategory(ctx context.Context, category pantry.Category) ([]pantry.InventoryItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	items := make([]pantry.InventoryItem, 0)
	for _, item := range r.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	sortItems(items)
	return items, nil
}

// FindExpiringBefore returns items whose expiration falls before the cutoff
func (r *PantryRepository) FindExpiringBefore(ctx context.Context, cutoff time.Time) ([]pantry.InventoryItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	items := make([]pantry.InventoryItem, 0)
	for _, item := range r.items {
		if item.Expiration != nil && item.Expiration.Before(cutoff) {
			items = append(items, item)
		}
	}
	sortItems(items)
	return items, nil
}

func sortItems(items []pantry.InventoryItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID.String() < items[j].ID.String()
	})
}
