package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// PantryRepository implements inventory persistence on PostgreSQL
type PantryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPantryRepository creates a new pantry repository
func NewPantryRepository(db *pgxpool.Pool, logger *zap.Logger) outbound.PantryRepository {
	return &PantryRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts an inventory item
func (r *PantryRepository) Save(ctx context.Context, item pantry.InventoryItem) error {
	query := `
		INSERT INTO pantry_items (id, name, category, quantity, unit, expiration, location, added_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		item.ID, item.Name, string(item.Category), item.Quantity, item.Unit,
		item.Expiration, item.Location, item.AddedAt, item.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save pantry item",
			zap.String("item_id", item.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Update replaces an existing inventory item
func (r *PantryRepository) Update(ctx context.Context, item pantry.InventoryItem) error {
	query := `
		UPDATE pantry_items
		SET name = $2, category = $3, quantity = $4, unit = $5, expiration = $6, location = $7, updated_at = $8
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query,
		item.ID, item.Name, string(item.Category), item.Quantity, item.Unit,
		item.Expiration, item.Location, item.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to update pantry item",
			zap.String("item_id", item.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Delete removes an inventory item
func (r *PantryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM pantry_items WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete pantry item",
			zap.String("item_id", id.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// FindByID retrieves an item by ID, nil when absent
func (r *PantryRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.InventoryItem, error) {
	query := `
		SELECT id, name, category, quantity, unit, expiration, location, added_at, updated_at
		FROM pantry_items WHERE id = $1`

	item, err := scanItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// FindAll retrieves the full inventory
func (r *PantryRepository) FindAll(ctx context.Context) ([]pantry.InventoryItem, error) {
	query := `
		SELECT id, name, category, quantity, unit, expiration, location, added_at, updated_at
		FROM pantry_items ORDER BY name, id`

	return r.queryItems(ctx, query)
}

// FindByCategory retrieves items of the given category
func (r *PantryRepository) FindByCategory(ctx context.Context, category pantry.Category) ([]pantry.InventoryItem, error) {
	query := `
		SELECT id, name, category, quantity, unit, expiration, location, added_at, updated_at
		FROM pantry_items WHERE category = $1 ORDER BY name, id`

	return r.queryItems(ctx, query, string(category))
}

// FindExpiringBefore retrieves items expiring before the cutoff
func (r *PantryRepository) FindExpiringBefore(ctx context.Context, cutoff time.Time) ([]pantry.InventoryItem, error) {
	query := `
		SELECT id, name, category, quantity, unit, expiration, location, added_at, updated_at
		FROM pantry_items WHERE expiration IS NOT NULL AND expiration < $1
		ORDER BY expiration, name`

	return r.queryItems(ctx, query, cutoff)
}

func (r *PantryRepository) queryItems(ctx context.Context, query string, args ...any) ([]pantry.InventoryItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]pantry.InventoryItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (*pantry.InventoryItem, error) {
	var item pantry.InventoryItem
	var category string
	err := row.Scan(
		&item.ID, &item.Name, &category, &item.Quantity, &item.Unit,
		&item.Expiration, &item.Location, &item.AddedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Category = pantry.Category(category)
	return &item, nil
}
