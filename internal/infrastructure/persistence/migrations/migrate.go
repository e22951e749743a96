// Package migrations applies the database schema at startup.
package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// schema holds the ordered DDL statements. Statements are idempotent so
// reapplying on every boot is safe.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS pantry_items (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		quantity   DOUBLE PRECISION NOT NULL DEFAULT 0,
		unit       TEXT NOT NULL DEFAULT '',
		expiration TIMESTAMPTZ,
		location   TEXT NOT NULL DEFAULT '',
		added_at   TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pantry_items_category ON pantry_items (category)`,
	`CREATE INDEX IF NOT EXISTS idx_pantry_items_expiration ON pantry_items (expiration) WHERE expiration IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS recipes (
		id             UUID PRIMARY KEY,
		title          TEXT NOT NULL,
		ingredients    JSONB NOT NULL,
		prep_time      INTEGER NOT NULL DEFAULT 0,
		cook_time      INTEGER NOT NULL DEFAULT 0,
		difficulty     TEXT NOT NULL DEFAULT 'medium',
		meal_types     TEXT[] NOT NULL DEFAULT '{}',
		dietary_tags   TEXT[] NOT NULL DEFAULT '{}',
		estimated_cost DOUBLE PRECISION,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_recipes_meal_types ON recipes USING GIN (meal_types)`,
}

// Apply runs the schema statements in order.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration %d: %w", i, err)
		}
	}
	logger.Info("Database schema applied", zap.Int("statements", len(schema)))
	return nil
}
