package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Schema statements, one per table. Nested lists (order items, lot items,
// pack items) and customer info ride in JSONB columns; the admin app treats
// them as opaque payloads.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id              TEXT PRIMARY KEY,
		status          TEXT NOT NULL,
		items           JSONB NOT NULL DEFAULT '[]',
		customer_info   JSONB NOT NULL DEFAULT '{}',
		subtotal        DOUBLE PRECISION NOT NULL DEFAULT 0,
		shipping_fee    DOUBLE PRECISION NOT NULL DEFAULT 0,
		total           DOUBLE PRECISION NOT NULL DEFAULT 0,
		payment_validated    BOOLEAN NOT NULL DEFAULT FALSE,
		payment_validated_at TIMESTAMPTZ,
		tickets_earned       INTEGER NOT NULL DEFAULT 0,
		tickets_distributed  BOOLEAN NOT NULL DEFAULT FALSE,
		tracking_number      TEXT NOT NULL DEFAULT '',
		created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS stock_items (
		id           TEXT PRIMARY KEY,
		producer_id  TEXT NOT NULL,
		product_name TEXT NOT NULL,
		quantity     INTEGER NOT NULL DEFAULT 0,
		min_stock    INTEGER NOT NULL DEFAULT 0,
		price        DOUBLE PRECISION NOT NULL DEFAULT 0,
		cost_price   DOUBLE PRECISION NOT NULL DEFAULT 0,
		tva_rate     DOUBLE PRECISION NOT NULL DEFAULT 20,
		unit         TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS producers (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		address     TEXT NOT NULL DEFAULT '',
		email       TEXT NOT NULL DEFAULT '',
		phone       TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS lots (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		rarity           TEXT NOT NULL,
		lot_type         TEXT NOT NULL,
		items            JSONB NOT NULL DEFAULT '[]',
		discount_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
		active           BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS packs (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		items          JSONB NOT NULL DEFAULT '[]',
		price          DOUBLE PRECISION NOT NULL DEFAULT 0,
		original_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		color          TEXT NOT NULL DEFAULT '',
		tag            TEXT NOT NULL DEFAULT '',
		active         BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS promo_products (
		id               TEXT PRIMARY KEY,
		product_id       TEXT NOT NULL,
		producer_id      TEXT NOT NULL,
		original_price   DOUBLE PRECISION NOT NULL DEFAULT 0,
		promo_price      DOUBLE PRECISION NOT NULL DEFAULT 0,
		discount_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
		active           BOOLEAN NOT NULL DEFAULT TRUE,
		valid_until      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id           TEXT PRIMARY KEY,
		email        TEXT NOT NULL DEFAULT '',
		display_name TEXT NOT NULL DEFAULT '',
		role         TEXT NOT NULL DEFAULT 'customer',
		tickets      INTEGER NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS app_records (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL DEFAULT '{}',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the remote store tables if they do not exist yet.
// Gated by AUTO_MIGRATE in the app bootstrap.
func Migrate(ctx context.Context, database *sql.DB) error {
	for _, stmt := range schema {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	log.Printf("✓ Database schema up to date")
	return nil
}
