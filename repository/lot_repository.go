package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// LotRepository handles remote store operations for reward lots.
type LotRepository struct {
	db *sql.DB
}

// NewLotRepository creates a new LotRepository.
func NewLotRepository(database *sql.DB) *LotRepository {
	return &LotRepository{db: database}
}

// Ensure LotRepository implements LotRepositoryInterface
var _ LotRepositoryInterface = (*LotRepository)(nil)

// FetchAll returns every lot ordered by rarity then name.
func (r *LotRepository) FetchAll(ctx context.Context) ([]models.Lot, error) {
	query := `
		SELECT id, name, rarity, lot_type, items, discount_percent, active
		FROM lots
		ORDER BY rarity, name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lots: %w", err)
	}
	defer rows.Close()

	var lots []models.Lot
	for rows.Next() {
		var l models.Lot
		var itemsJSON []byte
		err := rows.Scan(&l.ID, &l.Name, &l.Rarity, &l.LotType,
			&itemsJSON, &l.DiscountPercent, &l.Active)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lot: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &l.Items); err != nil {
			log.Printf("❌ FetchAll lots: bad items payload for %s: %v", l.ID, err)
			continue
		}
		lots = append(lots, l)
	}
	return lots, rows.Err()
}

// Upsert writes the full lot row, inserting or overwriting by id.
func (r *LotRepository) Upsert(ctx context.Context, l *models.Lot) error {
	itemsJSON, err := json.Marshal(l.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal lot items: %w", err)
	}
	query := `
		INSERT INTO lots (id, name, rarity, lot_type, items, discount_percent, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			rarity = EXCLUDED.rarity,
			lot_type = EXCLUDED.lot_type,
			items = EXCLUDED.items,
			discount_percent = EXCLUDED.discount_percent,
			active = EXCLUDED.active
	`
	_, err = r.db.ExecContext(ctx, query, l.ID, l.Name, l.Rarity, l.LotType,
		itemsJSON, l.DiscountPercent, l.Active)
	if err != nil {
		return fmt.Errorf("failed to upsert lot %s: %w", l.ID, err)
	}
	return nil
}

// Delete removes a lot from the remote store.
func (r *LotRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM lots WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete lot %s: %w", id, err)
	}
	return nil
}
