package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// PackRepository handles remote store operations for packs.
type PackRepository struct {
	db *sql.DB
}

// NewPackRepository creates a new PackRepository.
func NewPackRepository(database *sql.DB) *PackRepository {
	return &PackRepository{db: database}
}

// Ensure PackRepository implements PackRepositoryInterface
var _ PackRepositoryInterface = (*PackRepository)(nil)

// FetchAll returns every pack ordered by name.
func (r *PackRepository) FetchAll(ctx context.Context) ([]models.Pack, error) {
	query := `
		SELECT id, name, items, price, original_price, color, tag, active
		FROM packs
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch packs: %w", err)
	}
	defer rows.Close()

	var packs []models.Pack
	for rows.Next() {
		var p models.Pack
		var itemsJSON []byte
		err := rows.Scan(&p.ID, &p.Name, &itemsJSON, &p.Price,
			&p.OriginalPrice, &p.Color, &p.Tag, &p.Active)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pack: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &p.Items); err != nil {
			log.Printf("❌ FetchAll packs: bad items payload for %s: %v", p.ID, err)
			continue
		}
		packs = append(packs, p)
	}
	return packs, rows.Err()
}

// Upsert writes the full pack row, inserting or overwriting by id.
func (r *PackRepository) Upsert(ctx context.Context, p *models.Pack) error {
	itemsJSON, err := json.Marshal(p.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal pack items: %w", err)
	}
	query := `
		INSERT INTO packs (id, name, items, price, original_price, color, tag, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			items = EXCLUDED.items,
			price = EXCLUDED.price,
			original_price = EXCLUDED.original_price,
			color = EXCLUDED.color,
			tag = EXCLUDED.tag,
			active = EXCLUDED.active
	`
	_, err = r.db.ExecContext(ctx, query, p.ID, p.Name, itemsJSON, p.Price,
		p.OriginalPrice, p.Color, p.Tag, p.Active)
	if err != nil {
		return fmt.Errorf("failed to upsert pack %s: %w", p.ID, err)
	}
	return nil
}

// Delete removes a pack from the remote store.
func (r *PackRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM packs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete pack %s: %w", id, err)
	}
	return nil
}
