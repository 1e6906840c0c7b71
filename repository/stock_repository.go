package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// StockRepository handles remote store operations for stock items.
type StockRepository struct {
	db *sql.DB
}

// NewStockRepository creates a new StockRepository.
func NewStockRepository(database *sql.DB) *StockRepository {
	return &StockRepository{db: database}
}

// Ensure StockRepository implements StockRepositoryInterface
var _ StockRepositoryInterface = (*StockRepository)(nil)

// FetchAll returns every stock row, grouped by producer then product name.
func (r *StockRepository) FetchAll(ctx context.Context) ([]models.StockItem, error) {
	query := `
		SELECT id, producer_id, product_name, quantity, min_stock,
		       price, cost_price, tva_rate, unit
		FROM stock_items
		ORDER BY producer_id, product_name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock items: %w", err)
	}
	defer rows.Close()

	var items []models.StockItem
	for rows.Next() {
		var s models.StockItem
		err := rows.Scan(&s.ID, &s.ProducerID, &s.ProductName, &s.Quantity,
			&s.MinStock, &s.Price, &s.CostPrice, &s.TVARate, &s.Unit)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock item: %w", err)
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// Upsert writes the full stock row, inserting or overwriting by id.
func (r *StockRepository) Upsert(ctx context.Context, s *models.StockItem) error {
	query := `
		INSERT INTO stock_items (
			id, producer_id, product_name, quantity, min_stock,
			price, cost_price, tva_rate, unit
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET
			producer_id = EXCLUDED.producer_id,
			product_name = EXCLUDED.product_name,
			quantity = EXCLUDED.quantity,
			min_stock = EXCLUDED.min_stock,
			price = EXCLUDED.price,
			cost_price = EXCLUDED.cost_price,
			tva_rate = EXCLUDED.tva_rate,
			unit = EXCLUDED.unit
	`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.ProducerID, s.ProductName,
		s.Quantity, s.MinStock, s.Price, s.CostPrice, s.TVARate, s.Unit)
	if err != nil {
		return fmt.Errorf("failed to upsert stock item %s: %w", s.ID, err)
	}
	return nil
}

// UpdateQuantity writes only the on-hand quantity of a stock row.
func (r *StockRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	query := `UPDATE stock_items SET quantity = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, quantity, id); err != nil {
		return fmt.Errorf("failed to update stock quantity: %w", err)
	}
	return nil
}

// Delete removes a stock row from the remote store.
func (r *StockRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM stock_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete stock item %s: %w", id, err)
	}
	return nil
}
