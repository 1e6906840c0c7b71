package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// PromoRepository handles remote store operations for promo products.
type PromoRepository struct {
	db *sql.DB
}

// NewPromoRepository creates a new PromoRepository.
func NewPromoRepository(database *sql.DB) *PromoRepository {
	return &PromoRepository{db: database}
}

// Ensure PromoRepository implements PromoRepositoryInterface
var _ PromoRepositoryInterface = (*PromoRepository)(nil)

// FetchAll returns every promo product, soonest-expiring first.
func (r *PromoRepository) FetchAll(ctx context.Context) ([]models.PromoProduct, error) {
	query := `
		SELECT id, product_id, producer_id, original_price, promo_price,
		       discount_percent, active, valid_until
		FROM promo_products
		ORDER BY valid_until
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch promo products: %w", err)
	}
	defer rows.Close()

	var promos []models.PromoProduct
	for rows.Next() {
		var p models.PromoProduct
		err := rows.Scan(&p.ID, &p.ProductID, &p.ProducerID, &p.OriginalPrice,
			&p.PromoPrice, &p.DiscountPercent, &p.Active, &p.ValidUntil)
		if err != nil {
			return nil, fmt.Errorf("failed to scan promo product: %w", err)
		}
		promos = append(promos, p)
	}
	return promos, rows.Err()
}

// Upsert writes the full promo row, inserting or overwriting by id.
// Duplicate (product_id, producer_id) pairs are not rejected here.
func (r *PromoRepository) Upsert(ctx context.Context, p *models.PromoProduct) error {
	query := `
		INSERT INTO promo_products (
			id, product_id, producer_id, original_price, promo_price,
			discount_percent, active, valid_until
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			product_id = EXCLUDED.product_id,
			producer_id = EXCLUDED.producer_id,
			original_price = EXCLUDED.original_price,
			promo_price = EXCLUDED.promo_price,
			discount_percent = EXCLUDED.discount_percent,
			active = EXCLUDED.active,
			valid_until = EXCLUDED.valid_until
	`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.ProductID, p.ProducerID,
		p.OriginalPrice, p.PromoPrice, p.DiscountPercent, p.Active, p.ValidUntil)
	if err != nil {
		return fmt.Errorf("failed to upsert promo product %s: %w", p.ID, err)
	}
	return nil
}

// Delete removes a promo product from the remote store.
func (r *PromoRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM promo_products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete promo product %s: %w", id, err)
	}
	return nil
}
