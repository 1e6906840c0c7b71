package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// OrderRepository handles remote store operations for orders.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(database *sql.DB) *OrderRepository {
	return &OrderRepository{db: database}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// FetchAll returns every order in the remote store, newest first.
func (r *OrderRepository) FetchAll(ctx context.Context) ([]models.Order, error) {
	query := `
		SELECT id, status, items, customer_info, subtotal, shipping_fee, total,
		       payment_validated, payment_validated_at, tickets_earned,
		       tickets_distributed, tracking_number, created_at
		FROM orders
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var itemsJSON, customerJSON []byte
		err := rows.Scan(&o.ID, &o.Status, &itemsJSON, &customerJSON,
			&o.Subtotal, &o.ShippingFee, &o.Total,
			&o.PaymentValidated, &o.PaymentValidatedAt, &o.TicketsEarned,
			&o.TicketsDistributed, &o.TrackingNumber, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			log.Printf("❌ FetchAll orders: bad items payload for %s: %v", o.ID, err)
			continue
		}
		if err := json.Unmarshal(customerJSON, &o.Customer); err != nil {
			log.Printf("❌ FetchAll orders: bad customer payload for %s: %v", o.ID, err)
			continue
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Upsert writes the full order row, inserting or overwriting by id.
func (r *OrderRepository) Upsert(ctx context.Context, o *models.Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}
	customerJSON, err := json.Marshal(o.Customer)
	if err != nil {
		return fmt.Errorf("failed to marshal customer info: %w", err)
	}

	query := `
		INSERT INTO orders (
			id, status, items, customer_info, subtotal, shipping_fee, total,
			payment_validated, payment_validated_at, tickets_earned,
			tickets_distributed, tracking_number, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13, now())
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			items = EXCLUDED.items,
			customer_info = EXCLUDED.customer_info,
			subtotal = EXCLUDED.subtotal,
			shipping_fee = EXCLUDED.shipping_fee,
			total = EXCLUDED.total,
			payment_validated = EXCLUDED.payment_validated,
			payment_validated_at = EXCLUDED.payment_validated_at,
			tickets_earned = EXCLUDED.tickets_earned,
			tickets_distributed = EXCLUDED.tickets_distributed,
			tracking_number = EXCLUDED.tracking_number,
			updated_at = now()
	`
	_, err = r.db.ExecContext(ctx, query, o.ID, o.Status, itemsJSON, customerJSON,
		o.Subtotal, o.ShippingFee, o.Total,
		o.PaymentValidated, o.PaymentValidatedAt, o.TicketsEarned,
		o.TicketsDistributed, o.TrackingNumber, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert order %s: %w", o.ID, err)
	}
	return nil
}

// UpdateStatus updates only the status column of an order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE orders SET status = $1, updated_at = now() WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

// UpdateTracking updates only the tracking number of an order.
func (r *OrderRepository) UpdateTracking(ctx context.Context, id, trackingNumber string) error {
	query := `UPDATE orders SET tracking_number = $1, updated_at = now() WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, trackingNumber, id); err != nil {
		return fmt.Errorf("failed to update tracking number: %w", err)
	}
	return nil
}

// UpdatePayment writes the payment and ticket fields of an order.
func (r *OrderRepository) UpdatePayment(ctx context.Context, o *models.Order) error {
	query := `
		UPDATE orders SET
			payment_validated = $1,
			payment_validated_at = $2,
			tickets_earned = $3,
			tickets_distributed = $4,
			updated_at = now()
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, o.PaymentValidated, o.PaymentValidatedAt,
		o.TicketsEarned, o.TicketsDistributed, o.ID)
	if err != nil {
		return fmt.Errorf("failed to update payment fields: %w", err)
	}
	return nil
}

// Delete removes an order from the remote store.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	return nil
}
