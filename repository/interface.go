package repository

import (
	"context"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// OrderRepositoryInterface defines the remote store contract for orders.
type OrderRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]models.Order, error)
	Upsert(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateTracking(ctx context.Context, id, trackingNumber string) error
	UpdatePayment(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id string) error
}

// StockRepositoryInterface defines the remote store contract for stock items.
type StockRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]models.StockItem, error)
	Upsert(ctx context.Context, item *models.StockItem) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
}

// ProducerRepositoryInterface defines the remote store contract for producers.
type ProducerRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]models.Producer, error)
	Upsert(ctx context.Context, producer *models.Producer) error
	Delete(ctx context.Context, id string) error
}

// LotRepositoryInterface defines the remote store contract for reward lots.
type LotRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]models.Lot, error)
	Upsert(ctx context.Context, lot *models.Lot) error
	Delete(ctx context.Context, id string) error
}

// PackRepositoryInterface defines the remote store contract for packs.
type PackRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]models.Pack, error)
	Upsert(ctx context.Context, pack *models.Pack) error
	Delete(ctx context.Context, id string) error
}

// PromoRepositoryInterface defines the remote store contract for promo products.
type PromoRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]models.PromoProduct, error)
	Upsert(ctx context.Context, promo *models.PromoProduct) error
	Delete(ctx context.Context, id string) error
}

// UserRepositoryInterface defines the remote store contract for user accounts.
// CreditTickets is the cross-entity call that grants loyalty tickets to a
// customer account; it must succeed before an order is marked as distributed.
type UserRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]models.UserProfile, error)
	Upsert(ctx context.Context, user *models.UserProfile) error
	CreditTickets(ctx context.Context, email string, tickets int) error
}

// AppRecordRepositoryInterface defines the remote store contract for the
// generic key/value records the clients read as-is.
type AppRecordRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]models.AppRecord, error)
	Upsert(ctx context.Context, record *models.AppRecord) error
	Delete(ctx context.Context, key string) error
}
