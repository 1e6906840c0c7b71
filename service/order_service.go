package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/pricing"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/repository"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/store"
)

// OrderService owns the order collection and the order status lifecycle.
// Mutations apply locally first; the matching remote write is enqueued on
// the sync queue and never rolled back on failure.
type OrderService struct {
	orders *store.Collection[models.Order]
	stock  *StockService
	repo   repository.OrderRepositoryInterface
	queue  RemoteSyncer
}

// NewOrderService creates a new OrderService. repo may be nil when the
// remote store is not configured; remote sync is then skipped.
func NewOrderService(orders *store.Collection[models.Order], stock *StockService, repo repository.OrderRepositoryInterface, queue RemoteSyncer) *OrderService {
	return &OrderService{orders: orders, stock: stock, repo: repo, queue: queue}
}

// List returns the local orders.
func (s *OrderService) List() []models.Order {
	return s.orders.List()
}

// Get returns one order by id.
func (s *OrderService) Get(id string) (models.Order, bool) {
	return s.orders.Get(id)
}

// Create records an order coming from checkout intake or manual admin entry.
// Totals and tickets are always recomputed from the lines so a stale or
// hand-entered payload cannot put the amounts out of agreement.
func (s *OrderService) Create(order models.Order) models.Order {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	for i, item := range order.Items {
		if item.TotalPrice == 0 {
			order.Items[i].TotalPrice = float64(item.Quantity) * item.UnitPrice
		}
	}
	totals := pricing.ComputeTotals(order.Items)
	order.Subtotal = totals.Subtotal
	order.ShippingFee = totals.ShippingFee
	order.Total = totals.Total
	order.TicketsEarned = pricing.TicketsEarned(order.Total)

	s.orders.Put(order)
	log.Printf("🧾 order %s created (%d lines, total %.2f)", order.ID, len(order.Items), order.Total)

	if s.repo != nil {
		repo := s.repo
		saved := order
		s.queue.Enqueue("order.upsert "+order.ID, func(ctx context.Context) error {
			return repo.Upsert(ctx, &saved)
		})
	}
	return order
}

// SetStatus overwrites the order status unconditionally: the admin surface
// exposes every status at all times, so no ordering is enforced here. The
// one side effect is the transition into shipped from any other status,
// which decrements stock exactly once, before the status write completes.
func (s *OrderService) SetStatus(id, newStatus string) error {
	if !models.ValidStatus(newStatus) {
		return fmt.Errorf("unknown order status %q", newStatus)
	}
	order, ok := s.orders.Get(id)
	if !ok {
		return models.ErrNotFound
	}

	if newStatus == models.StatusShipped && order.Status != models.StatusShipped {
		s.stock.DecrementForOrder(order)
	}

	order.Status = newStatus
	s.orders.Put(order)
	log.Printf("🧾 order %s status → %s", id, newStatus)

	if s.repo != nil {
		repo := s.repo
		s.queue.Enqueue("order.status "+id, func(ctx context.Context) error {
			return repo.UpdateStatus(ctx, id, newStatus)
		})
	}
	return nil
}

// SetTrackingNumber stores a free-text tracking number. No validation and no
// status requirement; the UI simply shows the field when relevant.
func (s *OrderService) SetTrackingNumber(id, value string) error {
	order, ok := s.orders.Get(id)
	if !ok {
		return models.ErrNotFound
	}
	order.TrackingNumber = value
	s.orders.Put(order)

	if s.repo != nil {
		repo := s.repo
		s.queue.Enqueue("order.tracking "+id, func(ctx context.Context) error {
			return repo.UpdateTracking(ctx, id, value)
		})
	}
	return nil
}

// Delete removes the order locally and schedules the remote delete. A remote
// failure is logged by the queue; the local deletion is not rolled back.
func (s *OrderService) Delete(id string) error {
	if !s.orders.Delete(id) {
		return models.ErrNotFound
	}
	log.Printf("🧾 order %s deleted locally", id)

	if s.repo != nil {
		repo := s.repo
		s.queue.Enqueue("order.delete "+id, func(ctx context.Context) error {
			return repo.Delete(ctx, id)
		})
	}
	return nil
}
