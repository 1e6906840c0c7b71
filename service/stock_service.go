package service

import (
	"context"
	"fmt"
	"log"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/repository"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/store"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/utils"
)

// StockService owns the stock collection: reconciliation when orders ship,
// and the manual +/- adjustments from the stock screen.
type StockService struct {
	stock *store.Collection[models.StockItem]
	repo  repository.StockRepositoryInterface
	queue RemoteSyncer
}

// NewStockService creates a new StockService. repo may be nil when the
// remote store is not configured; remote sync is then skipped.
func NewStockService(stock *store.Collection[models.StockItem], repo repository.StockRepositoryInterface, queue RemoteSyncer) *StockService {
	return &StockService{stock: stock, repo: repo, queue: queue}
}

// List returns the local stock rows.
func (s *StockService) List() []models.StockItem {
	return s.stock.List()
}

// DecrementForOrder subtracts each order line from its matching stock row.
// A line without a matching row, or with more quantity than on hand, is
// skipped silently: under-stock is a degradation, not an error. Runs exactly
// once per order, on the transition into shipped.
func (s *StockService) DecrementForOrder(order models.Order) {
	for _, item := range order.Items {
		row, ok := s.findMatch(item.ProducerID, item.ProductName)
		if !ok {
			log.Printf("📦 stock: no row for %q (producer %s), skipping", item.ProductName, item.ProducerID)
			continue
		}
		if row.Quantity < item.Quantity {
			log.Printf("📦 stock: %q has %d on hand, order needs %d, skipping", row.ProductName, row.Quantity, item.Quantity)
			continue
		}
		row.Quantity -= item.Quantity
		s.stock.Put(row)
		s.syncQuantity(row)
	}
}

// findMatch locates the stock row for a producer's product. Matching is by
// producer id plus case-insensitive product name, not by a foreign key, so a
// renamed product silently stops matching.
func (s *StockService) findMatch(producerID, productName string) (models.StockItem, bool) {
	name := utils.NormalizeProductName(productName)
	for _, row := range s.stock.List() {
		if row.ProducerID == producerID && utils.NormalizeProductName(row.ProductName) == name {
			return row, true
		}
	}
	return models.StockItem{}, false
}

// AdjustQuantity applies a manual +/- delta to a stock row. An adjustment
// that would take the quantity below zero is rejected, not clamped.
func (s *StockService) AdjustQuantity(id string, delta int) (models.StockItem, error) {
	row, ok := s.stock.Get(id)
	if !ok {
		return models.StockItem{}, models.ErrNotFound
	}
	next := row.Quantity + delta
	if next < 0 {
		return models.StockItem{}, fmt.Errorf("cannot adjust %q below zero (have %d, delta %d)", row.ProductName, row.Quantity, delta)
	}
	row.Quantity = next
	s.stock.Put(row)
	s.syncQuantity(row)
	return row, nil
}

// Delete removes a stock row locally and schedules the remote delete.
func (s *StockService) Delete(id string) error {
	if !s.stock.Delete(id) {
		return models.ErrNotFound
	}
	if s.repo == nil {
		return nil
	}
	repo := s.repo
	s.queue.Enqueue("stock.delete "+id, func(ctx context.Context) error {
		return repo.Delete(ctx, id)
	})
	return nil
}

func (s *StockService) syncQuantity(row models.StockItem) {
	if s.repo == nil {
		return
	}
	repo := s.repo
	s.queue.Enqueue("stock.quantity "+row.ID, func(ctx context.Context) error {
		return repo.UpdateQuantity(ctx, row.ID, row.Quantity)
	})
}
