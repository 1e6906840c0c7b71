package service

import (
	"context"
	"fmt"
	"log"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/repository"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/store"
)

// Merger folds a pulled remote collection into the local one. It is the only
// seam where the merge policy lives; callers never encode it.
type Merger[T any] interface {
	Merge(local *store.Collection[T], remote []T)
}

// ReplaceIfNonEmpty replaces the local collection wholesale with the remote
// result. An empty remote result means "don't touch local", not "remote is
// empty": a transient empty response must never wipe local data.
type ReplaceIfNonEmpty[T any] struct{}

// Merge implements Merger.
func (ReplaceIfNonEmpty[T]) Merge(local *store.Collection[T], remote []T) {
	if len(remote) == 0 {
		return
	}
	local.ReplaceAll(remote)
}

// Stores groups the local collections the sync bridge transports.
type Stores struct {
	Orders    *store.Collection[models.Order]
	Stock     *store.Collection[models.StockItem]
	Producers *store.Collection[models.Producer]
	Lots      *store.Collection[models.Lot]
	Packs     *store.Collection[models.Pack]
	Promos    *store.Collection[models.PromoProduct]
	Users     *store.Collection[models.UserProfile]
	Records   *store.Collection[models.AppRecord]
}

// NewStores creates one empty collection per entity type.
func NewStores() *Stores {
	return &Stores{
		Orders:    store.NewCollection(func(o models.Order) string { return o.ID }),
		Stock:     store.NewCollection(func(s models.StockItem) string { return s.ID }),
		Producers: store.NewCollection(func(p models.Producer) string { return p.ID }),
		Lots:      store.NewCollection(func(l models.Lot) string { return l.ID }),
		Packs:     store.NewCollection(func(p models.Pack) string { return p.ID }),
		Promos:    store.NewCollection(func(p models.PromoProduct) string { return p.ID }),
		Users:     store.NewCollection(func(u models.UserProfile) string { return u.ID }),
		Records:   store.NewCollection(func(r models.AppRecord) string { return r.Key }),
	}
}

// Repositories groups the remote store contracts the sync bridge uses.
// A nil Repositories value means the remote store is not configured.
type Repositories struct {
	Orders    repository.OrderRepositoryInterface
	Stock     repository.StockRepositoryInterface
	Producers repository.ProducerRepositoryInterface
	Lots      repository.LotRepositoryInterface
	Packs     repository.PackRepositoryInterface
	Promos    repository.PromoRepositoryInterface
	Users     repository.UserRepositoryInterface
	Records   repository.AppRecordRepositoryInterface
}

// SyncService moves entities between the local collections and the remote
// store, on demand (manual push/pull) and from the poller.
type SyncService struct {
	stores *Stores
	repos  *Repositories
}

// NewSyncService creates a new SyncService. repos may be nil when the remote
// store is not configured; every operation then reports the not-configured
// condition instead of crashing.
func NewSyncService(stores *Stores, repos *Repositories) *SyncService {
	return &SyncService{stores: stores, repos: repos}
}

// Configured reports whether a remote store is available.
func (s *SyncService) Configured() bool {
	return s.repos != nil
}

// PushAll uploads the catalog collections (producers, lots, packs, promos)
// entity by entity and reports per-type counts. Pushes are sequential, not
// batched: a partial failure leaves the earlier entities synced and the rest
// not, with no rollback.
func (s *SyncService) PushAll(ctx context.Context) (models.SyncReport, error) {
	var report models.SyncReport
	if s.repos == nil {
		return report, models.ErrRemoteNotConfigured
	}

	report.Producers = pushEach(ctx, "producer", s.stores.Producers.List(), s.repos.Producers.Upsert)
	report.Lots = pushEach(ctx, "lot", s.stores.Lots.List(), s.repos.Lots.Upsert)
	report.Packs = pushEach(ctx, "pack", s.stores.Packs.List(), s.repos.Packs.Upsert)
	report.Promos = pushEach(ctx, "promo", s.stores.Promos.List(), s.repos.Promos.Upsert)

	log.Printf("🔄 push complete: %d transferred, %d failed", report.Total(), report.TotalFailed())
	return report, nil
}

// PushOrders uploads every local order, used for manual resync after a
// period of remote divergence.
func (s *SyncService) PushOrders(ctx context.Context) (models.SyncCount, error) {
	if s.repos == nil {
		return models.SyncCount{}, models.ErrRemoteNotConfigured
	}
	return pushEach(ctx, "order", s.stores.Orders.List(), s.repos.Orders.Upsert), nil
}

// PushStock uploads every local stock row.
func (s *SyncService) PushStock(ctx context.Context) (models.SyncCount, error) {
	if s.repos == nil {
		return models.SyncCount{}, models.ErrRemoteNotConfigured
	}
	return pushEach(ctx, "stock", s.stores.Stock.List(), s.repos.Stock.Upsert), nil
}

// PullAll refreshes every local collection from the remote store.
func (s *SyncService) PullAll(ctx context.Context) error {
	if s.repos == nil {
		return models.ErrRemoteNotConfigured
	}
	if err := s.PullCatalog(ctx); err != nil {
		return err
	}
	if err := s.PullOrders(ctx); err != nil {
		return err
	}
	return s.PullUsers(ctx)
}

// PullCatalog refreshes producers, lots, packs, promos, stock and the
// generic records. This is the 5s polling group.
func (s *SyncService) PullCatalog(ctx context.Context) error {
	if s.repos == nil {
		return models.ErrRemoteNotConfigured
	}
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	keep(pullInto(ctx, "producers", s.repos.Producers.FetchAll, s.stores.Producers))
	keep(pullInto(ctx, "lots", s.repos.Lots.FetchAll, s.stores.Lots))
	keep(pullInto(ctx, "packs", s.repos.Packs.FetchAll, s.stores.Packs))
	keep(pullInto(ctx, "promos", s.repos.Promos.FetchAll, s.stores.Promos))
	keep(pullInto(ctx, "stock", s.repos.Stock.FetchAll, s.stores.Stock))
	keep(pullInto(ctx, "records", s.repos.Records.FetchAll, s.stores.Records))
	return firstErr
}

// PullOrders refreshes the order collection. This is the silent 30s group.
func (s *SyncService) PullOrders(ctx context.Context) error {
	if s.repos == nil {
		return models.ErrRemoteNotConfigured
	}
	return pullInto(ctx, "orders", s.repos.Orders.FetchAll, s.stores.Orders)
}

// PullUsers refreshes the user accounts. This is the 60s group.
func (s *SyncService) PullUsers(ctx context.Context) error {
	if s.repos == nil {
		return models.ErrRemoteNotConfigured
	}
	return pullInto(ctx, "users", s.repos.Users.FetchAll, s.stores.Users)
}

// pushEach uploads one entity at a time, counting outcomes. Failures are
// logged and skipped so one bad row never blocks the rest.
func pushEach[T any](ctx context.Context, name string, items []T, upsert func(context.Context, *T) error) models.SyncCount {
	var count models.SyncCount
	for i := range items {
		if err := upsert(ctx, &items[i]); err != nil {
			log.Printf("❌ push %s failed: %v", name, err)
			count.Failed++
			continue
		}
		count.Transferred++
	}
	return count
}

// pullInto fetches a remote collection and folds it into the local one with
// the replace-if-non-empty policy.
func pullInto[T any](ctx context.Context, name string, fetch func(context.Context) ([]T, error), local *store.Collection[T]) error {
	remote, err := fetch(ctx)
	if err != nil {
		return fmt.Errorf("pull %s: %w", name, err)
	}
	if len(remote) == 0 {
		log.Printf("🔄 pull %s: remote empty, keeping local (%d rows)", name, local.Len())
		return nil
	}
	ReplaceIfNonEmpty[T]{}.Merge(local, remote)
	return nil
}
