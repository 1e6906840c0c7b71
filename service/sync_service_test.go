package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/service"
)

type syncFixture struct {
	stores    *service.Stores
	orderRepo *fakeOrderRepo
	stockRepo *fakeStockRepo
	userRepo  *fakeUserRepo
	producers *fakeCatalogRepo[models.Producer]
	lots      *fakeCatalogRepo[models.Lot]
	packs     *fakeCatalogRepo[models.Pack]
	promos    *fakeCatalogRepo[models.PromoProduct]
	records   *fakeCatalogRepo[models.AppRecord]
	svc       *service.SyncService
}

func newSyncFixture() *syncFixture {
	f := &syncFixture{
		stores:    service.NewStores(),
		orderRepo: newFakeOrderRepo(),
		stockRepo: newFakeStockRepo(),
		userRepo:  newFakeUserRepo(),
		producers: &fakeCatalogRepo[models.Producer]{},
		lots:      &fakeCatalogRepo[models.Lot]{},
		packs:     &fakeCatalogRepo[models.Pack]{},
		promos:    &fakeCatalogRepo[models.PromoProduct]{},
		records:   &fakeCatalogRepo[models.AppRecord]{},
	}
	f.svc = service.NewSyncService(f.stores, &service.Repositories{
		Orders:    f.orderRepo,
		Stock:     f.stockRepo,
		Producers: f.producers,
		Lots:      f.lots,
		Packs:     f.packs,
		Promos:    f.promos,
		Users:     f.userRepo,
		Records:   f.records,
	})
	return f
}

func TestPullReplacesLocalWholesale(t *testing.T) {
	f := newSyncFixture()
	// A producer that only exists locally must disappear after the pull.
	f.stores.Producers.Put(models.Producer{ID: "local-only", Name: "Ferme disparue"})
	f.producers.items = []models.Producer{
		{ID: "pr-1", Name: "Ferme du Vieux Bourg"},
		{ID: "pr-2", Name: "Cidrerie Kervella"},
	}

	require.NoError(t, f.svc.PullCatalog(context.Background()))

	assert.Equal(t, 2, f.stores.Producers.Len())
	_, ok := f.stores.Producers.Get("local-only")
	assert.False(t, ok, "remote state replaces local wholesale")
	_, ok = f.stores.Producers.Get("pr-1")
	assert.True(t, ok)
}

func TestPullEmptyRemoteKeepsLocal(t *testing.T) {
	f := newSyncFixture()
	f.stores.Lots.Put(models.Lot{ID: "lot-1", Name: "Lot découverte"})

	require.NoError(t, f.svc.PullCatalog(context.Background()))

	assert.Equal(t, 1, f.stores.Lots.Len(), "an empty remote result never wipes local data")
}

func TestPullCatalogCollectsFirstError(t *testing.T) {
	f := newSyncFixture()
	f.producers.fetchErr = errRemoteDown
	f.packs.items = []models.Pack{{ID: "pk-1", Name: "Coffret Bretagne"}}

	err := f.svc.PullCatalog(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "producers")
	assert.Equal(t, 1, f.stores.Packs.Len(), "entities after the failing one are still pulled")
}

func TestPullOrdersAndUsers(t *testing.T) {
	f := newSyncFixture()
	f.orderRepo.remote["o-1"] = sampleOrder("o-1", models.StatusPaid)
	f.userRepo.users = []models.UserProfile{{ID: "u-1", Email: "anne@example.com", Tickets: 4}}

	require.NoError(t, f.svc.PullAll(context.Background()))

	_, ok := f.stores.Orders.Get("o-1")
	assert.True(t, ok)
	user, ok := f.stores.Users.Get("u-1")
	require.True(t, ok)
	assert.Equal(t, 4, user.Tickets)
}

func TestPushAllCountsPartialFailure(t *testing.T) {
	f := newSyncFixture()
	f.stores.Producers.Put(models.Producer{ID: "pr-1", Name: "Ferme du Vieux Bourg"})
	f.stores.Producers.Put(models.Producer{ID: "pr-2", Name: "Cidrerie Kervella"})
	f.stores.Lots.Put(models.Lot{ID: "lot-1", Name: "Lot découverte"})
	f.producers.failNext = 1

	report, err := f.svc.PushAll(context.Background())
	require.NoError(t, err, "a failed row is counted, not escalated")

	assert.Equal(t, models.SyncCount{Transferred: 1, Failed: 1}, report.Producers)
	assert.Equal(t, models.SyncCount{Transferred: 1}, report.Lots)
	assert.Equal(t, 2, report.Total())
	assert.Equal(t, 1, report.TotalFailed())
}

func TestPushOrdersAndStock(t *testing.T) {
	f := newSyncFixture()
	f.stores.Orders.Put(sampleOrder("o-1", models.StatusPending))
	f.stores.Stock.Put(models.StockItem{ID: "s-1", ProducerID: "prod-1", ProductName: "Cidre Brut", Quantity: 10})

	orders, err := f.svc.PushOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SyncCount{Transferred: 1}, orders)

	stock, err := f.svc.PushStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SyncCount{Transferred: 1}, stock)
}

func TestSyncRequiresRemoteStore(t *testing.T) {
	svc := service.NewSyncService(service.NewStores(), nil)

	assert.False(t, svc.Configured())
	_, err := svc.PushAll(context.Background())
	assert.ErrorIs(t, err, models.ErrRemoteNotConfigured)
	assert.ErrorIs(t, svc.PullAll(context.Background()), models.ErrRemoteNotConfigured)
}
