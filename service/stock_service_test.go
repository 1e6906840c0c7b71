package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/service"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/store"
)

func newStockFixture() (*service.StockService, *store.Collection[models.StockItem], *fakeStockRepo) {
	stock := store.NewCollection(func(s models.StockItem) string { return s.ID })
	repo := newFakeStockRepo()
	return service.NewStockService(stock, repo, inlineSyncer{}), stock, repo
}

func TestAdjustQuantity(t *testing.T) {
	svc, stock, repo := newStockFixture()
	stock.Put(models.StockItem{ID: "s-1", ProducerID: "prod-1", ProductName: "Cidre Brut", Quantity: 5})

	row, err := svc.AdjustQuantity("s-1", 3)
	require.NoError(t, err)
	assert.Equal(t, 8, row.Quantity)

	row, err = svc.AdjustQuantity("s-1", -8)
	require.NoError(t, err)
	assert.Equal(t, 0, row.Quantity)
	assert.Equal(t, 0, repo.quantities["s-1"])
}

func TestAdjustQuantityRejectsBelowZero(t *testing.T) {
	svc, stock, _ := newStockFixture()
	stock.Put(models.StockItem{ID: "s-1", ProducerID: "prod-1", ProductName: "Cidre Brut", Quantity: 2})

	_, err := svc.AdjustQuantity("s-1", -3)
	require.Error(t, err)

	row, _ := stock.Get("s-1")
	assert.Equal(t, 2, row.Quantity, "rejected, not clamped")
}

func TestAdjustQuantityUnknownRow(t *testing.T) {
	svc, _, _ := newStockFixture()
	_, err := svc.AdjustQuantity("missing", 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStockDelete(t *testing.T) {
	svc, stock, repo := newStockFixture()
	stock.Put(models.StockItem{ID: "s-1", ProducerID: "prod-1", ProductName: "Cidre Brut", Quantity: 2})

	require.NoError(t, svc.Delete("s-1"))
	assert.Equal(t, 0, stock.Len())
	assert.Equal(t, []string{"s-1"}, repo.deletes)

	assert.ErrorIs(t, svc.Delete("s-1"), models.ErrNotFound)
}

func TestDecrementForOrderMultipleLines(t *testing.T) {
	svc, stock, _ := newStockFixture()
	stock.Put(models.StockItem{ID: "s-1", ProducerID: "prod-1", ProductName: "Cidre Brut", Quantity: 10})
	stock.Put(models.StockItem{ID: "s-2", ProducerID: "prod-2", ProductName: "Caramel au beurre salé", Quantity: 4})

	svc.DecrementForOrder(models.Order{
		ID: "o-1",
		Items: []models.OrderItem{
			{ProductName: "cidre brut", ProducerID: "prod-1", Quantity: 2},
			{ProductName: "Caramel au beurre salé", ProducerID: "prod-2", Quantity: 4},
			{ProductName: "Inexistant", ProducerID: "prod-1", Quantity: 1},
		},
	})

	row1, _ := stock.Get("s-1")
	row2, _ := stock.Get("s-2")
	assert.Equal(t, 8, row1.Quantity)
	assert.Equal(t, 0, row2.Quantity, "exact quantity on hand still ships")
}
