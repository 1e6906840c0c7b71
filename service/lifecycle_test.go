package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/service"
)

// Full path of one checkout order: intake, shipping with stock reconciliation,
// payment validation, ticket distribution.
func TestOrderLifecycleEndToEnd(t *testing.T) {
	f := newOrderFixture()
	userRepo := newFakeUserRepo()
	payments := service.NewPaymentService(f.orders, f.orderRepo, userRepo, inlineSyncer{})

	f.stock.Put(models.StockItem{ID: "s-1", ProducerID: "prod-1", ProductName: "Cidre Brut", Quantity: 10})

	created := f.svc.Create(models.Order{
		Items: []models.OrderItem{
			{ProductID: "p-1", ProductName: "cidre brut", ProducerID: "prod-1", Quantity: 3, UnitPrice: 15.0},
		},
		Customer: models.CustomerInfo{Name: "Anne Le Gall", Email: "anne@example.com"},
	})
	assert.InDelta(t, 49.90, created.Total, 1e-9, "45,00 € of goods plus 4,90 € shipping")

	require.NoError(t, f.svc.SetStatus(created.ID, models.StatusPaymentSent))
	require.NoError(t, f.svc.SetStatus(created.ID, models.StatusPaid))
	require.NoError(t, f.svc.SetStatus(created.ID, models.StatusShipped))

	row, _ := f.stock.Get("s-1")
	assert.Equal(t, 7, row.Quantity)

	result, err := payments.ValidatePayment(created.ID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.TicketsDistributed)

	require.NoError(t, payments.DistributeTickets(context.Background(), created.ID))
	assert.Equal(t, 2, userRepo.credits["anne@example.com"])

	// Replays of the two sensitive steps change nothing.
	result, err = payments.ValidatePayment(created.ID)
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.NoError(t, f.svc.SetStatus(created.ID, models.StatusShipped))
	row, _ = f.stock.Get("s-1")
	assert.Equal(t, 7, row.Quantity)
}
