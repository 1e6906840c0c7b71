package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

func TestShippingFee(t *testing.T) {
	assert.Equal(t, 4.90, ShippingFee(0))
	assert.Equal(t, 4.90, ShippingFee(45))
	assert.Equal(t, 4.90, ShippingFee(49.99))
	assert.Equal(t, 0.0, ShippingFee(50))
	assert.Equal(t, 0.0, ShippingFee(120))
}

func TestItemVAT_BackedOutOfInclusiveTotal(t *testing.T) {
	item := models.OrderItem{TotalPrice: 120, TVARate: 20}
	assert.InDelta(t, 20.0, ItemVAT(item), 1e-9)
}

func TestItemVAT_DefaultsToStandardRate(t *testing.T) {
	item := models.OrderItem{TotalPrice: 120}
	assert.InDelta(t, 20.0, ItemVAT(item), 1e-9)
}

func TestItemVAT_ReducedRate(t *testing.T) {
	// 5.5% is the reduced rate for most food products.
	item := models.OrderItem{TotalPrice: 105.5, TVARate: 5.5}
	assert.InDelta(t, 5.5, ItemVAT(item), 1e-9)
}

func TestOrderVAT_SumsLines(t *testing.T) {
	order := models.Order{Items: []models.OrderItem{
		{TotalPrice: 120, TVARate: 20},
		{TotalPrice: 60, TVARate: 20},
	}}
	assert.InDelta(t, 30.0, OrderVAT(order), 1e-9)
}

func TestPromoPrice(t *testing.T) {
	assert.InDelta(t, 80.0, PromoPrice(100, 20), 1e-9)
	assert.InDelta(t, 100.0, PromoPrice(100, 0), 1e-9)
	assert.InDelta(t, 0.0, PromoPrice(100, 100), 1e-9)
}

func TestTicketsEarned(t *testing.T) {
	assert.Equal(t, 0, TicketsEarned(0))
	assert.Equal(t, 0, TicketsEarned(19.99))
	assert.Equal(t, 1, TicketsEarned(20))
	assert.Equal(t, 2, TicketsEarned(49.90))
	assert.Equal(t, 5, TicketsEarned(100))
	assert.Equal(t, 0, TicketsEarned(-10))
}

func TestComputeTotals(t *testing.T) {
	items := []models.OrderItem{
		{ProductName: "Cidre brut", Quantity: 3, UnitPrice: 5, TotalPrice: 15},
		{ProductName: "Caramels", Quantity: 2, UnitPrice: 15, TotalPrice: 30},
	}
	totals := ComputeTotals(items)
	assert.InDelta(t, 45.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 4.90, totals.ShippingFee, 1e-9)
	assert.InDelta(t, 49.90, totals.Total, 1e-9)
	assert.Equal(t, 2, TicketsEarned(totals.Total))
}

func TestComputeTotals_FreeShipping(t *testing.T) {
	items := []models.OrderItem{{TotalPrice: 60}}
	totals := ComputeTotals(items)
	assert.InDelta(t, 60.0, totals.Subtotal, 1e-9)
	assert.Equal(t, 0.0, totals.ShippingFee)
	assert.InDelta(t, 60.0, totals.Total, 1e-9)
}
