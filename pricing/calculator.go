package pricing

import (
	"math"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// Business constants. All displayed prices are VAT-inclusive euros.
const (
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = 50.0
	// StandardShippingFee applies below the free-shipping threshold.
	StandardShippingFee = 4.90
	// DefaultTVARate is the standard French VAT percentage, used when an
	// order line does not carry its own rate.
	DefaultTVARate = 20.0
	// TicketStep is the order amount (euros) earning one loyalty ticket.
	TicketStep = 20.0
)

// ShippingFee returns the shipping fee for a given order subtotal.
func ShippingFee(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return StandardShippingFee
}

// ItemVAT extracts the VAT amount contained in an order line's total.
// Prices are VAT-inclusive, so the tax is backed out of the total rather
// than added on top: vat = total - total / (1 + rate/100).
func ItemVAT(item models.OrderItem) float64 {
	rate := item.TVARate
	if rate == 0 {
		rate = DefaultTVARate
	}
	return item.TotalPrice - item.TotalPrice/(1+rate/100)
}

// OrderVAT sums the VAT contained in every line of the order.
func OrderVAT(order models.Order) float64 {
	var vat float64
	for _, item := range order.Items {
		vat += ItemVAT(item)
	}
	return vat
}

// PromoPrice applies a percentage discount to an original price.
func PromoPrice(original, discountPercent float64) float64 {
	return original * (1 - discountPercent/100)
}

// TicketsEarned returns the loyalty tickets earned for an order total:
// one ticket per started-and-completed 20 euros.
func TicketsEarned(total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(total / TicketStep))
}

// Totals holds the recomputed amounts of an order.
type Totals struct {
	Subtotal    float64
	ShippingFee float64
	Total       float64
}

// ComputeTotals recomputes an order's amounts from its lines. Checkout intake
// and the admin detail view both go through here so the two always agree.
func ComputeTotals(items []models.OrderItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.TotalPrice
	}
	fee := ShippingFee(subtotal)
	return Totals{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
	}
}
