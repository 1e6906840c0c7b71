package models

import "time"

// Order statuses exchanged with the storefront and admin clients.
const (
	StatusPending     = "pending"
	StatusPaymentSent = "payment_sent"
	StatusPaid        = "paid"
	StatusShipped     = "shipped"
	StatusCancelled   = "cancelled"
)

// OrderStatuses lists every status the admin surface exposes, in display order.
var OrderStatuses = []string{
	StatusPending,
	StatusPaymentSent,
	StatusPaid,
	StatusShipped,
	StatusCancelled,
}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CustomerInfo carries the buyer's contact details. The back office stores
// and transports these fields but never interprets them.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItem is a single line of an order, immutable once the order is placed.
type OrderItem struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName" validate:"required"`
	ProductType  string  `json:"productType"`
	ProducerID   string  `json:"producerId" validate:"required"`
	ProducerName string  `json:"producerName"`
	Quantity     int     `json:"quantity" validate:"gt=0"`
	UnitPrice    float64 `json:"unitPrice" validate:"gte=0"`
	TotalPrice   float64 `json:"totalPrice" validate:"gte=0"`
	// TVARate is the VAT percentage baked into the line total.
	// Zero means "not provided"; pricing falls back to the standard rate.
	TVARate float64 `json:"tvaRate"`
}

// Order represents a customer order in the back office.
type Order struct {
	ID                 string       `json:"id" validate:"required"`
	Status             string       `json:"status" validate:"omitempty,oneof=pending payment_sent paid shipped cancelled"`
	Items              []OrderItem  `json:"items" validate:"required,min=1,dive"`
	Customer           CustomerInfo `json:"customerInfo"`
	Subtotal           float64      `json:"subtotal" validate:"gte=0"`
	ShippingFee        float64      `json:"shippingFee" validate:"gte=0"`
	Total              float64      `json:"total" validate:"gte=0"`
	PaymentValidated   bool         `json:"paymentValidated"`
	PaymentValidatedAt *time.Time   `json:"paymentValidatedAt,omitempty"`
	TicketsEarned      int          `json:"ticketsEarned"`
	TicketsDistributed bool         `json:"ticketsDistributed"`
	TrackingNumber     string       `json:"trackingNumber,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
}

// SetStatusRequest is the request body for changing an order status.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// SetTrackingRequest is the request body for setting a tracking number.
type SetTrackingRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

// PaymentValidationResult reports the outcome of a payment validation.
// TicketsDistributed is the number of loyalty tickets the customer earned.
type PaymentValidationResult struct {
	Success            bool `json:"success"`
	TicketsDistributed int  `json:"ticketsDistributed"`
}
