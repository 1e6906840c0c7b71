package models

import "time"

// PromoProduct is a single product carrying a time-boxed percentage discount.
// One active promo per (productId, producerId) pair is the intent; duplicates
// are not rejected, the storefront shows whichever it fetches first.
type PromoProduct struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	ProducerID      string    `json:"producerId"`
	OriginalPrice   float64   `json:"originalPrice"`
	PromoPrice      float64   `json:"promoPrice"`
	DiscountPercent float64   `json:"discountPercent"`
	Active          bool      `json:"active"`
	ValidUntil      time.Time `json:"validUntil"`
}

// Expired reports whether the promo's validity window has passed.
func (p PromoProduct) Expired(now time.Time) bool {
	return now.After(p.ValidUntil)
}
