package models

import "time"

// UserProfile is a customer account as seen by the back office. Ticket
// balances are credited here when an order's tickets are distributed.
type UserProfile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	Tickets     int       `json:"tickets"`
	CreatedAt   time.Time `json:"createdAt"`
}
