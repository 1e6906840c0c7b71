package models

// Producer is a seller owning a catalog of products. The producer CRUD
// screens live outside the back-office core; the sync bridge only transports
// these rows between the local and remote stores.
type Producer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}
