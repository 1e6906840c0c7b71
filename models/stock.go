package models

// StockItem is an inventory row tracking on-hand quantity for one of a
// producer's products. Order lines are matched to stock rows by producer id
// plus case-insensitive product name, not by a foreign key.
type StockItem struct {
	ID          string  `json:"id"`
	ProducerID  string  `json:"producerId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	MinStock    int     `json:"minStock"`
	Price       float64 `json:"price"`
	CostPrice   float64 `json:"costPrice"`
	TVARate     float64 `json:"tvaRate"`
	Unit        string  `json:"unit"`
}

// BelowMin reports whether the row is at or under its restock threshold.
func (s StockItem) BelowMin() bool {
	return s.Quantity <= s.MinStock
}

// AdjustStockRequest is the request body for the +/- stock adjustment.
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}
