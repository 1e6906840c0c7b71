package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/service"
)

// StockController handles HTTP requests for the stock screen.
type StockController struct {
	stock *service.StockService
}

// NewStockController creates a new StockController.
func NewStockController(stock *service.StockService) *StockController {
	return &StockController{stock: stock}
}

// ListStock handles GET /admin/stock.
func (c *StockController) ListStock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]any{"stock": c.stock.List()})
}

// AdjustQuantity handles POST /admin/stock/{id}/adjust (the +/- buttons).
func (c *StockController) AdjustQuantity(w http.ResponseWriter, r *http.Request, id string) {
	var req models.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	row, err := c.stock.AdjustQuantity(id, req.Delta)
	if err != nil {
		writeServiceError(w, "AdjustQuantity", err)
		return
	}
	writeJSON(w, row)
}

// DeleteStock handles DELETE /admin/stock/{id}.
func (c *StockController) DeleteStock(w http.ResponseWriter, r *http.Request, id string) {
	if err := c.stock.Delete(id); err != nil {
		writeServiceError(w, "DeleteStock", err)
		return
	}
	writeJSON(w, map[string]string{"id": id, "deleted": "true"})
}
