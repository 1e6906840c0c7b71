package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/pricing"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/service"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/utils"
)

// OrderController handles HTTP requests for orders.
type OrderController struct {
	orders   *service.OrderService
	payments *service.PaymentService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orders *service.OrderService, payments *service.PaymentService) *OrderController {
	return &OrderController{orders: orders, payments: payments}
}

// OrderDetailResponse is an order plus the live amounts the detail screen
// renders. They come from the same calculator checkout intake uses, so the
// stored and displayed figures always agree.
type OrderDetailResponse struct {
	models.Order
	ComputedSubtotal float64 `json:"computedSubtotal"`
	ComputedShipping float64 `json:"computedShipping"`
	ComputedTotal    float64 `json:"computedTotal"`
	TotalVAT         float64 `json:"totalVat"`
	FormattedTotal   string  `json:"formattedTotal"`
}

// ListOrders handles GET /admin/orders.
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]any{"orders": c.orders.List()})
}

// CreateOrder handles POST /admin/orders (manual admin entry).
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		log.Printf("❌ CreateOrder: failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if len(order.Items) == 0 {
		http.Error(w, "order must have at least one item", http.StatusBadRequest)
		return
	}
	created := c.orders.Create(order)
	writeJSON(w, created)
}

// GetOrder handles GET /admin/orders/{id}.
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request, id string) {
	order, ok := c.orders.Get(id)
	if !ok {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}
	totals := pricing.ComputeTotals(order.Items)
	writeJSON(w, OrderDetailResponse{
		Order:            order,
		ComputedSubtotal: totals.Subtotal,
		ComputedShipping: totals.ShippingFee,
		ComputedTotal:    totals.Total,
		TotalVAT:         pricing.OrderVAT(order),
		FormattedTotal:   utils.FormatEUR(totals.Total),
	})
}

// SetStatus handles POST /admin/orders/{id}/status.
func (c *OrderController) SetStatus(w http.ResponseWriter, r *http.Request, id string) {
	var req models.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := c.orders.SetStatus(id, req.Status); err != nil {
		writeServiceError(w, "SetStatus", err)
		return
	}
	writeJSON(w, map[string]string{"id": id, "status": req.Status})
}

// SetTracking handles POST /admin/orders/{id}/tracking.
func (c *OrderController) SetTracking(w http.ResponseWriter, r *http.Request, id string) {
	var req models.SetTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := c.orders.SetTrackingNumber(id, req.TrackingNumber); err != nil {
		writeServiceError(w, "SetTracking", err)
		return
	}
	writeJSON(w, map[string]string{"id": id, "trackingNumber": req.TrackingNumber})
}

// ValidatePayment handles POST /admin/orders/{id}/validate-payment.
func (c *OrderController) ValidatePayment(w http.ResponseWriter, r *http.Request, id string) {
	result, err := c.payments.ValidatePayment(id)
	if err != nil {
		writeServiceError(w, "ValidatePayment", err)
		return
	}
	writeJSON(w, result)
}

// DistributeTickets handles POST /admin/orders/{id}/distribute-tickets.
func (c *OrderController) DistributeTickets(w http.ResponseWriter, r *http.Request, id string) {
	if err := c.payments.DistributeTickets(r.Context(), id); err != nil {
		writeServiceError(w, "DistributeTickets", err)
		return
	}
	writeJSON(w, map[string]any{"id": id, "ticketsDistributed": true})
}

// DeleteOrder handles DELETE /admin/orders/{id}.
func (c *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request, id string) {
	if err := c.orders.Delete(id); err != nil {
		writeServiceError(w, "DeleteOrder", err)
		return
	}
	writeJSON(w, map[string]string{"id": id, "deleted": "true"})
}

// writeJSON writes a JSON success response.
func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ failed to encode response: %v", err)
	}
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	log.Printf("❌ %s: %v", op, err)
	switch {
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrRemoteNotConfigured):
		http.Error(w, "remote store not configured", http.StatusServiceUnavailable)
	case strings.Contains(err.Error(), "unknown order status"):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
