package router

import (
	"net/http"
	"strings"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/app/controller"
)

type Controllers struct {
	Order   *controller.OrderController
	Stock   *controller.StockController
	Sync    *controller.SyncController
	Catalog *controller.CatalogController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Orders: list and manual entry
	http.HandleFunc("/admin/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Order.CreateOrder(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Order.ListOrders(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Order actions and detail
	http.HandleFunc("/admin/orders/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/orders/")

		// Route to specific actions first
		if id, ok := actionID(path, "/status"); ok && r.Method == http.MethodPost {
			controllers.Order.SetStatus(w, r, id)
			return
		}
		if id, ok := actionID(path, "/tracking"); ok && r.Method == http.MethodPost {
			controllers.Order.SetTracking(w, r, id)
			return
		}
		if id, ok := actionID(path, "/validate-payment"); ok && r.Method == http.MethodPost {
			controllers.Order.ValidatePayment(w, r, id)
			return
		}
		if id, ok := actionID(path, "/distribute-tickets"); ok && r.Method == http.MethodPost {
			controllers.Order.DistributeTickets(w, r, id)
			return
		}

		// Otherwise treat the path as a bare order id
		if strings.Contains(path, "/") || path == "" {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			controllers.Order.GetOrder(w, r, path)
		case http.MethodDelete:
			controllers.Order.DeleteOrder(w, r, path)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Stock: list, +/- adjust, delete
	http.HandleFunc("/admin/stock", controllers.Stock.ListStock)
	http.HandleFunc("/admin/stock/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/stock/")
		if id, ok := actionID(path, "/adjust"); ok && r.Method == http.MethodPost {
			controllers.Stock.AdjustQuantity(w, r, id)
			return
		}
		if !strings.Contains(path, "/") && path != "" && r.Method == http.MethodDelete {
			controllers.Stock.DeleteStock(w, r, path)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Catalog listings
	http.HandleFunc("/admin/producers", controllers.Catalog.ListProducers)
	http.HandleFunc("/admin/lots", controllers.Catalog.ListLots)
	http.HandleFunc("/admin/packs", controllers.Catalog.ListPacks)
	http.HandleFunc("/admin/promos", controllers.Catalog.ListPromos)

	// Manual sync actions
	http.HandleFunc("/admin/sync/push", controllers.Sync.PushAll)
	http.HandleFunc("/admin/sync/pull", controllers.Sync.PullAll)
}

// actionID extracts the id from a "{id}{suffix}" path segment.
func actionID(path, suffix string) (string, bool) {
	if !strings.HasSuffix(path, suffix) {
		return "", false
	}
	id := strings.TrimSuffix(path, suffix)
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}
