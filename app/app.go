package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/app/controller"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/app/router"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/consumer"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/db"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/repository"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/service"
)

// Initialize wires the application: remote store (when configured), local
// stores, services, HTTP routes, pollers and the checkout consumer. The
// returned cleanup stops background work and closes the database.
func Initialize(ctx context.Context) (func(), error) {
	// Remote store is optional: without it the back office runs local-only
	// and every remote-dependent action reports "not configured".
	database, err := db.Connect(ctx)
	if err != nil {
		if !errors.Is(err, db.ErrNotConfigured) {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Printf("⚠️ remote store not configured, running local-only")
	}

	var repos *service.Repositories
	if database != nil {
		if getenvBool("AUTO_MIGRATE", false) {
			if err := db.Migrate(ctx, database); err != nil {
				database.Close()
				return nil, err
			}
		}
		repos = &service.Repositories{
			Orders:    repository.NewOrderRepository(database),
			Stock:     repository.NewStockRepository(database),
			Producers: repository.NewProducerRepository(database),
			Lots:      repository.NewLotRepository(database),
			Packs:     repository.NewPackRepository(database),
			Promos:    repository.NewPromoRepository(database),
			Users:     repository.NewUserRepository(database),
			Records:   repository.NewAppRecordRepository(database),
		}
	}

	stores := service.NewStores()
	queue := service.NewSyncQueue(256, 3, time.Second)
	queue.Start(ctx)

	syncService := service.NewSyncService(stores, repos)

	var orderRepo repository.OrderRepositoryInterface
	var stockRepo repository.StockRepositoryInterface
	var userRepo repository.UserRepositoryInterface
	if repos != nil {
		orderRepo = repos.Orders
		stockRepo = repos.Stock
		userRepo = repos.Users
	}
	stockService := service.NewStockService(stores.Stock, stockRepo, queue)
	orderService := service.NewOrderService(stores.Orders, stockService, orderRepo, queue)
	paymentService := service.NewPaymentService(stores.Orders, orderRepo, userRepo, queue)

	// Warm the local stores once, then keep them fresh with the pollers.
	poller := service.NewPoller()
	if syncService.Configured() {
		if err := syncService.PullAll(ctx); err != nil {
			log.Printf("⚠️ initial pull failed: %v", err)
		}
		poller.StartScope(ctx, "catalog", service.CatalogPollInterval, syncService.PullCatalog)
		poller.StartScope(ctx, "orders", service.OrdersPollInterval, syncService.PullOrders)
		poller.StartScope(ctx, "users", service.UsersPollInterval, syncService.PullUsers)
	}

	controllers := &router.Controllers{
		Order:   controller.NewOrderController(orderService, paymentService),
		Stock:   controller.NewStockController(stockService),
		Sync:    controller.NewSyncController(syncService),
		Catalog: controller.NewCatalogController(stores),
	}
	router.SetupRoutes(controllers)

	// Checkout orders arrive over Kafka when a broker is configured.
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		topic := getenv("KAFKA_TOPIC", "checkout-orders")
		group := getenv("KAFKA_GROUP", "backoffice")
		go func() {
			if err := consumer.Run(ctx, brokers, topic, group, orderService); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("checkout consumer stopped: %v", err)
			}
		}()
	}

	cleanup := func() {
		poller.StopAll()
		if database != nil {
			database.Close()
		}
	}
	return cleanup, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
