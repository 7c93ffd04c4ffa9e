package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foooood/storefront/internal/api/handlers"
	"github.com/foooood/storefront/internal/api/middleware"
	"github.com/foooood/storefront/internal/cache"
	"github.com/foooood/storefront/internal/catalog"
	"github.com/foooood/storefront/internal/checkout"
	"github.com/foooood/storefront/internal/config"
	"github.com/foooood/storefront/internal/health"
	"github.com/foooood/storefront/internal/metrics"
	service "github.com/foooood/storefront/internal/services"
	"github.com/foooood/storefront/internal/stores"
	"github.com/foooood/storefront/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	if cfg.Tracing.Enabled {
		shutdownTracing, err := telemetry.SetupTracing(context.Background(), cfg)
		if err != nil {
			slog.Error("❌ Error setting up tracing", "error", err.Error())
			os.Exit(1)
		}

		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdownTracing(flushCtx); err != nil {
				slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
			}
		}()
	}

	// Catalog and session stores
	cat := catalog.New()
	foodCart := stores.NewFoodCart()
	groceryCart := stores.NewGroceryCart()
	location := stores.NewLocationStore()
	orders := stores.NewOrderStore()

	catalogService := service.NewCatalogService(cat, location)
	cartService := service.NewCartService(cat, foodCart, groceryCart)

	// Optional Redis-backed cart snapshots
	if cfg.Session.Enabled {
		redisClient, err := cache.NewRedisClient(&cfg.Session)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", "error", err.Error())
			os.Exit(1)
		}

		sessions := cache.NewRedisCache(redisClient, &cfg.Session)

		defer func() {
			if err := sessions.Close(); err != nil {
				slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
			} else {
				slog.Info("✅ Redis connection closed")
			}
		}()

		cartService = cartService.WithSessionStore(sessions, cfg.Session.TTL)

		if err := cartService.RestoreSnapshot(context.Background()); err != nil {
			slog.Warn("⚠️ Could not restore cart snapshot", slog.String("error", err.Error()))
		}
	}

	checkoutService := service.NewCheckoutService(foodCart, groceryCart, orders, checkout.FlowOptions{
		VerifyDelay:  cfg.Checkout.VerifyDelay,
		ProcessDelay: cfg.Checkout.ProcessDelay,
	})

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	locationHandler := handlers.NewLocationHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(checkoutService)

	healthHandler, err := health.NewHealthHandler(cfg, cat)
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("catalog initialized",
		slog.String("env", cfg.Env),
		slog.Int("areas", len(cat.Areas())),
		slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/areas", catalogHandler.ListAreas())
	routerMux.HandleFunc("GET /api/v1/restaurants", catalogHandler.ListRestaurants())
	routerMux.HandleFunc("GET /api/v1/restaurants/{id}", catalogHandler.GetRestaurant())
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/dineout", catalogHandler.ListDineout())
	routerMux.HandleFunc("GET /api/v1/location", locationHandler.GetLocation())
	routerMux.HandleFunc("PUT /api/v1/location", locationHandler.SetLocation())
	routerMux.HandleFunc("GET /api/v1/carts", cartHandler.GetCarts())
	routerMux.HandleFunc("POST /api/v1/carts/food/items", cartHandler.AddFoodItem())
	routerMux.HandleFunc("PUT /api/v1/carts/food/items", cartHandler.UpdateFoodQuantity())
	routerMux.HandleFunc("DELETE /api/v1/carts/food/items/{id}", cartHandler.RemoveFoodItem())
	routerMux.HandleFunc("POST /api/v1/carts/food/instructions", cartHandler.SetInstructions())
	routerMux.HandleFunc("DELETE /api/v1/carts/food", cartHandler.ClearFoodCart())
	routerMux.HandleFunc("POST /api/v1/carts/grocery/items", cartHandler.AddGroceryItem())
	routerMux.HandleFunc("PUT /api/v1/carts/grocery/items", cartHandler.UpdateGroceryQuantity())
	routerMux.HandleFunc("DELETE /api/v1/carts/grocery/items/{id}", cartHandler.RemoveGroceryItem())
	routerMux.HandleFunc("DELETE /api/v1/carts/grocery", cartHandler.ClearGroceryCart())
	routerMux.HandleFunc("GET /api/v1/checkout/{kind}", checkoutHandler.Enter())
	routerMux.HandleFunc("GET /api/v1/checkout/{kind}/options", checkoutHandler.GetOptions())
	routerMux.HandleFunc("POST /api/v1/checkout/{kind}/address", checkoutHandler.SelectAddress())
	routerMux.HandleFunc("POST /api/v1/checkout/{kind}/payment", checkoutHandler.SelectPayment())
	routerMux.HandleFunc("POST /api/v1/checkout/{kind}/coupon", checkoutHandler.ApplyCoupon())
	routerMux.HandleFunc("DELETE /api/v1/checkout/{kind}/coupon", checkoutHandler.RemoveCoupon())
	routerMux.HandleFunc("POST /api/v1/checkout/{kind}/submit", checkoutHandler.Submit())
	routerMux.HandleFunc("POST /api/v1/checkout/{kind}/confirm", checkoutHandler.Confirm())
	routerMux.HandleFunc("POST /api/v1/checkout/{kind}/cancel", checkoutHandler.Cancel())
	routerMux.HandleFunc("GET /api/v1/orders", orderHandler.ListOrders())
	routerMux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.GetOrder())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	if cfg.Tracing.Enabled {
		handler = otelhttp.NewHandler(handler, "storefront")
	}

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
