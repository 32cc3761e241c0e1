package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atlasboutique/storefront-platform/internal/api/handlers"
	"github.com/atlasboutique/storefront-platform/internal/api/middleware"
	"github.com/atlasboutique/storefront-platform/internal/cache"
	"github.com/atlasboutique/storefront-platform/internal/config"
	"github.com/atlasboutique/storefront-platform/internal/health"
	"github.com/atlasboutique/storefront-platform/internal/metrics"
	"github.com/atlasboutique/storefront-platform/internal/notifier"
	repository "github.com/atlasboutique/storefront-platform/internal/repositories"
	service "github.com/atlasboutique/storefront-platform/internal/services"
	"github.com/atlasboutique/storefront-platform/internal/telemetry"
	"github.com/atlasboutique/storefront-platform/pkg/sendGrid"
	"github.com/atlasboutique/storefront-platform/pkg/telegram"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Telemetry)
	if err != nil {
		slog.Error("Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	// Redis setup
	redisClient, err := cache.NewRedisClient(&cfg.RedisConnect)
	if err != nil {
		slog.Error("Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer productCache.Close()

	// Outbound transports
	telegramClient := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID)
	emailService := sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	fanOut := notifier.New(telegramClient, emailService, cfg.Notify.ChannelTimeout)

	// Services and handlers
	adminService := service.NewAdminService(cfg.Security)
	adminHandler := handlers.NewAdminHandler(adminService)
	productService := service.NewProductService(repos.Product, productCache)
	restockService := service.NewRestockService(repos.Product, repos.Notify, fanOut)
	productHandler := handlers.NewProductHandler(productService, restockService)
	orderService := service.NewOrderService(repos.Order)
	orderHandler := handlers.NewOrderHandler(orderService)
	notifyService := service.NewNotifyService(repos.Product, repos.Notify)
	notifyHandler := handlers.NewNotifyHandler(notifyService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/admin/login", adminHandler.Login())
	routerMux.HandleFunc("POST /api/v1/orders", orderHandler.CreateOrder())
	routerMux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.GetOrder())
	routerMux.HandleFunc("POST /api/v1/notify-me", notifyHandler.CreateRequest())
	routerMux.HandleFunc("GET /api/v1/notify-requests", authMiddleware.Authenticate(notifyHandler.ListRequests()))
	routerMux.HandleFunc("PATCH /api/v1/products/{category}/{code}/restock", authMiddleware.Authenticate(productHandler.Restock()))
	routerMux.HandleFunc("POST /api/v1/products/{category}", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/products/{category}", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{category}/{code}", productHandler.GetProduct())
	routerMux.HandleFunc("PUT /api/v1/products/{category}/{code}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{category}/{code}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront-platform")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
