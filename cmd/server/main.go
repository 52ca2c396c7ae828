package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/larosas-pizzeria/ordering-api/internal/assistant"
	"github.com/larosas-pizzeria/ordering-api/internal/checkout"
	"github.com/larosas-pizzeria/ordering-api/internal/config"
	"github.com/larosas-pizzeria/ordering-api/internal/handlers"
	"github.com/larosas-pizzeria/ordering-api/internal/middleware"
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/internal/order"
	"github.com/larosas-pizzeria/ordering-api/internal/repository"
	"github.com/larosas-pizzeria/ordering-api/internal/service"
	"github.com/larosas-pizzeria/ordering-api/pkg/logger"
)

func main() {
	// Load .env if present; real deployments set variables directly
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting ordering api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories
	menuRepo := repository.NewInMemoryMenuRepository()
	employeeRepo := repository.NewInMemoryEmployeeRepository()
	applicationRepo := repository.NewInMemoryApplicationRepository()

	// Pick the order submitter. Without a fulfillment URL orders are
	// accepted after a simulated delay.
	var submitter order.Submitter
	if cfg.Order.SubmitURL != "" {
		submitter = order.NewHTTPSubmitter(cfg.Order.SubmitURL, time.Duration(cfg.Order.SubmitTimeoutS)*time.Second)
		log.Info("using fulfillment endpoint", "url", cfg.Order.SubmitURL)
	} else {
		submitter = &order.SimulatedSubmitter{Delay: time.Duration(cfg.Order.SubmitDelayMS) * time.Millisecond}
		log.Info("no fulfillment endpoint configured, orders are simulated")
	}

	// Initialize services
	menuService := service.NewMenuService(menuRepo)
	rates := checkout.Rates{
		TaxRate:     cfg.Pricing.TaxRate,
		DeliveryFee: cfg.Pricing.DeliveryFee,
	}
	checkoutService := service.NewCheckoutService(
		menuRepo,
		rates,
		submitter,
		time.Duration(cfg.Order.SubmitTimeoutS)*time.Second,
		cfg.Pricing.DefaultCity,
		cfg.Pricing.DefaultZip,
		log,
	)
	staffService := service.NewStaffService(employeeRepo)
	careersService := service.NewCareersService(applicationRepo)

	// The assistant needs the full catalog for its system prompt
	catalog, err := menuRepo.GetAll(context.Background())
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	chatClient := assistant.New(
		cfg.Assistant.BaseURL,
		cfg.Assistant.APIKey,
		cfg.Assistant.Model,
		catalog,
		models.Restaurant,
		time.Duration(cfg.Assistant.TimeoutS)*time.Second,
		log,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	infoHandler := handlers.NewInfoHandler(log)
	menuHandler := handlers.NewMenuHandler(menuService, log)
	cartHandler := handlers.NewCartHandler(checkoutService, log)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, log)
	staffHandler := handlers.NewStaffHandler(staffService, log)
	careersHandler := handlers.NewCareersHandler(careersService, log)
	chatHandler := handlers.NewChatHandler(chatClient, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Session-ID", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/info", infoHandler.Get)

		// Menu endpoints
		r.Get("/menu", menuHandler.ListItems)
		r.Get("/menu/categories", menuHandler.ListCategories)

		// Cart endpoints
		r.Post("/cart/session", cartHandler.CreateSession)
		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Patch("/cart/items/{cartId}", cartHandler.UpdateQuantity)
		r.Delete("/cart/items/{cartId}", cartHandler.RemoveItem)

		// Checkout wizard endpoints
		r.Post("/checkout/begin", checkoutHandler.Begin)
		r.Post("/checkout/method", checkoutHandler.SetMethod)
		r.Post("/checkout/details", checkoutHandler.SetDetails)
		r.Post("/checkout/payment", checkoutHandler.SetPayment)
		r.Post("/checkout/confirm", checkoutHandler.Confirm)
		r.Post("/checkout/back", checkoutHandler.Back)
		r.Post("/checkout/close", checkoutHandler.Close)

		// Staff portal endpoints
		r.Post("/staff/login", staffHandler.Login)
		r.Post("/staff/{employeeId}/clock", staffHandler.ToggleClock)
		r.Get("/staff/{employeeId}/schedule", staffHandler.Schedule)

		// Careers endpoints
		r.Post("/careers/apply", careersHandler.Apply)
		r.With(middleware.APIKeyAuth(cfg.Auth)).Get("/careers/applications", careersHandler.List)

		// Assistant endpoint
		r.Post("/chat", chatHandler.Send)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
