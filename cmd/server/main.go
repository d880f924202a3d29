package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	httpapi "courtside-backend/internal/api/http"
	"courtside-backend/internal/cache"
	"courtside-backend/internal/config"
	"courtside-backend/internal/gateway"
	"courtside-backend/internal/logger"
	"courtside-backend/internal/repository/postgres"
	"courtside-backend/internal/security"
	"courtside-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Courtside Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Hour,
	)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Payment Gateway
	stripeGateway := gateway.NewStripeGateway(cfg.Stripe.SecretKey)

	// Initialize Availability Cache (optional)
	var availabilityCache service.AvailabilityCache
	if cfg.Redis.Addr != "" {
		logger.Info("Availability cache enabled", "addr", cfg.Redis.Addr, "ttl_seconds", cfg.Redis.AvailabilityTTL)
		availabilityCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Redis.AvailabilityTTL)*time.Second)
	} else {
		logger.Info("Availability cache disabled")
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid)
	availabilitySvc := service.NewAvailabilityService(
		store.FacilityRepository,
		store.BookingRepository,
		availabilityCache,
	)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.BookingRepository,
		store.RoomPaymentRepository,
		stripeGateway,
		cfg.Booking.Currency,
		cfg.Booking.CashHoldHours,
		cfg.Stripe.WebhookSecret,
		cfg.Stripe.RoomWebhookSecret,
	)
	authSvc := service.NewAuthService(
		store.UserRepository,
		store.OTPRepository,
		emailSvc,
		tokenManager,
	)

	// Set up HTTP server
	router := mux.NewRouter()
	httpapi.RegisterAuthRoutes(router, authSvc)
	httpapi.RegisterAvailabilityRoutes(router, availabilitySvc, authMiddleware)
	httpapi.RegisterPaymentRoutes(router, paymentSvc, authMiddleware)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
