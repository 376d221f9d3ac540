package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/api/http"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/config"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/i18n"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/logger"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository/postgres"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/security"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/service"
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
	logger.Info("Starting Inventory Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize translations
	if err := i18n.InitTranslator(cfg.I18n.Path); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.ResetURL,
	)

	// Initialize Services
	authSvc := service.NewAuthService(
		store.UserRepository,
		store.PasswordResetTokenRepository,
		store.ActivityLogRepository,
		emailSvc,
		tokenManager,
	)
	userSvc := service.NewUserService(store.UserRepository, store.ActivityLogRepository)
	productSvc := service.NewProductService(store.ProductRepository, store.BuyStockRepository, store.ActivityLogRepository)
	stockSvc := service.NewBuyStockService(store.BuyStockRepository, store.ActivityLogRepository)
	assetSvc := service.NewRentalAssetService(store.RentalAssetRepository, store.ProductRepository, store.ActivityLogRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.ProductRepository, store.ActivityLogRepository)
	saleSvc := service.NewSaleService(store.SaleRepository, store.ActivityLogRepository)
	logSvc := service.NewActivityLogService(store.ActivityLogRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(db, tokenManager, httpapi.Services{
		Auth:        authSvc,
		Users:       userSvc,
		Products:    productSvc,
		Stock:       stockSvc,
		Assets:      assetSvc,
		Rentals:     rentalSvc,
		Sales:       saleSvc,
		ActivityLog: logSvc,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
