package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "camclub-backend/internal/api/http"
	"camclub-backend/internal/config"
	"camclub-backend/internal/logger"
	"camclub-backend/internal/repository"
	"camclub-backend/internal/repository/postgres"
	"camclub-backend/internal/repository/sheets"
	"camclub-backend/internal/security"
	"camclub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting camera club rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Store configuration", "type", cfg.Store.Type)

	// Initialize record store
	store, cleanup, err := buildStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize record store", "error", err)
		log.Fatalf("Failed to initialize record store: %v", err)
	}
	defer cleanup()

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.Enabled {
		emailSvc = service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName, cfg.Email.StaffInbox)
	} else {
		logger.Info("Email notifications disabled")
		emailSvc = service.NewNoopEmailService()
	}

	// Initialize Services
	catalogSvc := service.NewCatalogService(store.EquipmentRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.EquipmentRepository, emailSvc)
	calendarSvc := service.NewCalendarService(store.RentalRepository)
	adminSvc := service.NewAdminService(store.SettingsRepository, store.EquipmentRepository, tokenManager, cfg.Staff.Members)

	// Initialize HTTP handlers
	handler := httpapi.NewHandler(catalogSvc, rentalSvc, calendarSvc, adminSvc, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), handler.Router()); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

// buildStore opens the configured backend and wraps it with the read cache.
func buildStore(cfg *config.Config) (*repository.Store, func(), error) {
	ttl := repository.DefaultCacheTTL
	if cfg.Store.CacheTTLSeconds > 0 {
		ttl = time.Duration(cfg.Store.CacheTTLSeconds) * time.Second
	}

	switch cfg.Store.Type {
	case config.StoreSheets:
		creds, err := os.ReadFile(cfg.Sheets.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		store, err := sheets.NewStore(context.Background(), creds, cfg.Sheets.SpreadsheetID)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Google Sheets store initialized", "spreadsheet_id", cfg.Sheets.SpreadsheetID)
		return repository.NewCachedStore(store, ttl), func() {}, nil

	default:
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)
		return repository.NewCachedStore(postgres.NewStore(db), ttl), func() { db.Close() }, nil
	}
}
