package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"camclub-backend/internal/config"
	"camclub-backend/internal/jobs"
	"camclub-backend/internal/logger"
	"camclub-backend/internal/repository"
	"camclub-backend/internal/repository/postgres"
	"camclub-backend/internal/repository/sheets"
	"camclub-backend/internal/scheduler"
	"camclub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'mark-rentals-in-progress', 'all-nightly')")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting cronjob runner...", "log_level", cfg.Log.Level)

	// Initialize record store
	store, cleanup, err := buildStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize record store", "error", err)
		log.Fatalf("Failed to initialize record store: %v", err)
	}
	defer cleanup()

	// Initialize Services
	var emailService service.EmailService
	if cfg.Email.Enabled {
		emailService = service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName, cfg.Email.StaffInbox)
	} else {
		emailService = service.NewNoopEmailService()
	}

	rentalService := service.NewRentalService(store.RentalRepository, store.EquipmentRepository, emailService)

	jobServices := &jobs.Services{
		Rental: rentalService,
		Email:  emailService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "mark-rentals-in-progress":
		jobRunner.MarkRentalsInProgress()
	case "send-return-reminders":
		jobRunner.SendReturnReminders()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - mark-rentals-in-progress\n")
		fmt.Printf("  - send-return-reminders\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
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
