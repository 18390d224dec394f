package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"ansimaq-erp-backend/internal/config"
	"ansimaq-erp-backend/internal/jobs"
	"ansimaq-erp-backend/internal/logger"
	"ansimaq-erp-backend/internal/repository/postgres"
	"ansimaq-erp-backend/internal/scheduler"
	"ansimaq-erp-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'generate-monthly-invoices', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Ansimaq Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Services
	var emailService service.EmailService
	if cfg.EmailEnabled() {
		emailService = service.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.User,
			cfg.SMTP.Password,
			cfg.SMTP.From,
		)
	} else {
		logger.Warn("SMTP not configured, email notifications disabled")
		emailService = service.NewNoopEmailService()
	}

	confirmer := service.NewDeleteConfirmer(time.Duration(cfg.Billing.DeleteTokenTTLMinutes) * time.Minute)
	billingService := service.NewBillingService(store, confirmer)

	jobServices := &jobs.Services{
		Email:   emailService,
		Billing: billingService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store, jobServices, cfg)

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
	case "generate-monthly-invoices":
		jobRunner.GenerateMonthlyInvoices()
	case "send-overdue-reminders":
		jobRunner.SendOverdueReminders()
	case "send-expiry-notices":
		jobRunner.SendExpiryNotices()
	case "all":
		jobRunner.RunAllJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - generate-monthly-invoices\n")
		fmt.Printf("  - send-overdue-reminders\n")
		fmt.Printf("  - send-expiry-notices\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
