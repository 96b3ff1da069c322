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

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"sric-access-backend/internal/ai"
	"sric-access-backend/internal/config"
	"sric-access-backend/internal/ingest"
	"sric-access-backend/internal/jobs"
	"sric-access-backend/internal/logger"
	"sric-access-backend/internal/repository/postgres"
	"sric-access-backend/internal/scheduler"
	"sric-access-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'poll-mailbox')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Gmail.RefreshToken == "" {
		log.Fatalf("Mailbox polling requires gmail credentials (refresh token not configured)")
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting SRIC Mailwatcher...", "log_level", cfg.Log.Level)

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

	// Initialize AI extractor
	ctx := context.Background()
	extractor, err := ai.NewGeminiExtractor(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logger.Error("Failed to initialize extraction model", "error", err)
		log.Fatalf("Failed to initialize extraction model: %v", err)
	}
	defer extractor.Close()

	// Initialize Services
	senderSvc := service.NewSenderService(store.ProfileRepository)
	quotaSvc := service.NewQuotaService(store.ProcessedEmailRepository, cfg.Processing.DefaultDailyLimit)
	processorSvc := service.NewProcessorService(senderSvc, quotaSvc, extractor, store.GuestRepository, store.ProcessedEmailRepository)

	// Initialize dedup cache
	var filter ingest.Filter
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		filter = ingest.NewRedisFilter(rdb)
		logger.Info("Using Redis dedup cache", "addr", cfg.Redis.Addr)
	} else {
		filter = ingest.NewMemoryFilter()
		logger.Info("Using in-process dedup cache")
	}

	// Initialize mailbox poller
	poller, err := ingest.NewGmailPoller(ctx, cfg.Gmail, processorSvc, filter)
	if err != nil {
		logger.Error("Failed to initialize mailbox poller", "error", err)
		log.Fatalf("Failed to initialize mailbox poller: %v", err)
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(poller, cfg)

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
	logger.Info("Mailwatcher scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down mailwatcher scheduler...")
	cronScheduler.Stop()
	logger.Info("Mailwatcher stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "poll-mailbox":
		jobRunner.PollMailbox()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - poll-mailbox\n")
		os.Exit(1)
	}
}
