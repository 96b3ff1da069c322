package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"sric-access-backend/internal/ai"
	httpapi "sric-access-backend/internal/api/http"
	"sric-access-backend/internal/config"
	"sric-access-backend/internal/ingest"
	"sric-access-backend/internal/jobs"
	"sric-access-backend/internal/logger"
	"sric-access-backend/internal/repository/postgres"
	"sric-access-backend/internal/scheduler"
	"sric-access-backend/internal/security"
	"sric-access-backend/internal/service"
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
	logger.Info("Starting SRIC Access Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
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
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret)

	// Initialize AI extractor
	ctx := context.Background()
	extractor, err := ai.NewGeminiExtractor(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logger.Error("Failed to initialize extraction model", "error", err)
		log.Fatalf("Failed to initialize extraction model: %v", err)
	}
	defer extractor.Close()
	logger.Info("Extraction model initialized", "model", extractor.ModelName())

	// Initialize Services
	senderSvc := service.NewSenderService(store.ProfileRepository)
	quotaSvc := service.NewQuotaService(store.ProcessedEmailRepository, cfg.Processing.DefaultDailyLimit)
	processorSvc := service.NewProcessorService(senderSvc, quotaSvc, extractor, store.GuestRepository, store.ProcessedEmailRepository)
	reviewSvc := service.NewGuestReviewService(store.ProcessedEmailRepository, store.GuestRepository)
	notifierSvc := service.NewNotificationService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	adminSvc := service.NewAdminService(store.ProfileRepository)

	// Initialize HTTP API
	server := httpapi.NewServer(
		processorSvc,
		reviewSvc,
		notifierSvc,
		adminSvc,
		store.ProfileRepository,
		store.GuestRepository,
		tokenManager,
		cfg.Auth.AdminPasswordHash,
	)
	router := mux.NewRouter()
	server.RegisterRoutes(router)

	// Start the mailbox poller when credentials are configured
	var cronScheduler *scheduler.Scheduler
	if cfg.Gmail.RefreshToken != "" {
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

		poller, err := ingest.NewGmailPoller(ctx, cfg.Gmail, processorSvc, filter)
		if err != nil {
			logger.Error("Failed to initialize mailbox poller", "error", err)
			log.Fatalf("Failed to initialize mailbox poller: %v", err)
		}

		jobRunner := jobs.NewJobRunner(poller, cfg)
		cronScheduler = scheduler.NewScheduler(jobRunner)
		cronScheduler.Start()
		logger.Info("Mailbox polling enabled", "schedule", cfg.Scheduler.PollMailbox, "query", cfg.Gmail.Query)
	} else {
		logger.Info("Mailbox polling disabled (no refresh token configured)")
	}

	httpServer := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	if cronScheduler != nil {
		cronScheduler.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
