package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"indiekaum-bot/internal/config"
	"indiekaum-bot/internal/handler"
	"indiekaum-bot/internal/repository"
	"indiekaum-bot/internal/repository/memory"
	"indiekaum-bot/internal/repository/postgres"
	"indiekaum-bot/internal/service"
	"indiekaum-bot/internal/sheets"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting IndieKaum onboarding bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Open the durable group id store; a previously migrated id wins over env
	groups, err := config.OpenGroupStore(cfg.GroupIDFile, cfg.GroupID)
	if err != nil {
		logger.Fatal("Failed to open group id store", zap.Error(err))
	}

	logger.Info("Group id store ready", zap.Int64("group_id", groups.Current()))

	// Pick the session backend
	var sessions repository.SessionRepository
	if cfg.DatabaseEnabled() {
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := runMigrations(db, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		sessions = postgres.NewSessionRepo(db)
		logger.Info("Using PostgreSQL session store")
	} else {
		sessions = memory.NewSessionRepo()
		logger.Info("Using in-memory session store")
	}

	// Initialize the record sink
	sink, err := sheets.NewClient(context.Background(), cfg.CredentialFiles, cfg.SpreadsheetID)
	if err != nil {
		logger.Fatal("Failed to create sheets client", zap.Error(err))
	}

	logger.Info("Sheets client initialized")

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token: cfg.BotToken,
		Poller: &tele.LongPoller{
			Timeout: 10 * time.Second,
			AllowedUpdates: []string{"message", "chat_member"},
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize services
	client := handler.NewBotClient(bot)
	members := service.NewMembershipService(client, groups, logger)
	invites := service.NewInviteService(client, groups, logger)
	intake := service.NewIntakeService(sessions, sink, members, invites, logger)

	// Initialize handler
	h := handler.NewHandler(bot, intake, groups, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start session eviction job in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runEvictionJob(ctx, sessions, cfg.SessionTTL, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied")
	return nil
}

// runEvictionJob periodically removes abandoned intake sessions
func runEvictionJob(ctx context.Context, sessions repository.SessionRepository, ttl time.Duration, logger *zap.Logger) {
	if ttl <= 0 {
		logger.Info("Session eviction disabled")
		return
	}

	// Run one sweep at startup, then hourly
	if removed, err := sessions.DeleteStale(ttl); err != nil {
		logger.Error("Failed to evict stale sessions", zap.Error(err))
	} else if removed > 0 {
		logger.Info("Evicted stale sessions", zap.Int("count", removed))
	}

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Eviction job stopped")
			return
		case <-ticker.C:
			removed, err := sessions.DeleteStale(ttl)
			if err != nil {
				logger.Error("Failed to evict stale sessions", zap.Error(err))
				continue
			}
			if removed > 0 {
				logger.Info("Evicted stale sessions", zap.Int("count", removed))
			}
		}
	}
}
