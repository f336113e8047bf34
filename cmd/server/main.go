// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"sabi-consults/internal/admin"
	"sabi-consults/internal/auth"
	"sabi-consults/internal/catalog"
	"sabi-consults/internal/common/config"
	"sabi-consults/internal/common/database"
	"sabi-consults/internal/common/logger"
	"sabi-consults/internal/districts"
	"sabi-consults/internal/inquiries"
	"sabi-consults/internal/notify"
	"sabi-consults/internal/server"
	"sabi-consults/internal/store/postgres"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting sabi-consults API server...",
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	// --- Stores ---
	listingStore := postgres.NewListingStore(pg.DB)
	blogStore := postgres.NewBlogStore(pg.DB)
	teamStore := postgres.NewTeamStore(pg.DB)
	inquiryStore := postgres.NewInquiryStore(pg.DB)
	settingsStore := postgres.NewSettingsStore(pg.DB)

	// --- Notifier ---
	var notifier notify.Notifier = notify.NoOp{}
	if cfg.Notifications.Enabled {
		awsNotifier, err := notify.NewAWSNotifier(ctx, cfg.Notifications, log)
		if err != nil {
			zapLog.Fatal("notifier initialization failed", zap.Error(err))
		}
		notifier = awsNotifier
		zapLog.Info("Inquiry notifier initialized",
			zap.String("region", cfg.Notifications.AWSRegion),
		)
	}

	// --- Services ---
	directory := districts.New()
	sessions := auth.NewSessionManager(redisClient, cfg.Admin, log)
	catalogService := catalog.NewService(listingStore, log)
	inquiryService := inquiries.NewService(inquiryStore, listingStore, notifier, log)
	gateway := admin.NewGateway(
		sessions,
		listingStore,
		blogStore,
		teamStore,
		inquiryStore,
		settingsStore,
		directory,
		log,
	)

	srv := server.New(cfg.Server, server.Deps{
		Catalog:   catalogService,
		Inquiries: inquiryService,
		Gateway:   gateway,
		Sessions:  sessions,
		Blogs:     blogStore,
		Team:      teamStore,
		Settings:  settingsStore,
		Directory: directory,
		Logger:    log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	case sig := <-stop:
		zapLog.Info("Shutting down...", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownDuration())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLog.Error("graceful shutdown failed", zap.Error(err))
		}
	}

	zapLog.Info("Server stopped")
}
