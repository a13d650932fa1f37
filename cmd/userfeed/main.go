package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Aidin1998/userfeed/api"
	"github.com/Aidin1998/userfeed/internal/config"
	"github.com/Aidin1998/userfeed/internal/database"
	"github.com/Aidin1998/userfeed/internal/telemetry"
	"github.com/Aidin1998/userfeed/internal/users"
	"github.com/Aidin1998/userfeed/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zapLogger); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	zapLogger.Info("Server exited")
}

func run(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) error {
	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			zapLogger.Warn("Telemetry shutdown failed", zap.Error(err))
		}
	}()

	db, err := database.Open(cfg.Database, zapLogger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// Sample connection pool stats into Prometheus
	go database.CollectStats(ctx, db, cfg.Database.StatsInterval)

	store := users.NewStore(zapLogger, db, users.WithPageSize(cfg.Pagination.PageSize))

	gin.SetMode(cfg.Server.Mode)
	server := api.NewServer(zapLogger, store, api.Options{
		ServiceName: cfg.Telemetry.ServiceName,
		CORS:        cfg.CORS,
	})
	return server.Start(ctx, cfg.Server.Addr(), cfg.Server.ShutdownTimeout)
}
