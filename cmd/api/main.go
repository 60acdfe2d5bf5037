package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/api/middleware"
	"github.com/linskybing/request-portal/internal/api/routes"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/config"
	"github.com/linskybing/request-portal/internal/config/db"
	"github.com/linskybing/request-portal/internal/cron"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/pkg/logger"
	"github.com/linskybing/request-portal/pkg/storage"
	"go.uber.org/zap"
)

// @title           Request Portal API
// @version         1.0
// @description     Student request submission and three-stage review (tutor, HOD, principal).
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	zapLogger, err := logger.NewLogger(config.Environment, config.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	// Initialize JWT signing key
	middleware.Init()

	db.Init()
	if err := db.Migrate(db.DB); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Attachments are optional; uploads answer 503 without a store.
	var store storage.ObjectStore
	minioStore, err := storage.NewMinioStore(ctx, storage.Options{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		UseSSL:    config.MinioUseSSL,
		Bucket:    config.MinioBucket,
	})
	if err != nil {
		zapLogger.Warn("object storage unavailable, attachments disabled", zap.Error(err))
	} else {
		store = minioStore
	}

	repos := repository.NewRepositories(db.DB)
	svc := application.New(repos, store)

	cron.StartCleanupTask(ctx, svc.Audit, config.AuditRetentionDays, 24*time.Hour)

	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.LoggingMiddleware(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, repos, svc)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
