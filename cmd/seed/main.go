package main

import (
	"flag"
	"log"

	"github.com/linskybing/request-portal/internal/config"
	"github.com/linskybing/request-portal/internal/config/db"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/internal/seed"
	"github.com/linskybing/request-portal/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "seed.yaml", "seed file to load")
	flag.Parse()

	config.LoadConfig()

	zapLogger, err := logger.NewLogger(config.Environment, config.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	data, err := seed.LoadFile(*file)
	if err != nil {
		zapLogger.Fatal("invalid seed file", zap.String("file", *file), zap.Error(err))
	}

	db.Init()
	if err := db.Migrate(db.DB); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	if err := seed.Apply(repository.NewRepositories(db.DB), data); err != nil {
		zapLogger.Fatal("seed failed", zap.Error(err))
	}
}
