package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/infrastructure/payment"
	"storefront/internal/repo"
	"storefront/internal/server"
	"storefront/internal/service"
	"storefront/internal/worker"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	for _, gw := range cfg.DefaultedSecrets {
		logger.Warn("webhook secret not configured, using insecure development default",
			zap.String("gateway", gw),
		)
	}

	sessions := repo.NewSessionRepo()
	proc := payment.NewProcessor(sessions, payment.DefaultProfiles(), logger)
	notifier := service.NewLogNotifier(logger)
	srv := server.New(cfg, proc, notifier, catalog.Default(), logger)

	sweeper := worker.NewExpiryWorker(sessions, time.Minute, logger)
	go sweeper.Run(context.Background())

	logger.Info("server listening",
		zap.String("addr", cfg.Addr),
		zap.String("gateway", cfg.Gateway),
	)
	if err := srv.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
