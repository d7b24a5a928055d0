package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi"
	"github.com/vfg2006/restaurant-dashboard-api/internal/api"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/detecting"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/scoring"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/summarizing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// All services are built here and handed to the request handlers; no
	// hidden singletons.
	client := mockapi.NewClient(cfg)

	aggregator := aggregating.NewService(client)
	scorer := scoring.NewService(client)
	summarizer := summarizing.NewService(client, cfg)
	detector := detecting.NewService(client, cfg)

	server, err := api.New(
		cfg,
		client,
		aggregator,
		scorer,
		summarizer,
		detector,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
