package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/seed"
	"github.com/vfg2006/invoicing-dashboard/internal/config"
	"github.com/vfg2006/invoicing-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("failed to load config")
		os.Exit(1)
	}

	log.Setup(cfg.App.LogLevel)

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Error("failed to connect to database")
		os.Exit(1)
	}

	err = seed.NewSeeder(conn).Run(ctx, seed.DefaultFixtures())
	_ = conn.Close()

	if err != nil {
		logrus.WithError(err).Error("seeding failed")
		os.Exit(1)
	}
}
