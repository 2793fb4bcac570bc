package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/repository"
	"github.com/vfg2006/invoicing-dashboard/internal/api"
	"github.com/vfg2006/invoicing-dashboard/internal/api/handler"
	"github.com/vfg2006/invoicing-dashboard/internal/config"
	"github.com/vfg2006/invoicing-dashboard/internal/revalidate"
	"github.com/vfg2006/invoicing-dashboard/internal/scheduler"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/invoicing"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/invoicing-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("log level set to %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	revenueRepo := repository.NewRevenueRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	views := revalidate.NewHub()

	revenueSyncService := scheduler.NewRevenueSyncService(invoiceRepo, revenueRepo, views, cfg.RevenueSync)
	if err := revenueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start revenue sync scheduler")
	}

	server := api.New(cfg, api.Services{
		Authenticator: authenticating.NewService(userRepo, cfg.SecretKey),
		Reporter:      reporting.NewService(invoiceRepo, customerRepo, revenueRepo, cfg.Database.QueryTimeout),
		Invoicer:      invoicing.NewService(invoiceRepo, views),
		Views:         views,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeRevenue: revenueSyncService,
		},
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
