package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoicing-dashboard/internal/api/handler"
	"github.com/vfg2006/invoicing-dashboard/internal/api/handler/router"
	"github.com/vfg2006/invoicing-dashboard/internal/config"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/invoicing"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/invoicing-dashboard/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services groups everything the HTTP layer dispatches to.
type Services struct {
	Authenticator authenticating.Authenticator
	Reporter      reporting.Reporter
	Invoicer      invoicing.Invoicer
	Views         handler.ViewVersioner
	CronJobs      handler.CronJobServices
}

// NewHandler builds the routed handler wrapped in the global middleware chain.
func NewHandler(services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Dashboard(services.Reporter, services.Views)...),
		router.WithRoutes(handler.Invoices(services.Reporter, services.Invoicer, services.Views)...),
		router.WithRoutes(handler.Customers(services.Reporter, services.Views)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled or the process receives SIGINT/SIGTERM,
// then shuts down gracefully.
func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("shutting down server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}
