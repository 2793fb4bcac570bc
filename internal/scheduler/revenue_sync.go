package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/repository"
	"github.com/vfg2006/invoicing-dashboard/internal/config"
	"github.com/vfg2006/invoicing-dashboard/internal/revalidate"
	"github.com/vfg2006/invoicing-dashboard/pkg/utils"
)

const DashboardPath = "/dashboard"

// RevenueSyncService rebuilds the revenue table from the paid invoices of a
// year, on a cron schedule or on demand.
type RevenueSyncService struct {
	scheduler   *gocron.Scheduler
	config      config.RevenueSync
	invoiceRepo repository.InvoiceRepository
	revenueRepo repository.RevenueRepository
	revalidator revalidate.Revalidator
	now         func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewRevenueSyncService(
	invoiceRepo repository.InvoiceRepository,
	revenueRepo repository.RevenueRepository,
	revalidator revalidate.Revalidator,
	cfg config.RevenueSync,
) *RevenueSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.Enabled,
		"year":          cfg.Year,
	}).Info("revenue sync configuration loaded")

	return &RevenueSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      cfg,
		invoiceRepo: invoiceRepo,
		revenueRepo: revenueRepo,
		revalidator: revalidator,
		now:         time.Now,
	}
}

// Start schedules the job when enabled and stops the scheduler once ctx is done.
func (s *RevenueSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("revenue sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting revenue sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncRevenue(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule revenue sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping revenue sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RevenueSyncService) year() int {
	if s.config.Year > 0 {
		return s.config.Year
	}
	return s.now().UTC().Year()
}

// syncRevenue returns false when another run was already in progress.
func (s *RevenueSyncService) syncRevenue(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("revenue sync already running, skipping")
		return false
	}

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	s.syncRunning = true
	s.lastRunID = runID
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	logger := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"year":   s.year(),
	})
	logger.Info("revenue sync started")

	err = s.rebuild(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	duration := s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt)
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("revenue sync failed")
		return true
	}

	logger.WithField("duration", duration.String()).Info("revenue sync finished")
	return true
}

func (s *RevenueSyncService) rebuild(ctx context.Context) error {
	revenue, err := s.invoiceRepo.SumPaidByMonth(ctx, s.year())
	if err != nil {
		return fmt.Errorf("failed to sum paid invoices: %w", err)
	}

	if len(revenue) == 0 {
		logrus.Info("no paid invoices for the year, revenue left untouched")
		return nil
	}

	if err := s.revenueRepo.Upsert(ctx, revenue); err != nil {
		return fmt.Errorf("failed to upsert revenue: %w", err)
	}

	s.revalidator.Revalidate(ctx, DashboardPath)
	return nil
}

// TriggerManualSync starts a run in the background unless one is in progress.
func (s *RevenueSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("revenue sync already running, ignoring manual request")
		return
	}

	logrus.Info("manual revenue sync requested")
	go s.syncRevenue(context.Background())
}

func (s *RevenueSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
