package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/invoicing-dashboard/internal/config"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
	"github.com/vfg2006/invoicing-dashboard/internal/revalidate"
	"go.uber.org/mock/gomock"
)

func TestRevenueSyncService_syncRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRevenueRepo := mocks.NewMockRevenueRepository(ctrl)
	hub := revalidate.NewHub()

	service := NewRevenueSyncService(mockInvoiceRepo, mockRevenueRepo, hub, config.RevenueSync{
		CronSchedule: "0 2 * * *",
	})
	service.now = func() time.Time { return time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC) }

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "paid totals replace the stored revenue",
			setup: func() {
				revenue := []*domain.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}
				mockInvoiceRepo.EXPECT().SumPaidByMonth(gomock.Any(), 2024).Return(revenue, nil)
				mockRevenueRepo.EXPECT().Upsert(gomock.Any(), revenue).Return(nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "", status["last_sync_error"])
				assert.Len(t, status["last_run_id"], 6)
				assert.Equal(t, uint64(1), hub.Version(DashboardPath))
			},
		},
		{
			name: "no paid invoices leaves revenue untouched",
			setup: func() {
				mockInvoiceRepo.EXPECT().SumPaidByMonth(gomock.Any(), 2024).Return([]*domain.Revenue{}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "", status["last_sync_error"])
				assert.Equal(t, uint64(1), hub.Version(DashboardPath))
			},
		},
		{
			name: "failure is recorded in the status",
			setup: func() {
				mockInvoiceRepo.EXPECT().SumPaidByMonth(gomock.Any(), 2024).Return(nil, errors.New("boom"))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Contains(t, status["last_sync_error"], "boom")
				assert.Equal(t, false, status["sync_running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			assert.True(t, service.syncRevenue(context.Background()))
			tt.validate(t, service.GetStatus())
		})
	}
}

func TestRevenueSyncService_ConfiguredYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	service := NewRevenueSyncService(mockInvoiceRepo, mocks.NewMockRevenueRepository(ctrl), revalidate.NewHub(), config.RevenueSync{
		Year: 2022,
	})

	mockInvoiceRepo.EXPECT().SumPaidByMonth(gomock.Any(), 2022).Return(nil, nil)

	assert.True(t, service.syncRevenue(context.Background()))
}

func TestRevenueSyncService_SkipsConcurrentRun(t *testing.T) {
	service := NewRevenueSyncService(nil, nil, revalidate.NewHub(), config.RevenueSync{})
	service.syncRunning = true

	assert.False(t, service.syncRevenue(context.Background()))
}

func TestRevenueSyncService_StartDisabled(t *testing.T) {
	service := NewRevenueSyncService(nil, nil, revalidate.NewHub(), config.RevenueSync{Enabled: false})

	assert.NoError(t, service.Start(context.Background()))
}
