package invoicing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
	"github.com/vfg2006/invoicing-dashboard/internal/navigation"
	"github.com/vfg2006/invoicing-dashboard/internal/revalidate"
	"go.uber.org/mock/gomock"
)

const (
	customerID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
	invoiceID  = "cc27c14a-0acf-4f4a-a6c9-d45682c144b9"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockInvoiceRepository, *revalidate.Hub) {
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	hub := revalidate.NewHub()

	service := NewService(invoiceRepo, hub)
	service.now = func() time.Time {
		return time.Date(2024, 6, 1, 22, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
	}
	service.newID = func() string { return invoiceID }

	return service, invoiceRepo, hub
}

func assertRedirectToInvoices(t *testing.T, err error) {
	t.Helper()

	redirect, ok := navigation.AsRedirect(err)
	require.True(t, ok, "expected a redirect, got %v", err)
	assert.Equal(t, InvoicesPath, redirect.Path)
}

func TestService_CreateInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, invoiceRepo, hub := newTestService(ctrl)

	tests := []struct {
		name     string
		form     map[string]string
		setup    func()
		validate func(t *testing.T, state *domain.FormState, err error)
	}{
		{
			name: "valid form stores cents and redirects",
			form: map[string]string{"customer_id": customerID, "amount": "50.00", "status": "pending"},
			setup: func() {
				invoiceRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, invoice *domain.Invoice) error {
						assert.Equal(t, invoiceID, invoice.ID)
						assert.Equal(t, customerID, invoice.CustomerID)
						assert.Equal(t, int64(5000), invoice.Amount)
						assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)
						assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), invoice.Date)
						return nil
					})
			},
			validate: func(t *testing.T, state *domain.FormState, err error) {
				assert.Nil(t, state)
				assertRedirectToInvoices(t, err)
				assert.Equal(t, uint64(1), hub.Version(InvoicesPath))
			},
		},
		{
			name: "fractional cents round half away from zero",
			form: map[string]string{"customer_id": customerID, "amount": "12.345", "status": "paid"},
			setup: func() {
				invoiceRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, invoice *domain.Invoice) error {
						assert.Equal(t, int64(1235), invoice.Amount)
						assert.Equal(t, domain.InvoiceStatusPaid, invoice.Status)
						return nil
					})
			},
			validate: func(t *testing.T, state *domain.FormState, err error) {
				assert.Nil(t, state)
				assertRedirectToInvoices(t, err)
			},
		},
		{
			name:  "invalid form never reaches storage",
			form:  map[string]string{"customer_id": customerID, "amount": "0", "status": "pending"},
			setup: func() {},
			validate: func(t *testing.T, state *domain.FormState, err error) {
				require.NoError(t, err)
				require.NotNil(t, state)
				assert.Equal(t, MessageCreateValidation, state.Message)
				assert.Equal(t, []string{"Amount must be greater than $0"}, state.Errors["amount"])
				assert.NotContains(t, state.Errors, "customer_id")
			},
		},
		{
			name:  "amount beyond the storable range is rejected",
			form:  map[string]string{"customer_id": customerID, "amount": "184467440737095516.21", "status": "paid"},
			setup: func() {},
			validate: func(t *testing.T, state *domain.FormState, err error) {
				require.NoError(t, err)
				require.NotNil(t, state)
				assert.Equal(t, MessageCreateValidation, state.Message)
				assert.Equal(t, []string{"Amount must be at most $21,474,836.47"}, state.Errors["amount"])
			},
		},
		{
			name:  "amount that would wrap to a negative number is rejected",
			form:  map[string]string{"customer_id": customerID, "amount": "92233720368547758.08", "status": "paid"},
			setup: func() {},
			validate: func(t *testing.T, state *domain.FormState, err error) {
				require.NoError(t, err)
				require.NotNil(t, state)
				assert.Equal(t, []string{"Amount must be at most $21,474,836.47"}, state.Errors["amount"])
			},
		},
		{
			name: "storage failure is reported without the cause",
			form: map[string]string{"customer_id": customerID, "amount": "10", "status": "paid"},
			setup: func() {
				invoiceRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, state *domain.FormState, err error) {
				require.NoError(t, err)
				assert.Equal(t, &domain.FormState{Message: MessageCreateFailed}, state)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			state, err := service.CreateInvoice(context.Background(), &domain.FormState{Message: "previous"}, tt.form)
			tt.validate(t, state, err)
		})
	}
}

func TestService_UpdateInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, invoiceRepo, hub := newTestService(ctrl)

	tests := []struct {
		name     string
		form     map[string]string
		setup    func()
		validate func(t *testing.T, state *domain.FormState, err error)
	}{
		{
			name: "overwrites customer, amount and status",
			form: map[string]string{"customer_id": customerID, "amount": "157.95", "status": "paid"},
			setup: func() {
				invoiceRepo.EXPECT().
					Update(gomock.Any(), &domain.Invoice{
						ID:         invoiceID,
						CustomerID: customerID,
						Amount:     15795,
						Status:     domain.InvoiceStatusPaid,
					}).
					Return(nil)
			},
			validate: func(t *testing.T, state *domain.FormState, err error) {
				assert.Nil(t, state)
				assertRedirectToInvoices(t, err)
				assert.Equal(t, uint64(1), hub.Version(InvoicesPath))
			},
		},
		{
			name:  "invalid form uses the update message",
			form:  map[string]string{"amount": "abc", "status": "overdue"},
			setup: func() {},
			validate: func(t *testing.T, state *domain.FormState, err error) {
				require.NoError(t, err)
				require.NotNil(t, state)
				assert.Equal(t, MessageUpdateValidation, state.Message)
				assert.Equal(t, []string{"Please select a customer"}, state.Errors["customer_id"])
				assert.Equal(t, []string{"Expected number, received nan"}, state.Errors["amount"])
				assert.Equal(t, []string{"Please select a status"}, state.Errors["status"])
			},
		},
		{
			name:  "oversized amount uses the update message",
			form:  map[string]string{"customer_id": customerID, "amount": "21474836.48", "status": "paid"},
			setup: func() {},
			validate: func(t *testing.T, state *domain.FormState, err error) {
				require.NoError(t, err)
				require.NotNil(t, state)
				assert.Equal(t, MessageUpdateValidation, state.Message)
				assert.Equal(t, []string{"Amount must be at most $21,474,836.47"}, state.Errors["amount"])
			},
		},
		{
			name: "missing invoice is a failed update",
			form: map[string]string{"customer_id": customerID, "amount": "1", "status": "pending"},
			setup: func() {
				invoiceRepo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(domain.ErrNotFound)
			},
			validate: func(t *testing.T, state *domain.FormState, err error) {
				require.NoError(t, err)
				assert.Equal(t, &domain.FormState{Message: MessageUpdateFailed}, state)
				assert.Equal(t, uint64(1), hub.Version(InvoicesPath))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			state, err := service.UpdateInvoice(context.Background(), invoiceID, tt.form)
			tt.validate(t, state, err)
		})
	}
}

func TestService_DeleteInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, invoiceRepo, hub := newTestService(ctrl)

	t.Run("deleted invoice revalidates without redirect", func(t *testing.T) {
		invoiceRepo.EXPECT().Delete(gomock.Any(), invoiceID).Return(nil)

		state, err := service.DeleteInvoice(context.Background(), invoiceID)

		assert.NoError(t, err)
		assert.Nil(t, state)
		assert.Equal(t, uint64(1), hub.Version(InvoicesPath))
	})

	t.Run("unknown id is a failed delete", func(t *testing.T) {
		invoiceRepo.EXPECT().Delete(gomock.Any(), "missing").Return(domain.ErrNotFound)

		state, err := service.DeleteInvoice(context.Background(), "missing")

		assert.NoError(t, err)
		assert.Equal(t, &domain.FormState{Message: MessageDeleteFailed}, state)
		assert.Equal(t, uint64(1), hub.Version(InvoicesPath))
	})
}
