package invoicing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/repository"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
	"github.com/vfg2006/invoicing-dashboard/internal/navigation"
	"github.com/vfg2006/invoicing-dashboard/internal/revalidate"
	"github.com/vfg2006/invoicing-dashboard/internal/validation"
	"github.com/vfg2006/invoicing-dashboard/pkg/money"
)

const InvoicesPath = "/dashboard/invoices"

const (
	MessageCreateValidation = "Missing Fields. Failed to Create Invoice."
	MessageUpdateValidation = "Missing Fields. Failed to Update Invoice."
	MessageCreateFailed     = "Failed to create invoice"
	MessageUpdateFailed     = "Failed to update invoice"
	MessageDeleteFailed     = "Failed to delete invoice"
)

// Invoicer runs the invoice mutations. Create and Update end with a
// *navigation.Redirect error on success; a non-nil FormState reports a
// validation or storage failure.
type Invoicer interface {
	CreateInvoice(ctx context.Context, prev *domain.FormState, form map[string]string) (*domain.FormState, error)
	UpdateInvoice(ctx context.Context, id string, form map[string]string) (*domain.FormState, error)
	DeleteInvoice(ctx context.Context, id string) (*domain.FormState, error)
}

type Service struct {
	invoiceRepo repository.InvoiceRepository
	revalidator revalidate.Revalidator
	now         func() time.Time
	newID       func() string
}

func NewService(invoiceRepo repository.InvoiceRepository, revalidator revalidate.Revalidator) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		revalidator: revalidator,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// CreateInvoice ignores prev; it is part of the form action contract only.
func (s *Service) CreateInvoice(ctx context.Context, _ *domain.FormState, form map[string]string) (*domain.FormState, error) {
	input, fieldErrors := validation.ParseInvoiceForm(form)
	if fieldErrors != nil {
		return &domain.FormState{
			Errors:  fieldErrors,
			Message: MessageCreateValidation,
		}, nil
	}

	now := s.now().UTC()
	invoice := &domain.Invoice{
		ID:         s.newID(),
		CustomerID: input.CustomerID,
		Amount:     money.ToMinorUnits(input.Amount),
		Status:     input.Status,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		logrus.WithError(err).WithField("customer_id", invoice.CustomerID).Debug("failed to create invoice")
		return &domain.FormState{Message: MessageCreateFailed}, nil
	}

	s.revalidator.Revalidate(ctx, InvoicesPath)
	return nil, navigation.To(InvoicesPath)
}

func (s *Service) UpdateInvoice(ctx context.Context, id string, form map[string]string) (*domain.FormState, error) {
	input, fieldErrors := validation.ParseInvoiceForm(form)
	if fieldErrors != nil {
		return &domain.FormState{
			Errors:  fieldErrors,
			Message: MessageUpdateValidation,
		}, nil
	}

	invoice := &domain.Invoice{
		ID:         id,
		CustomerID: input.CustomerID,
		Amount:     money.ToMinorUnits(input.Amount),
		Status:     input.Status,
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		logrus.WithError(err).WithField("invoice_id", id).Debug("failed to update invoice")
		return &domain.FormState{Message: MessageUpdateFailed}, nil
	}

	s.revalidator.Revalidate(ctx, InvoicesPath)
	return nil, navigation.To(InvoicesPath)
}

// DeleteInvoice returns (nil, nil) on success; the caller stays on the page.
func (s *Service) DeleteInvoice(ctx context.Context, id string) (*domain.FormState, error) {
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		logrus.WithError(err).WithField("invoice_id", id).Debug("failed to delete invoice")
		return &domain.FormState{Message: MessageDeleteFailed}, nil
	}

	s.revalidator.Revalidate(ctx, InvoicesPath)
	return nil, nil
}
