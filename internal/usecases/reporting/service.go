package reporting

import (
	"context"
	"math"
	"time"

	"github.com/vfg2006/invoicing-dashboard/infrastructure/repository"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
	"github.com/vfg2006/invoicing-dashboard/pkg/log"
	"github.com/vfg2006/invoicing-dashboard/pkg/money"
	"golang.org/x/sync/errgroup"
)

const (
	ItemsPerPage        = 6
	LatestInvoicesLimit = 5
	defaultQueryTimeout = 5 * time.Second

	// MaxPage bounds page numbers so the row offset never overflows.
	MaxPage = math.MaxInt32
)

type Reporter interface {
	FetchRevenue(ctx context.Context) ([]*domain.Revenue, error)
	FetchLatestInvoices(ctx context.Context) ([]*domain.LatestInvoice, error)
	FetchCardData(ctx context.Context) (*domain.CardData, error)
	FetchFilteredInvoices(ctx context.Context, query string, page int) ([]*domain.InvoiceTableRow, error)
	FetchInvoicesPages(ctx context.Context, query string) (int64, error)
	FetchInvoiceByID(ctx context.Context, id string) (*domain.InvoiceForm, error)
	FetchCustomers(ctx context.Context) ([]*domain.Customer, error)
	FetchFilteredCustomers(ctx context.Context, query string, page int) ([]*domain.CustomerTableRow, error)
}

type Service struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	revenueRepo  repository.RevenueRepository
	queryTimeout time.Duration
}

// NewService builds the read side. A non-positive queryTimeout uses the default.
func NewService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	revenueRepo repository.RevenueRepository,
	queryTimeout time.Duration,
) *Service {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}

	return &Service{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
		queryTimeout: queryTimeout,
	}
}

// clampPage keeps page within [1, MaxPage].
func clampPage(page int) int {
	switch {
	case page < 1:
		return 1
	case page > MaxPage:
		return MaxPage
	}
	return page
}

func pageOffset(page int) uint64 {
	return uint64(page-1) * ItemsPerPage
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

func (s *Service) fail(ctx context.Context, operation, message string, err error, fields log.Fields) error {
	logger := log.ForContext(ctx).WithError(err).WithField("operation", operation)
	if len(fields) > 0 {
		logger = logger.WithFields(fields)
	}
	logger.Error("database error")

	return &QueryError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// FetchRevenue returns the revenue of every month in calendar order.
func (s *Service) FetchRevenue(ctx context.Context) ([]*domain.Revenue, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	revenue, err := s.revenueRepo.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "fetch_revenue", MessageFetchRevenue, err, nil)
	}

	return revenue, nil
}

func (s *Service) FetchLatestInvoices(ctx context.Context) ([]*domain.LatestInvoice, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	invoices, err := s.invoiceRepo.ListLatest(ctx, LatestInvoicesLimit)
	if err != nil {
		return nil, s.fail(ctx, "fetch_latest_invoices", MessageFetchLatestInvoices, err, nil)
	}

	return invoices, nil
}

// FetchCardData runs the three dashboard aggregates concurrently. The first
// failure cancels the remaining queries.
func (s *Service) FetchCardData(ctx context.Context) (*domain.CardData, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		invoiceCount  int64
		customerCount int64
		totals        *domain.InvoiceStatusTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoiceRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customerRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.invoiceRepo.SumByStatus(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, "fetch_card_data", MessageFetchCardData, err, nil)
	}

	return &domain.CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    totals.Paid,
		TotalPendingInvoices: totals.Pending,
	}, nil
}

// FetchFilteredInvoices returns one page of the invoices matching query.
// Pages start at 1; lower values read the first page.
func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]*domain.InvoiceTableRow, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	page = clampPage(page)

	invoices, err := s.invoiceRepo.ListFiltered(ctx, domain.InvoiceFilter{
		Query:  query,
		Limit:  ItemsPerPage,
		Offset: pageOffset(page),
	})
	if err != nil {
		return nil, s.fail(ctx, "fetch_filtered_invoices", MessageFetchInvoices, err, log.Fields{
			"query": query,
			"page":  page,
		})
	}

	return invoices, nil
}

// FetchInvoicesPages returns how many pages FetchFilteredInvoices has for query.
func (s *Service) FetchInvoicesPages(ctx context.Context, query string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	count, err := s.invoiceRepo.CountFiltered(ctx, query)
	if err != nil {
		return 0, s.fail(ctx, "fetch_invoices_pages", MessageFetchInvoicesPages, err, log.Fields{
			"query": query,
		})
	}

	return (count + ItemsPerPage - 1) / ItemsPerPage, nil
}

// FetchInvoiceByID returns the invoice shaped for the edit form, with the
// amount back in dollars.
func (s *Service) FetchInvoiceByID(ctx context.Context, id string) (*domain.InvoiceForm, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "fetch_invoice_by_id", MessageFetchInvoice, err, log.Fields{
			"invoice_id": id,
		})
	}

	return &domain.InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     money.ToMajorUnits(invoice.Amount),
		Status:     invoice.Status,
		Date:       invoice.Date,
	}, nil
}

func (s *Service) FetchCustomers(ctx context.Context) ([]*domain.Customer, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "fetch_customers", MessageFetchCustomers, err, nil)
	}

	return customers, nil
}

// FetchFilteredCustomers returns one page of the customers table, paged
// like FetchFilteredInvoices.
func (s *Service) FetchFilteredCustomers(ctx context.Context, query string, page int) ([]*domain.CustomerTableRow, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	page = clampPage(page)

	customers, err := s.customerRepo.ListFiltered(ctx, domain.CustomerFilter{
		Query:  query,
		Limit:  ItemsPerPage,
		Offset: pageOffset(page),
	})
	if err != nil {
		return nil, s.fail(ctx, "fetch_filtered_customers", MessageFetchFilteredCustomers, err, log.Fields{
			"query": query,
			"page":  page,
		})
	}

	return customers, nil
}
