package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
)

const (
	invoicesTable  = "invoices"
	customersTable = "customers"

	invoicesCustomersJoin = "customers ON invoices.customer_id = customers.id"
)

//go:generate mockgen -source=invoice.go -destination=mocks/invoice.go -package=mocks

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	CreateMany(ctx context.Context, invoices []*domain.Invoice) (int64, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	ListLatest(ctx context.Context, limit uint64) ([]*domain.LatestInvoice, error)
	ListFiltered(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.InvoiceTableRow, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	Count(ctx context.Context) (int64, error)
	SumByStatus(ctx context.Context) (*domain.InvoiceStatusTotals, error)
	SumPaidByMonth(ctx context.Context, year int) ([]*domain.Revenue, error)
}

type invoiceRepository struct {
	conn postgres.Queryer
}

func NewInvoiceRepository(conn postgres.Queryer) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

// invoiceSearch matches query as a case-insensitive substring of the
// customer name or email, or of the invoice amount, date or status.
func invoiceSearch(query string) squirrel.Sqlizer {
	pattern := "%" + query + "%"

	return squirrel.Or{
		squirrel.ILike{"customers.name": pattern},
		squirrel.ILike{"customers.email": pattern},
		squirrel.ILike{"invoices.amount::text": pattern},
		squirrel.ILike{"invoices.date::text": pattern},
		squirrel.ILike{"invoices.status": pattern},
	}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	invoiceSQL, args, err := squirrel.
		Insert(invoicesTable).
		Columns("id", "customer_id", "amount", "status", "date").
		Values(invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := r.conn.ExecContext(ctx, invoiceSQL, args...); err != nil {
		return wrapDatabaseError(err, "failed to insert invoice")
	}

	return nil
}

func (r *invoiceRepository) CreateMany(ctx context.Context, invoices []*domain.Invoice) (int64, error) {
	if len(invoices) == 0 {
		return 0, nil
	}

	query := squirrel.
		Insert(invoicesTable).
		Columns("id", "customer_id", "amount", "status", "date").
		PlaceholderFormat(squirrel.Dollar)

	for _, invoice := range invoices {
		query = query.Values(invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date)
	}

	invoiceSQL, args, err := query.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, invoiceSQL, args...)
	if err != nil {
		return 0, wrapDatabaseError(err, "failed to insert invoices")
	}

	return result.RowsAffected()
}

// Update overwrites the customer, amount and status of an invoice. The id and
// date are never changed. An id that is not a uuid matches no invoice; any
// other invalid value is reported as a database error.
func (r *invoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	if _, err := uuid.Parse(invoice.ID); err != nil {
		return domain.ErrNotFound
	}

	invoiceSQL, args, err := squirrel.
		Update(invoicesTable).
		Set("customer_id", invoice.CustomerID).
		Set("amount", invoice.Amount).
		Set("status", invoice.Status).
		Where(squirrel.Eq{"id": invoice.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, invoiceSQL, args...)
	if err != nil {
		return wrapDatabaseError(err, "failed to update invoice")
	}

	return requireAffected(result)
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	invoiceSQL, args, err := squirrel.
		Delete(invoicesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, invoiceSQL, args...)
	if err != nil {
		return notFoundOr(err, "failed to delete invoice")
	}

	return requireAffected(result)
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	invoiceSQL, args, err := squirrel.
		Select("id", "customer_id", "amount", "status", "date").
		From(invoicesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	var invoice domain.Invoice
	err = r.conn.QueryRowContext(ctx, invoiceSQL, args...).Scan(
		&invoice.ID,
		&invoice.CustomerID,
		&invoice.Amount,
		&invoice.Status,
		&invoice.Date,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to get invoice")
	}

	return &invoice, nil
}

func (r *invoiceRepository) ListLatest(ctx context.Context, limit uint64) ([]*domain.LatestInvoice, error) {
	invoiceSQL, args, err := squirrel.
		Select("invoices.id", "invoices.amount", "customers.name", "customers.email", "customers.image_url").
		From(invoicesTable).
		Join(invoicesCustomersJoin).
		OrderBy("invoices.date DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, invoiceSQL, args...)
	if err != nil {
		return nil, wrapDatabaseError(err, "failed to list latest invoices")
	}
	defer rows.Close()

	invoices := make([]*domain.LatestInvoice, 0, limit)
	for rows.Next() {
		var invoice domain.LatestInvoice
		if err := rows.Scan(
			&invoice.ID,
			&invoice.Amount,
			&invoice.Name,
			&invoice.Email,
			&invoice.ImageURL,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan invoice")
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating invoices")
	}

	return invoices, nil
}

func (r *invoiceRepository) ListFiltered(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.InvoiceTableRow, error) {
	queryBuilder := squirrel.
		Select(
			"invoices.id",
			"invoices.customer_id",
			"customers.name",
			"customers.email",
			"customers.image_url",
			"invoices.date",
			"invoices.amount",
			"invoices.status",
		).
		From(invoicesTable).
		Join(invoicesCustomersJoin).
		Where(invoiceSearch(filter.Query)).
		OrderBy("invoices.date DESC", "invoices.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}

	if filter.Offset > 0 {
		queryBuilder = queryBuilder.Offset(filter.Offset)
	}

	invoiceSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, invoiceSQL, args...)
	if err != nil {
		return nil, wrapDatabaseError(err, "failed to list invoices")
	}
	defer rows.Close()

	invoices := make([]*domain.InvoiceTableRow, 0)
	for rows.Next() {
		var invoice domain.InvoiceTableRow
		if err := rows.Scan(
			&invoice.ID,
			&invoice.CustomerID,
			&invoice.Name,
			&invoice.Email,
			&invoice.ImageURL,
			&invoice.Date,
			&invoice.Amount,
			&invoice.Status,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan invoice")
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating invoices")
	}

	return invoices, nil
}

func (r *invoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	countSQL, args, err := squirrel.
		Select("COUNT(*)").
		From(invoicesTable).
		Join(invoicesCustomersJoin).
		Where(invoiceSearch(query)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return 0, wrapDatabaseError(err, "failed to count invoices")
	}

	return count, nil
}

func (r *invoiceRepository) Count(ctx context.Context) (int64, error) {
	countSQL, args, err := squirrel.
		Select("COUNT(*)").
		From(invoicesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return 0, wrapDatabaseError(err, "failed to count invoices")
	}

	return count, nil
}

func (r *invoiceRepository) SumByStatus(ctx context.Context) (*domain.InvoiceStatusTotals, error) {
	sumSQL, args, err := squirrel.
		Select(
			"COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid",
			"COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending",
		).
		From(invoicesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	var totals domain.InvoiceStatusTotals
	if err := r.conn.QueryRowContext(ctx, sumSQL, args...).Scan(&totals.Paid, &totals.Pending); err != nil {
		return nil, wrapDatabaseError(err, "failed to sum invoices by status")
	}

	return &totals, nil
}

// SumPaidByMonth totals the paid invoices of each month of year, in whole
// dollars, ordered by calendar month.
func (r *invoiceRepository) SumPaidByMonth(ctx context.Context, year int) ([]*domain.Revenue, error) {
	sumSQL, args, err := squirrel.
		Select(
			"to_char(date, 'Mon') AS month",
			"ROUND(SUM(amount) / 100.0)::bigint AS revenue",
		).
		From(invoicesTable).
		Where(squirrel.Eq{"status": domain.InvoiceStatusPaid}).
		Where("EXTRACT(YEAR FROM date) = ?", year).
		GroupBy("to_char(date, 'Mon')", "EXTRACT(MONTH FROM date)").
		OrderBy("EXTRACT(MONTH FROM date) ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, sumSQL, args...)
	if err != nil {
		return nil, wrapDatabaseError(err, "failed to sum paid invoices by month")
	}
	defer rows.Close()

	revenue := make([]*domain.Revenue, 0, 12)
	for rows.Next() {
		var month domain.Revenue
		if err := rows.Scan(&month.Month, &month.Revenue); err != nil {
			return nil, errors.Wrap(err, "failed to scan monthly revenue")
		}
		revenue = append(revenue, &month)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating monthly revenue")
	}

	return revenue, nil
}
