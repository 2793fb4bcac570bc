package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
)

//go:generate mockgen -source=customer.go -destination=mocks/customer.go -package=mocks

type CustomerRepository interface {
	CreateMany(ctx context.Context, customers []*domain.Customer) (int64, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	ListFiltered(ctx context.Context, filter domain.CustomerFilter) ([]*domain.CustomerTableRow, error)
	Count(ctx context.Context) (int64, error)
}

type customerRepository struct {
	conn postgres.Queryer
}

func NewCustomerRepository(conn postgres.Queryer) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) CreateMany(ctx context.Context, customers []*domain.Customer) (int64, error) {
	if len(customers) == 0 {
		return 0, nil
	}

	query := squirrel.
		Insert(customersTable).
		Columns("id", "name", "email", "image_url").
		PlaceholderFormat(squirrel.Dollar)

	for _, customer := range customers {
		query = query.Values(customer.ID, customer.Name, customer.Email, customer.ImageURL)
	}

	customerSQL, args, err := query.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, customerSQL, args...)
	if err != nil {
		return 0, wrapDatabaseError(err, "failed to insert customers")
	}

	return result.RowsAffected()
}

func (r *customerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	customerSQL, args, err := squirrel.
		Select("id", "name", "email", "image_url").
		From(customersTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, customerSQL, args...)
	if err != nil {
		return nil, wrapDatabaseError(err, "failed to list customers")
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.ImageURL,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan customer")
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating customers")
	}

	return customers, nil
}

// ListFiltered returns the customers whose name or email contains the filter
// query, with the number of invoices and the pending and paid totals of each.
func (r *customerRepository) ListFiltered(ctx context.Context, filter domain.CustomerFilter) ([]*domain.CustomerTableRow, error) {
	pattern := "%" + filter.Query + "%"

	queryBuilder := squirrel.
		Select(
			"customers.id",
			"customers.name",
			"customers.email",
			"customers.image_url",
			"COUNT(invoices.id) AS total_invoices",
			"COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending",
			"COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid",
		).
		From(customersTable).
		LeftJoin("invoices ON customers.id = invoices.customer_id").
		Where(squirrel.Or{
			squirrel.ILike{"customers.name": pattern},
			squirrel.ILike{"customers.email": pattern},
		}).
		GroupBy("customers.id", "customers.name", "customers.email", "customers.image_url").
		OrderBy("customers.name ASC", "customers.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}

	if filter.Offset > 0 {
		queryBuilder = queryBuilder.Offset(filter.Offset)
	}

	customerSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, customerSQL, args...)
	if err != nil {
		return nil, wrapDatabaseError(err, "failed to list customers")
	}
	defer rows.Close()

	customers := make([]*domain.CustomerTableRow, 0)
	for rows.Next() {
		var customer domain.CustomerTableRow
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.ImageURL,
			&customer.TotalInvoices,
			&customer.TotalPending,
			&customer.TotalPaid,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan customer")
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating customers")
	}

	return customers, nil
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	countSQL, args, err := squirrel.
		Select("COUNT(*)").
		From(customersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return 0, wrapDatabaseError(err, "failed to count customers")
	}

	return count, nil
}
