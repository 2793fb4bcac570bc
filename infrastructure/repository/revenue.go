package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
)

const (
	revenueTable = "revenue"
)

//go:generate mockgen -source=revenue.go -destination=mocks/revenue.go -package=mocks

type RevenueRepository interface {
	CreateMany(ctx context.Context, revenue []*domain.Revenue) (int64, error)
	List(ctx context.Context) ([]*domain.Revenue, error)
	Upsert(ctx context.Context, revenue []*domain.Revenue) error
}

type revenueRepository struct {
	conn postgres.Queryer
}

func NewRevenueRepository(conn postgres.Queryer) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

func (r *revenueRepository) insert(revenue []*domain.Revenue) squirrel.InsertBuilder {
	query := squirrel.
		Insert(revenueTable).
		Columns("month", "revenue").
		PlaceholderFormat(squirrel.Dollar)

	for _, month := range revenue {
		query = query.Values(month.Month, month.Revenue)
	}

	return query
}

func (r *revenueRepository) CreateMany(ctx context.Context, revenue []*domain.Revenue) (int64, error) {
	if len(revenue) == 0 {
		return 0, nil
	}

	revenueSQL, args, err := r.insert(revenue).ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, revenueSQL, args...)
	if err != nil {
		return 0, wrapDatabaseError(err, "failed to insert revenue")
	}

	return result.RowsAffected()
}

// List returns the revenue of every month in calendar order.
func (r *revenueRepository) List(ctx context.Context) ([]*domain.Revenue, error) {
	revenueSQL, args, err := squirrel.
		Select("month", "revenue").
		From(revenueTable).
		OrderBy("to_date(month, 'Mon') ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, revenueSQL, args...)
	if err != nil {
		return nil, wrapDatabaseError(err, "failed to list revenue")
	}
	defer rows.Close()

	revenue := make([]*domain.Revenue, 0, 12)
	for rows.Next() {
		var month domain.Revenue
		if err := rows.Scan(&month.Month, &month.Revenue); err != nil {
			return nil, errors.Wrap(err, "failed to scan revenue")
		}
		revenue = append(revenue, &month)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating revenue")
	}

	return revenue, nil
}

// Upsert writes the revenue of each given month, replacing the stored value.
func (r *revenueRepository) Upsert(ctx context.Context, revenue []*domain.Revenue) error {
	if len(revenue) == 0 {
		return nil
	}

	revenueSQL, args, err := r.insert(revenue).
		Suffix("ON CONFLICT (month) DO UPDATE SET revenue = EXCLUDED.revenue").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := r.conn.ExecContext(ctx, revenueSQL, args...); err != nil {
		return wrapDatabaseError(err, "failed to upsert revenue")
	}

	return nil
}
