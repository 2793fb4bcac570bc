package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
)

const (
	usersTable = "users"
)

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

type UserRepository interface {
	CreateMany(ctx context.Context, users []*domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// CreateMany inserts users as given; Password must already be hashed.
func (r *userRepository) CreateMany(ctx context.Context, users []*domain.User) (int64, error) {
	if len(users) == 0 {
		return 0, nil
	}

	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("id", "name", "email", "password").
		PlaceholderFormat(squirrel.Dollar)

	for _, user := range users {
		queryBuilder = queryBuilder.Values(user.ID, user.Name, user.Email, user.Password)
	}

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, usersSQL, usersArgs...)
	if err != nil {
		return 0, wrapDatabaseError(err, "failed to insert users")
	}

	return result.RowsAffected()
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	usersSQL, usersArgs, err := squirrel.
		Select("id", "name", "email", "password").
		From(usersTable).
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	var user domain.User
	err = r.conn.QueryRowContext(ctx, usersSQL, usersArgs...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to get user")
	}

	return &user, nil
}
