package seed

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/repository"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Seeder loads fixtures into an empty database.
type Seeder struct {
	conn     postgres.Conn
	hashCost int
}

type Option func(*Seeder)

// WithHashCost overrides the bcrypt cost used for user passwords.
func WithHashCost(cost int) Option {
	return func(s *Seeder) {
		s.hashCost = cost
	}
}

func NewSeeder(conn postgres.Conn, opts ...Option) *Seeder {
	s := &Seeder{
		conn:     conn,
		hashCost: bcrypt.DefaultCost,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run creates any missing table and inserts users, customers, invoices and
// revenue in that order. Each table is committed on its own; a failure stops
// the run and leaves the tables inserted before it in place.
func (s *Seeder) Run(ctx context.Context, fixtures Fixtures) error {
	startedAt := time.Now()
	logrus.WithField("started_at", startedAt.Format(time.RFC3339)).Info("seeding database")

	if err := s.ensureSchema(ctx); err != nil {
		return err
	}

	users, err := s.hashPasswords(fixtures.Users)
	if err != nil {
		return err
	}

	steps := []struct {
		table  string
		insert func(tx *sql.Tx) (int64, error)
	}{
		{
			table: "users",
			insert: func(tx *sql.Tx) (int64, error) {
				return repository.NewUserRepository(tx).CreateMany(ctx, users)
			},
		},
		{
			table: "customers",
			insert: func(tx *sql.Tx) (int64, error) {
				return repository.NewCustomerRepository(tx).CreateMany(ctx, fixtures.Customers)
			},
		},
		{
			table: "invoices",
			insert: func(tx *sql.Tx) (int64, error) {
				return repository.NewInvoiceRepository(tx).CreateMany(ctx, fixtures.Invoices)
			},
		},
		{
			table: "revenue",
			insert: func(tx *sql.Tx) (int64, error) {
				return repository.NewRevenueRepository(tx).CreateMany(ctx, fixtures.Revenue)
			},
		},
	}

	for _, step := range steps {
		var count int64
		err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			var err error
			count, err = step.insert(tx)
			return err
		})
		if err != nil {
			return errors.Wrapf(err, "failed to seed %s", step.table)
		}

		logrus.WithFields(logrus.Fields{
			"table": step.table,
			"count": count,
		}).Info("table seeded")
	}

	finishedAt := time.Now()
	logrus.WithFields(logrus.Fields{
		"finished_at": finishedAt.Format(time.RFC3339),
		"duration":    finishedAt.Sub(startedAt).String(),
	}).Info("seeding database ended")

	return nil
}

func (s *Seeder) ensureSchema(ctx context.Context) error {
	for _, statement := range schema {
		if _, err := s.conn.ExecContext(ctx, statement); err != nil {
			return errors.Wrap(err, "failed to create schema")
		}
	}
	return nil
}

// hashPasswords returns copies of users with bcrypt hashes in place of the
// plain text passwords.
func (s *Seeder) hashPasswords(users []*domain.User) ([]*domain.User, error) {
	hashed := make([]*domain.User, 0, len(users))
	for _, user := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.hashCost)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash password of %s", user.Email)
		}

		copied := *user
		copied.Password = string(hash)
		hashed = append(hashed, &copied)
	}
	return hashed, nil
}
