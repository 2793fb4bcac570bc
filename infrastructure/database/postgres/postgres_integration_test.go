//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/database/postgres/postgrestest"
)

func TestConnection_RunInTransaction(t *testing.T) {
	conn := postgrestest.NewConnection(t)
	ctx := context.Background()

	_, err := conn.ExecContext(ctx, "CREATE TABLE items (name TEXT PRIMARY KEY)")
	require.NoError(t, err)

	countItems := func() int {
		var count int
		require.NoError(t, conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM items").Scan(&count))
		return count
	}

	t.Run("commits on success", func(t *testing.T) {
		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES ('a')")
			return err
		})

		require.NoError(t, err)
		assert.Equal(t, 1, countItems())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		cause := errors.New("boom")

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES ('b')"); err != nil {
				return err
			}
			return cause
		})

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 1, countItems())
	})

	t.Run("keeps the cause when the rollback fails", func(t *testing.T) {
		cause := errors.New("boom")

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			require.NoError(t, tx.Rollback())
			return cause
		})

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "rollback failed")
		assert.Contains(t, err.Error(), sql.ErrTxDone.Error())
	})
}
