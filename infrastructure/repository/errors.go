package repository

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
)

const (
	pqUniqueViolation           = "23505"
	pqInvalidTextRepresentation = "22P02"
)

// wrapDatabaseError adds message to err, along with the SQLSTATE when the
// driver reports one.
func wrapDatabaseError(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return errors.Wrapf(err, "%s (code: %s)", message, pqErr.Code)
	}
	return errors.Wrap(err, message)
}

// notFoundOr maps a missing row, or an id that is not a valid uuid, to
// domain.ErrNotFound and wraps anything else.
func notFoundOr(err error, message string) error {
	if errors.Is(err, sql.ErrNoRows) || hasCode(err, pqInvalidTextRepresentation) {
		return domain.ErrNotFound
	}
	return wrapDatabaseError(err, message)
}

// requireAffected turns an update or delete that touched no row into domain.ErrNotFound.
func requireAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error getting rows affected")
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	return hasCode(err, pqUniqueViolation)
}
