package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func IsUniqueViolationError(err error) bool {
	return hasPgErrorCode(err, pgUniqueViolation)
}

// IsForeignKeyViolationError is returned by postgres when a row references
// a missing parent, e.g. an entry for an unknown profile.
func IsForeignKeyViolationError(err error) bool {
	return hasPgErrorCode(err, pgForeignKeyViolation)
}

func IsCheckViolationError(err error) bool {
	return hasPgErrorCode(err, pgCheckViolation)
}

func hasPgErrorCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
