package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// IsDuplicateConstraintError reports whether err is a PostgreSQL unique
// violation raised by the named constraint. Services validate uniqueness up
// front, so this only fires on concurrent inserts racing past that check.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraintName
}
