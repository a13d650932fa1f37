package dbutil

import (
	"github.com/Aidin1998/userfeed/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const ForeignKeyViolationCode = "23503"

// WrapError wraps a store error as a store failure. The driver message is
// kept verbatim so callers see the underlying cause.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*errors.Error); ok {
		return err
	}
	return errors.StoreFailure.Explain("%s", err.Error()).Wrap(err)
}

// IsForeignKeyViolation reports whether err was raised by a foreign key
// constraint in SQLite or PostgreSQL.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == ForeignKeyViolationCode
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
