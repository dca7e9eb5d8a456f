package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
)

const sqliteConstraintCode = 19

// IsConstraintViolation reports whether err stems from a database
// constraint (foreign key, not-null, unique, check) as opposed to a
// connectivity or query fault. Handlers map these to 409.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqliteConstraintCode || code&0xff == sqliteConstraintCode
	}

	return false
}
