package errors

// Postgres helpers: map pgx errors onto an ErrorCode

import (
	stderrs "errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// ExtractPgError returns the *pgconn.PgError in err's chain, if any
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// DBErrorCode maps a database error to an ErrorCode
// the server being unreachable, starting up, out of resources or shutting
// down is Unavailable; any other server error is DB
func DBErrorCode(err error) ErrorCode {
	if pgErr, ok := ExtractPgError(err); ok {
		if len(pgErr.Code) < 2 {
			return ErrorCodeDB
		}
		switch pgErr.Code[:2] {
		case "08", "53", "57":
			return ErrorCodeUnavailable
		}
		return ErrorCodeDB
	}
	var ne net.Error
	if stderrs.As(err, &ne) || pgconn.SafeToRetry(err) {
		return ErrorCodeUnavailable
	}
	return ErrorCodeDB
}

// FromPostgres wraps a database error with its mapped ErrorCode
// nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, DBErrorCode(err), msg)
}
