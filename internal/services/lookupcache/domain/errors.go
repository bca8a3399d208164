package domain

import (
	"strings"

	perr "callerverify/internal/platform/errors"
)

const opPrefix = "lookupcache."

// Unavailable wraps a storage failure as the cache unavailable condition
// callers treat it as a miss, never as a hit
func Unavailable(err error, op string) error {
	if err == nil {
		return nil
	}
	return perr.WithOp(perr.Wrap(err, perr.ErrorCodeUnavailable, "lookup cache unavailable"), opPrefix+op)
}

// IsUnavailable reports whether err is a cache unavailable condition
func IsUnavailable(err error) bool {
	e, ok := perr.As(err)
	return ok && e.Code() == perr.ErrorCodeUnavailable && strings.HasPrefix(e.Op(), opPrefix)
}
