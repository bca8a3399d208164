package errors

// Redis helpers: map go-redis errors onto an ErrorCode

import (
	stderrs "errors"

	"github.com/redis/go-redis/v9"
)

// IsRedisNil reports whether err is the go-redis nil reply (missing key or field)
func IsRedisNil(err error) bool { return err != nil && stderrs.Is(err, redis.Nil) }

// FromRedis wraps a redis error with a mapped ErrorCode and message
// nil replies map to NotFound, everything else is an unavailable dependency
func FromRedis(err error, msg string) error {
	if err == nil {
		return nil
	}
	if IsRedisNil(err) {
		return Wrap(err, ErrorCodeNotFound, msg)
	}
	return Wrap(err, ErrorCodeUnavailable, msg)
}
