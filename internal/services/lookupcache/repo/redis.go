package repo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	perr "callerverify/internal/platform/errors"
	"callerverify/internal/services/lookupcache/domain"

	"github.com/redis/go-redis/v9"
)

const (
	fieldName      = "name"
	fieldFetchedAt = "fetched_at"
)

// getScript reads the hash and deletes it in the same script when stale
// reply: {0} miss, {1, name, fetched_at} hit, {2} evicted
var getScript = redis.NewScript(`
local v = redis.call('HMGET', KEYS[1], 'name', 'fetched_at')
if not v[1] then
  return {0}
end
local at = tonumber(v[2])
if (not at) or at <= tonumber(ARGV[1]) then
  redis.call('DEL', KEYS[1])
  return {2}
end
return {1, v[1], v[2]}
`)

// Redis stores each entry as a hash with a key expiry equal to the TTL
type Redis struct {
	c      redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis constructs the redis backend
// prefix is prepended to "lookup:{phone}"
func NewRedis(c redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	if c == nil {
		panic("lookupcache.Redis requires a non nil client")
	}
	return &Redis{c: c, prefix: prefix, ttl: ttl}
}

func (s *Redis) key(phone string) string { return s.prefix + "lookup:" + phone }

// Get implements domain.Repo
func (s *Redis) Get(ctx context.Context, phone string, cutoff int64) (domain.Entry, domain.Outcome, error) {
	reply, err := getScript.Run(ctx, s.c, []string{s.key(phone)}, cutoff).Slice()
	if err != nil {
		return domain.Entry{}, domain.OutcomeMiss, perr.FromRedis(err, "lookup_cache get")
	}
	if len(reply) == 0 {
		return domain.Entry{}, domain.OutcomeMiss, nil
	}
	state, _ := reply[0].(int64)
	switch state {
	case 1:
		if len(reply) < 3 {
			return domain.Entry{}, domain.OutcomeMiss, perr.Newf(perr.ErrorCodeUnavailable, "lookup_cache get: short reply %v", reply)
		}
		name, _ := reply[1].(string)
		at, convErr := strconv.ParseInt(fmt.Sprint(reply[2]), 10, 64)
		if convErr != nil {
			return domain.Entry{}, domain.OutcomeMiss, perr.Wrap(convErr, perr.ErrorCodeUnavailable, "lookup_cache get: fetched_at")
		}
		return domain.Entry{PhoneNumber: phone, ResolvedName: name, FetchedAt: at}, domain.OutcomeHit, nil
	case 2:
		return domain.Entry{}, domain.OutcomeEvicted, nil
	}
	return domain.Entry{}, domain.OutcomeMiss, nil
}

// Put implements domain.Repo
func (s *Redis) Put(ctx context.Context, e domain.Entry) error {
	k := s.key(e.PhoneNumber)
	_, err := s.c.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, k, fieldName, e.ResolvedName, fieldFetchedAt, e.FetchedAt)
		if s.ttl > 0 {
			p.Expire(ctx, k, s.ttl)
		}
		return nil
	})
	if err != nil {
		return perr.FromRedis(err, "lookup_cache put")
	}
	return nil
}

// Purge implements domain.Repo
// key expiry already removes stale hashes so there is nothing to sweep
func (s *Redis) Purge(context.Context, int64) (int64, error) { return 0, nil }
