// Package config reads application settings from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"callerverify/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. root.Prefix("CALLERVERIFY_API_")
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix returns a child view whose keys are prefixed with p
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the full variable name for key
func (c Conf) Key(key string) string { return c.prefix + key }

func (c Conf) lookup(key string) string { return strings.TrimSpace(os.Getenv(c.Key(key))) }

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return v
}

// MayString returns def when key is unset or blank
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// parsed reads key through parse, an unparsable value is logged and replaced by def
func parsed[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Interface("default", def).Msgf("invalid %s, using default", kind)
		return def
	}
	return v
}

// MayInt returns def when key is unset or not an integer
func (c Conf) MayInt(key string, def int) int {
	return parsed(c, key, def, "int", strconv.Atoi)
}

// MayBool returns def when key is unset or not a bool
func (c Conf) MayBool(key string, def bool) bool {
	return parsed(c, key, def, "bool", strconv.ParseBool)
}

// MayDuration returns def when key is unset or not a Go duration such as 250ms
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return parsed(c, key, def, "duration", time.ParseDuration)
}

// MaySeconds reads a whole, non negative number of seconds
func (c Conf) MaySeconds(key string, def time.Duration) time.Duration {
	return parsed(c, key, def, "seconds", func(s string) (time.Duration, error) {
		n, err := strconv.ParseUint(s, 10, 32)
		return time.Duration(n) * time.Second, err
	})
}

// MayFirst returns the first non blank value among keys, so a renamed variable keeps its old alias
func (c Conf) MayFirst(def string, keys ...string) string {
	for _, k := range keys {
		if v := c.lookup(k); v != "" {
			return v
		}
	}
	return def
}

// MayCSV splits a comma separated value, dropping blank items
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns def when key is unset and panics when the value is not in allowed
// the comparison ignores case
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.Key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
