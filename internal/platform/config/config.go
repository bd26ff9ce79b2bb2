// Package config reads process configuration from prefixed environment variables
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"stockcount/internal/platform/logger"
)

// Conf is a namespaced view over the environment
// New() reads bare keys, Prefix("COUNTING_") scopes a module
type Conf struct{ prefix string }

// New returns the root Conf
func New() Conf { return Conf{} }

// Prefix returns a child Conf, prefixes stack: New().Prefix("CORE_").Prefix("API_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the fully qualified variable name for k
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) raw(k string) string { return strings.TrimSpace(os.Getenv(c.Key(k))) }

// MustString panics when key is missing or blank, meant for startup wiring
func (c Conf) MustString(key string) string {
	v := c.raw(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return v
}

// MayString returns the value or def when missing
func (c Conf) MayString(key, def string) string {
	if v := c.raw(key); v != "" {
		return v
	}
	return def
}

// may parses key with parse, a missing value gives def and an unparsable one
// logs a warning and gives def
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Interface("default", def).
			Msg("invalid config value; using default")
		return def
	}
	return v
}

// MayInt returns an int value or def
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

// MayBool returns a bool value or def
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration returns a duration like 250ms or 2s, or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayURL returns an absolute http(s) URL without its trailing slash, or def
func (c Conf) MayURL(key, def string) string {
	return may(c, key, def, func(s string) (string, error) {
		u, err := url.Parse(s)
		if err == nil && (!u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "") {
			err = strconv.ErrSyntax
		}
		if err != nil {
			return "", err
		}
		return strings.TrimRight(u.String(), "/"), nil
	})
}

// MayCSV splits a comma separated value, blank items are dropped
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.raw(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
