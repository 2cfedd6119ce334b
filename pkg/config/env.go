// Package config reads typed settings from environment variables. Unset or
// empty variables yield the caller's default; malformed values are logged and
// also fall back to the default, so a typo never stops the process.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// lookup parses the variable key with parse. It returns def when the
// variable is empty or parse fails.
func lookup[T any](key string, def T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring malformed environment variable",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Any("default", def),
			slog.String("error", err.Error()))
		return def
	}
	return v
}

// GetEnvString returns the variable or def when unset.
func GetEnvString(key, def string) string {
	return lookup(key, def, func(s string) (string, error) { return s, nil })
}

// GetEnvInt parses a base-10 integer.
func GetEnvInt(key string, def int) int {
	return lookup(key, def, strconv.Atoi)
}

// GetEnvBool accepts the forms strconv.ParseBool does ("1", "true", "F", ...).
func GetEnvBool(key string, def bool) bool {
	return lookup(key, def, strconv.ParseBool)
}

// GetEnvDuration parses a Go duration such as "250ms" or "1m30s".
func GetEnvDuration(key string, def time.Duration) time.Duration {
	return lookup(key, def, time.ParseDuration)
}

// GetEnvStringList splits a comma-separated list, trimming blanks and
// dropping empty items. A list with no items yields def.
func GetEnvStringList(key string, def []string) []string {
	items := lookup(key, nil, func(s string) ([]string, error) {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	})
	if len(items) == 0 {
		return def
	}
	return items
}
