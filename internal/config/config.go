// Package config assembles the news API configuration. Values come from, in
// increasing precedence: built-in defaults, an optional YAML file, and the
// process environment (optionally seeded from a .env file).
package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"news-api/internal/common/pagination"
	"news-api/internal/infra/search"
	envcfg "news-api/pkg/config"
)

// Config is the full runtime configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Search     SearchConfig     `yaml:"search"`
	Cache      CacheConfig      `yaml:"cache"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Pagination PaginationConfig `yaml:"pagination"`
}

type ServerConfig struct {
	Port               string        `yaml:"port"`
	ReadTimeout        time.Duration `yaml:"read_timeout"`
	WriteTimeout       time.Duration `yaml:"write_timeout"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	// TrustedProxies lists proxy addresses or CIDRs whose X-Forwarded-For
	// header is believed when identifying clients for rate limiting.
	TrustedProxies []string `yaml:"trusted_proxies"`
	CSPEnabled     bool     `yaml:"csp_enabled"`
	CSPReportOnly  bool     `yaml:"csp_report_only"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type SearchConfig struct {
	URL         string        `yaml:"url"`
	Index       string        `yaml:"index"`
	Username    string        `yaml:"username"`
	Password    string        `yaml:"password"`
	Timeout     time.Duration `yaml:"timeout"`
	PingTimeout time.Duration `yaml:"ping_timeout"`
}

type CacheConfig struct {
	RedisURL        string        `yaml:"redis_url"`
	StatsTTL        time.Duration `yaml:"stats_ttl"`
	RefreshSchedule string        `yaml:"refresh_schedule"`
}

// RateLimitConfig throttles the keyword search endpoint per client IP.
type RateLimitConfig struct {
	SearchPerSecond float64 `yaml:"search_per_second"`
	SearchBurst     int     `yaml:"search_burst"`
}

type PaginationConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        10 * time.Second,
			WriteTimeout:       30 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			RequestTimeout:     15 * time.Second,
			CORSAllowedOrigins: []string{"*"},
			CSPEnabled:         true,
		},
		Search: SearchConfig{
			URL:         search.DefaultURL,
			Index:       search.DefaultIndex,
			Timeout:     search.DefaultTimeout,
			PingTimeout: search.DefaultPingTimeout,
		},
		Cache: CacheConfig{
			StatsTTL:        30 * time.Second,
			RefreshSchedule: "*/5 * * * *",
		},
		RateLimit: RateLimitConfig{
			SearchPerSecond: 20,
			SearchBurst:     40,
		},
		Pagination: PaginationConfig{
			DefaultLimit: pagination.DefaultConfig().DefaultLimit,
			MaxLimit:     pagination.HardMaxLimit,
		},
	}
}

// Load builds the configuration. When path is non-empty the YAML file is read
// first; environment variables override it. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		// #nosec G304 -- path comes from the operator (NEWS_API_CONFIG or a CLI flag)
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = envcfg.GetEnvString("PORT", c.Server.Port)
	c.Server.RequestTimeout = envcfg.GetEnvDuration("REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.CORSAllowedOrigins = envcfg.GetEnvStringList("CORS_ALLOWED_ORIGINS", c.Server.CORSAllowedOrigins)
	c.Server.TrustedProxies = envcfg.GetEnvStringList("TRUSTED_PROXIES", c.Server.TrustedProxies)
	c.Server.CSPEnabled = envcfg.GetEnvBool("CSP_ENABLED", c.Server.CSPEnabled)
	c.Server.CSPReportOnly = envcfg.GetEnvBool("CSP_REPORT_ONLY", c.Server.CSPReportOnly)

	c.Database.URL = envcfg.GetEnvString("DATABASE_URL", c.Database.URL)

	c.Search.URL = envcfg.GetEnvString("OPENSEARCH_URL", c.Search.URL)
	c.Search.Index = envcfg.GetEnvString("OPENSEARCH_INDEX", c.Search.Index)
	c.Search.Username = envcfg.GetEnvString("OPENSEARCH_USERNAME", c.Search.Username)
	c.Search.Password = envcfg.GetEnvString("OPENSEARCH_PASSWORD", c.Search.Password)
	c.Search.Timeout = envcfg.GetEnvDuration("OPENSEARCH_TIMEOUT", c.Search.Timeout)
	c.Search.PingTimeout = envcfg.GetEnvDuration("OPENSEARCH_PING_TIMEOUT", c.Search.PingTimeout)

	c.Cache.RedisURL = envcfg.GetEnvString("REDIS_URL", c.Cache.RedisURL)
	c.Cache.StatsTTL = envcfg.GetEnvDuration("STATS_CACHE_TTL", c.Cache.StatsTTL)
	c.Cache.RefreshSchedule = envcfg.GetEnvString("STATS_REFRESH_SCHEDULE", c.Cache.RefreshSchedule)

	c.RateLimit.SearchPerSecond = float64(envcfg.GetEnvInt("SEARCH_RATE_LIMIT", int(c.RateLimit.SearchPerSecond)))
	c.RateLimit.SearchBurst = envcfg.GetEnvInt("SEARCH_RATE_BURST", c.RateLimit.SearchBurst)

	c.Pagination.DefaultLimit = envcfg.GetEnvInt("PAGINATION_DEFAULT_LIMIT", c.Pagination.DefaultLimit)
	c.Pagination.MaxLimit = envcfg.GetEnvInt("PAGINATION_MAX_LIMIT", c.Pagination.MaxLimit)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port is required")
	}
	if err := envcfg.ValidateNonNegativeDuration(c.Server.RequestTimeout); err != nil {
		return fmt.Errorf("request timeout: %w", err)
	}
	for _, p := range c.Server.TrustedProxies {
		if !validProxy(p) {
			return fmt.Errorf("invalid trusted proxy %q: want an IP address or CIDR", p)
		}
	}
	if err := c.SearchGateway().Validate(); err != nil {
		return err
	}
	if err := envcfg.ValidateDurationRange(c.Search.Timeout, 100*time.Millisecond, 5*time.Minute); err != nil {
		return fmt.Errorf("search timeout: %w", err)
	}
	if err := envcfg.ValidatePositiveDuration(c.Search.PingTimeout); err != nil {
		return fmt.Errorf("search ping timeout: %w", err)
	}
	if err := envcfg.ValidatePositiveDuration(c.Cache.StatsTTL); err != nil {
		return fmt.Errorf("stats cache ttl: %w", err)
	}
	if _, err := cron.ParseStandard(c.Cache.RefreshSchedule); err != nil {
		return fmt.Errorf("invalid stats refresh schedule %q: %w", c.Cache.RefreshSchedule, err)
	}
	if c.RateLimit.SearchPerSecond <= 0 || c.RateLimit.SearchBurst <= 0 {
		return errors.New("search rate limit and burst must be positive")
	}
	if c.Pagination.MaxLimit < 1 || c.Pagination.MaxLimit > pagination.HardMaxLimit {
		return fmt.Errorf("pagination max limit must be between 1 and %d", pagination.HardMaxLimit)
	}
	if c.Pagination.DefaultLimit < 1 || c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		return errors.New("pagination default limit must be between 1 and the max limit")
	}
	return nil
}

func validProxy(s string) bool {
	if strings.Contains(s, "/") {
		_, err := netip.ParsePrefix(s)
		return err == nil
	}
	_, err := netip.ParseAddr(s)
	return err == nil
}

// SearchGateway returns the gateway settings.
func (c Config) SearchGateway() search.Config {
	return search.Config{
		URL:         c.Search.URL,
		Index:       c.Search.Index,
		Username:    c.Search.Username,
		Password:    c.Search.Password,
		Timeout:     c.Search.Timeout,
		PingTimeout: c.Search.PingTimeout,
		Pagination:  c.PaginationPolicy(),
	}
}

// PaginationPolicy returns the pagination defaults shared by handlers and the gateway.
func (c Config) PaginationPolicy() pagination.Config {
	return pagination.Config{
		DefaultPage:  1,
		DefaultLimit: c.Pagination.DefaultLimit,
		MaxLimit:     c.Pagination.MaxLimit,
	}
}
