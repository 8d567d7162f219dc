// Package config loads server configuration from struct defaults overlaid
// with CINECLUB_* environment variables.
//
// Nested keys use a double underscore: CINECLUB_SERVER__ADDR -> server.addr.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variable names before mapping.
const EnvPrefix = "CINECLUB_"

// Config is the full server configuration.
type Config struct {
	Server    Server    `koanf:"server"`
	Database  Database  `koanf:"database"`
	Redis     Redis     `koanf:"redis"`
	Auth      Auth      `koanf:"auth"`
	CORS      CORS      `koanf:"cors"`
	RateLimit RateLimit `koanf:"ratelimit"`
	Movies    Movies    `koanf:"movies"`
	Logging   Logging   `koanf:"logging"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
}

// Database configures the Postgres pool. An empty URL selects in-memory stores.
type Database struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	TxTimeout       time.Duration `koanf:"tx_timeout"`
}

// Redis configures the movie cache. An empty URL disables caching.
type Redis struct {
	URL          string        `koanf:"url"`
	PoolSize     int           `koanf:"pool_size"`
	MinIdleConns int           `koanf:"min_idle_conns"`
	DialTimeout  time.Duration `koanf:"dial_timeout"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// Auth configures token issuance.
type Auth struct {
	JWTSigningKey string        `koanf:"jwt_signing_key"`
	Issuer        string        `koanf:"issuer"`
	Audience      string        `koanf:"audience"`
	TokenTTL      time.Duration `koanf:"token_ttl"`
}

// CORS lists the browser origins allowed to call the API.
type CORS struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
	MaxAge         int      `koanf:"max_age"`
}

// RateLimit bounds requests per client IP.
type RateLimit struct {
	Disabled     bool          `koanf:"disabled"`
	Requests     int           `koanf:"requests"`
	AuthRequests int           `koanf:"auth_requests"`
	Window       time.Duration `koanf:"window"`
}

// Movies configures the upstream metadata provider.
type Movies struct {
	BaseURL          string        `koanf:"base_url"`
	APIKey           string        `koanf:"api_key"`
	Timeout          time.Duration `koanf:"timeout"`
	CacheTTL         time.Duration `koanf:"cache_ttl"`
	MemoryCacheSize  int           `koanf:"memory_cache_size"`
	BreakerFailures  uint32        `koanf:"breaker_failures"`
	BreakerOpenDelay time.Duration `koanf:"breaker_open_delay"`
}

// Logging selects slog level and output format.
type Logging struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

const devSigningKey = "dev-secret-key-change-in-production"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  15 * time.Second,
		},
		Database: Database{
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			TxTimeout:       5 * time.Second,
		},
		Redis: Redis{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Auth: Auth{
			JWTSigningKey: devSigningKey,
			Issuer:        "cineclub",
			Audience:      "cineclub-web",
			TokenTTL:      24 * time.Hour,
		},
		CORS: CORS{
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			MaxAge:         300,
		},
		RateLimit: RateLimit{
			Requests:     300,
			AuthRequests: 20,
			Window:       time.Minute,
		},
		Movies: Movies{
			BaseURL:          "https://api.themoviedb.org/3",
			Timeout:          5 * time.Second,
			CacheTTL:         10 * time.Minute,
			MemoryCacheSize:  1000,
			BreakerFailures:  5,
			BreakerOpenDelay: 30 * time.Second,
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load layers environment overrides on top of Default and validates.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	cfg.CORS.AllowedOrigins = splitList(cfg.CORS.AllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// envKey maps CINECLUB_SERVER__SHUTDOWN_TIMEOUT to server.shutdown_timeout.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// splitList flattens comma-separated entries that arrive as one env value.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	if len(c.Auth.JWTSigningKey) < 16 {
		errs = append(errs, errors.New("auth.jwt_signing_key must be at least 16 bytes"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if !c.RateLimit.Disabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		errs = append(errs, errors.New("ratelimit.requests and ratelimit.window must be positive"))
	}
	if c.Database.TxTimeout <= 0 {
		errs = append(errs, errors.New("database.tx_timeout must be positive"))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q is not one of json, text", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// InMemory reports whether the server should run without Postgres.
func (c *Config) InMemory() bool {
	return c.Database.URL == ""
}

// UsesDevSigningKey reports whether the built-in development key is active.
func (c *Config) UsesDevSigningKey() bool {
	return c.Auth.JWTSigningKey == devSigningKey
}
