// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-compendium/internal/clients/external"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-compendium/internal/redis"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds every setting the server and CLI read from the environment
type Config struct {
	GRPCPort int    `env:"GRPC_PORT" envDefault:"50051"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	RedisMode       string        `env:"REDIS_MODE"        envDefault:"single"`
	RedisAddr       string        `env:"REDIS_ADDR"        envDefault:"localhost:6379"`
	RedisMasterName string        `env:"REDIS_MASTER_NAME"`
	RedisPoolSize   int           `env:"REDIS_POOL_SIZE"   envDefault:"10"`
	RedisMaxIdle    time.Duration `env:"REDIS_MAX_IDLE"    envDefault:"5m"`
	RedisTLS        bool          `env:"REDIS_TLS"`

	DND5eBaseURL     string        `env:"DND5E_BASE_URL"     envDefault:"https://www.dnd5eapi.co/api/2014/"`
	DND5eHTTPTimeout time.Duration `env:"DND5E_HTTP_TIMEOUT" envDefault:"30s"`
	DND5eCacheTTL    time.Duration `env:"DND5E_CACHE_TTL"    envDefault:"24h"`

	DefaultRuleset string `env:"DEFAULT_RULESET" envDefault:"srd-5e"`
	LogLevel       string `env:"LOG_LEVEL"       envDefault:"info"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("HTTP_ADDR", c.HTTPAddr, vb)
	errors.ValidateEnum("REDIS_MODE", c.RedisMode,
		[]string{redisclient.ModeSingle, redisclient.ModeCluster, redisclient.ModeSentinel}, vb)
	errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	if c.RedisMode == redisclient.ModeSentinel {
		errors.ValidateRequired("REDIS_MASTER_NAME", c.RedisMasterName, vb)
	}
	if c.RedisPoolSize < 0 {
		vb.InvalidField("REDIS_POOL_SIZE", "cannot be negative")
	}
	if c.DND5eHTTPTimeout < 0 {
		vb.InvalidField("DND5E_HTTP_TIMEOUT", "cannot be negative")
	}
	if c.DND5eCacheTTL < 0 {
		vb.InvalidField("DND5E_CACHE_TTL", "cannot be negative")
	}
	errors.ValidateRequired("DEFAULT_RULESET", c.DefaultRuleset, vb)
	errors.ValidateEnum("LOG_LEVEL", strings.ToLower(c.LogLevel), logLevels, vb)

	return vb.Build()
}

// Redis returns the connection settings for internal/redis
func (c *Config) Redis() *redisclient.Config {
	return &redisclient.Config{
		Mode:       c.RedisMode,
		Endpoints:  c.RedisAddr,
		MasterName: c.RedisMasterName,
		Options: &redisclient.Options{
			PoolSize:        c.RedisPoolSize,
			ConnMaxIdleTime: c.RedisMaxIdle,
			UseTLS:          c.RedisTLS,
		},
	}
}

// External returns the SRD client settings
func (c *Config) External() *external.Config {
	return &external.Config{
		BaseURL:     c.DND5eBaseURL,
		HTTPTimeout: c.DND5eHTTPTimeout,
		CacheTTL:    c.DND5eCacheTTL,
	}
}

// SlogLevel maps LOG_LEVEL onto a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
