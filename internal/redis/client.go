// Package redis wraps the go-redis client so storage code depends on a
// small, mockable interface.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connection modes understood by New
const (
	ModeSingle   = "single"
	ModeCluster  = "cluster"
	ModeSentinel = "sentinel"
)

// Options tunes pooling and transport for every connection mode
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	ReadOnly        bool // cluster only
}

// Config selects how to reach Redis
type Config struct {
	Mode string
	// Endpoints is a comma separated address list. Single mode uses the
	// first entry, sentinel mode treats entries as sentinel addresses.
	Endpoints  string
	MasterName string
	Options    *Options
}

// New builds a client for the configured mode
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.New("redis: config is required")
	}

	endpoints := splitEndpoints(cfg.Endpoints)

	switch cfg.Mode {
	case "", ModeSingle:
		if len(endpoints) == 0 {
			return NewClient("", cfg.Options)
		}
		return NewClient(endpoints[0], cfg.Options)
	case ModeCluster:
		return NewClusterClient(endpoints, cfg.Options)
	case ModeSentinel:
		return NewFailoverClient(cfg.MasterName, endpoints, cfg.Options)
	default:
		return nil, fmt.Errorf("redis: unknown mode %q", cfg.Mode)
	}
}

// Ping checks that the server answers within the context deadline
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}

func splitEndpoints(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NewClient creates a client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		TLSConfig:       tlsConfig(opts),
	}), nil
}

// NewClusterClient creates a client for cluster mode
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:           endpoints,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		ReadOnly:        opts.ReadOnly,
		TLSConfig:       tlsConfig(opts),
	}), nil
}

// NewFailoverClient creates a client that follows a Sentinel-managed master
func NewFailoverClient(masterName string, sentinelAddrs []string, opts *Options) (Client, error) {
	if masterName == "" {
		return nil, errors.New("redis: master name is required")
	}
	if len(sentinelAddrs) == 0 {
		return nil, errors.New("redis: at least one sentinel address is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewFailoverClient(&redis.FailoverOptions{
		MasterName:      masterName,
		SentinelAddrs:   sentinelAddrs,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		TLSConfig:       tlsConfig(opts),
	}), nil
}

func tlsConfig(opts *Options) *tls.Config {
	if !opts.UseTLS {
		return nil
	}
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
}
