package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	clientOnce sync.Once
	clientErr  error
)

// Config holds Redis connection configuration
type Config struct {
	URL      string // redis://... or rediss://... for TLS
	Password string
}

// Client returns the singleton Redis client instance.
// Returns nil if Redis is not configured or connection failed.
func Client() *redis.Client {
	return client
}

// Initialize initializes the Redis client with the given configuration.
// Safe for concurrent calls - only the first call initializes.
func Initialize(cfg Config) error {
	clientOnce.Do(func() {
		if cfg.URL == "" {
			clientErr = errors.New("redis: REDIS_URL not configured")
			return
		}

		parsedURL, err := url.Parse(cfg.URL)
		if err != nil {
			clientErr = fmt.Errorf("redis: invalid URL: %w", err)
			return
		}

		useTLS := parsedURL.Scheme == "rediss"

		addr := parsedURL.Host
		if parsedURL.Port() == "" {
			addr = parsedURL.Host + ":6379"
		}

		password := cfg.Password
		if password == "" && parsedURL.User != nil {
			password, _ = parsedURL.User.Password()
		}

		opts := &redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           0,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
			MinIdleConns: 2,
		}

		if useTLS {
			opts.TLSConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
		}

		client = redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			clientErr = fmt.Errorf("redis: connection failed: %w", err)
			client = nil
			return
		}
	})

	return clientErr
}

// Close closes the Redis connection gracefully.
func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// HealthCheck returns nil if the connection is healthy.
func HealthCheck(ctx context.Context) error {
	if client == nil {
		return errors.New("redis: client not initialized")
	}
	return client.Ping(ctx).Err()
}
