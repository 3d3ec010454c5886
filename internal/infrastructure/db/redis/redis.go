// Package redis holds the shared Redis client used by the identity cache and
// the readiness probe.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 3 * time.Second
)

// Config carries the connection settings for the shared client.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect builds the client and proves connectivity with an initial ping so a
// misconfigured address fails the boot instead of the first cache lookup.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	if err := Healthcheck(ctx, client, timeout); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connect: %w", err)
	}

	return client, nil
}

// Healthcheck pings the client within timeout (a zero timeout applies the
// default). The readiness probe calls it on every check.
func Healthcheck(ctx context.Context, client *redis.Client, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = pingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
