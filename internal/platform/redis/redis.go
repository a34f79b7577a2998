package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Connect dials Redis and verifies connectivity.
func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, fmt.Errorf("redis address is empty")
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// ConnectOptional returns nil with a no-op cleanup when addr is empty or unreachable,
// so callers fall back to in-process locking and uncached reporting.
func ConnectOptional(ctx context.Context, addr string, logger *slog.Logger) (*goredis.Client, func()) {
	if strings.TrimSpace(addr) == "" {
		if logger != nil {
			logger.Warn("REDIS_ADDR not set, using in-process locks and no report cache")
		}
		return nil, func() {}
	}
	client, err := Connect(ctx, addr)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to connect to redis, using in-process locks and no report cache", slog.String("error", err.Error()))
		}
		return nil, func() {}
	}
	if logger != nil {
		logger.Info("redis connection established", slog.String("addr", addr))
	}
	return client, func() { _ = client.Close() }
}
