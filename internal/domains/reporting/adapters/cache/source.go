package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
)

const (
	defaultTTL    = time.Minute
	defaultPrefix = "backoffice:report:"
)

var _ ports.Source = (*Source)(nil)

// Source caches reporting rows in Redis and collapses concurrent loads of the same key.
// A nil client keeps only the collapsing.
type Source struct {
	next   ports.Source
	client redis.Cmdable
	ttl    time.Duration
	prefix string
	group  singleflight.Group
	logger *slog.Logger
}

type Option func(*Source)

func WithTTL(ttl time.Duration) Option {
	return func(s *Source) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithKeyPrefix(prefix string) Option {
	return func(s *Source) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSource(next ports.Source, client redis.Cmdable, opts ...Option) *Source {
	s := &Source{
		next:   next,
		client: client,
		ttl:    defaultTTL,
		prefix: defaultPrefix,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Source) StatusOverview(ctx context.Context) ([]domain.StatusOverviewRecord, error) {
	return load(ctx, s, "overview", s.next.StatusOverview)
}

func (s *Source) SalesStatistic(ctx context.Context, year int) ([]domain.SalesRecord, error) {
	return load(ctx, s, fmt.Sprintf("sales:%d", year), func(ctx context.Context) ([]domain.SalesRecord, error) {
		return s.next.SalesStatistic(ctx, year)
	})
}

func (s *Source) TopSelling(ctx context.Context, limit int) ([]domain.TopSellingRecord, error) {
	return load(ctx, s, fmt.Sprintf("top-selling:%d", limit), func(ctx context.Context) ([]domain.TopSellingRecord, error) {
		return s.next.TopSelling(ctx, limit)
	})
}

func (s *Source) TotalProducts(ctx context.Context) (int64, error) {
	return load(ctx, s, "total-product", s.next.TotalProducts)
}

// Orders is collapsed but never stored; the full order list is too large to keep in Redis.
func (s *Source) Orders(ctx context.Context) ([]*orderdomain.Order, error) {
	v, err := s.collapse(ctx, s.prefix+"orders", func(ctx context.Context) (any, error) {
		return s.next.Orders(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*orderdomain.Order), nil
}

// collapse shares one fetch among concurrent callers of key. The fetch runs detached from
// any single caller's cancellation; each caller still stops waiting when its own ctx ends.
func (s *Source) collapse(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		return fetch(shared)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func load[T any](ctx context.Context, s *Source, name string, fetch func(context.Context) (T, error)) (T, error) {
	key := s.prefix + name
	if cached, ok := s.read(ctx, key); ok {
		var out T
		err := json.Unmarshal(cached, &out)
		if err == nil {
			return out, nil
		}
		s.logger.LogAttrs(ctx, slog.LevelWarn, "discarding undecodable report cache entry",
			slog.String("key", key), slog.String("error", err.Error()))
	}

	v, err := s.collapse(ctx, key, func(ctx context.Context) (any, error) {
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.write(ctx, key, value)
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (s *Source) read(ctx context.Context, key string) ([]byte, bool) {
	if s.client == nil {
		return nil, false
	}
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "report cache read failed",
				slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	return raw, true
}

func (s *Source) write(ctx context.Context, key string, value any) {
	if s.client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "report cache encode failed",
			slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "report cache write failed",
			slog.String("key", key), slog.String("error", err.Error()))
	}
}
