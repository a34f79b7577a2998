package redislock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
)

var _ ports.Locker = (*Locker)(nil)

const (
	defaultTTL   = 30 * time.Second
	defaultRetry = 50 * time.Millisecond
	keyPrefix    = "backoffice:lock:"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker serialises order updates across processes with SET NX PX.
type Locker struct {
	client redis.Cmdable
	ttl    time.Duration
	retry  time.Duration
	token  func() string
	logger *slog.Logger
}

type Option func(*Locker)

// WithTTL bounds how long a crashed holder can block others.
func WithTTL(ttl time.Duration) Option {
	return func(l *Locker) {
		if ttl > 0 {
			l.ttl = ttl
		}
	}
}

func WithRetryInterval(d time.Duration) Option {
	return func(l *Locker) {
		if d > 0 {
			l.retry = d
		}
	}
}

func WithTokenSource(fn func() string) Option {
	return func(l *Locker) {
		if fn != nil {
			l.token = fn
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Locker) {
		l.logger = logger
	}
}

func New(client redis.Cmdable, opts ...Option) *Locker {
	l := &Locker{
		client: client,
		ttl:    defaultTTL,
		retry:  defaultRetry,
		token:  uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Lock polls until the key is free or ctx is done.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	if l == nil || l.client == nil {
		return nil, fmt.Errorf("redis locker not configured")
	}
	redisKey := keyPrefix + key
	token := l.token()
	for {
		acquired, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if acquired {
			break
		}
		timer := time.NewTimer(l.retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(redisKey, token) })
	}, nil
}

func (l *Locker) release(redisKey, token string) {
	// The caller's ctx may already be cancelled; release must still run.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil && l.logger != nil {
		l.logger.LogAttrs(ctx, slog.LevelWarn, "failed to release order lock",
			slog.String("key", redisKey), slog.String("error", err.Error()))
	}
}
