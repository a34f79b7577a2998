package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/keylock"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

const defaultPublishTimeout = 5 * time.Second

// Service orchestrates order back-office use cases.
type Service struct {
	repo           ports.Repository
	locker         ports.Locker
	publisher      ports.EventPublisher
	publishTimeout time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// Option customises the service.
type Option func(*Service)

// WithLocker replaces the per-order serialisation point (defaults to an in-process locker).
func WithLocker(locker ports.Locker) Option {
	return func(s *Service) {
		if locker != nil {
			s.locker = locker
		}
	}
}

// WithEventPublisher forwards status change events after each successful save.
func WithEventPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithPublishTimeout bounds how long a status change waits on the event publisher.
func WithPublishTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.publishTimeout = d
		}
	}
}

// WithLogger is used for failures that must not fail the call, such as event publishing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source for deterministic testing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{
		repo:           repo,
		locker:         keylock.New(),
		publishTimeout: defaultPublishTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListOrders returns the newest orders first.
func (s *Service) ListOrders(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Order], error) {
	return s.repo.List(ctx, query.Normalize())
}

// UpdateStatus loads the order, applies the status policy and persists the result
// while holding the order's lock. Concurrent calls for one order are applied one
// after another; the last one to take the lock wins. The change event is published
// after the lock is released.
func (s *Service) UpdateStatus(ctx context.Context, id int64, target domain.Status) (*domain.Order, error) {
	if !target.Valid() {
		return nil, mapError(domain.ErrInvalidStatus)
	}
	saved, event, err := s.transition(ctx, id, target)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, event)
	return saved, nil
}

func (s *Service) transition(ctx context.Context, id int64, target domain.Status) (*domain.Order, domain.Event, error) {
	unlock, err := s.locker.Lock(ctx, LockKey(id))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, nil, fmt.Errorf("%w: order %d: %w", ErrOrderBusy, id, err)
		}
		return nil, nil, fmt.Errorf("lock order %d: %w", id, err)
	}
	defer unlock()

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, mapError(err)
	}
	from := order.Status
	now := s.now()
	if _, err := order.ApplyTransition(target, now); err != nil {
		return nil, nil, mapError(err)
	}
	if err := order.Validate(); err != nil {
		return nil, nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return saved, domain.NewOrderStatusChanged(saved, from, now), nil
}

// publish outlives the caller's cancellation; the change is already stored.
func (s *Service) publish(ctx context.Context, events ...domain.Event) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(ctx, events...); err != nil && s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish order events",
			slog.Int("events", len(events)), slog.String("error", err.Error()))
	}
}

// LockKey is the serialisation key shared by every locker implementation.
func LockKey(id int64) string {
	return "order:" + strconv.FormatInt(id, 10)
}

var _ ports.Service = (*Service)(nil)
