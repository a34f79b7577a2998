package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	backendclient "github.com/Apurer/go-gin-backoffice/internal/clients/http/backend"
	catalogmemory "github.com/Apurer/go-gin-backoffice/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/Apurer/go-gin-backoffice/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/Apurer/go-gin-backoffice/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-gin-backoffice/internal/domains/catalog/ports"
	employeememory "github.com/Apurer/go-gin-backoffice/internal/domains/employees/adapters/memory"
	employeepostgres "github.com/Apurer/go-gin-backoffice/internal/domains/employees/adapters/persistence/postgres"
	employeeapp "github.com/Apurer/go-gin-backoffice/internal/domains/employees/application"
	employeeports "github.com/Apurer/go-gin-backoffice/internal/domains/employees/ports"
	orderkafka "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/kafka"
	ordermemory "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/persistence/postgres"
	orderredislock "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/redislock"
	orderapp "github.com/Apurer/go-gin-backoffice/internal/domains/orders/application"
	orderports "github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	reportcache "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/adapters/cache"
	reportmemory "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/adapters/memory"
	reportobs "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/adapters/observability"
	reportpostgres "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/adapters/persistence/postgres"
	reportremote "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/adapters/remote"
	reportapp "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/application"
	reportports "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
	platformkafka "github.com/Apurer/go-gin-backoffice/internal/platform/kafka"
	"github.com/Apurer/go-gin-backoffice/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-backoffice/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-backoffice/internal/platform/postgres"
	platformredis "github.com/Apurer/go-gin-backoffice/internal/platform/redis"
)

// Infrastructure holds the optional shared connections. A nil field means the
// corresponding in-process fallback is used.
type Infrastructure struct {
	DB     *gorm.DB
	Redis  *goredis.Client
	logger *slog.Logger
	close  []func()
}

// OpenInfrastructure connects Postgres and Redis when configured and applies the schema.
func OpenInfrastructure(ctx context.Context, cfg Config, logger *slog.Logger) *Infrastructure {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	infra := &Infrastructure{logger: logger}
	db, closeDB := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	infra.close = append(infra.close, closeDB)
	if db != nil {
		if err := migrations.Run(db.WithContext(ctx)); err != nil {
			logger.Warn("schema migration failed, falling back to in-memory repositories", slog.String("error", err.Error()))
		} else {
			infra.DB = db
		}
	}
	client, closeRedis := platformredis.ConnectOptional(ctx, cfg.RedisAddr, logger)
	infra.close = append(infra.close, closeRedis)
	infra.Redis = client
	return infra
}

// Close releases connections in reverse order of opening.
func (i *Infrastructure) Close() {
	for n := len(i.close) - 1; n >= 0; n-- {
		i.close[n]()
	}
	i.close = nil
}

func (i *Infrastructure) onClose(fn func()) {
	i.close = append(i.close, fn)
}

func (i *Infrastructure) OrderRepository() orderports.Repository {
	if i.DB == nil {
		return ordermemory.NewRepository()
	}
	return orderpostgres.NewRepository(i.DB)
}

func (i *Infrastructure) CategoryService() catalogports.Service {
	if i.DB == nil {
		return catalogapp.NewService(catalogmemory.NewRepository())
	}
	return catalogapp.NewService(catalogpostgres.NewRepository(i.DB))
}

func (i *Infrastructure) EmployeeService() employeeports.Service {
	if i.DB == nil {
		return employeeapp.NewService(employeememory.NewRepository())
	}
	return employeeapp.NewService(employeepostgres.NewRepository(i.DB))
}

// OrderService assembles the orders use cases with the Redis locker and the
// Kafka publisher when those are available, wrapped in tracing and metrics.
func (i *Infrastructure) OrderService(cfg Config, repo orderports.Repository, instruments *platformobservability.Instruments) orderports.Service {
	logger := i.logger
	opts := []orderapp.Option{orderapp.WithLogger(logger)}
	if i.Redis != nil {
		opts = append(opts, orderapp.WithLocker(orderredislock.New(i.Redis, orderredislock.WithLogger(logger))))
	}
	if brokers := platformkafka.NewClient(cfg.KafkaBrokers); brokers.Enabled() {
		writer := brokers.NewWriter(cfg.OrderEventsTopic)
		i.onClose(func() { _ = writer.Close() })
		opts = append(opts, orderapp.WithEventPublisher(orderkafka.NewPublisher(writer)))
		logger.Info("order events published to kafka", slog.String("topic", cfg.OrderEventsTopic))
	}
	return orderobs.New(
		orderapp.NewService(repo, opts...),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
}

// ReportingService picks the reporting source named by cfg, fronts it with the
// Redis cache and wraps the service in tracing and metrics.
func (i *Infrastructure) ReportingService(ctx context.Context, cfg Config, orders orderports.Repository, instruments *platformobservability.Instruments) (reportports.Service, error) {
	source, err := i.reportingSource(ctx, cfg, orders)
	if err != nil {
		return nil, err
	}
	cached := reportcache.NewSource(source, i.cacheClient(),
		reportcache.WithTTL(cfg.ReportCacheTTL),
		reportcache.WithLogger(i.logger),
	)
	return reportobs.New(
		reportapp.NewService(cached),
		reportobs.WithLogger(i.logger),
		reportobs.WithTracer(instruments.Tracer("internal.reporting.application")),
		reportobs.WithMeter(instruments.Meter("internal.reporting.application")),
	), nil
}

func (i *Infrastructure) cacheClient() goredis.Cmdable {
	if i.Redis == nil {
		return nil
	}
	return i.Redis
}

func (i *Infrastructure) reportingSource(ctx context.Context, cfg Config, orders orderports.Repository) (reportports.Source, error) {
	switch cfg.ReportingSource {
	case ReportingSourceRemote:
		api, err := backendclient.NewClient(cfg.BackendAPIURL, backendclient.WithBearerToken(cfg.BackendAPIToken))
		if err != nil {
			return nil, fmt.Errorf("configure backend client: %w", err)
		}
		i.logger.Info("reporting from remote admin API", slog.String("url", cfg.BackendAPIURL))
		return reportremote.NewSource(api), nil
	case ReportingSourcePostgres:
		pool, err := platformpostgres.ConnectPool(ctx, cfg.PostgresDSN)
		if err != nil {
			i.logger.Warn("postgres reporting unavailable, aggregating in process", slog.String("error", err.Error()))
			return reportmemory.NewSource(orders), nil
		}
		i.onClose(pool.Close)
		i.logger.Info("reporting from postgres")
		return reportpostgres.NewSource(pool), nil
	}
	return reportmemory.NewSource(orders), nil
}
