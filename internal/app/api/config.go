package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.temporal.io/sdk/client"
)

// Reporting source kinds selectable through REPORTING_SOURCE.
const (
	ReportingSourceMemory   = "memory"
	ReportingSourcePostgres = "postgres"
	ReportingSourceRemote   = "remote"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	PostgresDSN string `envconfig:"POSTGRES_DSN"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`

	// ReportingSource picks where dashboard rows come from. Empty selects postgres when a DSN is set.
	ReportingSource string        `envconfig:"REPORTING_SOURCE"`
	BackendAPIURL   string        `envconfig:"BACKEND_API_URL"`
	BackendAPIToken string        `envconfig:"BACKEND_API_TOKEN"`
	ReportCacheTTL  time.Duration `envconfig:"REPORT_CACHE_TTL" default:"1m"`

	RedisAddr string `envconfig:"REDIS_ADDR"`

	KafkaBrokers     []string `envconfig:"KAFKA_BROKERS"`
	OrderEventsTopic string   `envconfig:"ORDER_EVENTS_TOPIC" default:"backoffice.order-events"`

	TemporalAddress   string `envconfig:"TEMPORAL_ADDRESS"`
	TemporalNamespace string `envconfig:"TEMPORAL_NAMESPACE"`
	TemporalDisabled  bool   `envconfig:"TEMPORAL_DISABLED"`
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	return LoadConfigWith(nil)
}

// LoadConfigWith lets a caller such as a CLI override values read from the
// environment before they are validated.
func LoadConfigWith(override func(*Config)) (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if override != nil {
		override(&cfg)
	}
	cfg.PostgresDSN = strings.TrimSpace(cfg.PostgresDSN)
	cfg.BackendAPIURL = strings.TrimSpace(cfg.BackendAPIURL)
	if cfg.TemporalAddress == "" {
		cfg.TemporalAddress = client.DefaultHostPort
	}
	if cfg.TemporalNamespace == "" {
		cfg.TemporalNamespace = client.DefaultNamespace
	}
	cfg.KafkaBrokers = compact(cfg.KafkaBrokers)

	cfg.ReportingSource = strings.ToLower(strings.TrimSpace(cfg.ReportingSource))
	if cfg.ReportingSource == "" {
		cfg.ReportingSource = ReportingSourceMemory
		if cfg.PostgresDSN != "" {
			cfg.ReportingSource = ReportingSourcePostgres
		}
	}
	switch cfg.ReportingSource {
	case ReportingSourceMemory:
	case ReportingSourcePostgres:
		if cfg.PostgresDSN == "" {
			return Config{}, fmt.Errorf("REPORTING_SOURCE=postgres requires POSTGRES_DSN")
		}
	case ReportingSourceRemote:
		if cfg.BackendAPIURL == "" {
			return Config{}, fmt.Errorf("REPORTING_SOURCE=remote requires BACKEND_API_URL")
		}
	default:
		return Config{}, fmt.Errorf("REPORTING_SOURCE must be one of memory, postgres or remote, got %q", cfg.ReportingSource)
	}
	if cfg.ReportCacheTTL < 0 {
		return Config{}, fmt.Errorf("REPORT_CACHE_TTL must not be negative")
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func compact(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
