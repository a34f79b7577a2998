package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "backoffice"

// ServerMetrics holds the HTTP RED series for one service.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
	InFlight  prometheus.Gauge
}

// NewServerMetrics registers the HTTP series with reg. A nil reg uses the default registerer.
func NewServerMetrics(service string, reg prometheus.Registerer) *ServerMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler", "method"})
	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_requests_in_flight",
		Help:      "Requests currently being served.",
	})

	reg.MustRegister(requests, latency, inFlight)
	return &ServerMetrics{Requests: requests, LatencyMS: latency, InFlight: inFlight}
}

// Middleware records every request under its route template so ids do not explode label cardinality.
func (m *ServerMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		method := c.Request.Method
		m.Requests.WithLabelValues(handler, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(handler, method).Observe(float64(time.Since(start).Milliseconds()))
	}
}

// Handler exposes the gatherer in the Prometheus text format. A nil gatherer uses the default one.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
