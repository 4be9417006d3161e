package server

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reelfolio/core/internal/ports"
)

type metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newMetrics(store ports.RecordStore) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	m.registry.MustRegister(m.requestsTotal, m.requestDuration)

	// Record counts are read from the store at scrape time
	if reporter, ok := store.(ports.StatsReporter); ok {
		m.registry.MustRegister(
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name:        "reelfolio_records",
				Help:        "Number of stored records",
				ConstLabels: prometheus.Labels{"collection": "projects"},
			}, func() float64 {
				return float64(reporter.Stats(context.Background()).Projects)
			}),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name:        "reelfolio_records",
				Help:        "Number of stored records",
				ConstLabels: prometheus.Labels{"collection": "incomes"},
			}, func() float64 {
				return float64(reporter.Stats(context.Background()).Incomes)
			}),
		)
	}

	return m
}

func (m *metrics) middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		}

		m.requestsTotal.WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(c.Request().Method, c.Path()).Observe(time.Since(start).Seconds())

		return err
	}
}

// setupMetrics configures Prometheus metrics
func (s *Server) setupMetrics() {
	s.metrics = newMetrics(s.store)
	s.echo.Use(s.metrics.middleware)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
}
