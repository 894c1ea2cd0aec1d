package observability

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aretw0/morse/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "morse"

// Metrics holds the Prometheus collectors of one process.
// Each instance owns its registry, so tests and embedded hosts never clash
// on the global default registerer.
type Metrics struct {
	registry *prometheus.Registry

	translations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	cache        *prometheus.CounterVec
	liveSessions prometheus.Gauge
}

// NewMetrics creates and registers the collectors, plus the Go runtime and
// process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		translations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "translations_total",
				Help:      "Total number of translations",
			},
			[]string{"direction", "alphabet", "cached"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "translation_duration_seconds",
				Help:      "Duration of translations",
				Buckets:   prometheus.ExponentialBuckets(0.000005, 4, 10),
			},
			[]string{"direction"},
		),
		cache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Translation cache lookups by result",
			},
			[]string{"direction", "result"},
		),
		liveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "live_sessions",
				Help:      "Number of open live-preview sessions",
			},
		),
	}

	m.registry.MustRegister(
		m.translations,
		m.duration,
		m.cache,
		m.liveSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing Handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that record translations and cache lookups.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTranslate: func(_ context.Context, e *domain.TranslateEvent) {
			m.translations.WithLabelValues(string(e.Direction), e.Alphabet, strconv.FormatBool(e.Cached)).Inc()
			m.duration.WithLabelValues(string(e.Direction)).Observe(e.Duration.Seconds())
		},
		OnCacheHit: func(_ context.Context, e *domain.CacheEvent) {
			m.cache.WithLabelValues(string(e.Direction), "hit").Inc()
		},
		OnCacheMiss: func(_ context.Context, e *domain.CacheEvent) {
			m.cache.WithLabelValues(string(e.Direction), "miss").Inc()
		},
	}
}

// SetLiveSessions records the number of open sessions. It matches the
// session.WithActiveGauge callback signature.
func (m *Metrics) SetLiveSessions(n int) {
	m.liveSessions.Set(float64(n))
}
