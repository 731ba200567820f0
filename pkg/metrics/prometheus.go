// Package metrics provides Prometheus metrics for the courtcast display service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the courtcast service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Provider Metrics - What really matters for an API-glue service
	providerRequests *prometheus.CounterVec
	providerErrors   *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec

	// Presenter Metrics - Orchestration run outcomes
	presenterRuns *prometheus.CounterVec

	// Clock Metrics
	clockTicks prometheus.Counter

	// ViewPort Metrics - Render surface activity
	viewportUpdates *prometheus.CounterVec
	viewportNotices prometheus.Counter

	// HTTP Performance Metrics - Ops surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Roster Sync Metrics
	rosterPagesFetched prometheus.Counter
	rosterPlayersTotal prometheus.Gauge
	rosterSyncRetries  prometheus.Counter

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "courtcast",
		subsystem:        "widget",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.providerRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "provider_requests_total",
			Help:      "Total number of upstream provider requests by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	m.providerErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "provider_errors_total",
			Help:      "Total number of upstream provider errors by provider and error type",
		},
		[]string{"provider", "error_type"},
	)

	m.providerLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "provider_latency_milliseconds",
			Help:      "Histogram of upstream provider request latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"provider"},
	)

	m.presenterRuns = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "presenter_runs_total",
			Help:      "Total number of presenter orchestration runs by outcome",
		},
		[]string{"outcome"},
	)

	m.clockTicks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "clock_ticks_total",
		Help:      "Total number of clock ticks pushed to the viewport",
	})

	m.viewportUpdates = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "viewport_updates_total",
			Help:      "Total number of viewport field updates by field",
		},
		[]string{"field"},
	)

	m.viewportNotices = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "viewport_notices_total",
		Help:      "Total number of user-visible failure notices shown",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.rosterPagesFetched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_pages_fetched_total",
		Help:      "Total number of roster dataset pages fetched",
	})

	m.rosterPlayersTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_players_total",
		Help:      "Number of unique players in the roster dataset",
	})

	m.rosterSyncRetries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_sync_retries_total",
		Help:      "Total number of roster sync retries after transient failures",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordProviderRequest increments the provider request counter.
func RecordProviderRequest(provider, outcome string) {
	globalManager.providerRequests.WithLabelValues(provider, outcome).Inc()
}

// RecordProviderError increments the provider error counter.
func RecordProviderError(provider, errorType string) {
	globalManager.providerErrors.WithLabelValues(provider, errorType).Inc()
}

// RecordProviderLatency records provider request latency in milliseconds.
func RecordProviderLatency(provider string, latencyMs float64) {
	globalManager.providerLatency.WithLabelValues(provider).Observe(latencyMs)
}

// RecordPresenterRun increments the presenter run counter for an outcome.
func RecordPresenterRun(outcome string) {
	globalManager.presenterRuns.WithLabelValues(outcome).Inc()
}

// RecordClockTick increments the clock tick counter.
func RecordClockTick() {
	globalManager.clockTicks.Inc()
}

// RecordViewportUpdate increments the viewport update counter for a field.
func RecordViewportUpdate(field string) {
	globalManager.viewportUpdates.WithLabelValues(field).Inc()
}

// RecordViewportNotice increments the user-visible notice counter.
func RecordViewportNotice() {
	globalManager.viewportNotices.Inc()
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordRosterPageFetched increments the roster page counter.
func RecordRosterPageFetched() {
	globalManager.rosterPagesFetched.Inc()
}

// UpdateRosterPlayersTotal sets the roster player count gauge.
func UpdateRosterPlayersTotal(count int) {
	globalManager.rosterPlayersTotal.Set(float64(count))
}

// RecordRosterSyncRetry increments the roster sync retry counter.
func RecordRosterSyncRetry() {
	globalManager.rosterSyncRetries.Inc()
}

// UpdateSystemMemoryUsage sets the memory usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry used for metric collection.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
