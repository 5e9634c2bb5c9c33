// Package metrics exposes Prometheus collectors for the monitor and the API.
package metrics

import (
	"strconv"
	"time"

	"safezone/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "safezone"

// MonitorMetrics tracks safe-zone evaluations.
type MonitorMetrics struct {
	updatesProcessed prometheus.Counter
	updatesDropped   *prometheus.CounterVec
	alerts           prometheus.Counter
	distance         prometheus.Gauge
	state            prometheus.Gauge
}

// NewMonitorMetrics registers the monitor collectors on reg.
func NewMonitorMetrics(reg prometheus.Registerer) *MonitorMetrics {
	m := &MonitorMetrics{
		updatesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "position_updates_total",
			Help:      "Position updates evaluated against the safe zone",
		}),
		updatesDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "position_updates_dropped_total",
			Help:      "Position updates skipped without evaluation",
		}, []string{"reason"}),
		alerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "boundary_alerts_total",
			Help:      "Safe-zone exits that raised an alert",
		}),
		distance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "distance_meters",
			Help:      "Distance between the latest position and the reference point",
		}),
		state: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "safety_state",
			Help:      "Current safety state: 0 unknown, 1 safe, 2 unsafe",
		}),
	}

	reg.MustRegister(m.updatesProcessed, m.updatesDropped, m.alerts, m.distance, m.state)

	return m
}

// ObserveEvaluation records one evaluated position.
func (m *MonitorMetrics) ObserveEvaluation(distanceMeters float64, state entity.SafetyState) {
	if m == nil {
		return
	}
	m.updatesProcessed.Inc()
	m.distance.Set(distanceMeters)
	m.state.Set(float64(state))
}

// ObserveDropped records a position that was skipped.
func (m *MonitorMetrics) ObserveDropped(reason string) {
	if m == nil {
		return
	}
	m.updatesDropped.WithLabelValues(reason).Inc()
}

// ObserveAlert records a raised boundary alert.
func (m *MonitorMetrics) ObserveAlert() {
	if m == nil {
		return
	}
	m.alerts.Inc()
}

// ObserveState records a state change that did not come from a position update.
func (m *MonitorMetrics) ObserveState(state entity.SafetyState) {
	if m == nil {
		return
	}
	m.state.Set(float64(state))
}

// HTTPMetrics tracks API requests.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP collectors on reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path"}),
	}

	reg.MustRegister(m.requests, m.duration)

	return m
}

// Middleware records every request by its route pattern.
func (m *HTTPMetrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		status := c.Response().Status
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		}

		m.requests.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler returns the scrape endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

// NewRegistry creates an isolated registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}
