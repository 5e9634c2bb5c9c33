package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"safezone/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMonitorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMonitorMetrics(reg)

	m.ObserveEvaluation(2224, entity.SafetyStateUnsafe)
	m.ObserveAlert()
	m.ObserveDropped("read_error")
	m.ObserveDropped("read_error")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.updatesProcessed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.alerts))
	assert.Equal(t, 2224.0, testutil.ToFloat64(m.distance))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.state))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.updatesDropped.WithLabelValues("read_error")))
}

func TestMonitorMetrics_NilIsNoop(t *testing.T) {
	var m *MonitorMetrics

	assert.NotPanics(t, func() {
		m.ObserveEvaluation(1, entity.SafetyStateSafe)
		m.ObserveDropped("x")
		m.ObserveAlert()
		m.ObserveState(entity.SafetyStateUnknown)
	})
}

func TestHTTPMetrics_MiddlewareAndHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", Handler(reg))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/health", "200")))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "safezone_http_requests_total"))
}
