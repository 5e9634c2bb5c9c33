package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"safezone/config"
	deliverycontext "safezone/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	e := newTestEcho(&bytes.Buffer{}, false)
	var ctxID, echoID string
	e.GET("/", func(c echo.Context) error {
		ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		echoID = deliverycontext.GetRequestID(c)
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("propagates header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-abc")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "req-abc", ctxID)
		assert.Equal(t, "req-abc", echoID)
	})

	t.Run("generates when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
		assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), ctxID)
	})
}

func TestLoggerMiddleware(t *testing.T) {
	handler := func(status int) echo.HandlerFunc {
		return func(c echo.Context) error { return c.NoContent(status) }
	}

	t.Run("quiet on success outside debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := newTestEcho(buf, false)
		e.GET("/ok", handler(http.StatusOK))

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.NotContains(t, buf.String(), "HTTP Request")
	})

	t.Run("logs failures outside debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := newTestEcho(buf, false)
		e.GET("/missing", handler(http.StatusNotFound))

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing?userId=x", nil))

		out := buf.String()
		assert.Contains(t, out, "HTTP Request")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "status=404")
		assert.Contains(t, out, "request_id=")
		// The text handler quotes values containing '='.
		assert.Contains(t, out, `query="userId=x"`)
	})

	t.Run("logs everything in debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := newTestEcho(buf, true)
		e.GET("/ok", handler(http.StatusOK))

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Contains(t, buf.String(), "level=INFO")
	})
}
