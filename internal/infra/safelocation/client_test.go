package safelocation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClientWithHTTP(server.URL+"/", "test-token", server.Client(), slog.Default()).(*client)
}

func TestClient_Fetch_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/safe-location", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("userId"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "req-42", r.Header.Get(deliverycontext.HeaderXRequestID))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","coords":{"latitude":25.03,"longitude":121.56},"updatedAt":"2026-01-01T00:00:00Z"}`))
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	ref, err := c.Fetch(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", ref.UserID)
	assert.Equal(t, entity.Coordinate{Latitude: 25.03, Longitude: 121.56}, ref.Coordinate)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), ref.UpdatedAt)
}

func TestClient_Fetch_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"status":"error","message":"no safe location"}`, want: domainerrors.ErrReferenceNotFound},
		{name: "not found without json", status: http.StatusNotFound, body: `404 page not found`, want: domainerrors.ErrReferenceNotFound},
		{name: "error status in 200", status: http.StatusOK, body: `{"status":"error","message":"no safe location"}`, want: domainerrors.ErrReferenceNotFound},
		{name: "missing coords", status: http.StatusOK, body: `{"status":"success"}`, want: domainerrors.ErrReferenceNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{}`, want: domainerrors.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, body: `{}`, want: domainerrors.ErrUnauthorized},
		{name: "server error", status: http.StatusBadGateway, body: ``, want: domainerrors.ErrNetwork},
		{name: "malformed body", status: http.StatusOK, body: `{`, want: domainerrors.ErrNetwork},
		{name: "invalid coords", status: http.StatusOK, body: `{"status":"success","coords":{"latitude":100,"longitude":0}}`, want: domainerrors.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			ref, err := c.Fetch(context.Background(), "user-1")
			assert.Nil(t, ref)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestClient_Fetch_TransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := NewClientWithHTTP(url, "", http.DefaultClient, slog.Default())

	_, err := c.Fetch(context.Background(), "user-1")
	assert.True(t, errors.Is(err, domainerrors.ErrNetwork), "got %v", err)
}

func TestClient_Save(t *testing.T) {
	var received SaveRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		_, _ = w.Write([]byte(`{"status":"success","message":"saved"}`))
	})

	err := c.Save(context.Background(), "user-1", entity.Coordinate{Latitude: 1.5, Longitude: 2.5})
	require.NoError(t, err)
	assert.Equal(t, SaveRequest{UserID: "user-1", Coords: Coords{Latitude: 1.5, Longitude: 2.5}}, received)
}

func TestClient_Save_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "validation", status: http.StatusBadRequest, body: `{"status":"error","message":"latitude out of range"}`, want: domainerrors.ErrValidationFailed},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"status":"error"}`, want: domainerrors.ErrUnauthorized},
		{name: "server error", status: http.StatusInternalServerError, body: `{"status":"error"}`, want: domainerrors.ErrNetwork},
		{name: "error status", status: http.StatusOK, body: `{"status":"error","message":"boom"}`, want: domainerrors.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := c.Save(context.Background(), "user-1", entity.Coordinate{})
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
