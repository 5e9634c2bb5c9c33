package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"safezone/config"
	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/delivery/http/middleware"
	"safezone/internal/delivery/http/validator"
	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	mockUC "safezone/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

func newTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockSafeLocationUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := mockUC.NewMockSafeLocationUsecase(t)
	cfg := &config.Config{SafeZone: &config.SafeZoneConfig{RadiusMeters: 1500}}
	h := NewSafeLocationHandler(SafeLocationHandlerParams{SafeLocationUC: uc, Config: cfg, Logger: logger})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	// Stands in for the bearer middleware
	authenticated := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUserID(c, testUserID)

			return next(c)
		}
	}

	e.GET("/safe-location", h.GetSafeLocation, authenticated)
	e.POST("/safe-location", h.SaveSafeLocation, authenticated)
	e.GET("/safe-location/zone", h.GetSafeZone, authenticated)

	return e, uc
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestSafeLocationHandler_GetSafeLocation(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, uc := newTestEcho(t)
		updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		uc.EXPECT().GetSafeLocation(mock.Anything, testUserID).Return(&entity.ReferenceLocation{
			UserID:     testUserID,
			Coordinate: entity.Coordinate{Latitude: 25.033, Longitude: 121.5654},
			UpdatedAt:  updated,
		}, nil)

		rec := serve(e, http.MethodGet, "/safe-location?userId="+testUserID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"success","coords":{"latitude":25.033,"longitude":121.5654},"updatedAt":"2026-01-02T03:04:05Z"}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		e, uc := newTestEcho(t)
		uc.EXPECT().GetSafeLocation(mock.Anything, testUserID).
			Return(nil, domainerrors.ErrReferenceNotFound.WithDetails(testUserID))

		rec := serve(e, http.MethodGet, "/safe-location?userId="+testUserID, "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		var body domainerrors.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, domainerrors.StatusError, body.Status)
		assert.NotEmpty(t, body.Message)
	})

	t.Run("missing user id", func(t *testing.T) {
		e, _ := newTestEcho(t)

		rec := serve(e, http.MethodGet, "/safe-location", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("other user", func(t *testing.T) {
		e, _ := newTestEcho(t)

		rec := serve(e, http.MethodGet, "/safe-location?userId=someone-else", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestSafeLocationHandler_SaveSafeLocation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUC.MockSafeLocationUsecase)
		wantStatus int
	}{
		{
			name: "saved",
			body: `{"userId":"user-1","coords":{"latitude":0,"longitude":0}}`,
			setup: func(uc *mockUC.MockSafeLocationUsecase) {
				uc.EXPECT().SaveSafeLocation(mock.Anything, testUserID, entity.Coordinate{}).
					Return(&entity.ReferenceLocation{UserID: testUserID}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed json",
			body:       `{"userId":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing coords",
			body:       `{"userId":"user-1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing longitude",
			body:       `{"userId":"user-1","coords":{"latitude":1}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "latitude out of range",
			body:       `{"userId":"user-1","coords":{"latitude":91,"longitude":0}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "other user",
			body:       `{"userId":"user-2","coords":{"latitude":1,"longitude":1}}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "usecase failure",
			body: `{"userId":"user-1","coords":{"latitude":1,"longitude":2}}`,
			setup: func(uc *mockUC.MockSafeLocationUsecase) {
				uc.EXPECT().SaveSafeLocation(mock.Anything, testUserID, entity.Coordinate{Latitude: 1, Longitude: 2}).
					Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "upsert"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, uc := newTestEcho(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			rec := serve(e, http.MethodPost, "/safe-location", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body domainerrors.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, domainerrors.StatusSuccess, body.Status)
			} else {
				assert.Equal(t, domainerrors.StatusError, body.Status)
			}
		})
	}
}

func TestSafeLocationHandler_GetSafeZone(t *testing.T) {
	ref := &entity.ReferenceLocation{UserID: testUserID, Coordinate: entity.Coordinate{Latitude: 10, Longitude: 20}}

	t.Run("default radius", func(t *testing.T) {
		e, uc := newTestEcho(t)
		uc.EXPECT().GetSafeLocation(mock.Anything, testUserID).Return(ref, nil)

		rec := serve(e, http.MethodGet, "/safe-location/zone?userId="+testUserID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, mimeGeoJSON, rec.Header().Get(echo.HeaderContentType))

		feature, err := geojson.UnmarshalFeature(rec.Body.Bytes())
		require.NoError(t, err)
		polygon, ok := feature.Geometry.(orb.Polygon)
		require.True(t, ok)
		assert.True(t, polygon.Bound().Contains(orb.Point{20, 10}))
		assert.Equal(t, testUserID, feature.Properties.MustString("userId"))
		assert.InDelta(t, 1500, feature.Properties.MustFloat64("radiusMeters"), 1e-9)
	})

	t.Run("explicit radius", func(t *testing.T) {
		e, uc := newTestEcho(t)
		uc.EXPECT().GetSafeLocation(mock.Anything, testUserID).Return(ref, nil)

		rec := serve(e, http.MethodGet, "/safe-location/zone?userId="+testUserID+"&radius=250", "")

		require.Equal(t, http.StatusOK, rec.Code)
		feature, err := geojson.UnmarshalFeature(rec.Body.Bytes())
		require.NoError(t, err)
		assert.InDelta(t, 250, feature.Properties.MustFloat64("radiusMeters"), 1e-9)
	})

	t.Run("invalid radius", func(t *testing.T) {
		e, _ := newTestEcho(t)

		rec := serve(e, http.MethodGet, "/safe-location/zone?userId="+testUserID+"&radius=-1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	e.GET("/health", HealthCheck)

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"ok"}`, rec.Body.String())
}
