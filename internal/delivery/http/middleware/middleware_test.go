package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "safezone/internal/delivery/context"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/service"
	mockSvc "safezone/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockSvc.MockTokenService) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	auth := NewAuthMiddleware(tokenSvc)
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetUserID(c))
	}, auth.Authenticate)
	e.GET("/users/:id", func(c echo.Context) error {
		if err := RequireSelf(c, c.Param("id")); err != nil {
			return err
		}

		return c.NoContent(http.StatusNoContent)
	}, auth.Authenticate)

	return e, tokenSvc
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m *mockSvc.MockTokenService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not bearer",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: "user-1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "user-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, tokenSvc := newTestServer(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())

				return
			}
			body := decodeBody(t, rec)
			assert.Equal(t, domainerrors.StatusError, body.Status)
			assert.Equal(t, "UNAUTHORIZED", body.Code)
		})
	}
}

func TestRequireSelf(t *testing.T) {
	e, tokenSvc := newTestServer(t)
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: "user-1"}, nil)

	for path, want := range map[string]int{"/users/user-1": http.StatusNoContent, "/users/user-2": http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Code, path)
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	e := echo.New()
	handler := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", domainerrors.ErrReferenceNotFound.WithDetails("u"), http.StatusNotFound, "SAFE_LOCATION_NOT_FOUND"},
		{"wrapped app error", errors.Wrap(domainerrors.ErrValidationFailed, "bind"), http.StatusBadRequest, "VALIDATION_FAILED"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"unknown error", errors.New("db exploded"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, domainerrors.StatusError, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotContains(t, rec.Body.String(), "db exploded")
		})
	}
}
