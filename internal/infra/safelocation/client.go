// Package safelocation is the HTTP client for the safe-location API.
package safelocation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"safezone/config"
	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
)

const (
	safeLocationPath = "/safe-location"
	maxBodySize      = 1 << 20
)

// Coords is the coordinate object of the wire format.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FetchResponse is the body of GET /safe-location.
type FetchResponse struct {
	Status    string     `json:"status"`
	Message   string     `json:"message,omitempty"`
	Coords    *Coords    `json:"coords,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// SaveRequest is the body of POST /safe-location.
type SaveRequest struct {
	UserID string `json:"userId"`
	Coords Coords `json:"coords"`
}

// client implements service.ReferenceStore over HTTP.
type client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a ReferenceStore that talks to the safe-location API.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.ReferenceStore, error) {
	if cfg.ReferenceStore == nil || cfg.ReferenceStore.BaseURL == "" {
		return nil, errors.New("reference store base URL is required")
	}

	return NewClientWithHTTP(cfg.ReferenceStore.BaseURL, cfg.ReferenceStore.Token, &http.Client{
		Timeout: cfg.ReferenceStore.Timeout,
	}, logger), nil
}

// NewClientWithHTTP creates a ReferenceStore with a caller-supplied http.Client.
func NewClientWithHTTP(baseURL, token string, httpClient *http.Client, logger *slog.Logger) service.ReferenceStore {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Fetch implements service.ReferenceStore.
func (c *client) Fetch(ctx context.Context, userID string) (*entity.ReferenceLocation, error) {
	endpoint := c.baseURL + safeLocationPath + "?" + url.Values{"userId": {userID}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var body FetchResponse
	status, err := c.do(req, &body)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound || body.Status != domainerrors.StatusSuccess || body.Coords == nil {
		return nil, domainerrors.ErrReferenceNotFound.WithDetails(body.Message)
	}

	ref := &entity.ReferenceLocation{
		UserID: userID,
		Coordinate: entity.Coordinate{
			Latitude:  body.Coords.Latitude,
			Longitude: body.Coords.Longitude,
		},
	}
	if body.UpdatedAt != nil {
		ref.UpdatedAt = *body.UpdatedAt
	}

	if err := ref.Coordinate.Validate(); err != nil {
		return nil, domainerrors.ErrNetwork.WithDetails(err.Error())
	}

	return ref, nil
}

// Save implements service.ReferenceStore.
func (c *client) Save(ctx context.Context, userID string, coordinate entity.Coordinate) error {
	payload, err := json.Marshal(SaveRequest{
		UserID: userID,
		Coords: Coords{Latitude: coordinate.Latitude, Longitude: coordinate.Longitude},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+safeLocationPath, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body domainerrors.Response
	status, err := c.do(req, &body)
	if err != nil {
		return err
	}

	if status == http.StatusBadRequest {
		return domainerrors.ErrValidationFailed.WithDetails(body.Message)
	}
	if body.Status != domainerrors.StatusSuccess {
		return domainerrors.ErrNetwork.WithDetails(body.Message)
	}

	return nil
}

// do sends req and decodes the JSON body into out. Transport failures, auth
// failures and server errors are mapped to the store error taxonomy; 2xx, 400
// and 404 are left to the caller.
func (c *client) do(req *http.Request, out any) (int, error) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(req.Context()); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), c.logger)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("[SafeLocation] Request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)

		return 0, errors.Wrap(domainerrors.ErrNetwork.WithDetails(err.Error()), "safe-location request")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return resp.StatusCode, domainerrors.ErrUnauthorized.WithDetails(fmt.Sprintf("status %d", resp.StatusCode))
	case resp.StatusCode >= http.StatusInternalServerError:
		return resp.StatusCode, domainerrors.ErrNetwork.WithDetails(fmt.Sprintf("status %d", resp.StatusCode))
	case resp.StatusCode >= 300 && resp.StatusCode != http.StatusBadRequest && resp.StatusCode != http.StatusNotFound:
		return resp.StatusCode, domainerrors.ErrNetwork.WithDetails(fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, domainerrors.ErrNetwork.WithDetails(err.Error())
	}

	if err := json.Unmarshal(data, out); err != nil {
		// A 404 from a proxy may not carry our JSON body.
		if resp.StatusCode == http.StatusNotFound {
			return resp.StatusCode, nil
		}

		return resp.StatusCode, domainerrors.ErrNetwork.WithDetails("malformed response body")
	}

	logger.Debug("[SafeLocation] Request completed",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
	)

	return resp.StatusCode, nil
}
