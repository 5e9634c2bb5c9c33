package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"safezone/config"
	"safezone/internal/delivery/http/middleware"
	"safezone/internal/delivery/http/response"
	"safezone/internal/delivery/http/validator"
	"safezone/internal/domain/constants"
	"safezone/internal/domain/entity"
	"safezone/internal/domain/geo"
	"safezone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const (
	codeValidationFailed = "VALIDATION_FAILED"
	mimeGeoJSON          = "application/geo+json"
)

// SafeLocationHandlerParams holds dependencies for SafeLocationHandler, injected by Fx.
type SafeLocationHandlerParams struct {
	fx.In

	SafeLocationUC usecase.SafeLocationUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// SafeLocationHandler serves the reference location of each user.
type SafeLocationHandler struct {
	safeLocationUC usecase.SafeLocationUsecase
	defaultRadius  float64
	logger         *slog.Logger
}

// NewSafeLocationHandler is the constructor for SafeLocationHandler
func NewSafeLocationHandler(params SafeLocationHandlerParams) *SafeLocationHandler {
	radius := constants.DefaultSafeZoneRadiusMeters
	if params.Config != nil && params.Config.SafeZone != nil && params.Config.SafeZone.RadiusMeters > 0 {
		radius = params.Config.SafeZone.RadiusMeters
	}

	return &SafeLocationHandler{
		safeLocationUC: params.SafeLocationUC,
		defaultRadius:  radius,
		logger:         params.Logger,
	}
}

// CoordsRequest is the coordinate object of SaveSafeLocationRequest.
// Pointers make a zero coordinate distinguishable from a missing one.
type CoordsRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// SaveSafeLocationRequest represents the request body for POST /safe-location
type SaveSafeLocationRequest struct {
	UserID string         `json:"userId" validate:"required,max=128"`
	Coords *CoordsRequest `json:"coords" validate:"required"`
}

// GetSafeLocation handles GET /safe-location?userId=
func (h *SafeLocationHandler) GetSafeLocation(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return response.BadRequest(c, codeValidationFailed, "userId is required")
	}
	if err := middleware.RequireSelf(c, userID); err != nil {
		return err
	}

	ref, err := h.safeLocationUC.GetSafeLocation(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Coordinates(c, ref.Coordinate.Latitude, ref.Coordinate.Longitude, ref.UpdatedAt)
}

// SaveSafeLocation handles POST /safe-location
func (h *SafeLocationHandler) SaveSafeLocation(c echo.Context) error {
	var req SaveSafeLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, codeValidationFailed, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, codeValidationFailed, validator.Describe(err))
	}
	if err := middleware.RequireSelf(c, req.UserID); err != nil {
		return err
	}

	coordinate := entity.Coordinate{Latitude: *req.Coords.Latitude, Longitude: *req.Coords.Longitude}
	if _, err := h.safeLocationUC.SaveSafeLocation(c.Request().Context(), req.UserID, coordinate); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "安全位置已更新")
}

// GetSafeZone handles GET /safe-location/zone?userId=&radius=
// It answers a GeoJSON Feature whose polygon is the zone's bounding box.
func (h *SafeLocationHandler) GetSafeZone(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return response.BadRequest(c, codeValidationFailed, "userId is required")
	}
	if err := middleware.RequireSelf(c, userID); err != nil {
		return err
	}

	radius := h.defaultRadius
	if raw := c.QueryParam("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, codeValidationFailed, "radius must be a positive number of meters")
		}
		radius = parsed
	}

	ref, err := h.safeLocationUC.GetSafeLocation(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	feature := geojson.NewFeature(geo.ZoneBound(ref.Coordinate, radius).ToPolygon())
	feature.Properties["userId"] = userID
	feature.Properties["radiusMeters"] = radius
	feature.Properties["center"] = []float64{ref.Coordinate.Longitude, ref.Coordinate.Latitude}

	body, err := feature.MarshalJSON()
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}
