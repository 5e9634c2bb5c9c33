// Package response writes the {status, message} bodies of the safe-location API.
package response

import (
	"net/http"
	"time"

	domainerrors "safezone/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Coords is the coordinate object of the wire format.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SafeLocation is the success body of GET /safe-location.
type SafeLocation struct {
	Status    string     `json:"status"`
	Coords    Coords     `json:"coords"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Success writes {status:"success", message}.
func Success(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, domainerrors.Response{
		Status:  domainerrors.StatusSuccess,
		Message: message,
	})
}

// Coordinates writes {status:"success", coords}.
func Coordinates(c echo.Context, latitude, longitude float64, updatedAt time.Time) error {
	body := SafeLocation{
		Status: domainerrors.StatusSuccess,
		Coords: Coords{Latitude: latitude, Longitude: longitude},
	}
	if !updatedAt.IsZero() {
		body.UpdatedAt = &updatedAt
	}

	return c.JSON(http.StatusOK, body)
}

// Error writes {status:"error", message, code}.
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Status:  domainerrors.StatusError,
		Message: message,
		Code:    errorCode,
	})
}

// BadRequest writes a 400 error body.
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// FromAppError writes the error body for a domain error.
func FromAppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
}
