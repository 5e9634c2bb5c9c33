package middleware

import (
	"strings"

	deliverycontext "safezone/internal/delivery/context"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores its subject as the request user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails(err.Error())
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

// RequireSelf rejects requests whose target user differs from the authenticated one.
// It must be used AFTER the Authenticate middleware.
func RequireSelf(c echo.Context, targetUserID string) error {
	if deliverycontext.GetUserID(c) != targetUserID {
		return domainerrors.ErrForbidden.WithDetails("token does not belong to user " + targetUserID)
	}

	return nil
}
