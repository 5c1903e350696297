package middleware

import (
	"strings"

	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// keyUserID is the echo.Context key holding the authenticated user's id.
const keyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token when one is presented. Requests
// without an Authorization header, or with a non-Bearer scheme, pass through
// unauthenticated so public routes keep working; a presented token that fails
// validation is rejected. It is installed globally, with RequireUser guarding
// the protected groups.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return next(c)
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(keyUserID, claims.UserID)

		return next(c)
	}
}

// RequireUser rejects requests that did not authenticate. It must be used
// AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetUserID(c); !ok {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// GetUserID extracts the authenticated user's id from echo.Context.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(keyUserID).(int64)

	return userID, ok
}
