package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/solestore/storefront-api/internal/core/ports"
)

// TokenParser verifies a bearer token and returns its claims.
// Satisfied by the auth service.
type TokenParser interface {
	ParseToken(token string) (*ports.AuthClaims, error)
}

// Auth validates the bearer token and injects the identity into context.
func Auth(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := parser.ParseToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("email", claims.Email)
			c.Set("name", claims.Name)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
