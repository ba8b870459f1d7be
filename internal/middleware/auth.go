package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ClaimsKey is the echo.Context key holding the verified token claims.
const ClaimsKey = "claims"

type TokenVerifier interface {
	Verify(token string) (*jwt.RegisteredClaims, error)
}

// BearerAuth rejects requests without a valid "Authorization: Bearer <token>" header.
func BearerAuth(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := v.Verify(strings.TrimSpace(token))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
