package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RevocationChecker reports whether a session token has been logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer JWT, rejects revoked sessions, and injects claims
// into the echo context.
func Auth(jwtSecret string, revoker RevocationChecker) echo.MiddlewareFunc {
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

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			jti, _ := claims["jti"].(string)
			if revoker != nil && jti != "" {
				revoked, err := revoker.IsRevoked(c.Request().Context(), jti)
				if err == nil && revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "session revoked")
				}
			}

			c.Set("username", claims["username"])
			c.Set("role", claims["role"])
			c.Set("jti", jti)
			if facilityID, ok := claims["facility_id"].(float64); ok {
				c.Set("facility_id", uint(facilityID))
			}
			if exp, ok := claims["exp"].(float64); ok {
				c.Set("exp", int64(exp))
			}

			return next(c)
		}
	}
}
