package transport

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"negociosHorarios/internal/shared/auth"
)

const claimsContextKey = "hours.claims"

// RequireAuth rejects requests without a valid bearer token and stores the claims on the context.
func RequireAuth(validator auth.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := validator.Validate(auth.ExtractBearerToken(c.Request()))
			if err != nil {
				slog.Warn("hours auth rejected", slog.String("path", c.Path()), slog.String("ip", c.RealIP()), slog.Any("error", err))
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

func claimsFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsContextKey).(*auth.Claims)
	return claims
}
