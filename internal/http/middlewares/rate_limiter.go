package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/code-surya/nomad/internal/errors"
	"github.com/code-surya/nomad/internal/ratelimit"
)

// RateLimiter rejects clients that exceed the limiter's window. A limiter
// backend failure fails open; throttling is not worth a hard outage.
func RateLimiter(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Printf("rate limiter unavailable: %v", err)
				return next(c)
			}

			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, apperrors.ErrRateLimited.Message)
			}

			return next(c)
		}
	}
}
