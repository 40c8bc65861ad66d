package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/code-surya/nomad/internal/errors"
	model "github.com/code-surya/nomad/internal/models"
	"github.com/code-surya/nomad/internal/services"
)

const principalContextKey = "principal"

// Authenticate extracts the bearer token, verifies it against the identity
// provider and stores the resolved principal on the request context.
func Authenticate(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return apperrors.ErrTokenRequired
			}

			principal, err := auth.VerifyToken(parts[1])
			if err != nil {
				return err
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal set by Authenticate.
func PrincipalFrom(c echo.Context) (model.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(model.Principal)
	return principal, ok
}
