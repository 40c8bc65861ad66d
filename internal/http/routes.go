package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	apperrors "github.com/code-surya/nomad/internal/errors"
	middleware "github.com/code-surya/nomad/internal/http/middlewares"
	"github.com/code-surya/nomad/internal/ratelimit"
	"github.com/code-surya/nomad/internal/services"
)

func Register(
	e *echo.Echo,
	h *Handler,
	ah *AuthHandler,
	auth *services.AuthService,
	limiter ratelimit.Limiter,
) {
	e.HTTPErrorHandler = errorHandler
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RateLimiter(limiter))

	api := e.Group("/api")
	api.POST("/signup", ah.Signup)
	api.POST("/login", ah.Login)

	tasks := api.Group("/tasks", middleware.Authenticate(auth))
	tasks.POST("", h.CreateTask)
	tasks.GET("", h.ListTasks)
	tasks.PUT("/:id/accept", h.AcceptTask)
	tasks.PUT("/:id/complete", h.CompleteTask)
}

// errorHandler renders every failure as {"error": message}. Unexpected
// errors are logged server-side and reach the client as a generic 500.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperrors.Exception
	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	} else if errors.As(err, &appErr) {
		code = appErr.StatusCode
		message = appErr.Message
	} else {
		log.Printf("unexpected error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"error": message})
}
