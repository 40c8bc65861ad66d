package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/code-surya/nomad/internal/data_models"
)

func ValidateSignupRequest(r *dto.SignupRequest) error {
	if r.Email == "" || r.Password == "" || r.Role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email, password, and role are required")
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Email == "" || r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}
	return nil
}
