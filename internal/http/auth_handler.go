package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/code-surya/nomad/internal/data_models"
	"github.com/code-surya/nomad/internal/http/validators"
	"github.com/code-surya/nomad/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateSignupRequest(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User: dto.UserInfo{
			ID:    user.ID,
			Email: user.Email,
			Role:  string(user.Role),
		},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.UserInfo{
			ID:    user.ID,
			Email: user.Email,
			Role:  string(user.Role),
		},
	})
}
