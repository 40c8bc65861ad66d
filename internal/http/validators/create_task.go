package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/code-surya/nomad/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" || r.Description == "" || r.Price == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "title, description, and price are required")
	}
	if r.Price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be greater than 0")
	}
	return nil
}
