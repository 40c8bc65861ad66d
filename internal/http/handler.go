package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/code-surya/nomad/internal/data_models"
	apperrors "github.com/code-surya/nomad/internal/errors"
	middleware "github.com/code-surya/nomad/internal/http/middlewares"
	"github.com/code-surya/nomad/internal/http/validators"
	"github.com/code-surya/nomad/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperrors.ErrTokenRequired
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	task, err := h.taskService.CreateTask(ctx, principal, req.Title, req.Description, req.Price)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.CreateTaskResponse{
		Message: "Task created successfully",
		Task:    task,
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperrors.ErrTokenRequired
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ListTasksResponse{Tasks: tasks})
}

func (h *Handler) AcceptTask(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperrors.ErrTokenRequired
	}

	if _, err := h.taskService.AcceptTask(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.AcceptTaskResponse{
		Success: true,
		Message: "Task accepted successfully",
	})
}

func (h *Handler) CompleteTask(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperrors.ErrTokenRequired
	}

	if _, err := h.taskService.CompleteTask(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CompleteTaskResponse{
		Message: "Task completed successfully",
	})
}
