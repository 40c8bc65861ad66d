package dto

import model "github.com/code-surya/nomad/internal/models"

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type CreateTaskResponse struct {
	Message string      `json:"message"`
	Task    *model.Task `json:"task"`
}

type ListTasksResponse struct {
	Tasks []model.Task `json:"tasks"`
}

type AcceptTaskResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CompleteTaskResponse struct {
	Message string `json:"message"`
}
