package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/code-surya/nomad/internal/constants"
	apperrors "github.com/code-surya/nomad/internal/errors"
	model "github.com/code-surya/nomad/internal/models"
	repository "github.com/code-surya/nomad/internal/repositories"
)

// TaskService owns the task lifecycle: open -> accepted -> completed, and the
// role rules around each transition. All coordination between concurrent
// callers is pushed into the repository's conditional update; the service
// itself holds no locks.
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) CreateTask(
	ctx context.Context,
	principal model.Principal,
	title, description string,
	price float64,
) (*model.Task, error) {
	if principal.Role != constants.RoleCreator {
		return nil, apperrors.ErrCreatorOnly
	}

	if strings.TrimSpace(title) == "" {
		return nil, apperrors.Validation("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.Validation("description is required")
	}
	if price <= 0 {
		return nil, apperrors.Validation("price must be greater than 0")
	}

	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Price:       price,
		Status:      constants.StatusOpen,
		CreatedBy:   principal.ID,
	}

	if err := s.repo.Insert(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks returns the tasks visible to the principal. Creators see their
// own tasks in every status. Workers see every open task plus the accepted
// tasks assigned to them, never another worker's. Any other role sees
// nothing.
func (s *TaskService) ListTasks(ctx context.Context, principal model.Principal) ([]model.Task, error) {
	switch principal.Role {
	case constants.RoleCreator:
		return s.repo.QueryByCreator(ctx, principal.ID)

	case constants.RoleWorker:
		open, err := s.repo.QueryByStatus(ctx, constants.StatusOpen)
		if err != nil {
			return nil, err
		}
		mine, err := s.repo.QueryByStatusAndAssignee(ctx, constants.StatusAccepted, principal.ID)
		if err != nil {
			return nil, err
		}

		tasks := append(open, mine...)
		sortTasks(tasks)
		return tasks, nil

	default:
		return []model.Task{}, nil
	}
}

// AcceptTask awards an open task to the calling worker. Among concurrent
// accept calls on the same task exactly one succeeds; the rest get a
// conflict because the status guard in the store no longer holds.
func (s *TaskService) AcceptTask(ctx context.Context, principal model.Principal, taskID string) (*model.Task, error) {
	if principal.Role != constants.RoleWorker {
		return nil, apperrors.ErrWorkerOnlyAccept
	}
	if taskID == "" {
		return nil, apperrors.ErrTaskIDRequired
	}

	task, err := s.repo.ConditionalUpdate(ctx, taskID, constants.StatusOpen, map[string]interface{}{
		"status":      constants.StatusAccepted,
		"accepted_by": principal.ID,
		"updated_at":  time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrStatusConflict) {
		return nil, apperrors.ErrTaskNotOpen
	}
	if err != nil {
		return nil, err
	}

	return task, nil
}

// CompleteTask closes out an accepted task. Only the worker recorded in
// acceptedBy may complete it, and only while it is still accepted; a repeat
// call is rejected the same way as a stranger's.
func (s *TaskService) CompleteTask(ctx context.Context, principal model.Principal, taskID string) (*model.Task, error) {
	if principal.Role != constants.RoleWorker {
		return nil, apperrors.ErrWorkerOnlyComplete
	}
	if taskID == "" {
		return nil, apperrors.ErrTaskIDRequired
	}

	task, err := s.repo.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status != constants.StatusAccepted || task.AcceptedBy == nil || *task.AcceptedBy != principal.ID {
		return nil, apperrors.ErrNotTaskOwner
	}

	updated, err := s.repo.ConditionalUpdate(ctx, taskID, constants.StatusAccepted, map[string]interface{}{
		"status":     constants.StatusCompleted,
		"updated_at": time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrStatusConflict) {
		return nil, apperrors.ErrNotTaskOwner
	}
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// sortTasks orders newest first; id breaks createdAt ties so the order is
// stable across calls.
func sortTasks(tasks []model.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
}
