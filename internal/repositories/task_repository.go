package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/code-surya/nomad/internal/constants"
	apperrors "github.com/code-surya/nomad/internal/errors"
	model "github.com/code-surya/nomad/internal/models"
)

// ErrStatusConflict means a conditional update found the row but its status
// no longer matched the expected value.
var ErrStatusConflict = errors.New("status guard failed")

const defaultStoreTimeout = 5 * time.Second

type TaskRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewTaskRepository(db *gorm.DB, timeout time.Duration) *TaskRepository {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &TaskRepository{db: db, timeout: timeout}
}

func (r *TaskRepository) Insert(ctx context.Context, task *model.Task) error {
	if r.db == nil {
		return apperrors.ErrStoreUnavailable
	}

	return r.withRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(task).Error
	})
}

func (r *TaskRepository) Get(ctx context.Context, id string) (*model.Task, error) {
	if r.db == nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	var task model.Task
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) QueryByStatus(ctx context.Context, status constants.TaskStatus) ([]model.Task, error) {
	return r.query(ctx, "status = ?", status)
}

func (r *TaskRepository) QueryByCreator(ctx context.Context, creatorID string) ([]model.Task, error) {
	return r.query(ctx, "created_by = ?", creatorID)
}

func (r *TaskRepository) QueryByStatusAndAssignee(ctx context.Context, status constants.TaskStatus, assigneeID string) ([]model.Task, error) {
	return r.query(ctx, "status = ? AND accepted_by = ?", status, assigneeID)
}

func (r *TaskRepository) query(ctx context.Context, cond string, args ...interface{}) ([]model.Task, error) {
	if r.db == nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	var tasks []model.Task
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where(cond, args...).
			Order("created_at desc, id asc").
			Find(&tasks).Error
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ConditionalUpdate applies updates only if the task's current status equals
// expected. The guard and the write are a single UPDATE statement, so among
// concurrent callers on the same id exactly one can see RowsAffected == 1.
func (r *TaskRepository) ConditionalUpdate(
	ctx context.Context,
	id string,
	expected constants.TaskStatus,
	updates map[string]interface{},
) (*model.Task, error) {
	if r.db == nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	err := r.withRetry(ctx, func(ctx context.Context) error {
		res := r.db.WithContext(ctx).Model(&model.Task{}).
			Where("id = ? AND status = ?", id, expected).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}
		return nil
	})

	if errors.Is(err, ErrStatusConflict) {
		// Distinguish a lost race from a missing row.
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrStatusConflict
	}
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, id)
}

// withRetry runs op under a bounded deadline and retries once on a transient
// failure before reporting the store unavailable.
func (r *TaskRepository) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	err := r.attempt(ctx, op)
	if err == nil || !isTransient(err) {
		return err
	}

	if err := r.attempt(ctx, op); err != nil {
		if isTransient(err) {
			return apperrors.ErrStoreUnavailable
		}
		return err
	}
	return nil
}

func (r *TaskRepository) attempt(ctx context.Context, op func(ctx context.Context) error) error {
	opCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return op(opCtx)
}

func isTransient(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
