package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/code-surya/nomad/internal/errors"
	model "github.com/code-surya/nomad/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewUserRepository(db *gorm.DB, timeout time.Duration) *UserRepository {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &UserRepository{db: db, timeout: timeout}
}

func (r *UserRepository) Insert(ctx context.Context, user *model.User) error {
	if r.db == nil {
		return apperrors.ErrStoreUnavailable
	}

	opCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(opCtx).Create(user).Error
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if r.db == nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	opCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var user model.User
	err := r.db.WithContext(opCtx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if r.db == nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	opCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var user model.User
	err := r.db.WithContext(opCtx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
