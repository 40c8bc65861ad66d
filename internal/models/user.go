package model

import (
	"time"

	"github.com/code-surya/nomad/internal/constants"
)

type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         constants.Role `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time      `json:"createdAt"`
}
