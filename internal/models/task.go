package model

import (
	"time"

	"github.com/code-surya/nomad/internal/constants"
)

type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Title       string               `gorm:"not null" json:"title"`
	Description string               `gorm:"not null" json:"description"`
	Price       float64              `gorm:"not null" json:"price"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedBy   string               `gorm:"size:36;not null;index" json:"createdBy"`
	AcceptedBy  *string              `gorm:"size:36;index" json:"acceptedBy"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}
