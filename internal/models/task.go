package model

import (
	"time"

	"taskforge.com/taskforge/internal/constants"
)

type Task struct {
	ID          uint               `gorm:"primaryKey"`
	UserID      uint               `gorm:"not null;index:idx_tasks_user_completed,priority:1"`
	ListID      *uint              `gorm:"index:idx_tasks_list_position,priority:1"`
	Title       string             `gorm:"size:255;not null"`
	Description *string            `gorm:"type:text"`
	DueDate     *time.Time         `gorm:"index"`
	Completed   bool               `gorm:"not null;default:false;index:idx_tasks_user_completed,priority:2"`
	Priority    constants.Priority `gorm:"type:varchar(10);not null;default:'medium'"`
	Position    int                `gorm:"not null;default:0;index:idx_tasks_list_position,priority:2"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	TaskList *TaskList `gorm:"foreignKey:ListID"`
	Tags     []Tag     `gorm:"many2many:tag_task"`
}
