package model

import "time"

type TaskList struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	Name        string    `gorm:"size:255;not null"`
	Description *string   `gorm:"type:text"`
	Color       string    `gorm:"size:7;not null;default:'#3b82f6'"`
	Position    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Tasks []Task `gorm:"foreignKey:ListID;constraint:OnDelete:SET NULL"`
}
