package model

import "time"

type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Name      string `gorm:"size:50;not null"`
	Color     string `gorm:"size:7;not null;default:'#6b7280'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Tasks []Task `gorm:"many2many:tag_task"`
}
