package resources

import (
	"time"

	model "taskforge.com/taskforge/internal/models"
	"taskforge.com/taskforge/internal/services"
)

type Tag struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	UserID     uint      `json:"user_id"`
	TasksCount *int64    `json:"tasks_count,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewTag(t model.Tag) Tag {
	return Tag{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func NewTags(details []services.TagDetails) []Tag {
	out := make([]Tag, len(details))
	for i, d := range details {
		out[i] = NewTag(d.Tag)
		out[i].TasksCount = d.TasksCount
	}
	return out
}
