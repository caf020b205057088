package resources

import (
	"time"

	"taskforge.com/taskforge/internal/constants"
	dto "taskforge.com/taskforge/internal/data_models"
	model "taskforge.com/taskforge/internal/models"
	"taskforge.com/taskforge/internal/services"
)

// ListRef is the narrowed list attached to a task.
type ListRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagRef is the narrowed tag attached to a task.
type TagRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Task struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	DueDate     *time.Time         `json:"due_date"`
	Completed   bool               `json:"completed"`
	Priority    constants.Priority `json:"priority"`
	Position    int                `json:"position"`
	UserID      uint               `json:"user_id"`
	ListID      *uint              `json:"list_id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	TaskList    *ListRef           `json:"task_list,omitempty"`
	Tags        *[]TagRef          `json:"tags,omitempty"`
}

type TaskToggle struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask shapes a task; relations appear only when included.
func NewTask(t model.Task, inc dto.Includes) Task {
	out := Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		Priority:    t.Priority,
		Position:    t.Position,
		UserID:      t.UserID,
		ListID:      t.ListID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if inc.List && t.TaskList != nil {
		out.TaskList = &ListRef{ID: t.TaskList.ID, Name: t.TaskList.Name, Color: t.TaskList.Color}
	}

	if inc.Tags {
		tags := make([]TagRef, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = TagRef{ID: tag.ID, Name: tag.Name, Color: tag.Color}
		}
		out.Tags = &tags
	}

	return out
}

func NewTasks(tasks []model.Task, inc dto.Includes) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = NewTask(t, inc)
	}
	return out
}

func NewTaskToggle(r *services.ToggleResult) TaskToggle {
	return TaskToggle{
		ID:          r.Task.ID,
		Title:       r.Task.Title,
		Completed:   r.Task.Completed,
		CompletedAt: r.CompletedAt,
		UpdatedAt:   r.Task.UpdatedAt,
	}
}
