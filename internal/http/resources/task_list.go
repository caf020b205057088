package resources

import (
	"time"

	dto "taskforge.com/taskforge/internal/data_models"
	"taskforge.com/taskforge/internal/services"
)

type TaskList struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Description         *string   `json:"description"`
	Color               string    `json:"color"`
	Position            int       `json:"position"`
	UserID              uint      `json:"user_id"`
	TasksCount          *int64    `json:"tasks_count,omitempty"`
	CompletedTasksCount *int64    `json:"completed_tasks_count,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	Tasks               *[]Task   `json:"tasks,omitempty"`
}

func NewTaskList(d services.TaskListDetails) TaskList {
	out := TaskList{
		ID:          d.List.ID,
		Name:        d.List.Name,
		Description: d.List.Description,
		Color:       d.List.Color,
		Position:    d.List.Position,
		UserID:      d.List.UserID,
		CreatedAt:   d.List.CreatedAt,
		UpdatedAt:   d.List.UpdatedAt,
	}

	if d.Counts != nil {
		total, completed := d.Counts.Total, d.Counts.Completed
		out.TasksCount = &total
		out.CompletedTasksCount = &completed
	}

	if d.Tasks != nil {
		tasks := NewTasks(d.Tasks, dto.Includes{})
		out.Tasks = &tasks
	}

	return out
}

func NewTaskLists(details []services.TaskListDetails) []TaskList {
	out := make([]TaskList, len(details))
	for i, d := range details {
		out[i] = NewTaskList(d)
	}
	return out
}
