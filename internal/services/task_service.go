package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskforge.com/taskforge/internal/constants"
	dto "taskforge.com/taskforge/internal/data_models"
	apperrors "taskforge.com/taskforge/internal/errors"
	model "taskforge.com/taskforge/internal/models"
	repository "taskforge.com/taskforge/internal/repositories"
)

type TaskService struct {
	tasks *repository.TaskRepository
	lists *repository.TaskListRepository
	tags  *repository.TagRepository
	now   Clock
}

type TaskPage struct {
	Tasks   []model.Task
	Total   int64
	Page    int
	PerPage int
}

// ToggleResult is the projection returned after flipping completion.
type ToggleResult struct {
	Task        *model.Task
	CompletedAt *time.Time
}

var allRelations = dto.Includes{List: true, Tags: true}

func NewTaskService(
	tasks *repository.TaskRepository,
	lists *repository.TaskListRepository,
	tags *repository.TagRepository,
	now Clock,
) *TaskService {
	return &TaskService{
		tasks: tasks,
		lists: lists,
		tags:  tags,
		now:   now,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID uint, q dto.TaskQuery) (*TaskPage, error) {
	var due *dto.DueRange
	if q.DueBucket != "" {
		due = ResolveDueBucket(q.DueBucket, s.now())
	}

	tasks, total, err := s.tasks.Paginate(ctx, ownerID, q, due)
	if err != nil {
		return nil, err
	}

	return &TaskPage{Tasks: tasks, Total: total, Page: q.Page, PerPage: q.PerPage}, nil
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, id uint, inc dto.Includes) (*model.Task, error) {
	task, err := s.tasks.FindOwned(ctx, ownerID, id, inc)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTaskNotFound)
	}
	return task, nil
}

// CreateTask expects a validated request.
func (s *TaskService) CreateTask(ctx context.Context, ownerID uint, req dto.CreateTaskRequest) (*model.Task, error) {
	listID := req.ListID.Ptr()
	if listID != nil {
		if err := s.ensureListOwned(ctx, ownerID, *listID); err != nil {
			return nil, err
		}
	}

	position, err := s.tasks.NextPosition(ctx, ownerID, listID)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		UserID:      ownerID,
		ListID:      listID,
		Title:       req.Title,
		Description: req.Description.Ptr(),
		Priority:    constants.PriorityMedium,
		Position:    position,
	}

	if req.Priority.Valid {
		task.Priority = constants.Priority(req.Priority.Value)
	}

	if req.DueDate.Valid {
		due, err := s.parseDueDate(req.DueDate.Value)
		if err != nil {
			return nil, err
		}
		task.DueDate = &due
	}

	if req.Tags.Valid {
		tags, err := s.tags.FilterOwned(ctx, ownerID, req.Tags.Value)
		if err != nil {
			return nil, err
		}
		task.Tags = tags
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	return s.tasks.FindOwned(ctx, ownerID, task.ID, allRelations)
}

// UpdateTask applies only the fields present in req.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, id uint, req dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.tasks.FindOwned(ctx, ownerID, id, dto.Includes{})
	if err != nil {
		return nil, notFound(err, apperrors.ErrTaskNotFound)
	}

	fields := map[string]interface{}{}

	if req.Title.Set {
		fields["title"] = req.Title.Value
	}
	if req.Description.Set {
		fields["description"] = nullable(req.Description)
	}
	if req.ListID.Set {
		if req.ListID.Valid {
			if err := s.ensureListOwned(ctx, ownerID, req.ListID.Value); err != nil {
				return nil, err
			}
		}
		fields["list_id"] = nullable(req.ListID)
	}
	if req.DueDate.Set {
		if req.DueDate.Valid {
			due, err := s.parseDueDate(req.DueDate.Value)
			if err != nil {
				return nil, err
			}
			fields["due_date"] = due
		} else {
			fields["due_date"] = nil
		}
	}
	if req.Priority.Set {
		priority := constants.PriorityMedium
		if req.Priority.Valid {
			priority = constants.Priority(req.Priority.Value)
		}
		fields["priority"] = string(priority)
	}
	if req.Completed.Valid {
		fields["completed"] = req.Completed.Value
	}

	if _, err := s.tasks.Update(ctx, ownerID, task.ID, fields); err != nil {
		return nil, err
	}

	if req.Tags.Set {
		tags, err := s.tags.FilterOwned(ctx, ownerID, req.Tags.Value)
		if err != nil {
			return nil, err
		}
		if err := s.tasks.ReplaceTags(ctx, task, tags); err != nil {
			return nil, err
		}
	}

	return s.tasks.FindOwned(ctx, ownerID, task.ID, allRelations)
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, id uint) error {
	task, err := s.tasks.FindOwned(ctx, ownerID, id, dto.Includes{})
	if err != nil {
		return notFound(err, apperrors.ErrTaskNotFound)
	}
	return s.tasks.Delete(ctx, task)
}

func (s *TaskService) ToggleTask(ctx context.Context, ownerID, id uint) (*ToggleResult, error) {
	task, err := s.tasks.FindOwned(ctx, ownerID, id, dto.Includes{})
	if err != nil {
		return nil, notFound(err, apperrors.ErrTaskNotFound)
	}

	if _, err := s.tasks.Update(ctx, ownerID, task.ID, map[string]interface{}{
		"completed": !task.Completed,
	}); err != nil {
		return nil, err
	}

	task, err = s.tasks.FindOwned(ctx, ownerID, id, dto.Includes{})
	if err != nil {
		return nil, err
	}

	result := &ToggleResult{Task: task}
	if task.Completed {
		completedAt := s.now()
		result.CompletedAt = &completedAt
	}
	return result, nil
}

// ReorderTasks applies each position independently, without a transaction.
// Missing or foreign tasks are skipped and not counted. A list_id naming a
// foreign list is dropped while the position still applies.
func (s *TaskService) ReorderTasks(ctx context.Context, ownerID uint, items []dto.TaskPosition) (int, error) {
	updated := 0

	for _, item := range items {
		task, err := s.tasks.FindOwned(ctx, ownerID, item.ID, dto.Includes{})
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return updated, err
		}

		fields := map[string]interface{}{"position": *item.Position}

		if item.ListID.Set {
			if item.ListID.Valid {
				owned, err := s.lists.ExistsOwned(ctx, ownerID, item.ListID.Value)
				if err != nil {
					return updated, err
				}
				if owned {
					fields["list_id"] = item.ListID.Value
				}
			} else {
				fields["list_id"] = nil
			}
		}

		if _, err := s.tasks.Update(ctx, ownerID, task.ID, fields); err != nil {
			return updated, err
		}
		updated++
	}

	return updated, nil
}

func (s *TaskService) ensureListOwned(ctx context.Context, ownerID, listID uint) error {
	owned, err := s.lists.ExistsOwned(ctx, ownerID, listID)
	if err != nil {
		return err
	}
	if !owned {
		return apperrors.ErrInvalidTaskList
	}
	return nil
}

func (s *TaskService) parseDueDate(raw string) (time.Time, error) {
	due, err := dto.ParseDateTime(raw, s.now().Location())
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(apperrors.FieldErrors{
			"due_date": {"The due date field must be a valid date."},
		})
	}
	return storedTime(due), nil
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// nullable maps an absent or null value to SQL NULL.
func nullable[T any](n dto.Nullable[T]) interface{} {
	if !n.Valid {
		return nil
	}
	return n.Value
}
