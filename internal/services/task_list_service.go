package services

import (
	"context"

	"taskforge.com/taskforge/internal/constants"
	dto "taskforge.com/taskforge/internal/data_models"
	apperrors "taskforge.com/taskforge/internal/errors"
	model "taskforge.com/taskforge/internal/models"
	repository "taskforge.com/taskforge/internal/repositories"
)

type TaskListService struct {
	lists *repository.TaskListRepository
	tasks *repository.TaskRepository
}

// TaskListDetails carries a list with whatever aggregates the caller asked for.
// Counts is nil unless requested, Tasks is nil unless included.
type TaskListDetails struct {
	List   model.TaskList
	Counts *repository.ListCounts
	Tasks  []model.Task
}

func NewTaskListService(lists *repository.TaskListRepository, tasks *repository.TaskRepository) *TaskListService {
	return &TaskListService{lists: lists, tasks: tasks}
}

func (s *TaskListService) ListTaskLists(ctx context.Context, ownerID uint, withCounts bool) ([]TaskListDetails, error) {
	lists, err := s.lists.ListOwned(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]TaskListDetails, len(lists))
	for i, list := range lists {
		out[i] = TaskListDetails{List: list}
	}

	if !withCounts {
		return out, nil
	}

	ids := make([]uint, len(lists))
	for i, list := range lists {
		ids[i] = list.ID
	}

	counts, err := s.lists.Counts(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range out {
		c := counts[out[i].List.ID]
		c.ListID = out[i].List.ID
		out[i].Counts = &c
	}
	return out, nil
}

func (s *TaskListService) GetTaskList(ctx context.Context, ownerID, id uint, includeTasks bool) (*TaskListDetails, error) {
	list, err := s.lists.FindOwned(ctx, ownerID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTaskListNotFound)
	}

	details, err := s.withCounts(ctx, list)
	if err != nil {
		return nil, err
	}

	if includeTasks {
		tasks, err := s.tasks.ListForList(ctx, ownerID, list.ID)
		if err != nil {
			return nil, err
		}
		details.Tasks = tasks
	}

	return details, nil
}

func (s *TaskListService) CreateTaskList(ctx context.Context, ownerID uint, req dto.CreateTaskListRequest) (*TaskListDetails, error) {
	position, err := s.lists.NextPosition(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	list := &model.TaskList{
		UserID:      ownerID,
		Name:        req.Name,
		Description: req.Description.Ptr(),
		Color:       constants.DefaultListColor,
		Position:    position,
	}
	if req.Color.Valid {
		list.Color = req.Color.Value
	}

	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}

	return s.withCounts(ctx, list)
}

func (s *TaskListService) UpdateTaskList(ctx context.Context, ownerID, id uint, req dto.UpdateTaskListRequest) (*TaskListDetails, error) {
	list, err := s.lists.FindOwned(ctx, ownerID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTaskListNotFound)
	}

	fields := map[string]interface{}{}
	if req.Name.Set {
		fields["name"] = req.Name.Value
	}
	if req.Description.Set {
		fields["description"] = nullable(req.Description)
	}
	if req.Color.Set {
		color := constants.DefaultListColor
		if req.Color.Valid {
			color = req.Color.Value
		}
		fields["color"] = color
	}

	if _, err := s.lists.Update(ctx, ownerID, list.ID, fields); err != nil {
		return nil, err
	}

	list, err = s.lists.FindOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.withCounts(ctx, list)
}

// DeleteTaskList detaches the list's tasks rather than deleting them.
func (s *TaskListService) DeleteTaskList(ctx context.Context, ownerID, id uint) error {
	list, err := s.lists.FindOwned(ctx, ownerID, id)
	if err != nil {
		return notFound(err, apperrors.ErrTaskListNotFound)
	}
	return s.lists.Delete(ctx, list)
}

// ReorderTaskLists has the same skip-and-count semantics as ReorderTasks.
func (s *TaskListService) ReorderTaskLists(ctx context.Context, ownerID uint, items []dto.ListPosition) (int, error) {
	updated := 0

	for _, item := range items {
		ok, err := s.lists.Update(ctx, ownerID, item.ID, map[string]interface{}{
			"position": *item.Position,
		})
		if err != nil {
			return updated, err
		}
		if ok {
			updated++
		}
	}

	return updated, nil
}

func (s *TaskListService) withCounts(ctx context.Context, list *model.TaskList) (*TaskListDetails, error) {
	counts, err := s.lists.Counts(ctx, []uint{list.ID})
	if err != nil {
		return nil, err
	}

	c := counts[list.ID]
	c.ListID = list.ID
	return &TaskListDetails{List: *list, Counts: &c}, nil
}
