package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	model "taskforge.com/taskforge/internal/models"
)

type TaskListRepository struct {
	db *gorm.DB
}

// ListCounts is the per-list task aggregate.
type ListCounts struct {
	ListID    uint
	Total     int64
	Completed int64
}

func NewTaskListRepository(db *gorm.DB) *TaskListRepository {
	return &TaskListRepository{db: db}
}

func (r *TaskListRepository) ListOwned(ctx context.Context, ownerID uint) ([]model.TaskList, error) {
	lists := []model.TaskList{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("position asc").Order("id asc").
		Find(&lists).Error
	return lists, err
}

func (r *TaskListRepository) FindOwned(ctx context.Context, ownerID, id uint) (*model.TaskList, error) {
	var list model.TaskList
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *TaskListRepository) ExistsOwned(ctx context.Context, ownerID, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaskList{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Count(&count).Error
	return count > 0, err
}

// NextPosition is scoped to the owner only.
func (r *TaskListRepository) NextPosition(ctx context.Context, ownerID uint) (int, error) {
	var maxPosition sql.NullInt64
	err := r.db.WithContext(ctx).Model(&model.TaskList{}).
		Where("user_id = ?", ownerID).
		Select("MAX(position)").
		Row().Scan(&maxPosition)
	if err != nil {
		return 0, err
	}
	if !maxPosition.Valid {
		return 0, nil
	}
	return int(maxPosition.Int64) + 1, nil
}

func (r *TaskListRepository) Create(ctx context.Context, list *model.TaskList) error {
	return r.db.WithContext(ctx).Omit("Tasks").Create(list).Error
}

func (r *TaskListRepository) Update(ctx context.Context, ownerID, id uint, fields map[string]interface{}) (bool, error) {
	if len(fields) == 0 {
		return true, nil
	}

	res := r.db.WithContext(ctx).Model(&model.TaskList{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the list and detaches its tasks; the tasks themselves survive.
func (r *TaskListRepository) Delete(ctx context.Context, list *model.TaskList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Task{}).
			Where("list_id = ?", list.ID).
			Update("list_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TaskList{}, list.ID).Error
	})
}

// Counts aggregates task totals for the given lists in one grouped query.
// Lists without tasks are absent from the result.
func (r *TaskListRepository) Counts(ctx context.Context, listIDs []uint) (map[uint]ListCounts, error) {
	counts := make(map[uint]ListCounts, len(listIDs))
	if len(listIDs) == 0 {
		return counts, nil
	}

	var rows []ListCounts
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("list_id AS list_id, COUNT(*) AS total, SUM(CASE WHEN completed THEN 1 ELSE 0 END) AS completed").
		Where("list_id IN ?", listIDs).
		Group("list_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ListID] = row
	}
	return counts, nil
}
