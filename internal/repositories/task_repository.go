package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	dto "taskforge.com/taskforge/internal/data_models"
	model "taskforge.com/taskforge/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// NextPosition returns max(position)+1 within the owner's list scope, or 0 when
// the scope is empty. A nil listID scopes to tasks without a list.
func (r *TaskRepository) NextPosition(ctx context.Context, ownerID uint, listID *uint) (int, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{}).Where("user_id = ?", ownerID)
	if listID == nil {
		query = query.Where("list_id IS NULL")
	} else {
		query = query.Where("list_id = ?", *listID)
	}

	var maxPosition sql.NullInt64
	if err := query.Select("MAX(position)").Row().Scan(&maxPosition); err != nil {
		return 0, err
	}
	if !maxPosition.Valid {
		return 0, nil
	}
	return int(maxPosition.Int64) + 1, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Omit("Tags.*", "TaskList").Create(task).Error
}

func (r *TaskRepository) FindOwned(ctx context.Context, ownerID, id uint, inc dto.Includes) (*model.Task, error) {
	var task model.Task
	err := withIncludes(r.db.WithContext(ctx), inc).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Paginate returns one page of the owner's tasks plus the total row count of the
// filtered set.
func (r *TaskRepository) Paginate(ctx context.Context, ownerID uint, q dto.TaskQuery, due *dto.DueRange) ([]model.Task, int64, error) {
	var total int64
	if err := r.filtered(r.db.WithContext(ctx), ownerID, q, due).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tasks := []model.Task{}
	if total == 0 {
		return tasks, 0, nil
	}
	// Past the last page. Compared in pages so a huge page never multiplies out.
	pages := (total + int64(q.PerPage) - 1) / int64(q.PerPage)
	if int64(q.Page-1) >= pages {
		return tasks, total, nil
	}

	query := r.filtered(r.db.WithContext(ctx), ownerID, q, due)
	query = withIncludes(sorted(query, q), q.Include).
		Offset((q.Page - 1) * q.PerPage).
		Limit(q.PerPage)

	if err := query.Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func (r *TaskRepository) ListForList(ctx context.Context, ownerID, listID uint) ([]model.Task, error) {
	tasks := []model.Task{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND list_id = ?", ownerID, listID).
		Order("position asc").Order("id asc").
		Find(&tasks).Error
	return tasks, err
}

// Update writes the given columns on an owned task and reports whether a row matched.
func (r *TaskRepository) Update(ctx context.Context, ownerID, id uint, fields map[string]interface{}) (bool, error) {
	if len(fields) == 0 {
		return true, nil
	}

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ReplaceTags swaps the task's whole tag set for tags.
func (r *TaskRepository) ReplaceTags(ctx context.Context, task *model.Task, tags []model.Tag) error {
	assoc := r.db.WithContext(ctx).Model(task).Omit("Tags.*").Association("Tags")
	if len(tags) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(tags)
}

func (r *TaskRepository) Delete(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(task).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, task.ID).Error
	})
}
