package repository

import (
	"context"

	"gorm.io/gorm"

	model "taskforge.com/taskforge/internal/models"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) ListOwned(ctx context.Context, ownerID uint) ([]model.Tag, error) {
	tags := []model.Tag{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name asc").Order("id asc").
		Find(&tags).Error
	return tags, err
}

func (r *TagRepository) FindOwned(ctx context.Context, ownerID, id uint) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FilterOwned keeps only the ids that name tags of ownerID. Unknown and foreign
// ids are dropped without error.
func (r *TagRepository) FilterOwned(ctx context.Context, ownerID uint, ids []uint) ([]model.Tag, error) {
	tags := []model.Tag{}
	if len(ids) == 0 {
		return tags, nil
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", ownerID, ids).
		Order("id asc").
		Find(&tags).Error
	return tags, err
}

func (r *TagRepository) Create(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Omit("Tasks").Create(tag).Error
}

func (r *TagRepository) Update(ctx context.Context, ownerID, id uint, fields map[string]interface{}) (bool, error) {
	if len(fields) == 0 {
		return true, nil
	}

	res := r.db.WithContext(ctx).Model(&model.Tag{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TagRepository) Delete(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(tag).Association("Tasks").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Tag{}, tag.ID).Error
	})
}

// TaskCounts returns how many tasks carry each tag.
func (r *TagRepository) TaskCounts(ctx context.Context, tagIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(tagIDs))
	if len(tagIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TagID uint
		Total int64
	}
	err := r.db.WithContext(ctx).Table("tag_task").
		Select("tag_id, COUNT(*) AS total").
		Where("tag_id IN ?", tagIDs).
		Group("tag_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TagID] = row.Total
	}
	return counts, nil
}
