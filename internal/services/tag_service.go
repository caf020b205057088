package services

import (
	"context"

	"taskforge.com/taskforge/internal/constants"
	dto "taskforge.com/taskforge/internal/data_models"
	apperrors "taskforge.com/taskforge/internal/errors"
	model "taskforge.com/taskforge/internal/models"
	repository "taskforge.com/taskforge/internal/repositories"
)

type TagService struct {
	tags *repository.TagRepository
}

type TagDetails struct {
	Tag        model.Tag
	TasksCount *int64
}

func NewTagService(tags *repository.TagRepository) *TagService {
	return &TagService{tags: tags}
}

func (s *TagService) ListTags(ctx context.Context, ownerID uint, withCounts bool) ([]TagDetails, error) {
	tags, err := s.tags.ListOwned(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]TagDetails, len(tags))
	ids := make([]uint, len(tags))
	for i, tag := range tags {
		out[i] = TagDetails{Tag: tag}
		ids[i] = tag.ID
	}

	if !withCounts {
		return out, nil
	}

	counts, err := s.tags.TaskCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		n := counts[out[i].Tag.ID]
		out[i].TasksCount = &n
	}
	return out, nil
}

func (s *TagService) CreateTag(ctx context.Context, ownerID uint, req dto.CreateTagRequest) (*model.Tag, error) {
	tag := &model.Tag{
		UserID: ownerID,
		Name:   req.Name,
		Color:  constants.DefaultTagColor,
	}
	if req.Color.Valid {
		tag.Color = req.Color.Value
	}

	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) UpdateTag(ctx context.Context, ownerID, id uint, req dto.UpdateTagRequest) (*model.Tag, error) {
	tag, err := s.tags.FindOwned(ctx, ownerID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTagNotFound)
	}

	fields := map[string]interface{}{}
	if req.Name.Set {
		fields["name"] = req.Name.Value
	}
	if req.Color.Set {
		color := constants.DefaultTagColor
		if req.Color.Valid {
			color = req.Color.Value
		}
		fields["color"] = color
	}

	if _, err := s.tags.Update(ctx, ownerID, tag.ID, fields); err != nil {
		return nil, err
	}
	return s.tags.FindOwned(ctx, ownerID, id)
}

func (s *TagService) DeleteTag(ctx context.Context, ownerID, id uint) error {
	tag, err := s.tags.FindOwned(ctx, ownerID, id)
	if err != nil {
		return notFound(err, apperrors.ErrTagNotFound)
	}
	return s.tags.Delete(ctx, tag)
}
