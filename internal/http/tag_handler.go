package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskforge.com/taskforge/internal/data_models"
	apperrors "taskforge.com/taskforge/internal/errors"
	"taskforge.com/taskforge/internal/http/resources"
	"taskforge.com/taskforge/internal/http/validators"
)

func (h *Handler) ListTags(c echo.Context) error {
	inc := validators.ParseIncludes(c.QueryParam("include"))

	tags, err := h.tags.ListTags(c.Request().Context(), principal(c).ID, inc.TasksCount)
	if err != nil {
		return err
	}

	meta := h.meta("")
	meta["total"] = len(tags)
	return h.respond(c, http.StatusOK, resources.NewTags(tags), meta)
}

func (h *Handler) CreateTag(c echo.Context) error {
	var req dto.CreateTagRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tag, err := h.tags.CreateTag(c.Request().Context(), principal(c).ID, req)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusCreated, resources.NewTag(*tag), h.meta("Tag created successfully"))
}

func (h *Handler) UpdateTag(c echo.Context) error {
	id, err := pathID(c, apperrors.ErrTagNotFound)
	if err != nil {
		return err
	}

	var req dto.UpdateTagRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tag, err := h.tags.UpdateTag(c.Request().Context(), principal(c).ID, id, req)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, resources.NewTag(*tag), h.meta("Tag updated successfully"))
}

func (h *Handler) DeleteTag(c echo.Context) error {
	id, err := pathID(c, apperrors.ErrTagNotFound)
	if err != nil {
		return err
	}

	if err := h.tags.DeleteTag(c.Request().Context(), principal(c).ID, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
