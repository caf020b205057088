package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskforge.com/taskforge/internal/data_models"
	apperrors "taskforge.com/taskforge/internal/errors"
	"taskforge.com/taskforge/internal/http/resources"
	"taskforge.com/taskforge/internal/http/validators"
)

func (h *Handler) ListTaskLists(c echo.Context) error {
	inc := validators.ParseIncludes(c.QueryParam("include"))

	lists, err := h.taskLists.ListTaskLists(c.Request().Context(), principal(c).ID, inc.TasksCount)
	if err != nil {
		return err
	}

	meta := h.meta("")
	meta["total"] = len(lists)
	return h.respond(c, http.StatusOK, resources.NewTaskLists(lists), meta)
}

func (h *Handler) GetTaskList(c echo.Context) error {
	id, err := pathID(c, apperrors.ErrTaskListNotFound)
	if err != nil {
		return err
	}

	inc := validators.ParseIncludes(c.QueryParam("include"))
	list, err := h.taskLists.GetTaskList(c.Request().Context(), principal(c).ID, id, inc.Tasks)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, resources.NewTaskList(*list), nil)
}

func (h *Handler) CreateTaskList(c echo.Context) error {
	var req dto.CreateTaskListRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	list, err := h.taskLists.CreateTaskList(c.Request().Context(), principal(c).ID, req)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusCreated, resources.NewTaskList(*list), h.meta("Task list created successfully"))
}

func (h *Handler) UpdateTaskList(c echo.Context) error {
	id, err := pathID(c, apperrors.ErrTaskListNotFound)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskListRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	list, err := h.taskLists.UpdateTaskList(c.Request().Context(), principal(c).ID, id, req)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, resources.NewTaskList(*list), h.meta("Task list updated successfully"))
}

func (h *Handler) DeleteTaskList(c echo.Context) error {
	id, err := pathID(c, apperrors.ErrTaskListNotFound)
	if err != nil {
		return err
	}

	if err := h.taskLists.DeleteTaskList(c.Request().Context(), principal(c).ID, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ReorderTaskLists(c echo.Context) error {
	var req dto.ReorderTaskListsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.taskLists.ReorderTaskLists(c.Request().Context(), principal(c).ID, req.Lists)
	if err != nil {
		return err
	}

	meta := h.meta("Task lists reordered successfully")
	meta["updated_count"] = updated
	return c.JSON(http.StatusOK, echo.Map{"meta": meta})
}
