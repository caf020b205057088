package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskforge.com/taskforge/internal/data_models"
	apperrors "taskforge.com/taskforge/internal/errors"
	"taskforge.com/taskforge/internal/http/resources"
	"taskforge.com/taskforge/internal/http/validators"
)

var allRelations = dto.Includes{List: true, Tags: true}

func (h *Handler) ListTasks(c echo.Context) error {
	q, err := validators.ParseTaskQuery(c.QueryParams())
	if err != nil {
		return err
	}

	page, err := h.tasks.ListTasks(c.Request().Context(), principal(c).ID, q)
	if err != nil {
		return err
	}

	links, meta := resources.NewPage(requestURL(c), page.Page, page.PerPage, len(page.Tasks), page.Total)

	return c.JSON(http.StatusOK, echo.Map{
		"data":  resources.NewTasks(page.Tasks, q.Include),
		"links": links,
		"meta":  meta,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := pathID(c, apperrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	inc := validators.ParseIncludes(c.QueryParam("include"))
	task, err := h.tasks.GetTask(c.Request().Context(), principal(c).ID, id, inc)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, resources.NewTask(*task, inc), nil)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), principal(c).ID, req)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusCreated, resources.NewTask(*task, allRelations), h.meta("Task created successfully"))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := pathID(c, apperrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	ownerID := principal(c).ID

	// Missing or foreign tasks report not-found before any field errors.
	if _, err := h.tasks.GetTask(ctx, ownerID, id, dto.Includes{}); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.tasks.UpdateTask(ctx, ownerID, id, req)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, resources.NewTask(*task, allRelations), h.meta("Task updated successfully"))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := pathID(c, apperrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	if err := h.tasks.DeleteTask(c.Request().Context(), principal(c).ID, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ToggleTask(c echo.Context) error {
	id, err := pathID(c, apperrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	result, err := h.tasks.ToggleTask(c.Request().Context(), principal(c).ID, id)
	if err != nil {
		return err
	}

	message := "Task marked as pending"
	if result.Task.Completed {
		message = "Task marked as completed"
	}

	return h.respond(c, http.StatusOK, resources.NewTaskToggle(result), h.meta(message))
}

func (h *Handler) ReorderTasks(c echo.Context) error {
	var req dto.ReorderTasksRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.tasks.ReorderTasks(c.Request().Context(), principal(c).ID, req.Tasks)
	if err != nil {
		return err
	}

	meta := h.meta("Tasks reordered successfully")
	meta["updated_count"] = updated
	return c.JSON(http.StatusOK, echo.Map{"meta": meta})
}
