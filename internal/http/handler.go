package http

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "taskforge.com/taskforge/internal/errors"
	middleware "taskforge.com/taskforge/internal/http/middlewares"
	model "taskforge.com/taskforge/internal/models"
	"taskforge.com/taskforge/internal/services"
)

type AppInfo struct {
	Name        string
	Version     string
	Environment string
}

type SessionCookie struct {
	Name   string
	Secure bool
}

type Services struct {
	Auth      *services.AuthService
	Tasks     *services.TaskService
	TaskLists *services.TaskListService
	Tags      *services.TagService
}

type Handler struct {
	auth      *services.AuthService
	tasks     *services.TaskService
	taskLists *services.TaskListService
	tags      *services.TagService
	now       services.Clock
	app       AppInfo
	cookie    SessionCookie
}

func NewHandler(svc Services, now services.Clock, app AppInfo, cookie SessionCookie) *Handler {
	return &Handler{
		auth:      svc.Auth,
		tasks:     svc.Tasks,
		taskLists: svc.TaskLists,
		tags:      svc.Tags,
		now:       now,
		app:       app,
		cookie:    cookie,
	}
}

func principal(c echo.Context) *model.User {
	return middleware.Principal(c)
}

// pathID parses the :id parameter. Malformed ids are reported as notFound.
func pathID(c echo.Context, notFound error) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, notFound
	}
	return uint(id), nil
}

func bind(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return apperrors.ErrInvalidJSON
	}
	return nil
}

func requestURL(c echo.Context) *url.URL {
	r := c.Request()
	return &url.URL{
		Scheme:   c.Scheme(),
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	}
}
