package http

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	apperrors "taskforge.com/taskforge/internal/errors"
	middleware "taskforge.com/taskforge/internal/http/middlewares"
	"taskforge.com/taskforge/internal/http/validators"
)

type RouteOptions struct {
	RateLimitPerMinute int
	CSRFEnabled        bool
	CORSAllowedOrigins []string
	SecureCookies      bool
}

func Register(e *echo.Echo, h *Handler, opts RouteOptions) {
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = validators.NewRequestValidator(h.now)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Printf("%s %s %d %s request_id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))
	e.Use(echomw.Recover())

	if len(opts.CORSAllowedOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     opts.CORSAllowedOrigins,
			AllowCredentials: true,
			AllowHeaders: []string{
				echo.HeaderOrigin,
				echo.HeaderContentType,
				echo.HeaderAccept,
				echo.HeaderXRequestedWith,
				"X-XSRF-TOKEN",
			},
		}))
	}

	e.Use(middleware.RateLimiter(opts.RateLimitPerMinute, time.Minute))

	if opts.CSRFEnabled {
		e.Use(echomw.CSRFWithConfig(echomw.CSRFConfig{
			TokenLookup:    "header:X-XSRF-TOKEN",
			CookieName:     "XSRF-TOKEN",
			CookiePath:     "/",
			CookieSecure:   opts.SecureCookies,
			CookieSameSite: http.SameSiteLaxMode,
			ErrorHandler: func(err error, c echo.Context) error {
				return apperrors.ErrCSRFTokenMismatch
			},
		}))
	}

	authed := middleware.Authenticate(h.auth, h.cookie.Name)

	v1 := e.Group("/v1")

	v1.GET("/health", h.Health)
	v1.GET("/csrf-cookie", h.CSRFCookie)

	v1.POST("/auth/register", h.Register)
	v1.POST("/auth/login", h.Login)
	v1.POST("/auth/logout", h.Logout, authed)
	v1.GET("/auth/user", h.CurrentUser, authed)
	v1.GET("/me", h.CurrentUser, authed)

	v1.GET("/task-lists", h.ListTaskLists, authed)
	v1.POST("/task-lists", h.CreateTaskList, authed)
	v1.POST("/task-lists/reorder", h.ReorderTaskLists, authed)
	v1.GET("/task-lists/:id", h.GetTaskList, authed)
	v1.PUT("/task-lists/:id", h.UpdateTaskList, authed)
	v1.PATCH("/task-lists/:id", h.UpdateTaskList, authed)
	v1.DELETE("/task-lists/:id", h.DeleteTaskList, authed)

	v1.GET("/tasks", h.ListTasks, authed)
	v1.POST("/tasks", h.CreateTask, authed)
	v1.POST("/tasks/reorder", h.ReorderTasks, authed)
	v1.GET("/tasks/:id", h.GetTask, authed)
	v1.PUT("/tasks/:id", h.UpdateTask, authed)
	v1.PATCH("/tasks/:id", h.UpdateTask, authed)
	v1.DELETE("/tasks/:id", h.DeleteTask, authed)
	v1.POST("/tasks/:id/toggle", h.ToggleTask, authed)

	v1.GET("/tags", h.ListTags, authed)
	v1.POST("/tags", h.CreateTag, authed)
	v1.PUT("/tags/:id", h.UpdateTag, authed)
	v1.PATCH("/tags/:id", h.UpdateTag, authed)
	v1.DELETE("/tags/:id", h.DeleteTag, authed)
}
