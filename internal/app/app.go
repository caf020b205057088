package app

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	config "taskforge.com/taskforge/internal/configs"
	httpapi "taskforge.com/taskforge/internal/http"
	repository "taskforge.com/taskforge/internal/repositories"
	"taskforge.com/taskforge/internal/services"
	"taskforge.com/taskforge/internal/sessions"
)

// Options carries dependencies that tests want to override.
type Options struct {
	Clock    services.Clock
	HashCost int
}

// New wires repositories, services and routes onto a fresh echo instance.
func New(cfg config.Config, db *gorm.DB, store sessions.Store, opts Options) *echo.Echo {
	now := opts.Clock
	if now == nil {
		now = services.SystemClock(cfg.Location)
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	listRepo := repository.NewTaskListRepository(db)
	tagRepo := repository.NewTagRepository(db)

	authService := services.NewAuthService(userRepo, store, services.AuthOptions{
		SessionTTL:  cfg.SessionTTL,
		RememberTTL: cfg.SessionRememberTTL,
		HashCost:    opts.HashCost,
	})

	handler := httpapi.NewHandler(
		httpapi.Services{
			Auth:      authService,
			Tasks:     services.NewTaskService(taskRepo, listRepo, tagRepo, now),
			TaskLists: services.NewTaskListService(listRepo, taskRepo),
			Tags:      services.NewTagService(tagRepo),
		},
		now,
		httpapi.AppInfo{
			Name:        cfg.AppName,
			Version:     cfg.AppVersion,
			Environment: cfg.AppEnv,
		},
		httpapi.SessionCookie{
			Name:   cfg.SessionCookie,
			Secure: cfg.SessionSecureCookie,
		},
	)

	e := echo.New()
	e.HideBanner = true

	httpapi.Register(e, handler, httpapi.RouteOptions{
		RateLimitPerMinute: cfg.RateLimit,
		CSRFEnabled:        cfg.CSRFEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SecureCookies:      cfg.SessionSecureCookie,
	})

	return e
}
