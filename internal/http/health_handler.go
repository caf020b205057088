package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":      "ok",
		"version":     h.app.Version,
		"timestamp":   h.now().UTC(),
		"service":     h.app.Name,
		"environment": h.app.Environment,
	})
}
