package http

import (
	"time"

	"github.com/labstack/echo/v4"
)

type errorPayload struct {
	Message       string              `json:"message"`
	Code          string              `json:"code"`
	Details       map[string][]string `json:"details,omitempty"`
	RequestedPath string              `json:"requested_path,omitempty"`
}

type errorBody struct {
	Error errorPayload `json:"error"`
	Meta  echo.Map     `json:"meta"`
}

func (h *Handler) meta(message string) echo.Map {
	m := echo.Map{"timestamp": h.now().UTC()}
	if message != "" {
		m["message"] = message
	}
	return m
}

func (h *Handler) respond(c echo.Context, status int, data interface{}, meta echo.Map) error {
	body := echo.Map{"data": data}
	if meta != nil {
		body["meta"] = meta
	}
	return c.JSON(status, body)
}

func timestamp() echo.Map {
	return echo.Map{"timestamp": time.Now().UTC()}
}
