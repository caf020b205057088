package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "taskforge.com/taskforge/internal/errors"
)

// ErrorHandler renders every error as the {error, meta} envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ex := toException(err)
	if ex.StatusCode >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	body := errorBody{
		Error: errorPayload{
			Message: ex.Message,
			Code:    ex.Code,
			Details: ex.Details,
		},
		Meta: timestamp(),
	}
	if ex == apperrors.ErrEndpointNotFound {
		body.Error.RequestedPath = strings.TrimPrefix(c.Request().URL.Path, "/")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(ex.StatusCode)
	} else {
		err = c.JSON(ex.StatusCode, body)
	}
	if err != nil {
		log.Printf("failed to write error response: %v", err)
	}
}

func toException(err error) *apperrors.Exception {
	if ex := apperrors.AsException(err); ex != apperrors.ErrInternal {
		return ex
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound:
			return apperrors.ErrEndpointNotFound
		case http.StatusMethodNotAllowed:
			return apperrors.ErrMethodNotAllowed
		case http.StatusTooManyRequests:
			return apperrors.ErrTooManyRequests
		}
		if he.Code < http.StatusInternalServerError {
			return &apperrors.Exception{
				Message:    fmt.Sprint(he.Message),
				Code:       strings.ToUpper(strings.ReplaceAll(http.StatusText(he.Code), " ", "_")),
				StatusCode: he.Code,
			}
		}
	}

	return apperrors.ErrInternal
}
