package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	apperrors "taskforge.com/taskforge/internal/errors"
	model "taskforge.com/taskforge/internal/models"
)

const principalKey = "principal"

// Authenticator resolves a session token to the user it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// Authenticate rejects requests without a live session cookie and stores the
// resolved user on the context.
func Authenticate(auth Authenticator, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return apperrors.ErrUnauthenticated
			}

			user, err := auth.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}

			c.Set(principalKey, user)
			return next(c)
		}
	}
}

// Principal returns the authenticated user, or nil outside Authenticate.
func Principal(c echo.Context) *model.User {
	user, _ := c.Get(principalKey).(*model.User)
	return user
}
