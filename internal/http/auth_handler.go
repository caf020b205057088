package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "taskforge.com/taskforge/internal/data_models"
	"taskforge.com/taskforge/internal/http/resources"
)

// CSRFCookie is a no-op endpoint; the CSRF middleware sets the XSRF-TOKEN cookie.
func (h *Handler) CSRFCookie(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.auth.Register(ctx, req)
	if err != nil {
		return err
	}

	if err := h.startSession(c, user.ID, false); err != nil {
		return err
	}

	return h.respond(c, http.StatusCreated, resources.NewUser(user), h.meta("Registration successful"))
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	if err := h.startSession(c, user.ID, req.Remember); err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, resources.NewUser(user), h.meta("Login successful"))
}

func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil {
		if err := h.auth.EndSession(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	h.setSessionCookie(c, "", -1)
	return c.JSON(http.StatusOK, echo.Map{"meta": h.meta("Logged out successfully")})
}

func (h *Handler) CurrentUser(c echo.Context) error {
	return h.respond(c, http.StatusOK, resources.NewUser(principal(c)), h.meta(""))
}

func (h *Handler) startSession(c echo.Context, userID uint, remember bool) error {
	token, ttl, err := h.auth.StartSession(c.Request().Context(), userID, remember)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token, ttl)
	return nil
}

// setSessionCookie writes the session cookie; a negative ttl expires it.
func (h *Handler) setSessionCookie(c echo.Context, token string, ttl time.Duration) {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	} else {
		cookie.MaxAge = int(ttl / time.Second)
		cookie.Expires = h.now().Add(ttl)
	}
	c.SetCookie(cookie)
}
