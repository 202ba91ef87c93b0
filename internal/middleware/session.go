package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinemagico/customer-api/internal/utils"
)

const sessionCookie = "cmx_session"

// Session attaches an opaque session id to every request, issuing one
// in a cookie on first contact.  The cart store keys carts by this id,
// so guests can fill a cart before ever signing in.  The id carries no
// identity claims; it only names a cart.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ck, err := c.Cookie(sessionCookie); err == nil && ck.Value != "" {
				c.Set("session_id", ck.Value)
				return next(c)
			}
			sid, err := utils.RandomHex(16)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session init failed"})
			}
			c.SetCookie(&http.Cookie{
				Name:     sessionCookie,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set("session_id", sid)
			return next(c)
		}
	}
}

// SessionID returns the session id set by Session.
func SessionID(c echo.Context) string {
	if s, ok := c.Get("session_id").(string); ok {
		return s
	}
	return ""
}
