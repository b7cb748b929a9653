package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogwalk/dogwalk-api/internal/api/middleware"
)

// ctxAccountID extracts the account ID injected by the Auth middleware.
// Its presence proves the middleware ran; an empty value means a protected
// route was wired without it.
func ctxAccountID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextAccountID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
