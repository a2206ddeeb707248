package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home renders the landing page linking to signup and login.
func Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}
