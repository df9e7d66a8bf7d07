package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Preflight menjawab CORS preflight dengan 204 tanpa body.
func Preflight(c echo.Context) error {
	h := c.Response().Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	return c.NoContent(http.StatusNoContent)
}
