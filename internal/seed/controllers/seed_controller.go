package controllers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/caregiver-backend/internal/seed/services"
)

type SeedController struct {
	Service *services.SeedService
	Logger  *slog.Logger
}

func NewSeedController(service *services.SeedService, logger *slog.Logger) *SeedController {
	return &SeedController{Service: service, Logger: logger}
}

// CreateSampleData: POST /api/sample-data. Response tanpa envelope, sama seperti endpoint summary.
func (sc *SeedController) CreateSampleData(c echo.Context) error {
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")

	res, err := sc.Service.Seed(c.Request().Context())
	if err != nil {
		sc.Logger.Error("seed gagal", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

// ResetSampleData: DELETE /api/sample-data
func (sc *SeedController) ResetSampleData(c echo.Context) error {
	if err := sc.Service.Reset(c.Request().Context()); err != nil {
		sc.Logger.Error("reset data demo gagal", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
