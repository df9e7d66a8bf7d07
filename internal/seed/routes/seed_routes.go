package routes

import (
	"github.com/labstack/echo/v4"

	common "github.com/c14220110/caregiver-backend/internal/common/controllers"
	"github.com/c14220110/caregiver-backend/internal/seed/controllers"
)

// RegisterSeedRoutes tidak dipasang di APP_ENV=production.
func RegisterSeedRoutes(api *echo.Group, sc *controllers.SeedController) {
	api.POST("/sample-data", sc.CreateSampleData)
	api.OPTIONS("/sample-data", common.Preflight)
	api.DELETE("/sample-data", sc.ResetSampleData)
}
