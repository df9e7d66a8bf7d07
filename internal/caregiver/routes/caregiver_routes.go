package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/caregiver-backend/internal/caregiver/controllers"
	"github.com/c14220110/caregiver-backend/internal/common/middlewares"
	"github.com/c14220110/caregiver-backend/pkg/utils"
)

// Semua endpoint caregiver butuh JWT dengan role caregiver.
func RegisterCaregiverRoutes(api *echo.Group, cc *controllers.CaregiverController, issuer *utils.TokenIssuer) {
	g := api.Group("/caregiver", middlewares.JWTMiddleware(issuer), middlewares.RequireRole(utils.RoleCaregiver))

	g.POST("/notes", cc.RecordNote)
	g.PUT("/notes/:id", cc.EditNote)
	g.DELETE("/notes/:id", cc.DeleteNote)
	g.POST("/shift-record", cc.RecordShiftValue)
	g.GET("/care-instructions", cc.CareInstructions)
}
