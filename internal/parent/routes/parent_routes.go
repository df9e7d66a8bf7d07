package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/caregiver-backend/internal/common/middlewares"
	"github.com/c14220110/caregiver-backend/internal/parent/controllers"
	"github.com/c14220110/caregiver-backend/pkg/utils"
)

func RegisterParentRoutes(api *echo.Group, pc *controllers.ParentController, issuer *utils.TokenIssuer) {
	g := api.Group("/parent", middlewares.JWTMiddleware(issuer))
	parentOnly := middlewares.RequireRole(utils.RoleParent)

	g.POST("/notes", pc.RecordNote, parentOnly)
	g.POST("/care-instructions", pc.AddCareInstruction, parentOnly)
	g.POST("/appointments", pc.AddAppointment, parentOnly)
	// jadwal juga dibaca caregiver
	g.GET("/appointments", pc.UpcomingAppointments)
}
