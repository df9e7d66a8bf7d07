package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/caregiver-backend/internal/common/middlewares"
	"github.com/c14220110/caregiver-backend/internal/roster/controllers"
	"github.com/c14220110/caregiver-backend/pkg/utils"
)

func RegisterRosterRoutes(api *echo.Group, rc *controllers.RosterController, issuer *utils.TokenIssuer) {
	api.GET("/people", rc.GetPeople, middlewares.JWTMiddleware(issuer))
	api.GET("/patients", rc.ListPatients, middlewares.JWTMiddleware(issuer))
}
