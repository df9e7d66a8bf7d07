package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/caregiver-backend/internal/account/controllers"
	"github.com/c14220110/caregiver-backend/internal/common/middlewares"
	"github.com/c14220110/caregiver-backend/pkg/utils"
)

func RegisterAccountRoutes(api *echo.Group, ac *controllers.AccountController, issuer *utils.TokenIssuer) {
	api.POST("/login", ac.Login) // Tidak pakai JWT
	api.GET("/me", ac.Me, middlewares.JWTMiddleware(issuer))
}
