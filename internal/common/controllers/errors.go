package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/caregiver-backend/internal/common/middlewares"
	commonModels "github.com/c14220110/caregiver-backend/internal/common/models"
)

// StatusFor memetakan error service ke status HTTP. notFound dan forbidden boleh nil.
func StatusFor(err error, notFound, forbidden error) int {
	var verr *commonModels.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case notFound != nil && errors.Is(err, notFound):
		return http.StatusNotFound
	case forbidden != nil && errors.Is(err, forbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// WriteError menulis error dalam envelope standar; error 500 juga dicatat ke log.
func WriteError(c echo.Context, logger *slog.Logger, status int, msg string, err error) error {
	if status >= http.StatusInternalServerError {
		logger.Error(msg, "path", c.Path(), "error", err)
	}
	return c.JSON(status, commonModels.NewResponse(status, msg+": "+err.Error(), nil))
}

// Actor mengembalikan username dan nama tampilan dari klaim JWT.
func Actor(c echo.Context) (username, name string, ok bool) {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		return "", "", false
	}
	name = claims.DisplayName
	if name == "" {
		name = claims.Username
	}
	return claims.Username, name, true
}
