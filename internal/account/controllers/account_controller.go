package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/caregiver-backend/internal/account/models"
	"github.com/c14220110/caregiver-backend/internal/account/services"
	"github.com/c14220110/caregiver-backend/internal/common/middlewares"
	commonModels "github.com/c14220110/caregiver-backend/internal/common/models"
	"github.com/c14220110/caregiver-backend/pkg/utils"
)

type AccountController struct {
	Service *services.AccountService
	Issuer  *utils.TokenIssuer
	Logger  *slog.Logger
}

func NewAccountController(service *services.AccountService, issuer *utils.TokenIssuer, logger *slog.Logger) *AccountController {
	return &AccountController{Service: service, Issuer: issuer, Logger: logger}
}

// Login menangani permintaan login caregiver maupun keluarga (parent).
func (ac *AccountController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, commonModels.NewResponse(http.StatusBadRequest, "invalid request payload: "+err.Error(), nil))
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, commonModels.NewResponse(http.StatusBadRequest, "username dan password harus diisi", nil))
	}

	acc, err := ac.Service.Authenticate(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, commonModels.NewResponse(http.StatusUnauthorized, "Invalid username or password", nil))
	}
	if err != nil {
		ac.Logger.Error("login gagal", "username", req.Username, "error", err)
		return c.JSON(http.StatusInternalServerError, commonModels.NewResponse(http.StatusInternalServerError, "failed to login: "+err.Error(), nil))
	}

	token, exp, err := ac.Issuer.Generate(acc.Username, acc.DisplayName, acc.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, commonModels.NewResponse(http.StatusInternalServerError, "Failed to generate token", nil))
	}

	ac.Logger.Info("login berhasil", "username", acc.Username, "role", acc.Role)
	return c.JSON(http.StatusOK, commonModels.NewResponse(http.StatusOK, "Login successful", models.LoginResponse{
		Token:     token,
		ExpiresAt: exp.UTC().Format(time.RFC3339),
		Account:   *acc,
	}))
}

// Me mengembalikan akun dari token yang sedang dipakai.
func (ac *AccountController) Me(c echo.Context) error {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, commonModels.NewResponse(http.StatusUnauthorized, "invalid or missing token claims", nil))
	}
	acc, err := ac.Service.Get(c.Request().Context(), claims.Username)
	if errors.Is(err, services.ErrAccountNotFound) {
		return c.JSON(http.StatusNotFound, commonModels.NewResponse(http.StatusNotFound, "akun tidak ditemukan", nil))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, commonModels.NewResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, commonModels.NewResponse(http.StatusOK, "OK", acc))
}
