package controllers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	common "github.com/c14220110/caregiver-backend/internal/common/controllers"
	commonModels "github.com/c14220110/caregiver-backend/internal/common/models"
	"github.com/c14220110/caregiver-backend/internal/roster/services"
)

type RosterController struct {
	Service *services.RosterService
	Logger  *slog.Logger
}

func NewRosterController(service *services.RosterService, logger *slog.Logger) *RosterController {
	return &RosterController{Service: service, Logger: logger}
}

// GetPeople: GET /api/people?patient_name=John
func (rc *RosterController) GetPeople(c echo.Context) error {
	people, err := rc.Service.People(c.Request().Context(), c.QueryParam("patient_name"))
	if err != nil {
		status := common.StatusFor(err, services.ErrPatientNotFound, nil)
		return common.WriteError(c, rc.Logger, status, "gagal mengambil roster", err)
	}
	return c.JSON(http.StatusOK, commonModels.NewResponse(http.StatusOK, "OK", people))
}

// ListPatients: GET /api/patients
func (rc *RosterController) ListPatients(c echo.Context) error {
	names, err := rc.Service.Patients(c.Request().Context())
	if err != nil {
		return common.WriteError(c, rc.Logger, http.StatusInternalServerError, "gagal mengambil daftar pasien", err)
	}
	return c.JSON(http.StatusOK, commonModels.NewResponse(http.StatusOK, "OK", names))
}
