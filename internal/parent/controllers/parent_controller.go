package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	common "github.com/c14220110/caregiver-backend/internal/common/controllers"
	commonModels "github.com/c14220110/caregiver-backend/internal/common/models"
	"github.com/c14220110/caregiver-backend/internal/parent/models"
	"github.com/c14220110/caregiver-backend/internal/parent/services"
)

type ParentController struct {
	Service *services.ParentService
	Logger  *slog.Logger
}

func NewParentController(service *services.ParentService, logger *slog.Logger) *ParentController {
	return &ParentController{Service: service, Logger: logger}
}

func badPayload(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, commonModels.NewResponse(http.StatusBadRequest, "invalid request payload: "+err.Error(), nil))
}

// RecordNote: POST /api/parent/notes
func (pc *ParentController) RecordNote(c echo.Context) error {
	_, name, _ := common.Actor(c)
	var req models.NoteRequest
	if err := c.Bind(&req); err != nil {
		return badPayload(c, err)
	}
	id, err := pc.Service.RecordNote(c.Request().Context(), name, req)
	if err != nil {
		return common.WriteError(c, pc.Logger, common.StatusFor(err, nil, nil), "gagal mencatat note", err)
	}
	return c.JSON(http.StatusCreated, commonModels.NewResponse(http.StatusCreated, "Note recorded", map[string]string{"id_of_note_just_recorded": id}))
}

// AddCareInstruction: POST /api/parent/care-instructions
func (pc *ParentController) AddCareInstruction(c echo.Context) error {
	_, name, _ := common.Actor(c)
	var req models.CareInstructionRequest
	if err := c.Bind(&req); err != nil {
		return badPayload(c, err)
	}
	ci, err := pc.Service.AddCareInstruction(c.Request().Context(), name, req)
	if err != nil {
		return common.WriteError(c, pc.Logger, common.StatusFor(err, nil, nil), "gagal menyimpan care instruction", err)
	}
	return c.JSON(http.StatusCreated, commonModels.NewResponse(http.StatusCreated, "Care instruction added", ci))
}

// AddAppointment: POST /api/parent/appointments
func (pc *ParentController) AddAppointment(c echo.Context) error {
	var req models.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return badPayload(c, err)
	}
	appt, err := pc.Service.AddAppointment(c.Request().Context(), req)
	if err != nil {
		return common.WriteError(c, pc.Logger, common.StatusFor(err, nil, nil), "gagal menyimpan janji temu", err)
	}
	return c.JSON(http.StatusCreated, commonModels.NewResponse(http.StatusCreated, "Appointment added", appt))
}

// UpcomingAppointments: GET /api/parent/appointments?patient_name=&days=7
func (pc *ParentController) UpcomingAppointments(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, commonModels.NewResponse(http.StatusBadRequest, "days harus bilangan bulat positif", nil))
		}
		days = n
	}
	list, err := pc.Service.UpcomingAppointments(c.Request().Context(), c.QueryParam("patient_name"), days)
	if err != nil {
		return common.WriteError(c, pc.Logger, common.StatusFor(err, nil, nil), "gagal mengambil janji temu", err)
	}
	return c.JSON(http.StatusOK, commonModels.NewResponse(http.StatusOK, "OK", list))
}
