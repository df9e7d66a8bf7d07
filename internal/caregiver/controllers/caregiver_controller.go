package controllers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/caregiver-backend/internal/caregiver/models"
	"github.com/c14220110/caregiver-backend/internal/caregiver/services"
	common "github.com/c14220110/caregiver-backend/internal/common/controllers"
	commonModels "github.com/c14220110/caregiver-backend/internal/common/models"
)

type CaregiverController struct {
	Service *services.CaregiverService
	Logger  *slog.Logger
}

func NewCaregiverController(service *services.CaregiverService, logger *slog.Logger) *CaregiverController {
	return &CaregiverController{Service: service, Logger: logger}
}

func author(c echo.Context) (models.Author, bool) {
	username, name, ok := common.Actor(c)
	return models.Author{Username: username, Name: name}, ok
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, commonModels.NewResponse(http.StatusUnauthorized, "invalid or missing token claims", nil))
}

func (cc *CaregiverController) fail(c echo.Context, msg string, err error) error {
	status := common.StatusFor(err, services.ErrNoteNotFound, services.ErrNotNoteAuthor)
	return common.WriteError(c, cc.Logger, status, msg, err)
}

// RecordNote: POST /api/caregiver/notes
func (cc *CaregiverController) RecordNote(c echo.Context) error {
	a, ok := author(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, commonModels.NewResponse(http.StatusBadRequest, "invalid request payload: "+err.Error(), nil))
	}

	id, err := cc.Service.RecordNote(c.Request().Context(), a, req)
	if err != nil {
		return cc.fail(c, "gagal mencatat note", err)
	}
	return c.JSON(http.StatusCreated, commonModels.NewResponse(http.StatusCreated, "Note recorded", models.NoteRecorded{IDOfNoteJustRecorded: id}))
}

// EditNote: PUT /api/caregiver/notes/:id
func (cc *CaregiverController) EditNote(c echo.Context) error {
	a, ok := author(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, commonModels.NewResponse(http.StatusBadRequest, "invalid request payload: "+err.Error(), nil))
	}

	note, err := cc.Service.EditNote(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return cc.fail(c, "gagal mengubah note", err)
	}
	return c.JSON(http.StatusOK, commonModels.NewResponse(http.StatusOK, "Note updated", note))
}

// DeleteNote: DELETE /api/caregiver/notes/:id?patient_name=
func (cc *CaregiverController) DeleteNote(c echo.Context) error {
	a, ok := author(c)
	if !ok {
		return unauthorized(c)
	}
	if err := cc.Service.DeleteNote(c.Request().Context(), a, c.QueryParam("patient_name"), c.Param("id")); err != nil {
		return cc.fail(c, "gagal menghapus note", err)
	}
	return c.JSON(http.StatusOK, commonModels.NewResponse(http.StatusOK, "Note deleted", nil))
}

// RecordShiftValue: POST /api/caregiver/shift-record
func (cc *CaregiverController) RecordShiftValue(c echo.Context) error {
	a, ok := author(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.ShiftRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, commonModels.NewResponse(http.StatusBadRequest, "invalid request payload: "+err.Error(), nil))
	}

	saved, err := cc.Service.RecordShiftValue(c.Request().Context(), a, req)
	if err != nil {
		return cc.fail(c, "gagal menyimpan record shift", err)
	}
	return c.JSON(http.StatusOK, commonModels.NewResponse(http.StatusOK, "Shift record saved", saved))
}

// CareInstructions: GET /api/caregiver/care-instructions?patient_name=
func (cc *CaregiverController) CareInstructions(c echo.Context) error {
	list, err := cc.Service.CareInstructions(c.Request().Context(), c.QueryParam("patient_name"))
	if err != nil {
		return cc.fail(c, "gagal mengambil care instructions", err)
	}
	return c.JSON(http.StatusOK, commonModels.NewResponse(http.StatusOK, "OK", list))
}
