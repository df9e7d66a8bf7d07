package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/caregiver-backend/internal/shiftreport/models"
	"github.com/c14220110/caregiver-backend/internal/shiftreport/services"
	"github.com/c14220110/caregiver-backend/pkg/metrics"
)

type ShiftSummaryController struct {
	Service *services.ShiftSummaryService
	Logger  *slog.Logger
}

func NewShiftSummaryController(service *services.ShiftSummaryService, logger *slog.Logger) *ShiftSummaryController {
	return &ShiftSummaryController{Service: service, Logger: logger}
}

// GetShiftStartSummaryHandler menerima body JSON
// {"patient_name": "John", "current_date": "2025-10-27T07:00:00", "caregiver_taking_over": "Alice"}.
// Error dikirim sebagai {"error": "..."} dengan status 400 atau 500.
func (sc *ShiftSummaryController) GetShiftStartSummaryHandler(c echo.Context) error {
	start := time.Now()
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")

	// body yang bukan JSON diperlakukan sebagai body kosong
	var req models.SummaryRequest
	_ = json.NewDecoder(c.Request().Body).Decode(&req)

	summary, err := sc.Service.HandleRequest(c.Request().Context(), req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			metrics.RecordSummaryRequest("bad_request")
			return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": verr.Message})
		}
		metrics.RecordSummaryRequest("error")
		sc.Logger.Error("gagal membangun shift summary", "patient_name", req.PatientID(), "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}

	metrics.RecordSummaryRequest("ok")
	metrics.ObserveSummaryDuration(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, models.SummaryResponse{ShiftStartSummary: summary})
}
