package routes

import (
	"github.com/labstack/echo/v4"

	common "github.com/c14220110/caregiver-backend/internal/common/controllers"
	"github.com/c14220110/caregiver-backend/internal/shiftreport/controllers"
)

// RegisterShiftSummaryRoutes tanpa JWT: dipanggil oleh agent percakapan.
func RegisterShiftSummaryRoutes(e *echo.Echo, sc *controllers.ShiftSummaryController) {
	shift := e.Group("/api/shift")
	shift.POST("/summary", sc.GetShiftStartSummaryHandler)
	shift.OPTIONS("/summary", common.Preflight)

	// path lama, masih dipakai klien yang sudah ada
	e.POST("/get_shift_start_summary", sc.GetShiftStartSummaryHandler)
	e.OPTIONS("/get_shift_start_summary", common.Preflight)
}
